// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/franmatch/franmatch-backend/internal/analytics"
	"github.com/franmatch/franmatch-backend/internal/common/cache"
	"github.com/franmatch/franmatch-backend/internal/config"
	"github.com/franmatch/franmatch-backend/internal/contracts"
	"github.com/franmatch/franmatch-backend/internal/matching"
	"github.com/franmatch/franmatch-backend/internal/messaging"
	"github.com/franmatch/franmatch-backend/internal/notifications"
	"github.com/franmatch/franmatch-backend/internal/profiles"
	"github.com/franmatch/franmatch-backend/internal/recommendations"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting FranMatch API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to Redis (optional, analytics cache)
	log.Println("\n📮 Step 4: Connecting to Redis...")
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable: %v, continuing without cache", err)
		} else {
			redisClient = client
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, analytics cache disabled")
	}

	// 5. Initialize Notifications module
	log.Println("\n🔔 Step 5: Initializing Notifications module...")

	var emailProvider notifications.EmailProvider
	switch cfg.EmailProvider {
	case "sendgrid":
		emailProvider = notifications.NewSendGridEmailProvider(cfg.SendGridAPIKey, cfg.EmailFrom)
		log.Println("   ✅ Using SendGrid for emails")
	case "smtp":
		emailProvider = notifications.NewSMTPEmailProvider(
			cfg.SMTPHost,
			fmt.Sprintf("%d", cfg.SMTPPort),
			cfg.SMTPUsername,
			cfg.SMTPPassword,
			cfg.EmailFrom,
		)
		log.Println("   ✅ Using SMTP for emails")
	default:
		emailProvider = notifications.NewMockEmailProvider()
		log.Println("   ⚠️  Using mock email provider (development mode)")
	}

	var smsProvider notifications.SMSProvider
	switch cfg.SMSProvider {
	case "twilio":
		smsProvider = notifications.NewTwilioSMSProvider(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioPhoneNumber,
		)
		log.Println("   ✅ Using Twilio for SMS")
	default:
		smsProvider = notifications.NewMockSMSProvider()
		log.Println("   ⚠️  Using mock SMS provider (development mode)")
	}

	contactDirectory := notifications.NewMemoryDirectory()

	// 6. Start WebSocket hub
	log.Println("\n🔌 Step 6: Starting WebSocket hub...")
	hub := messaging.NewHub()
	go hub.Run()
	log.Println("✅ WebSocket hub started")

	notificationsRepo := notifications.NewMemoryRepository()
	notificationsService := notifications.NewService(notificationsRepo, notifications.Options{
		Email:        emailProvider,
		SMS:          smsProvider,
		Directory:    contactDirectory,
		Pusher:       hub,
		EmailEnabled: cfg.EnableEmailNotifications,
		SMSEnabled:   cfg.EnableSMSNotifications,
	})
	notificationsHandler := notifications.NewHandler(notificationsService)
	log.Println("✅ Notifications module initialized")

	// 7. Initialize Contracts module
	log.Println("\n📑 Step 7: Initializing Contracts module...")

	var uploadService contracts.UploadService
	if cfg.UseS3 {
		var err error
		uploadService, err = contracts.NewS3UploadService(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Printf("⚠️  Failed to init S3, using local storage: %v", err)
			uploadService = contracts.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		} else {
			log.Println("   ✅ Using S3 for evidence uploads")
		}
	} else {
		uploadService = contracts.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		log.Println("   ✅ Using local storage for evidence uploads")
	}

	contractsRepo := contracts.NewMemoryRepository()
	for _, c := range contracts.SeedContracts() {
		if err := contractsRepo.Insert(context.Background(), c); err != nil {
			log.Fatal("❌ Failed to seed contracts:", err)
		}
	}
	contractsService := contracts.NewService(contractsRepo, uploadService, notificationsService)
	contractsHandler := contracts.NewHandler(contractsService, cfg.MaxEvidenceSize)
	log.Println("✅ Contracts module initialized")

	// 8. Initialize Matching module
	log.Println("\n💘 Step 8: Initializing Matching module...")
	matchingRepo := matching.NewMemoryRepository()
	matchingService := matching.NewService(matchingRepo, notificationsService, hub)
	matchingHandler := matching.NewHandler(matchingService)
	log.Println("✅ Matching module initialized")

	// 9. Initialize Profiles module
	log.Println("\n👤 Step 9: Initializing Profiles module...")
	profilesRepo := profiles.NewMemoryRepository()
	for _, p := range profiles.SeedProfiles() {
		if err := profilesRepo.Insert(p); err != nil {
			log.Fatal("❌ Failed to seed profiles:", err)
		}
	}
	profilesService := profiles.NewService(profilesRepo, matchingService)
	profilesHandler := profiles.NewHandler(profilesService)
	log.Println("✅ Profiles module initialized")

	// 10. Initialize Messaging module
	log.Println("\n💬 Step 10: Initializing Messaging module...")
	messagingRepo := messaging.NewMemoryRepository()
	seedConversations, seedMessages := messaging.SeedConversations()
	for _, c := range seedConversations {
		if err := messagingRepo.InsertConversation(c); err != nil {
			log.Fatal("❌ Failed to seed conversations:", err)
		}
	}
	for _, m := range seedMessages {
		if err := messagingRepo.InsertMessage(m); err != nil {
			log.Fatal("❌ Failed to seed messages:", err)
		}
	}
	messagingService := messaging.NewService(messagingRepo, hub)
	messagingHandler := messaging.NewHandler(messagingService, hub)
	log.Println("✅ Messaging module initialized")

	// 11. Initialize Analytics module
	log.Println("\n📊 Step 11: Initializing Analytics module...")
	analyticsService := analytics.NewService(analytics.NewMemoryEventLog(), redisClient, cfg.AnalyticsCacheTTL)
	analyticsHandler := analytics.NewHandler(analyticsService)
	log.Println("✅ Analytics module initialized")

	// 12. Initialize Recommendations module
	log.Println("\n🤖 Step 12: Initializing Recommendations module...")
	recommendationsService := recommendations.NewService()
	recommendationsHandler := recommendations.NewHandler(recommendationsService)
	log.Println("✅ Recommendations module initialized")

	// 13. Setup routes
	log.Println("\n🛣️  Step 13: Setting up routes...")
	router := mux.NewRouter()

	// Static files for local evidence uploads
	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/",
				http.FileServer(http.Dir(cfg.LocalUploadDir))))
		log.Println("   ✅ Static file server configured")
	}

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	profiles.RegisterRoutes(router, profilesHandler)
	log.Println("   ✅ Profile routes registered")

	matching.RegisterRoutes(router, matchingHandler)
	log.Println("   ✅ Matching routes registered")

	messaging.RegisterRoutes(router, messagingHandler)
	log.Println("   ✅ Messaging routes registered")

	contracts.RegisterRoutes(router, contractsHandler)
	log.Println("   ✅ Contract routes registered")

	notifications.RegisterRoutes(router, notificationsHandler)
	log.Println("   ✅ Notification routes registered")

	analytics.RegisterRoutes(router, analyticsHandler)
	log.Println("   ✅ Analytics routes registered")

	recommendations.RegisterRoutes(router, recommendationsHandler)
	log.Println("   ✅ Recommendation routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 14. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	log.Println("   - Shutting down websocket hub...")
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

var startTime = time.Now()

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack lets websocket upgrades pass through the logging wrapper.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
