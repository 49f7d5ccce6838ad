// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// Cache (optional)
	RedisURL          string
	AnalyticsCacheTTL time.Duration

	// Email Configuration
	EmailProvider string // "smtp", "sendgrid", or "mock"
	EmailFrom     string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// SendGrid
	SendGridAPIKey string

	// SMS Configuration
	SMSProvider string // "twilio" or "mock"

	// Twilio
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	// Evidence storage
	UseS3              bool
	S3Bucket           string
	S3Region           string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	LocalUploadDir     string
	MaxEvidenceSize    int64

	// Notification Settings
	EnableEmailNotifications bool
	EnableSMSNotifications   bool
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),

		// Cache
		RedisURL:          getEnv("REDIS_URL", ""),
		AnalyticsCacheTTL: getEnvDuration("ANALYTICS_CACHE_TTL", "5m"),

		// Email
		EmailProvider: getEnv("EMAIL_PROVIDER", "mock"),
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@franmatch.com"),

		// SMTP
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		// SendGrid
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		// SMS
		SMSProvider: getEnv("SMS_PROVIDER", "mock"),

		// Twilio
		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_FROM_NUMBER", ""),

		// Storage
		UseS3:              getEnvBool("USE_S3", false),
		S3Bucket:           getEnv("S3_BUCKET_NAME", "franmatch-uploads"),
		S3Region:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		LocalUploadDir:     getEnv("LOCAL_UPLOAD_DIR", "./uploads"),
		MaxEvidenceSize:    int64(getEnvInt("MAX_EVIDENCE_SIZE", 10485760)), // 10MB

		// Notifications
		EnableEmailNotifications: getEnvBool("ENABLE_EMAIL_NOTIFICATIONS", false),
		EnableSMSNotifications:   getEnvBool("ENABLE_SMS_NOTIFICATIONS", false),
	}

	// Set BaseURL if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Email validation
	switch c.EmailProvider {
	case "smtp":
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			if c.Environment == "production" {
				return fmt.Errorf("SMTP configuration incomplete for production")
			}
		}
	case "sendgrid":
		if c.SendGridAPIKey == "" && c.Environment == "production" {
			return fmt.Errorf("SendGrid API key is required for production")
		}
	case "mock":
		if c.Environment == "production" && c.EnableEmailNotifications {
			return fmt.Errorf("mock email provider cannot be used in production")
		}
	default:
		return fmt.Errorf("invalid email provider: %s", c.EmailProvider)
	}

	// SMS validation
	switch c.SMSProvider {
	case "twilio":
		if c.EnableSMSNotifications && (c.TwilioAccountSID == "" || c.TwilioAuthToken == "" || c.TwilioPhoneNumber == "") {
			return fmt.Errorf("Twilio configuration incomplete but SMS notifications are enabled")
		}
	case "mock":
		if c.Environment == "production" && c.EnableSMSNotifications {
			return fmt.Errorf("mock SMS provider cannot be used in production with SMS notifications enabled")
		}
	default:
		return fmt.Errorf("invalid SMS provider: %s", c.SMSProvider)
	}

	// Storage validation
	if c.UseS3 {
		if c.AWSAccessKeyID == "" || c.AWSSecretAccessKey == "" || c.S3Bucket == "" {
			return fmt.Errorf("S3 configuration incomplete")
		}
	} else if c.LocalUploadDir == "" {
		return fmt.Errorf("local upload directory not specified")
	}

	if c.MaxEvidenceSize < 1 {
		return fmt.Errorf("max evidence size must be positive")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
