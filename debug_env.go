package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	fmt.Println("✅ .env loaded successfully!")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("✅ Server port: %s\n", port)

	// Check Redis (optional)
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("⚠️  REDIS_URL not set, analytics cache will be disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Invalid REDIS_URL:", err)
	}

	client := redis.NewClient(opt)
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Can't reach Redis:", err)
	}

	fmt.Println("✅ Connected to Redis via .env!")
}
