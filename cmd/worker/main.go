package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"leadscout/internal/proxy"
	"leadscout/internal/queue"
	"leadscout/internal/store"
	"leadscout/internal/worker"
)

func main() {
	log.Println("🚀 Starting LeadScout Worker...")
	_ = godotenv.Load()

	// 1. Initialize Redis
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	if err := queue.Init(redisAddr); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// 2. Initialize Database
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("❌ DB_URL environment variable is required")
	}
	if err := store.Init(dbURL); err != nil {
		log.Fatalf("❌ Failed to connect to DB: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// 3. Optional fetch proxy pool
	if proxyListRaw := os.Getenv("PROXY_LIST"); proxyListRaw != "" {
		limit, _ := strconv.Atoi(os.Getenv("PROXY_CONCURRENCY"))
		if err := proxy.Init(strings.Split(proxyListRaw, ","), limit); err != nil {
			log.Fatalf("❌ Failed to initialize proxy manager: %v", err)
		}
		log.Println("🛡️  Proxy rotation enabled")
	}

	// 4. Start the Processing Loop
	worker.Start()
}
