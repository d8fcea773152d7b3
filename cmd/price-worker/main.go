package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/db"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/market"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("📈 Price worker starting...")

	// Validate database URL
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	log.Println("✅ Connected to PostgreSQL")

	service := market.NewService(pgDB)

	// Refresh once on boot so a fresh deployment has snapshots.
	if err := service.RecomputeAll(context.Background()); err != nil {
		log.Printf("⚠️  Initial recompute failed: %v", err)
	}

	log.Println("✅ Price worker initialized and running...")
	log.Println("Recomputing market snapshots every hour. Press Ctrl+C to stop.")

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.RecomputeAll(context.Background()); err != nil {
			log.Printf("⚠️  Recompute failed: %v", err)
		}
	}
}
