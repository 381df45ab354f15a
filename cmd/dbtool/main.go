package main

import (
	"context"
	"log"
	"os"
	"strings"

	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and imports the fuel price CSV,
// computing deterministic station coordinates at import time.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	ctx := context.Background()
	catalogPath := config.Get("CATALOG_PATH", "data/fuel_prices.csv")

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Importing catalog from %s...", catalogPath)
	if err := repositories.ImportCSVPostgres(ctx, pg, catalogPath); err != nil {
		log.Fatalf("catalog import failed: %v", err)
	}
	log.Println("Import complete.")
}
