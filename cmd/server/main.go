package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, ORS) behind ports, loads the
// immutable station catalog snapshot, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	catalogPath := config.Get("CATALOG_PATH", "data/fuel_prices.csv")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	vehicle := domain.VehicleProfile{
		RangeMiles: getFloat("VEHICLE_RANGE_MILES", domain.DefaultVehicleRangeMiles),
		MPG:        getFloat("VEHICLE_MPG", domain.DefaultVehicleMPG),
	}
	if err := vehicle.Validate(); err != nil {
		log.Fatal(err)
	}

	// Local SQLite always backs the route cache and, without Postgres, the
	// catalog and geocode cache too.
	sdb, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sdb.Close()

	if err := repositories.InitSchema(sdb); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var catalog []domain.Station
	var geocodeStore ports.GeocodeStore

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		// Shared Postgres catalog, imported ahead of time via dbtool.
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		catalog, err = repositories.NewSQLStationRepository(pg).ListStations(ctx)
		if err != nil {
			log.Fatal(err)
		}
		geocodeStore = cache.NewSQLGeocodeCache(pg)
	} else {
		// Seed the local catalog from the price CSV on startup for local runs.
		if err := repositories.SeedFromCSV(sdb, catalogPath); err != nil {
			log.Fatal(err)
		}

		catalog, err = repositories.NewSqliteStationRepository(sdb).ListStations(ctx)
		if err != nil {
			log.Fatal(err)
		}
		geocodeStore = cache.NewSqliteGeocodeCache(sdb)
	}
	log.Printf("Catalog loaded stations=%d", len(catalog))

	// ORS adapter uses persistent caches to avoid repeated geocode/directions
	// calls; the in-memory LRU sits in front to skip the database on hot keys.
	ors, err := routing.NewORSClient(orsKey, geocodeStore, cache.NewSqliteRouteCache(sdb))
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := cache.NewLRUGeocodeCache(getInt("GEOCODE_CACHE_SIZE", 1000), ors)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(catalog, geocoder, ors, api.RouterConfig{
		DefaultVehicle: vehicle,
		BBoxPaddingKm:  getFloat("BBOX_PADDING_KM", services.DefaultBBoxPaddingKm),
		MaxCorridorKm:  getFloat("CORRIDOR_KM", services.DefaultMaxCorridorKm),
	})

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, raw)
	}
	return v
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return v
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
