package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	DatabaseDSN string
	HTTPPort    string
	SeedCSV     string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	_ = godotenv.Overload()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		// The default store is a local SQLite file next to the binary.
		dsn = "apotek.db"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{
		DatabaseDSN: dsn,
		HTTPPort:    port,
		SeedCSV:     os.Getenv("SEED_CSV"),
	}
}
