package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"apotek/m/internal/api"
	"apotek/m/internal/config"
	"apotek/m/internal/database"
	"apotek/m/internal/migrations"
	"apotek/m/internal/seed"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to open database")
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		logger.Fatal().Err(err).Msg("unable to migrate database")
	}

	if cfg.SeedCSV != "" {
		rows, err := seed.LoadMedicines(db, cfg.SeedCSV)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.SeedCSV).Msg("unable to seed medicine catalog")
		}
		if rows > 0 {
			logger.Info().Int("rows", rows).Msg("seeded medicine catalog")
		}
	}

	handler := api.New(db, logger)

	logger.Info().Str("port", cfg.HTTPPort).Msg("apotek server starting")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
