package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/config"
	"github.com/northwind-labs/northwind-api/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	logger.Info().Msg("starting Northwind API server")

	db, err := config.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := config.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}
	logger.Info().Msg("database migration completed")

	var photos services.PhotoStore
	if cfg.PhotoStorageEnabled() {
		store, err := services.NewS3PhotoStore(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize photo store")
		}
		photos = store
		logger.Info().Str("bucket", cfg.AWSS3Bucket).Msg("photo storage enabled")
	} else {
		logger.Info().Msg("photo storage disabled")
	}

	router := SetupRouter(cfg, db, photos, logger)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
