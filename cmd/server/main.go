package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tanakrit-dev/userbase-be/internal/config"
	"github.com/tanakrit-dev/userbase-be/internal/server"
	postgres "github.com/tanakrit-dev/userbase-be/internal/storage/postgres"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	store, err := postgres.NewUserStore(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("init database")
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddress()).Msg("user API listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
