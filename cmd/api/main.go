package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"jotter/internal/config"
	"jotter/internal/database"
	"jotter/internal/logger"
	"jotter/internal/server"
	"jotter/internal/summarizer"
)

func main() {
	log := logger.New("jotter-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	summ, err := summarizer.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build summarizer")
	}
	if cfg.GeminiAPIKey == "" {
		log.Info().Msg("no Gemini API key configured, using mock summarizer")
	}

	srv := server.New(cfg, db, summ, log)
	srv.RegisterFiberRoutes()

	done := make(chan bool, 1)
	go func() {
		if err := srv.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		log.Info().Msg("shutting down gracefully")
		if err := srv.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
		done <- true
	}()

	<-done
	log.Info().Msg("graceful shutdown complete")
}
