package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"beautytime/internal/config"
	"beautytime/internal/db"
	"beautytime/internal/logger"
	"beautytime/internal/repository"
	"beautytime/internal/router"
	"beautytime/internal/upload"
)

func main() {
	seed := flag.Bool("seed", false, "wipe and repopulate the database with sample data")
	flag.Parse()

	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting application")

	client, database := db.InitDB(cfg.MongoURI, cfg.DBName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx)
	}()

	db.EnsureIndexes(database)

	if *seed {
		db.Seed(database)
		log.Info().Msg("Database seeded")
		return
	}

	saver, err := upload.NewSaver(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Upload directory setup failed")
	}

	repos := router.Repositories{
		Products: repository.NewMongoProductRepository(database),
		Orders:   repository.NewMongoOrderRepository(database),
		Admins:   repository.NewMongoAdminRepository(database),
	}

	r := router.SetupRouter(repos, saver, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
