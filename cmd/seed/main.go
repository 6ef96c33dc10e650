package main

import (
	"context"
	"log"

	"github.com/fitlog/fitlog/internal/config"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/services"
	"github.com/fitlog/fitlog/pkg/logger"
)

// Seeds the built-in exercise catalog and exits. Safe to run more than
// once against the same database.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logger.NewLogger()

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	exerciseRepo := repository.NewExerciseRepository(db.DB)
	exerciseService := services.NewExerciseService(exerciseRepo, logger)

	created, err := exerciseService.Seed(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Failed to seed exercise catalog")
	}

	total, err := exerciseRepo.Count(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Failed to count exercises")
	}

	logger.WithField("created", created).WithField("total", total).Info("Exercise catalog seeded")
}
