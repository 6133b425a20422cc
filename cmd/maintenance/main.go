// Command maintenance runs a one-shot consistency pass over the store:
// it backfills derived word counts on old blog documents and reconciles
// wishlist entries against blog likes sets.
package main

import (
	"context"
	"log"
	"time"

	"github.com/blogify-app/backend/internal/repositories"
	"github.com/blogify-app/backend/internal/services"
	"github.com/blogify-app/backend/pkg/config"
	"github.com/blogify-app/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "blogify-maintenance",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	blogRepo := repositories.NewMongoBlogRepository(db.Database)
	wishlistRepo := repositories.NewMongoWishlistRepository(db.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	reconciler := services.NewReconciler(blogRepo, wishlistRepo, logg)
	report, err := reconciler.Run(ctx)
	if err != nil {
		logg.Fatal().Err(err).Msg("reconciliation sweep failed")
	}

	logg.Info().
		Int("wordCountsSet", report.WordCountsSet).
		Int("likesAdded", report.LikesAdded).
		Int("likesRemoved", report.LikesRemoved).
		Int("entriesPruned", report.EntriesPruned).
		Msg("maintenance complete")
}
