package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/blogify-app/backend/internal/router"
	"github.com/blogify-app/backend/pkg/config"
	"github.com/blogify-app/backend/pkg/firebase"
	"github.com/blogify-app/backend/pkg/logger"
	"github.com/blogify-app/backend/pkg/media"
	"github.com/blogify-app/backend/validators"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "blogify-api",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Media host client for cover image uploads
	mediaClient := media.NewClient(cfg.MediaBaseURL, cfg.MediaAPIKey)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, logg)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Database, firebaseApp.AuthClient, mediaClient, logg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
