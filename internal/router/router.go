package router

import (
	"context"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogify-app/backend/internal/handlers"
	"github.com/blogify-app/backend/internal/middleware"
	"github.com/blogify-app/backend/internal/repositories"
	"github.com/blogify-app/backend/internal/services"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logg zerolog.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.RequestLogger(logg))
	e.Use(middleware.Metrics())
	e.HTTPErrorHandler = NewHTTPErrorHandler(logg)
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, firebaseAuthClient *auth.Client, uploader handlers.MediaUploader, logg zerolog.Logger) {
	// --- Initialize Repositories ---
	blogRepo := repositories.NewMongoBlogRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	wishlistRepo := repositories.NewMongoWishlistRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := blogRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure blog indexes: %v", err)
	}
	if err := wishlistRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure wishlist indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured for all collections.")

	// --- Initialize Services ---
	searchSvc := services.NewSearchService(blogRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, blogRepo, logg)

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Blogify Running"})
	})

	// --- Handlers ---
	blogHandler := handlers.NewBlogHandler(blogRepo, searchSvc, uploader, logg)
	commentHandler := handlers.NewCommentHandler(commentRepo, blogRepo)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc)

	// --- Public routes ---
	public := e.Group("")
	blogHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterPublicRoutes(public)
	log.Println("Public routes configured.")

	// --- Protected routes (require Firebase token + matching email) ---
	protected := e.Group("")
	protected.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	protected.Use(middleware.EmailMatchMiddleware())
	blogHandler.RegisterProtectedRoutes(protected)
	commentHandler.RegisterProtectedRoutes(protected)
	wishlistHandler.RegisterProtectedRoutes(protected)
	log.Println("Protected routes configured.")

	log.Println("All routes configured.")
}
