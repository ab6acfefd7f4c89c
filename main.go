// main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/splitlens/analytics-backend/logging"
	"github.com/splitlens/analytics-backend/middleware"
	"github.com/splitlens/analytics-backend/repository"
	"github.com/splitlens/analytics-backend/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	// LOG_LEVEL comes from the environment, so configure after godotenv
	logging.Setup()

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Splitlens Analytics"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		slog.Warn("failed to initialize New Relic", "error", err)
	}

	// Connect to the expense database (read-only from our side)
	if err := repository.InitDB(); err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repository.CloseDB()

	// Set up Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	slog.Info("server starting", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
