package main

import (
	"log/slog"
	"lri-engine/internal/config"
	"lri-engine/internal/fir"
	"lri-engine/internal/scoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "lri-engine/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	scoringService scoring.Service
	firService     fir.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	// Initialize the FIR boundary service
	firSvc, err := fir.NewService(logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:         router,
		logger:         logger,
		scoringService: scoring.NewScoringService(cfg, logger, firSvc),
		firService:     firSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
