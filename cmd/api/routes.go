package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Scoring endpoints
	v1 := app.router.Group("/api/v1")
	v1.POST("/lri", app.handleAssessLanding)
	v1.GET("/fir", app.handleGetFIRBoundary)

	// Map UI
	app.router.StaticFile("/", filepath.Join(app.cfg.Server.StaticDir, "index.html"))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
