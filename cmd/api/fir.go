package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetFIRBoundary godoc
// @Summary Get the FIR boundary
// @Description Return the demo flight information region boundary as GeoJSON for rendering on the map
// @Tags fir
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/fir [get]
func (app *App) handleGetFIRBoundary(c *gin.Context) {
	c.JSON(http.StatusOK, app.firService.Boundary())
}
