package main

import (
	"errors"
	"net/http"

	"lri-engine/internal/scoring"
	"lri-engine/internal/types"

	"github.com/gin-gonic/gin"
)

// AssessLandingInput defines the request body for the LRI endpoint.
// Coordinate fields are pointers so that an omitted field is rejected
// instead of defaulting to zero, which is a valid coordinate.
type AssessLandingInput struct {
	Latitude      *float64 `json:"latitude" binding:"required" example:"37.4602"`       // Latitude in decimal degrees
	Longitude     *float64 `json:"longitude" binding:"required" example:"126.4407"`     // Longitude in decimal degrees
	AircraftType  string   `json:"aircraft_type" binding:"required" example:"eVTOL"`    // CTOL, STOL, VTOL, eCTOL, eSTOL or eVTOL
	AircraftClass string   `json:"aircraft_class" binding:"required" example:"rotary-wing"` // fixed-wing or rotary-wing
}

// LocationResponse echoes the assessed coordinates
type LocationResponse struct {
	Latitude  float64 `json:"latitude" example:"37.4602"`
	Longitude float64 `json:"longitude" example:"126.4407"`
}

// AircraftResponse echoes the normalized aircraft selection
type AircraftResponse struct {
	Type  string `json:"type" example:"eVTOL"`
	Class string `json:"class" example:"rotary-wing"`
}

// SubScoreResponse is one named sub-score with its supporting values
type SubScoreResponse struct {
	Name    string             `json:"name" example:"weather"`
	Value   float64            `json:"value" example:"87.4"`
	Details map[string]float64 `json:"details"`
}

// AssessLandingResponse is the full LRI result for one landing point
type AssessLandingResponse struct {
	LRI       float64            `json:"lri" example:"87.4"`
	Grade     string             `json:"grade" example:"Very Good"`
	HardStop  bool               `json:"hard_stop" example:"false"`
	WithinFIR bool               `json:"within_fir" example:"true"`
	Location  LocationResponse   `json:"location"`
	Aircraft  AircraftResponse   `json:"aircraft"`
	SubScores []SubScoreResponse `json:"sub_scores"`
	Evidence  []string           `json:"evidence"`
}

// handleAssessLanding godoc
// @Summary Assess landing risk for a point
// @Description Compute the Landing Risk Index for the given coordinates and aircraft: weather, navigation-integrity and terrain sub-scores, the combined index, a categorical grade and a hard-stop flag
// @Tags lri
// @Accept json
// @Produce json
// @Param request body AssessLandingInput true "Landing point and aircraft selection"
// @Success 200 {object} AssessLandingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lri [post]
func (app *App) handleAssessLanding(c *gin.Context) {
	var input AssessLandingInput

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := types.NewCoords(*input.Latitude, *input.Longitude)
	aircraft := types.NewAircraftSelection(
		types.ParseAircraftType(input.AircraftType),
		types.ParseAircraftClass(input.AircraftClass),
	)

	// Delegate to business layer
	assessment, err := app.scoringService.Assess(coords, aircraft)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, scoring.ErrInvalidLatitude) ||
			errors.Is(err, scoring.ErrInvalidLongitude) ||
			errors.Is(err, scoring.ErrUnknownAircraftType) ||
			errors.Is(err, scoring.ErrUnknownAircraftClass) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to assess landing point",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess landing point"})
		return
	}

	c.JSON(http.StatusOK, newAssessLandingResponse(assessment))
}

// newAssessLandingResponse flattens an assessment into the wire format,
// with the sub-scores in a fixed weather/navigation/terrain order.
func newAssessLandingResponse(a *scoring.Assessment) AssessLandingResponse {
	return AssessLandingResponse{
		LRI:       a.LRI,
		Grade:     a.Grade.String(),
		HardStop:  a.HardStop,
		WithinFIR: a.WithinFIR,
		Location: LocationResponse{
			Latitude:  a.Coordinates.Latitude,
			Longitude: a.Coordinates.Longitude,
		},
		Aircraft: AircraftResponse{
			Type:  a.Aircraft.Type.String(),
			Class: a.Aircraft.Class.String(),
		},
		SubScores: []SubScoreResponse{
			{
				Name:  "weather",
				Value: a.Weather.Value,
				Details: map[string]float64{
					"cloud_attenuation":      a.Weather.CloudAttenuation,
					"visibility_km":          a.Weather.VisibilityKm,
					"required_visibility_km": a.Weather.RequiredVisibilityKm,
					"cloud_top_temp_k":       a.Weather.CloudTopTempK,
				},
			},
			{
				Name:  "navigation",
				Value: a.Navigation.Value,
				Details: map[string]float64{
					"hpl_m": a.Navigation.HPLMeters,
					"vpl_m": a.Navigation.VPLMeters,
					"hal_m": a.Navigation.HALMeters,
					"val_m": a.Navigation.VALMeters,
				},
			},
			{
				Name:  "terrain",
				Value: a.Terrain.Value,
				Details: map[string]float64{
					"complexity_ratio":        a.Terrain.ComplexityRatio,
					"negative_och_ratio":      a.Terrain.NegativeOCHRatio,
					"backscatter_anomaly_db":  a.Terrain.BackscatterAnomalyDB,
					"convective_core_percent": float64(a.Terrain.ConvectiveCorePercent),
				},
			},
		},
		Evidence: a.Evidence,
	}
}
