package fir

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Simplified Incheon FIR boundary. The production boundary comes from
// the AIP; this one keeps only enough vertices for the demo map.
//
//go:embed incheon_fir.geojson
var firBoundaryGeoJSON []byte

// Service answers airspace-boundary queries for the demo FIR.
type Service interface {
	// Contains reports whether the point lies inside the FIR.
	Contains(latitude, longitude float64) bool
	// Boundary returns the FIR boundary for rendering on the map.
	Boundary() *geojson.FeatureCollection
}

type firService struct {
	boundary *geojson.FeatureCollection
	logger   *slog.Logger
}

// NewService parses the embedded boundary and returns a ready service.
func NewService(logger *slog.Logger) (Service, error) {
	boundary, err := geojson.UnmarshalFeatureCollection(firBoundaryGeoJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FIR boundary: %w", err)
	}
	if len(boundary.Features) == 0 {
		return nil, fmt.Errorf("FIR boundary contains no features")
	}

	return &firService{
		boundary: boundary,
		logger:   logger.With("component", "fir-service"),
	}, nil
}

func (s *firService) Contains(latitude, longitude float64) bool {
	point := orb.Point{longitude, latitude}
	for _, feature := range s.boundary.Features {
		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			if planar.PolygonContains(geometry, point) {
				return true
			}
		case orb.MultiPolygon:
			if planar.MultiPolygonContains(geometry, point) {
				return true
			}
		}
	}
	return false
}

func (s *firService) Boundary() *geojson.FeatureCollection {
	return s.boundary
}
