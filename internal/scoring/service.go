package scoring

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"lri-engine/internal/config"
	"lri-engine/internal/providers/navsim"
	"lri-engine/internal/providers/skysim"
	"lri-engine/internal/providers/terrasim"
	"lri-engine/internal/types"
)

var (
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrUnknownAircraftType  = errors.New("unknown aircraft type")
	ErrUnknownAircraftClass = errors.New("unknown aircraft class")
)

// WeatherProvider supplies the weather observation for a point.
type WeatherProvider interface {
	Sample(latitude, longitude float64) (*skysim.Sample, error)
}

// NavigationProvider supplies the HPL/VPL observation for a point
// relative to the alert limits in effect.
type NavigationProvider interface {
	Sample(latitude, longitude, horizontalAlertM, verticalAlertM float64) (*navsim.Sample, error)
}

// TerrainProvider supplies the terrain observation for a point.
type TerrainProvider interface {
	Sample(latitude, longitude float64) (*terrasim.Sample, error)
}

// AirspaceLocator answers whether a point lies inside the demo FIR.
type AirspaceLocator interface {
	Contains(latitude, longitude float64) bool
}

// Service computes Landing Risk Index assessments.
type Service interface {
	Assess(coords types.Coords, aircraft types.AircraftSelection) (*Assessment, error)
}

type scoringService struct {
	weatherProvider    WeatherProvider
	navigationProvider NavigationProvider
	terrainProvider    TerrainProvider
	airspace           AirspaceLocator
	cfg                *config.Config
	logger             *slog.Logger
}

// NewScoringService creates a scoring service backed by the synthetic
// samplers.
func NewScoringService(cfg *config.Config, logger *slog.Logger, airspace AirspaceLocator) Service {
	return NewScoringServiceWithProviders(
		skysim.NewSampler(logger),
		navsim.NewSampler(logger),
		terrasim.NewSampler(logger),
		airspace,
		cfg,
		logger,
	)
}

// NewScoringServiceWithProviders creates a scoring service with custom
// providers. This is useful for testing with mock providers.
func NewScoringServiceWithProviders(
	weatherProvider WeatherProvider,
	navigationProvider NavigationProvider,
	terrainProvider TerrainProvider,
	airspace AirspaceLocator,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &scoringService{
		weatherProvider:    weatherProvider,
		navigationProvider: navigationProvider,
		terrainProvider:    terrainProvider,
		airspace:           airspace,
		cfg:                cfg,
		logger:             logger.With("component", "scoring-service"),
	}
}

// Assess validates the inputs, samples the three observation providers
// in parallel, and folds the samples into an Assessment.
func (s *scoringService) Assess(coords types.Coords, aircraft types.AircraftSelection) (*Assessment, error) {
	if coords.Latitude < -90 || coords.Latitude > 90 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidLatitude, coords.Latitude)
	}
	if coords.Longitude < -180 || coords.Longitude > 180 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidLongitude, coords.Longitude)
	}
	if aircraft.Type == types.AircraftTypeUnknown {
		return nil, ErrUnknownAircraftType
	}
	if aircraft.Class == types.AircraftClassUnknown {
		return nil, ErrUnknownAircraftClass
	}

	limits := s.cfg.LRI.AlertLimits.ForClass(aircraft.Class)
	requiredVisibilityKm := s.cfg.LRI.RequiredVisibilityKm * aircraft.Type.VisibilityFactor()

	s.logger.Debug("assessing landing point",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"aircraft_type", aircraft.Type.String(),
		"aircraft_class", aircraft.Class.String(),
		"required_visibility_km", requiredVisibilityKm,
	)

	var (
		wg            sync.WaitGroup
		weatherSample *skysim.Sample
		navSample     *navsim.Sample
		terrainSample *terrasim.Sample
		weatherErr    error
		navErr        error
		terrainErr    error
	)

	// Sample all three observation sources in parallel
	wg.Add(3)

	go func() {
		defer wg.Done()
		weatherSample, weatherErr = s.weatherProvider.Sample(coords.Latitude, coords.Longitude)
		if weatherErr != nil {
			weatherErr = fmt.Errorf("failed to sample weather: %w", weatherErr)
		}
	}()

	go func() {
		defer wg.Done()
		navSample, navErr = s.navigationProvider.Sample(
			coords.Latitude, coords.Longitude,
			limits.HorizontalMeters, limits.VerticalMeters,
		)
		if navErr != nil {
			navErr = fmt.Errorf("failed to sample navigation integrity: %w", navErr)
		}
	}()

	go func() {
		defer wg.Done()
		terrainSample, terrainErr = s.terrainProvider.Sample(coords.Latitude, coords.Longitude)
		if terrainErr != nil {
			terrainErr = fmt.Errorf("failed to sample terrain: %w", terrainErr)
		}
	}()

	wg.Wait()

	if err := errors.Join(weatherErr, navErr, terrainErr); err != nil {
		s.logger.Error("observation sampling failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	assessment := &Assessment{
		Coordinates: coords,
		Aircraft:    aircraft,
		Weather:     weatherScore(weatherSample, requiredVisibilityKm),
		Navigation:  navigationScore(navSample, limits),
		Terrain:     terrainScore(terrainSample, s.cfg.LRI.Weights.Terrain),
		WithinFIR:   s.airspace.Contains(coords.Latitude, coords.Longitude),
	}

	assessment.LRI = combine(
		assessment.Weather.Value,
		assessment.Navigation.Value,
		assessment.Terrain.Value,
		s.cfg.LRI.Weights,
		s.cfg.LRI.MinTerrainScore,
	)
	assessment.HardStop = isHardStop(weatherSample, navSample, terrainSample, limits, s.cfg.LRI.HardStop)
	assessment.Grade = gradeFor(assessment.LRI, assessment.HardStop, s.cfg.LRI.Thresholds)
	assessment.Evidence = buildEvidence(assessment)

	s.logger.Debug("assessment complete",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"lri", assessment.LRI,
		"grade", assessment.Grade.String(),
		"hard_stop", assessment.HardStop,
	)

	return assessment, nil
}
