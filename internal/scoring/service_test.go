package scoring

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"lri-engine/internal/config"
	"lri-engine/internal/providers/navsim"
	"lri-engine/internal/providers/skysim"
	"lri-engine/internal/providers/terrasim"
	"lri-engine/internal/types"
)

// Mock providers for testing

type mockWeatherProvider struct {
	sample *skysim.Sample
	err    error
}

func (m *mockWeatherProvider) Sample(latitude, longitude float64) (*skysim.Sample, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sample, nil
}

type mockNavigationProvider struct {
	sample *navsim.Sample
	err    error
}

func (m *mockNavigationProvider) Sample(latitude, longitude, horizontalAlertM, verticalAlertM float64) (*navsim.Sample, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sample, nil
}

type mockTerrainProvider struct {
	sample *terrasim.Sample
	err    error
}

func (m *mockTerrainProvider) Sample(latitude, longitude float64) (*terrasim.Sample, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sample, nil
}

type mockAirspace struct {
	inside bool
}

func (m *mockAirspace) Contains(latitude, longitude float64) bool {
	return m.inside
}

func testConfig() *config.Config {
	return &config.Config{
		LRI: config.LRIConfig{
			Weights: config.Weights{Weather: 0.45, Navigation: 0.35, Terrain: 0.20},
			AlertLimits: config.AlertLimits{
				FixedWing:  config.ClassLimits{HorizontalMeters: 35, VerticalMeters: 45},
				RotaryWing: config.ClassLimits{HorizontalMeters: 40, VerticalMeters: 50},
			},
			Thresholds:           config.Thresholds{Severe: 60, Warning: 80},
			RequiredVisibilityKm: 30,
			MinTerrainScore:      5,
			HardStop: config.HardStopConfig{
				CloudTopTempFloorK:    235,
				BackscatterAnomalyDB:  3.0,
				ConvectiveCorePercent: 30,
			},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(weather *skysim.Sample, nav *navsim.Sample, terrain *terrasim.Sample) Service {
	return NewScoringServiceWithProviders(
		&mockWeatherProvider{sample: weather},
		&mockNavigationProvider{sample: nav},
		&mockTerrainProvider{sample: terrain},
		&mockAirspace{inside: true},
		testConfig(),
		testLogger(),
	)
}

func clearSamples() (*skysim.Sample, *navsim.Sample, *terrasim.Sample) {
	return &skysim.Sample{CloudAttenuation: 0.05, VisibilityKm: 55, CloudTopTempK: 273},
		&navsim.Sample{HPLMeters: 25, VPLMeters: 30},
		&terrasim.Sample{ComplexityRatio: 0.02, NegativeOCHRatio: 0, BackscatterAnomalyDB: 0.5, ConvectiveCorePercent: 5}
}

func TestAssess_BestCase(t *testing.T) {
	service := newTestService(clearSamples())

	assessment, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassRotaryWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if assessment.Grade != GradeVeryGood {
		t.Errorf("Grade = %v, want %v", assessment.Grade, GradeVeryGood)
	}
	if assessment.HardStop {
		t.Error("HardStop = true, want false")
	}
	if assessment.LRI < 0 || assessment.LRI > 100 {
		t.Errorf("LRI = %f, want within [0,100]", assessment.LRI)
	}
	if !assessment.WithinFIR {
		t.Error("WithinFIR = false, want true")
	}
	if len(assessment.Evidence) != 3 {
		t.Errorf("len(Evidence) = %d, want 3", len(assessment.Evidence))
	}
}

func TestAssess_HardStopScenarios(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *skysim.Sample, n *navsim.Sample, tr *terrasim.Sample)
	}{
		{
			name: "cold cloud tops",
			mutate: func(w *skysim.Sample, n *navsim.Sample, tr *terrasim.Sample) {
				w.CloudTopTempK = 230
			},
		},
		{
			name: "both protection limits exceeded",
			mutate: func(w *skysim.Sample, n *navsim.Sample, tr *terrasim.Sample) {
				n.HPLMeters = 48
				n.VPLMeters = 58
			},
		},
		{
			name: "backscatter anomaly over a convective core",
			mutate: func(w *skysim.Sample, n *navsim.Sample, tr *terrasim.Sample) {
				tr.BackscatterAnomalyDB = 3.8
				tr.ConvectiveCorePercent = 40
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather, nav, terrain := clearSamples()
			tt.mutate(weather, nav, terrain)
			service := newTestService(weather, nav, terrain)

			assessment, err := service.Assess(
				types.NewCoords(35.0, 127.0),
				types.NewAircraftSelection(types.AircraftTypeEVTOL, types.AircraftClassRotaryWing),
			)
			if err != nil {
				t.Fatalf("Assess() error = %v", err)
			}

			if !assessment.HardStop {
				t.Error("HardStop = false, want true")
			}
			if assessment.Grade != GradeHardStop {
				t.Errorf("Grade = %v, want %v", assessment.Grade, GradeHardStop)
			}
		})
	}
}

func TestAssess_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		coords   types.Coords
		aircraft types.AircraftSelection
		wantErr  error
	}{
		{
			name:     "latitude too high",
			coords:   types.NewCoords(91, 127),
			aircraft: types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
			wantErr:  ErrInvalidLatitude,
		},
		{
			name:     "latitude too low",
			coords:   types.NewCoords(-90.5, 127),
			aircraft: types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
			wantErr:  ErrInvalidLatitude,
		},
		{
			name:     "longitude too high",
			coords:   types.NewCoords(37, 181),
			aircraft: types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
			wantErr:  ErrInvalidLongitude,
		},
		{
			name:     "longitude too low",
			coords:   types.NewCoords(37, -180.1),
			aircraft: types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
			wantErr:  ErrInvalidLongitude,
		},
		{
			name:     "unknown aircraft type",
			coords:   types.NewCoords(37, 127),
			aircraft: types.NewAircraftSelection(types.AircraftTypeUnknown, types.AircraftClassFixedWing),
			wantErr:  ErrUnknownAircraftType,
		},
		{
			name:     "unknown aircraft class",
			coords:   types.NewCoords(37, 127),
			aircraft: types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassUnknown),
			wantErr:  ErrUnknownAircraftClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(clearSamples())

			_, err := service.Assess(tt.coords, tt.aircraft)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Assess() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssess_ClassSelectsAlertLimits(t *testing.T) {
	// HPL 38 exceeds the fixed-wing HAL of 35 but stays under the
	// rotary-wing HAL of 40, so the same sample scores differently.
	weather, _, terrain := clearSamples()
	nav := &navsim.Sample{HPLMeters: 38, VPLMeters: 30}

	service := newTestService(weather, nav, terrain)

	fixed, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	rotary, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeVTOL, types.AircraftClassRotaryWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if fixed.Navigation.Value >= 100 {
		t.Errorf("fixed-wing Navigation.Value = %f, want below 100", fixed.Navigation.Value)
	}
	if rotary.Navigation.Value != 100 {
		t.Errorf("rotary-wing Navigation.Value = %f, want 100", rotary.Navigation.Value)
	}
}

func TestAssess_TypeScalesRequiredVisibility(t *testing.T) {
	weather := &skysim.Sample{CloudAttenuation: 0, VisibilityKm: 20, CloudTopTempK: 273}
	_, nav, terrain := clearSamples()

	service := newTestService(weather, nav, terrain)

	// CTOL needs the full 30 km, so 20 km scores below 100.
	ctol, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	// An eVTOL needs only 18 km, so 20 km saturates the ratio.
	evtol, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeEVTOL, types.AircraftClassRotaryWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if ctol.Weather.Value >= 100 {
		t.Errorf("CTOL Weather.Value = %f, want below 100", ctol.Weather.Value)
	}
	if evtol.Weather.Value != 100 {
		t.Errorf("eVTOL Weather.Value = %f, want 100", evtol.Weather.Value)
	}
	if ctol.Weather.RequiredVisibilityKm != 30 {
		t.Errorf("CTOL RequiredVisibilityKm = %f, want 30", ctol.Weather.RequiredVisibilityKm)
	}
	if evtol.Weather.RequiredVisibilityKm != 18 {
		t.Errorf("eVTOL RequiredVisibilityKm = %f, want 18", evtol.Weather.RequiredVisibilityKm)
	}
}

func TestAssess_Idempotent(t *testing.T) {
	// Real samplers, same inputs, repeated calls. The whole pipeline
	// must be a pure function of the request.
	service := NewScoringService(testConfig(), testLogger(), &mockAirspace{inside: true})

	coords := types.NewCoords(37.4602, 126.4407)
	aircraft := types.NewAircraftSelection(types.AircraftTypeEVTOL, types.AircraftClassRotaryWing)

	first, err := service.Assess(coords, aircraft)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := service.Assess(coords, aircraft)
		if err != nil {
			t.Fatalf("Assess() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Assess() not idempotent: first = %+v, run %d = %+v", first, i+2, again)
		}
	}
}

func TestAssess_ProviderError(t *testing.T) {
	weather, _, terrain := clearSamples()
	service := NewScoringServiceWithProviders(
		&mockWeatherProvider{sample: weather},
		&mockNavigationProvider{err: errors.New("ephemeris unavailable")},
		&mockTerrainProvider{sample: terrain},
		&mockAirspace{inside: true},
		testConfig(),
		testLogger(),
	)

	_, err := service.Assess(
		types.NewCoords(37.5, 127.0),
		types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
	)
	if err == nil {
		t.Fatal("Assess() error = nil, want sampling error")
	}
}

func TestAssess_OutsideFIR(t *testing.T) {
	weather, nav, terrain := clearSamples()
	service := NewScoringServiceWithProviders(
		&mockWeatherProvider{sample: weather},
		&mockNavigationProvider{sample: nav},
		&mockTerrainProvider{sample: terrain},
		&mockAirspace{inside: false},
		testConfig(),
		testLogger(),
	)

	assessment, err := service.Assess(
		types.NewCoords(35.6762, 139.6503),
		types.NewAircraftSelection(types.AircraftTypeCTOL, types.AircraftClassFixedWing),
	)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	if assessment.WithinFIR {
		t.Error("WithinFIR = true, want false")
	}
}
