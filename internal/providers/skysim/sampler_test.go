package skysim

import (
	"log/slog"
	"testing"
)

func newTestSampler() *Sampler {
	return NewSampler(slog.Default())
}

func TestSampler_Deterministic(t *testing.T) {
	s := newTestSampler()

	first, err := s.Sample(35.5, 128.0)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	second, err := s.Sample(35.5, 128.0)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	if *first != *second {
		t.Errorf("identical coordinates produced different samples: %+v vs %+v", first, second)
	}
}

func TestSampler_AttenuationBounds(t *testing.T) {
	s := newTestSampler()

	coords := [][2]float64{
		{35.5, 128.0},
		{-45.0, -170.5},
		{0.0, 0.0},
		{62.3, 25.7},
		{37.5566, 126.9784},
	}

	for _, c := range coords {
		sample, err := s.Sample(c[0], c[1])
		if err != nil {
			t.Fatalf("Sample(%v) error = %v", c, err)
		}
		if sample.CloudAttenuation < attenuationMin || sample.CloudAttenuation > attenuationMax {
			t.Errorf("Sample(%v) attenuation = %f, want within [%f, %f]",
				c, sample.CloudAttenuation, attenuationMin, attenuationMax)
		}
		if sample.VisibilityKm < visibilityMinKm || sample.VisibilityKm > visibilityMaxKm {
			t.Errorf("Sample(%v) visibility = %f, want within [%f, %f]",
				c, sample.VisibilityKm, visibilityMinKm, visibilityMaxKm)
		}
	}
}

func TestSampler_StormCell(t *testing.T) {
	s := newTestSampler()

	tests := []struct {
		name     string
		lat, lon float64
		expected float64
	}{
		{"inside storm cell", 35.0, 127.0, stormCloudTopTempK},
		{"north of cell", 37.5, 127.0, clearCloudTopTempK},
		{"west of cell", 35.0, 125.0, clearCloudTopTempK},
		{"far away", 51.5, -0.1, clearCloudTopTempK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, err := s.Sample(tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("Sample() error = %v", err)
			}
			if sample.CloudTopTempK != tt.expected {
				t.Errorf("CloudTopTempK = %f, want %f", sample.CloudTopTempK, tt.expected)
			}
		})
	}
}
