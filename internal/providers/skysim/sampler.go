package skysim

import (
	"log/slog"
	"math"
	"math/rand"
)

const (
	attenuationMin = 0.05
	attenuationMax = 0.7

	visibilityMinKm = 25.0
	visibilityMaxKm = 60.0

	// Clear-sky CTBT vs the value inside the simulated storm cell.
	clearCloudTopTempK = 273.0
	stormCloudTopTempK = 230.0
)

// Simulated convective storm cell over the southern peninsula.
const (
	stormLatMin = 34.0
	stormLatMax = 36.0
	stormLonMin = 126.0
	stormLonMax = 128.0
)

const seedTag = int64('W')

// Sampler produces deterministic synthetic weather samples. The same
// coordinates always yield the same sample.
type Sampler struct {
	logger *slog.Logger
}

func NewSampler(logger *slog.Logger) *Sampler {
	return &Sampler{
		logger: logger.With("component", "skysim"),
	}
}

// Sample derives a weather observation from the coordinates. A synthetic
// weather front sin(lat/10)+cos(lon/10) drives cloud attenuation; the
// remaining fields come from a coordinate-seeded RNG.
func (s *Sampler) Sample(latitude, longitude float64) (*Sample, error) {
	rng := rand.New(rand.NewSource(pointSeed(latitude, longitude) ^ seedTag))

	front := (math.Sin(latitude/10) + math.Cos(longitude/10)) / 2 // [-1,1]
	attenuation := attenuationMin + (front+1)/2*(attenuationMax-attenuationMin)

	cloudTopTemp := clearCloudTopTempK
	if latitude > stormLatMin && latitude < stormLatMax &&
		longitude > stormLonMin && longitude < stormLonMax {
		cloudTopTemp = stormCloudTopTempK
	}

	sample := &Sample{
		CloudAttenuation: attenuation,
		VisibilityKm:     visibilityMinKm + rng.Float64()*(visibilityMaxKm-visibilityMinKm),
		CloudTopTempK:    cloudTopTemp,
	}

	s.logger.Debug("sampled weather",
		"latitude", latitude,
		"longitude", longitude,
		"cloud_attenuation", sample.CloudAttenuation,
		"visibility_km", sample.VisibilityKm,
		"cloud_top_temp_k", sample.CloudTopTempK,
	)

	return sample, nil
}

// pointSeed collapses coordinates to an RNG seed at roughly 100 m
// resolution, so nearby clicks resolve to the same conditions.
func pointSeed(latitude, longitude float64) int64 {
	return int64(latitude*1000) + int64(longitude*1000)
}
