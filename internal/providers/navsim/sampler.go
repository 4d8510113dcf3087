package navsim

import (
	"log/slog"
	"math/rand"
)

// Roll boundaries for the navigation integrity bands.
const (
	hardStopChance = 0.05 // both protection limits exceed the alert limits
	degradedChance = 0.25 // cumulative: degraded but inside the limits
)

const seedTag = int64('N')

// Sampler produces deterministic synthetic HPL/VPL observations. The
// same coordinates always yield the same sample.
type Sampler struct {
	logger *slog.Logger
}

func NewSampler(logger *slog.Logger) *Sampler {
	return &Sampler{
		logger: logger.With("component", "navsim"),
	}
}

// Sample draws protection limits for the point relative to the supplied
// alert limits: 5% of locations exceed both limits, the next 20% sit
// degraded just inside them, the rest are nominal.
func (s *Sampler) Sample(latitude, longitude, horizontalAlertM, verticalAlertM float64) (*Sample, error) {
	rng := rand.New(rand.NewSource(pointSeed(latitude, longitude) ^ seedTag))

	var sample Sample
	roll := rng.Float64()
	switch {
	case roll < hardStopChance:
		sample.HPLMeters = horizontalAlertM + uniform(rng, 1, 15)
		sample.VPLMeters = verticalAlertM + uniform(rng, 1, 10)
	case roll < degradedChance:
		sample.HPLMeters = horizontalAlertM - uniform(rng, 10, 20)
		sample.VPLMeters = verticalAlertM - uniform(rng, 10, 20)
	default:
		sample.HPLMeters = uniform(rng, 10, horizontalAlertM-5)
		sample.VPLMeters = uniform(rng, 10, verticalAlertM-5)
	}

	s.logger.Debug("sampled navigation integrity",
		"latitude", latitude,
		"longitude", longitude,
		"hpl_m", sample.HPLMeters,
		"vpl_m", sample.VPLMeters,
	)

	return &sample, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pointSeed collapses coordinates to an RNG seed at roughly 100 m
// resolution, so nearby clicks resolve to the same conditions.
func pointSeed(latitude, longitude float64) int64 {
	return int64(latitude*1000) + int64(longitude*1000)
}
