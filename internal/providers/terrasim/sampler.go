package terrasim

import (
	"log/slog"
	"math/rand"
)

// East of this meridian the simulated peninsula turns mountainous
// (Taebaek range stand-in); west of it lie the coastal plains.
const mountainLonThreshold = 128.5

const (
	mountainComplexityMin = 0.1
	mountainComplexityMax = 0.3
	mountainOCHRatioMin   = 0.05
	mountainOCHRatioMax   = 0.1

	plainsComplexityMin = 0.01
	plainsComplexityMax = 0.05
	plainsOCHRatioMax   = 0.01

	backscatterMaxDB = 4.0
)

var corePercentChoices = []int{5, 30, 40}

const seedTag = int64('T')

// Sampler produces deterministic synthetic terrain samples. The same
// coordinates always yield the same sample.
type Sampler struct {
	logger *slog.Logger
}

func NewSampler(logger *slog.Logger) *Sampler {
	return &Sampler{
		logger: logger.With("component", "terrasim"),
	}
}

// Sample derives a terrain observation from the coordinates.
func (s *Sampler) Sample(latitude, longitude float64) (*Sample, error) {
	rng := rand.New(rand.NewSource(pointSeed(latitude, longitude) ^ seedTag))

	var sample Sample
	if longitude > mountainLonThreshold {
		sample.ComplexityRatio = uniform(rng, mountainComplexityMin, mountainComplexityMax)
		sample.NegativeOCHRatio = uniform(rng, mountainOCHRatioMin, mountainOCHRatioMax)
	} else {
		sample.ComplexityRatio = uniform(rng, plainsComplexityMin, plainsComplexityMax)
		sample.NegativeOCHRatio = uniform(rng, 0, plainsOCHRatioMax)
	}

	sample.BackscatterAnomalyDB = uniform(rng, 0, backscatterMaxDB)
	sample.ConvectiveCorePercent = corePercentChoices[rng.Intn(len(corePercentChoices))]

	s.logger.Debug("sampled terrain",
		"latitude", latitude,
		"longitude", longitude,
		"complexity_ratio", sample.ComplexityRatio,
		"negative_och_ratio", sample.NegativeOCHRatio,
		"backscatter_anomaly_db", sample.BackscatterAnomalyDB,
		"convective_core_percent", sample.ConvectiveCorePercent,
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
