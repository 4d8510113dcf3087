package scoring

import (
	"lri-engine/internal/config"
	"lri-engine/internal/providers/navsim"
	"lri-engine/internal/providers/skysim"
	"lri-engine/internal/providers/terrasim"
	"math"
)

// The model equations below follow the LRI prototype formulation:
//
//	W   = 100 * min(1, p/p_req) * (1 - α_cloud)
//	N   = 100 - (50*max(0, (HPL-HAL)/20) + 50*max(0, (VPL-VAL)/20))
//	T   = 100 * w_T * (1 - α_terrain) - 40 * r_OCH<0
//	LRI = 100 / (w_W/W + w_N/N + w_T/T')   with T' = T/w_T
//
// Reported sub-score values are clamped to [0,100]. Inside the harmonic
// mean the terrain term is floored at the configured minimum (T can go
// negative) and the other terms at a small epsilon, so the index is
// total over the whole input domain and stays within [0,100].

// protectionLimitSlope spreads one alert-limit exceedance over 20 m.
const protectionLimitSlope = 20.0

// negativeOCHPenalty is the per-unit penalty for approach cells with
// obstacle clearance height below zero.
const negativeOCHPenalty = 40.0

func weatherScore(sample *skysim.Sample, requiredVisibilityKm float64) WeatherScore {
	visibilityRatio := sample.VisibilityKm / requiredVisibilityKm
	if visibilityRatio > 1 {
		visibilityRatio = 1
	}
	raw := 100 * visibilityRatio * (1 - sample.CloudAttenuation)

	return WeatherScore{
		Value:                clamp(raw, 0, 100),
		CloudAttenuation:     sample.CloudAttenuation,
		VisibilityKm:         sample.VisibilityKm,
		RequiredVisibilityKm: requiredVisibilityKm,
		CloudTopTempK:        sample.CloudTopTempK,
	}
}

func navigationScore(sample *navsim.Sample, limits config.ClassLimits) NavigationScore {
	horizontalPenalty := 50 * math.Max(0, (sample.HPLMeters-limits.HorizontalMeters)/protectionLimitSlope)
	verticalPenalty := 50 * math.Max(0, (sample.VPLMeters-limits.VerticalMeters)/protectionLimitSlope)
	raw := 100 - (horizontalPenalty + verticalPenalty)

	return NavigationScore{
		Value:     clamp(raw, 0, 100),
		HPLMeters: sample.HPLMeters,
		VPLMeters: sample.VPLMeters,
		HALMeters: limits.HorizontalMeters,
		VALMeters: limits.VerticalMeters,
	}
}

func terrainScore(sample *terrasim.Sample, terrainWeight float64) TerrainScore {
	raw := 100*terrainWeight*(1-sample.ComplexityRatio) - negativeOCHPenalty*sample.NegativeOCHRatio

	normalized := 0.0
	if terrainWeight != 0 {
		normalized = raw / terrainWeight
	}

	return TerrainScore{
		Value:                 clamp(normalized, 0, 100),
		ComplexityRatio:       sample.ComplexityRatio,
		NegativeOCHRatio:      sample.NegativeOCHRatio,
		BackscatterAnomalyDB:  sample.BackscatterAnomalyDB,
		ConvectiveCorePercent: sample.ConvectiveCorePercent,
	}
}

// minScoreEpsilon keeps the weather and navigation terms away from a
// division by zero without distorting realistic values.
const minScoreEpsilon = 0.01

// combine folds the three sub-scores into the final index via a weighted
// harmonic mean, which lets any single weak sub-score dominate.
func combine(weather, navigation, terrain float64, weights config.Weights, minTerrainScore float64) float64 {
	w := math.Max(minScoreEpsilon, weather)
	n := math.Max(minScoreEpsilon, navigation)
	t := math.Max(minTerrainScore, terrain)

	lri := 100 / (weights.Weather/w + weights.Navigation/n + weights.Terrain/t)
	if lri > 100 {
		lri = 100
	}
	return math.Round(lri*100) / 100
}

// isHardStop checks the unsafe limits that terminate grading outright:
// deep convection over the point, both protection limits above their
// alert limits, or a strong backscatter anomaly inside a convective
// core. Requiring both protection limits avoids single-parameter false
// positives.
func isHardStop(
	weather *skysim.Sample,
	navigation *navsim.Sample,
	terrain *terrasim.Sample,
	limits config.ClassLimits,
	hs config.HardStopConfig,
) bool {
	if weather.CloudTopTempK < hs.CloudTopTempFloorK {
		return true
	}
	if navigation.HPLMeters > limits.HorizontalMeters && navigation.VPLMeters > limits.VerticalMeters {
		return true
	}
	if terrain.BackscatterAnomalyDB > hs.BackscatterAnomalyDB &&
		terrain.ConvectiveCorePercent >= hs.ConvectiveCorePercent {
		return true
	}
	return false
}

func gradeFor(lri float64, hardStop bool, thresholds config.Thresholds) Grade {
	switch {
	case hardStop:
		return GradeHardStop
	case lri < thresholds.Severe:
		return GradeSevere
	case lri < thresholds.Warning:
		return GradeWarning
	default:
		return GradeVeryGood
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
