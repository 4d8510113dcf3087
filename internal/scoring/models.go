package scoring

import (
	"fmt"
	"lri-engine/internal/types"
)

// Grade is the categorical landing-risk verdict, ordered by increasing
// risk.
type Grade int

const (
	GradeVeryGood Grade = 0
	GradeWarning  Grade = 1
	GradeSevere   Grade = 2
	GradeHardStop Grade = 3
)

var gradeNames = map[Grade]string{
	GradeVeryGood: "Very Good",
	GradeWarning:  "Warning",
	GradeSevere:   "Severe",
	GradeHardStop: "Hard Stop",
}

func (g Grade) String() string {
	if name, ok := gradeNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(g))
}

// WeatherScore is the weather/visibility sub-score with its supporting
// inputs.
type WeatherScore struct {
	Value                float64 // [0,100]
	CloudAttenuation     float64
	VisibilityKm         float64
	RequiredVisibilityKm float64
	CloudTopTempK        float64
}

// NavigationScore is the navigation-integrity sub-score with its
// supporting inputs.
type NavigationScore struct {
	Value     float64 // [0,100]
	HPLMeters float64
	VPLMeters float64
	HALMeters float64 // horizontal alert limit in effect
	VALMeters float64 // vertical alert limit in effect
}

// TerrainScore is the terrain sub-score with its supporting inputs.
type TerrainScore struct {
	Value                 float64 // [0,100], normalized by the terrain weight
	ComplexityRatio       float64
	NegativeOCHRatio      float64
	BackscatterAnomalyDB  float64
	ConvectiveCorePercent int
}

// Assessment is the complete landing-risk result for one request.
type Assessment struct {
	Coordinates types.Coords
	Aircraft    types.AircraftSelection
	LRI         float64 // final index, [0,100], rounded to 2 decimals
	Grade       Grade
	HardStop    bool
	WithinFIR   bool
	Weather     WeatherScore
	Navigation  NavigationScore
	Terrain     TerrainScore
	Evidence    []string
}
