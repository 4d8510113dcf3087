package terrasim

// Sample holds the synthetic terrain observation for a point. It stands
// in for the SAR backscatter and obstacle-clearance products a
// production system would derive from DEM data.
type Sample struct {
	ComplexityRatio       float64 // alpha_terrain, terrain complexity [0,1]
	NegativeOCHRatio      float64 // share of approach cells with obstacle clearance height below zero
	BackscatterAnomalyDB  float64 // SAR sigma-0 deviation from the reference scene
	ConvectiveCorePercent int     // portion of the scene flagged as convective core
}
