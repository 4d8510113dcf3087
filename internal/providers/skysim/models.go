package skysim

// Sample holds the synthetic weather observation for a point. It stands
// in for the COMS/GK-2A IR channel products a production system would
// ingest.
type Sample struct {
	CloudAttenuation float64 // alpha_cloud, fraction of signal lost to cloud [0,1]
	VisibilityKm     float64 // slant visibility at the landing point
	CloudTopTempK    float64 // cloud-top brightness temperature (CTBT)
}
