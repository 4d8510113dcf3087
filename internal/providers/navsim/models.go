package navsim

// Sample holds the synthetic navigation-integrity observation for a
// point. It stands in for the SBAS/GBAS protection levels a production
// system would compute from RINEX data.
type Sample struct {
	HPLMeters float64 // Horizontal Protection Limit
	VPLMeters float64 // Vertical Protection Limit
}
