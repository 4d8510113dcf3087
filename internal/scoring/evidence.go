package scoring

import "fmt"

// buildEvidence renders the human-readable justification lines shown
// under the verdict in the UI, one per sub-score.
func buildEvidence(a *Assessment) []string {
	return []string{
		fmt.Sprintf("Weather (W: %.2f): cloud attenuation %.2f applied, visibility %.1f km against %.1f km required.",
			a.Weather.Value, a.Weather.CloudAttenuation, a.Weather.VisibilityKm, a.Weather.RequiredVisibilityKm),
		fmt.Sprintf("Navigation (N: %.2f): HPL=%.1f m, VPL=%.1f m against alert limits %.0f/%.0f m.",
			a.Navigation.Value, a.Navigation.HPLMeters, a.Navigation.VPLMeters,
			a.Navigation.HALMeters, a.Navigation.VALMeters),
		fmt.Sprintf("Terrain (T: %.2f): complexity ratio %.2f and negative-OCH ratio %.2f reflected.",
			a.Terrain.Value, a.Terrain.ComplexityRatio, a.Terrain.NegativeOCHRatio),
	}
}
