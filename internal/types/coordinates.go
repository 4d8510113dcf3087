package types

import "fmt"

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// String renders the coordinates the way the map UI labels them.
func (c Coords) String() string {
	return fmt.Sprintf("Lat: %.4f, Lon: %.4f", c.Latitude, c.Longitude)
}
