package types

import (
	"fmt"
	"strings"
)

// AircraftType identifies the takeoff/landing capability of the aircraft.
type AircraftType int

const (
	AircraftTypeUnknown AircraftType = iota
	AircraftTypeCTOL
	AircraftTypeSTOL
	AircraftTypeVTOL
	AircraftTypeECTOL
	AircraftTypeESTOL
	AircraftTypeEVTOL
)

var aircraftTypeNames = map[AircraftType]string{
	AircraftTypeCTOL:  "CTOL",
	AircraftTypeSTOL:  "STOL",
	AircraftTypeVTOL:  "VTOL",
	AircraftTypeECTOL: "eCTOL",
	AircraftTypeESTOL: "eSTOL",
	AircraftTypeEVTOL: "eVTOL",
}

func (t AircraftType) String() string {
	if name, ok := aircraftTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(t))
}

// ParseAircraftType normalizes aircraft type strings from the UI.
// Matching is case-insensitive and tolerant of stray whitespace and
// hyphens ("e-VTOL" and "evtol" both parse).
func ParseAircraftType(s string) AircraftType {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "ctol":
		return AircraftTypeCTOL
	case "stol":
		return AircraftTypeSTOL
	case "vtol":
		return AircraftTypeVTOL
	case "ectol":
		return AircraftTypeECTOL
	case "estol":
		return AircraftTypeESTOL
	case "evtol":
		return AircraftTypeEVTOL
	default:
		return AircraftTypeUnknown
	}
}

// VisibilityFactor scales the required slant visibility for the landing
// approach. Vertical-capable aircraft can accept a shorter visual
// segment than a conventional runway approach.
func (t AircraftType) VisibilityFactor() float64 {
	switch t {
	case AircraftTypeVTOL, AircraftTypeEVTOL:
		return 0.6
	case AircraftTypeSTOL, AircraftTypeESTOL:
		return 0.8
	default:
		return 1.0
	}
}

// AircraftClass distinguishes fixed-wing from rotary-wing airframes.
// The navigation alert limits differ per class.
type AircraftClass int

const (
	AircraftClassUnknown AircraftClass = iota
	AircraftClassFixedWing
	AircraftClassRotaryWing
)

var aircraftClassNames = map[AircraftClass]string{
	AircraftClassFixedWing:  "fixed-wing",
	AircraftClassRotaryWing: "rotary-wing",
}

func (c AircraftClass) String() string {
	if name, ok := aircraftClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(c))
}

// ParseAircraftClass normalizes aircraft class strings from the UI.
func ParseAircraftClass(s string) AircraftClass {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "fixedwing":
		return AircraftClassFixedWing
	case "rotarywing":
		return AircraftClassRotaryWing
	default:
		return AircraftClassUnknown
	}
}

// AircraftSelection pairs the type and class selected in the UI.
type AircraftSelection struct {
	Type  AircraftType
	Class AircraftClass
}

func NewAircraftSelection(aircraftType AircraftType, aircraftClass AircraftClass) AircraftSelection {
	return AircraftSelection{
		Type:  aircraftType,
		Class: aircraftClass,
	}
}
