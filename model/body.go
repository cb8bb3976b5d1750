package model

import (
	"fmt"
	"strings"
)

// BodyClass identifies which mass–radius relation describes a body.
type BodyClass string

const (
	BodyMainSequenceStar BodyClass = "main_sequence_star"
	BodyWhiteDwarf       BodyClass = "white_dwarf"
	BodyNeutronStar      BodyClass = "neutron_star"
	BodyBrownDwarf       BodyClass = "brown_dwarf"
	BodyBlackHole        BodyClass = "black_hole"
	BodyRockyPlanet      BodyClass = "rocky_planet"
	BodyGasGiant         BodyClass = "gas_giant"
	BodyIceGiant         BodyClass = "ice_giant"
	BodyAsteroid         BodyClass = "asteroid"
)

var bodyClasses = []BodyClass{
	BodyMainSequenceStar,
	BodyWhiteDwarf,
	BodyNeutronStar,
	BodyBrownDwarf,
	BodyBlackHole,
	BodyRockyPlanet,
	BodyGasGiant,
	BodyIceGiant,
	BodyAsteroid,
}

// BodyClasses returns every known body class in declaration order.
func BodyClasses() []BodyClass {
	return append([]BodyClass(nil), bodyClasses...)
}

// ParseBodyClass maps a free-form tag onto a BodyClass. Matching ignores case
// and treats '-' and ' ' like '_'.
func ParseBodyClass(tag string) (BodyClass, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, c := range bodyClasses {
		if string(c) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown body class %q", tag)
}

// IsStellar reports whether the class is a star or stellar remnant, whose
// input mass is expressed in solar masses.
func (c BodyClass) IsStellar() bool {
	switch c {
	case BodyMainSequenceStar, BodyWhiteDwarf, BodyNeutronStar, BodyBlackHole:
		return true
	}
	return false
}

// BodyModel is the derived physical description of a single body.
// All quantities are SI. Optional quantities are nil when the relation for
// the class does not define them.
type BodyModel struct {
	Class                BodyClass
	MassKg               float64
	RadiusM              float64
	DensityKgM3          *float64
	EscapeVelocityMS     *float64
	SurfaceGravityMS2    *float64
	LuminosityW          *float64
	EffectiveTemperature *float64 // kelvin
}
