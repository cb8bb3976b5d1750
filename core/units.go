package core

import (
	"fmt"
	"strings"
)

// QuantityKind selects the unit family a conversion works in.
type QuantityKind string

const (
	QuantityLength QuantityKind = "length"
	QuantityMass   QuantityKind = "mass"
	QuantityTime   QuantityKind = "time"
)

// ParseQuantityKind maps a case-insensitive tag onto a QuantityKind.
func ParseQuantityKind(tag string) (QuantityKind, error) {
	switch k := QuantityKind(strings.ToLower(strings.TrimSpace(tag))); k {
	case QuantityLength, QuantityMass, QuantityTime:
		return k, nil
	}
	return "", fmt.Errorf("%w: quantity kind %q", ErrUnknownUnit, tag)
}

// unitFactors maps each unit tag to its size in SI base units. Every factor
// is derived from the constants registry.
var unitFactors = map[QuantityKind]map[string]float64{
	QuantityLength: {
		"m":              1,
		"cm":             1e-2,
		"km":             1e3,
		"au":             AstronomicalUnit,
		"pc":             Parsec,
		"kpc":            Kiloparsec,
		"mpc":            Megaparsec,
		"ly":             LightYear,
		"solar_radius":   SolarRadius,
		"earth_radius":   EarthRadius,
		"jupiter_radius": JupiterRadius,
	},
	QuantityMass: {
		"kg":           1,
		"g":            1e-3,
		"solar_mass":   SolarMass,
		"earth_mass":   EarthMass,
		"jupiter_mass": JupiterMass,
	},
	QuantityTime: {
		"s":   1,
		"min": 60,
		"h":   3600,
		"day": SecondsPerDay,
		"yr":  JulianYear,
		"myr": 1e6 * JulianYear,
		"gyr": 1e9 * JulianYear,
	},
}

var unitAliases = map[string]string{
	"meter":      "m",
	"metre":      "m",
	"parsec":     "pc",
	"light_year": "ly",
	"msun":       "solar_mass",
	"mearth":     "earth_mass",
	"mjup":       "jupiter_mass",
	"rsun":       "solar_radius",
	"rearth":     "earth_radius",
	"rjup":       "jupiter_radius",
	"sec":        "s",
	"hr":         "h",
	"d":          "day",
	"year":       "yr",
}

// UnitFactor returns the SI size of one unit of the given kind.
func UnitFactor(unit string, kind QuantityKind) (float64, error) {
	table, ok := unitFactors[kind]
	if !ok {
		return 0, fmt.Errorf("%w: quantity kind %q", ErrUnknownUnit, kind)
	}
	tag := strings.ToLower(strings.TrimSpace(unit))
	if alias, ok := unitAliases[tag]; ok {
		tag = alias
	}
	f, ok := table[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, unit, kind)
	}
	return f, nil
}

// Convert rescales value from one unit to another within the same kind.
func Convert(value float64, from, to string, kind QuantityKind) (float64, error) {
	ff, err := UnitFactor(from, kind)
	if err != nil {
		return 0, err
	}
	tf, err := UnitFactor(to, kind)
	if err != nil {
		return 0, err
	}
	if ff == tf {
		return value, nil
	}
	return value * ff / tf, nil
}
