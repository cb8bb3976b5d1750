package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Physical constants in SI units unless noted.
const (
	SpeedOfLight          = 299792458.0    // m/s
	GravitationalConstant = 6.67430e-11    // m^3 kg^-1 s^-2
	StefanBoltzmann       = 5.670374419e-8 // W m^-2 K^-4
	AstronomicalUnit      = 1.495978707e11 // m

	// Parsec follows from the AU and the one-arcsecond small-angle definition.
	Parsec     = AstronomicalUnit * 648000 / math.Pi
	Kiloparsec = 1e3 * Parsec
	Megaparsec = 1e6 * Parsec

	SecondsPerDay = 86400.0
	JulianYear    = 365.25 * SecondsPerDay
	LightYear     = SpeedOfLight * JulianYear

	SolarMass       = 1.98847e30 // kg
	SolarRadius     = 6.957e8    // m
	SolarLuminosity = 3.828e26   // W
	EarthMass       = 5.9722e24  // kg
	EarthRadius     = 6.371e6    // m
	JupiterMass     = 1.89813e27 // kg
	JupiterRadius   = 7.1492e7   // m

	ChandrasekharMass = 1.44 * SolarMass

	// HubbleConstant is the reference cosmology's H0 in km/s/Mpc.
	HubbleConstant = 70.0

	// J2000 is the Julian date of the J2000.0 epoch.
	J2000 = 2451545.0
)

// constants is the registry behind Constant. It is filled at package
// initialisation and only read afterwards.
var constants = map[string]float64{
	"speed_of_light":         SpeedOfLight,
	"gravitational_constant": GravitationalConstant,
	"stefan_boltzmann":       StefanBoltzmann,
	"astronomical_unit":      AstronomicalUnit,
	"parsec":                 Parsec,
	"light_year":             LightYear,
	"solar_mass":             SolarMass,
	"solar_radius":           SolarRadius,
	"solar_luminosity":       SolarLuminosity,
	"earth_mass":             EarthMass,
	"earth_radius":           EarthRadius,
	"jupiter_mass":           JupiterMass,
	"jupiter_radius":         JupiterRadius,
	"julian_year":            JulianYear,
	"chandrasekhar_mass":     ChandrasekharMass,
	"hubble_constant":        HubbleConstant,
}

// Constant returns the named physical constant. Lookup ignores case.
func Constant(name string) (float64, error) {
	v, ok := constants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConstant, name)
	}
	return v, nil
}

// ConstantNames lists the registry's names in sorted order.
func ConstantNames() []string {
	names := make([]string, 0, len(constants))
	for n := range constants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
