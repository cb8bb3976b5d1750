package model

// Default frame labels attached to coordinate outputs.
const (
	CoordinateSystemICRS = "ICRS"
	EpochJ2000           = 2000.0
)

// CelestialCoordinate is an equatorial sky position with optional distance.
// RA is in [0,360) and Dec in [-90,90], both in degrees.
type CelestialCoordinate struct {
	RADeg    float64
	DecDeg   float64
	Distance *float64
}

// CartesianPoint is a rectangular position in the same linear unit as the
// distance used to produce it.
type CartesianPoint struct {
	X float64
	Y float64
	Z float64
}
