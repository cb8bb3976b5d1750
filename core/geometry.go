package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/astro-kernel/model"
)

// Vec3 is a rectangular vector in whatever linear unit the caller uses.
type Vec3 struct {
	X, Y, Z float64
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	return v.Sub(other).Norm()
}

// Norm returns the Euclidean norm of the vector. Components are scaled
// through math.Hypot so very small or very large vectors keep their length.
func (v Vec3) Norm() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Point converts the vector to the model's Cartesian point.
func (v Vec3) Point() model.CartesianPoint {
	return model.CartesianPoint{X: v.X, Y: v.Y, Z: v.Z}
}

// AngularSeparation returns the great-circle angle between two sky positions,
// in degrees. It uses the haversine form, which stays accurate for small
// separations. ok is false when any input is non-finite or out of range.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) (deg float64, ok bool) {
	if !validRA(ra1) || !validDec(dec1) || !validRA(ra2) || !validDec(dec2) {
		return 0, false
	}

	phi1 := degToRad(dec1)
	phi2 := degToRad(dec2)
	dra := degToRad(ra2 - ra1)
	ddec := phi2 - phi1

	sinDDec := math.Sin(ddec / 2)
	sinDRA := math.Sin(dra / 2)
	a := sinDDec*sinDDec + math.Cos(phi1)*math.Cos(phi2)*sinDRA*sinDRA
	a = clamp(a, 0, 1)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radToDeg(c), true
}

// ToCartesian converts RA/Dec (degrees) and a radial distance to a
// rectangular position with the distance as radius.
func ToCartesian(ra, dec, distance float64) (Vec3, bool) {
	if !validRA(ra) || !validDec(dec) || !finite(distance) || distance < 0 {
		return Vec3{}, false
	}
	alpha := degToRad(ra)
	delta := degToRad(dec)
	cosDec := math.Cos(delta)
	return Vec3{
		X: distance * cosDec * math.Cos(alpha),
		Y: distance * cosDec * math.Sin(alpha),
		Z: distance * math.Sin(delta),
	}, true
}

// SphericalPosition is the inverse of ToCartesian. Angular is false at the
// origin, where RA and Dec are undefined.
type SphericalPosition struct {
	RADeg    float64
	DecDeg   float64
	Distance float64
	Angular  bool
}

// ToSpherical converts a rectangular position back to RA/Dec/distance.
// ok is false for non-finite components and for positions whose distance
// overflows a float64.
func ToSpherical(v Vec3) (SphericalPosition, bool) {
	if !finite(v.X, v.Y, v.Z) {
		return SphericalPosition{}, false
	}
	r := v.Norm()
	if !finite(r) {
		return SphericalPosition{}, false
	}
	if r == 0 {
		return SphericalPosition{}, true
	}
	ra := normalizeDegrees(radToDeg(math.Atan2(v.Y, v.X)))
	dec := radToDeg(math.Atan2(v.Z, math.Hypot(v.X, v.Y)))
	return SphericalPosition{RADeg: ra, DecDeg: dec, Distance: r, Angular: true}, true
}

// CelestialPointWKT renders the Cartesian position of a sky object as a
// well-known-text 3D point with eight decimals per axis.
func CelestialPointWKT(ra, dec, distance float64) (string, bool) {
	v, ok := ToCartesian(ra, dec, distance)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("POINT Z(%.8f %.8f %.8f)", v.X, v.Y, v.Z), true
}

// ParallaxToDistance converts an annual parallax in milliarcseconds to a
// distance in parsecs.
func ParallaxToDistance(parallaxMas float64) (float64, bool) {
	if !positive(parallaxMas) {
		return 0, false
	}
	return 1000.0 / parallaxMas, true
}
