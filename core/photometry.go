package core

import "math"

// MagToFlux converts a magnitude to a flux relative to the zero point:
// 10^(-0.4 (m - zp)). The flux is positive for every finite input.
func MagToFlux(magnitude, zeroPoint float64) (float64, bool) {
	if !finite(magnitude, zeroPoint) {
		return 0, false
	}
	return math.Pow(10, -0.4*(magnitude-zeroPoint)), true
}

// FluxToMag is the inverse of MagToFlux. Non-positive fluxes have no magnitude.
func FluxToMag(flux, zeroPoint float64) (float64, bool) {
	if !positive(flux) || !finite(zeroPoint) {
		return 0, false
	}
	return zeroPoint - 2.5*math.Log10(flux), true
}

// DistanceModulus returns 5 log10(d) - 5 for a distance in parsecs.
func DistanceModulus(distancePc float64) (float64, bool) {
	if !positive(distancePc) {
		return 0, false
	}
	return 5*math.Log10(distancePc) - 5, true
}

// AbsoluteMag converts an apparent magnitude to an absolute magnitude given
// the distance in parsecs.
func AbsoluteMag(apparentMag, distancePc float64) (float64, bool) {
	mu, ok := DistanceModulus(distancePc)
	if !ok || !finite(apparentMag) {
		return 0, false
	}
	return apparentMag - mu, true
}

// ApparentMag converts an absolute magnitude to the apparent magnitude seen
// from the given distance in parsecs.
func ApparentMag(absoluteMag, distancePc float64) (float64, bool) {
	mu, ok := DistanceModulus(distancePc)
	if !ok || !finite(absoluteMag) {
		return 0, false
	}
	return absoluteMag + mu, true
}
