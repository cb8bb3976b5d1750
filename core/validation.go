package core

import "math"

const (
	degToRadFactor = math.Pi / 180.0
	radToDegFactor = 180.0 / math.Pi
)

func degToRad(deg float64) float64 { return deg * degToRadFactor }

func radToDeg(rad float64) float64 { return rad * radToDegFactor }

// finite reports whether every value is neither NaN nor infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// positive reports whether every value is finite and strictly greater than zero.
func positive(vals ...float64) bool {
	for _, v := range vals {
		if !finite(v) || v <= 0 {
			return false
		}
	}
	return true
}

func validRA(ra float64) bool { return finite(ra) && ra >= 0 && ra < 360 }

func validDec(dec float64) bool { return finite(dec) && dec >= -90 && dec <= 90 }

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	// math.Mod of a tiny negative angle can round back up to exactly 360.
	if angle >= 360.0 {
		angle = 0
	}
	return angle
}

// normalizeRadians wraps an angle into [0, 2π).
func normalizeRadians(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 { return &v }
