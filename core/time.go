package core

import (
	satellite "github.com/joshuaferrara/go-satellite"
)

// JulianDate returns the Julian date of a UTC calendar instant. ok is false
// for out-of-range calendar fields.
func JulianDate(year, month, day, hour, minute, second int) (float64, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return 0, false
	}
	return satellite.JDay(year, month, day, hour, minute, second), true
}

// GreenwichSiderealAngle returns the Greenwich mean sidereal angle, in degrees
// within [0, 360), for a UT1 Julian date.
func GreenwichSiderealAngle(jd float64) (float64, bool) {
	if !finite(jd) {
		return 0, false
	}
	return normalizeDegrees(radToDeg(satellite.ThetaG_JD(jd))), true
}

// JulianEpochYear converts a Julian date to a Julian epoch year (J2000.0 = 2000.0).
func JulianEpochYear(jd float64) (float64, bool) {
	if !finite(jd) {
		return 0, false
	}
	return 2000.0 + (jd-J2000)/365.25, true
}
