package core

import (
	"math"

	"github.com/signalsfoundry/astro-kernel/model"
)

// OrbitInput is the raw element set accepted by MakeOrbit. Lengths are in
// metres, masses in kilograms, angles in degrees and the epoch is a Julian date.
type OrbitInput struct {
	SemiMajorAxisM            float64
	Eccentricity              float64
	InclinationDeg            float64
	LongitudeAscendingNodeDeg float64
	ArgumentOfPeriapsisDeg    float64
	MeanAnomalyDeg            float64
	EpochJD                   float64
	CentralMassKg             float64
	Frame                     model.ReferenceFrame
}

// MakeOrbit validates a bound Keplerian orbit and derives its period, mean
// motion and apsides. Node, periapsis and mean anomaly angles are wrapped
// into [0, 360). ok is false for a ≤ 0, e outside [0, 1), M ≤ 0, an
// inclination outside [0, 180], any non-finite value, an empty frame, or
// elements whose derived period or apsides do not fit a float64.
func MakeOrbit(in OrbitInput) (model.OrbitalElements, bool) {
	if !positive(in.SemiMajorAxisM, in.CentralMassKg) {
		return model.OrbitalElements{}, false
	}
	if !finite(in.Eccentricity) || in.Eccentricity < 0 || in.Eccentricity >= 1 {
		return model.OrbitalElements{}, false
	}
	if !finite(in.InclinationDeg) || in.InclinationDeg < 0 || in.InclinationDeg > 180 {
		return model.OrbitalElements{}, false
	}
	if !finite(in.LongitudeAscendingNodeDeg, in.ArgumentOfPeriapsisDeg, in.MeanAnomalyDeg, in.EpochJD) {
		return model.OrbitalElements{}, false
	}
	if in.Frame == "" {
		return model.OrbitalElements{}, false
	}

	period, ok := OrbitPeriod(in.SemiMajorAxisM, in.CentralMassKg)
	if !ok {
		return model.OrbitalElements{}, false
	}
	meanMotion, ok := OrbitMeanMotion(in.SemiMajorAxisM, in.CentralMassKg)
	if !ok {
		return model.OrbitalElements{}, false
	}
	periapsis := in.SemiMajorAxisM * (1 - in.Eccentricity)
	apoapsis := in.SemiMajorAxisM * (1 + in.Eccentricity)
	if !finite(apoapsis) {
		return model.OrbitalElements{}, false
	}
	return model.OrbitalElements{
		SemiMajorAxisM:            in.SemiMajorAxisM,
		Eccentricity:              in.Eccentricity,
		InclinationDeg:            in.InclinationDeg,
		LongitudeAscendingNodeDeg: normalizeDegrees(in.LongitudeAscendingNodeDeg),
		ArgumentOfPeriapsisDeg:    normalizeDegrees(in.ArgumentOfPeriapsisDeg),
		MeanAnomalyDeg:            normalizeDegrees(in.MeanAnomalyDeg),
		EpochJD:                   in.EpochJD,
		CentralMassKg:             in.CentralMassKg,
		Frame:                     in.Frame,
		PeriodS:                   period,
		MeanMotionRadS:            meanMotion,
		PeriapsisM:                periapsis,
		ApoapsisM:                 apoapsis,
	}, true
}

// OrbitPeriod returns the Keplerian period in seconds,
// 2π √(a³ / (G M)), for a semi-major axis in metres and a central mass in kg.
// ok is false when the period overflows or underflows to zero.
func OrbitPeriod(semiMajorAxisM, centralMassKg float64) (float64, bool) {
	if !positive(semiMajorAxisM, centralMassKg) {
		return 0, false
	}
	a3 := semiMajorAxisM * semiMajorAxisM * semiMajorAxisM
	period := 2 * math.Pi * math.Sqrt(a3/(GravitationalConstant*centralMassKg))
	if !positive(period) {
		return 0, false
	}
	return period, true
}

// OrbitMeanMotion returns 2π / period in radians per second.
func OrbitMeanMotion(semiMajorAxisM, centralMassKg float64) (float64, bool) {
	p, ok := OrbitPeriod(semiMajorAxisM, centralMassKg)
	if !ok {
		return 0, false
	}
	n := 2 * math.Pi / p
	if !finite(n) {
		return 0, false
	}
	return n, true
}

// MeanAnomalyAt advances a mean anomaly from its epoch to jd (both Julian
// dates) at the orbit's mean motion. The result is in degrees, in [0, 360).
func MeanAnomalyAt(meanAnomalyDeg, epochJD, semiMajorAxisM, centralMassKg, jd float64) (float64, bool) {
	if !finite(meanAnomalyDeg, epochJD, jd) {
		return 0, false
	}
	n, ok := OrbitMeanMotion(semiMajorAxisM, centralMassKg)
	if !ok {
		return 0, false
	}
	dt := (jd - epochJD) * SecondsPerDay
	m := normalizeRadians(degToRad(meanAnomalyDeg) + n*dt)
	return normalizeDegrees(radToDeg(m)), true
}
