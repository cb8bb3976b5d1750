package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/astro-kernel/model"
)

func earthOrbit() OrbitInput {
	return OrbitInput{
		SemiMajorAxisM:            AstronomicalUnit,
		Eccentricity:              0.0167,
		InclinationDeg:            0.00005,
		LongitudeAscendingNodeDeg: -11.26064,
		ArgumentOfPeriapsisDeg:    114.20783,
		MeanAnomalyDeg:            358.617,
		EpochJD:                   J2000,
		CentralMassKg:             SolarMass,
		Frame:                     model.FrameEclipticJ2000,
	}
}

func TestOrbitPeriodSiderealYear(t *testing.T) {
	p, ok := OrbitPeriod(1.496e11, 1.989e30)
	if !ok {
		t.Fatalf("OrbitPeriod missing")
	}
	if relErr(p, 3.156e7) > 0.005 {
		t.Fatalf("OrbitPeriod = %g s, want ≈3.156e7", p)
	}
	n, _ := OrbitMeanMotion(1.496e11, 1.989e30)
	if relErr(n*p, 2*math.Pi) > 1e-12 {
		t.Fatalf("mean motion × period = %g, want 2π", n*p)
	}
}

func TestOrbitPeriodRejectsNonPositive(t *testing.T) {
	for _, in := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {1, math.NaN()}} {
		if _, ok := OrbitPeriod(in[0], in[1]); ok {
			t.Fatalf("OrbitPeriod(%v) should be missing", in)
		}
		if _, ok := OrbitMeanMotion(in[0], in[1]); ok {
			t.Fatalf("OrbitMeanMotion(%v) should be missing", in)
		}
	}
}

func TestMakeOrbitDerivesQuantities(t *testing.T) {
	o, ok := MakeOrbit(earthOrbit())
	if !ok {
		t.Fatalf("MakeOrbit rejected Earth's orbit")
	}
	if math.Abs(o.LongitudeAscendingNodeDeg-348.73936) > 1e-9 {
		t.Fatalf("node = %g, want wrapped to 348.73936", o.LongitudeAscendingNodeDeg)
	}
	p, _ := OrbitPeriod(AstronomicalUnit, SolarMass)
	if o.PeriodS != p {
		t.Fatalf("PeriodS = %g, want %g", o.PeriodS, p)
	}
	if relErr(o.MeanMotionRadS, 2*math.Pi/p) > 1e-15 {
		t.Fatalf("MeanMotionRadS = %g", o.MeanMotionRadS)
	}
	if relErr(o.PeriapsisM+o.ApoapsisM, 2*AstronomicalUnit) > 1e-15 {
		t.Fatalf("apsides do not sum to 2a")
	}
}

func TestMakeOrbitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OrbitInput)
	}{
		{"parabolic", func(in *OrbitInput) { in.Eccentricity = 1 }},
		{"negative eccentricity", func(in *OrbitInput) { in.Eccentricity = -0.1 }},
		{"zero axis", func(in *OrbitInput) { in.SemiMajorAxisM = 0 }},
		{"negative mass", func(in *OrbitInput) { in.CentralMassKg = -1 }},
		{"inclination", func(in *OrbitInput) { in.InclinationDeg = 181 }},
		{"nan anomaly", func(in *OrbitInput) { in.MeanAnomalyDeg = math.NaN() }},
		{"no frame", func(in *OrbitInput) { in.Frame = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := earthOrbit()
			tt.mutate(&in)
			if _, ok := MakeOrbit(in); ok {
				t.Fatalf("expected missing orbit")
			}
		})
	}
}

func TestMeanAnomalyAtOnePeriod(t *testing.T) {
	p, _ := OrbitPeriod(AstronomicalUnit, SolarMass)
	later := J2000 + p/SecondsPerDay
	m, ok := MeanAnomalyAt(10, J2000, AstronomicalUnit, SolarMass, later)
	if !ok {
		t.Fatalf("MeanAnomalyAt missing")
	}
	if math.Abs(m-10) > 1e-6 {
		t.Fatalf("after one period M = %g, want 10", m)
	}
	half, _ := MeanAnomalyAt(10, J2000, AstronomicalUnit, SolarMass, J2000+p/SecondsPerDay/2)
	if math.Abs(half-190) > 1e-6 {
		t.Fatalf("after half a period M = %g, want 190", half)
	}
}

func TestJulianDateAndSiderealAngle(t *testing.T) {
	jd, ok := JulianDate(2000, 1, 1, 12, 0, 0)
	if !ok || math.Abs(jd-J2000) > 1e-9 {
		t.Fatalf("JulianDate(J2000) = %f ok=%v", jd, ok)
	}
	if _, ok := JulianDate(2000, 13, 1, 0, 0, 0); ok {
		t.Fatalf("month 13 should be missing")
	}
	gmst, ok := GreenwichSiderealAngle(J2000)
	if !ok || math.Abs(gmst-280.4606) > 0.01 {
		t.Fatalf("GMST(J2000) = %f, want ≈280.4606", gmst)
	}
	year, _ := JulianEpochYear(J2000 + 365.25)
	if math.Abs(year-2001) > 1e-12 {
		t.Fatalf("JulianEpochYear = %g, want 2001", year)
	}
}

func TestMakeOrbitRejectsNonRepresentablePeriod(t *testing.T) {
	for _, a := range []float64{1e120, 1e-120} {
		in := earthOrbit()
		in.SemiMajorAxisM = a
		if o, ok := MakeOrbit(in); ok {
			t.Fatalf("MakeOrbit(a=%g) = %+v, want missing", a, o)
		}
		if _, ok := OrbitPeriod(a, SolarMass); ok {
			t.Fatalf("OrbitPeriod(%g) should be missing", a)
		}
		if _, ok := OrbitMeanMotion(a, SolarMass); ok {
			t.Fatalf("OrbitMeanMotion(%g) should be missing", a)
		}
	}
}
