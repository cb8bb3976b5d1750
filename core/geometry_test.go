package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAngularSeparationKnownPair(t *testing.T) {
	got, ok := AngularSeparation(0, 0, 1, 1)
	if !ok {
		t.Fatalf("AngularSeparation(0,0,1,1) reported missing")
	}
	// acos(cos²(1°)) ≈ 1.41418°
	if math.Abs(got-1.41418) > 1e-4 {
		t.Fatalf("AngularSeparation(0,0,1,1) = %.6f, want ≈1.41418", got)
	}
}

func TestAngularSeparationIdentityAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		ra1, dec1 := rng.Float64()*360, rng.Float64()*180-90
		ra2, dec2 := rng.Float64()*360, rng.Float64()*180-90

		self, ok := AngularSeparation(ra1, dec1, ra1, dec1)
		if !ok || math.Abs(self) > 1e-9 {
			t.Fatalf("separation(a,a) = %g ok=%v for (%g,%g)", self, ok, ra1, dec1)
		}

		ab, _ := AngularSeparation(ra1, dec1, ra2, dec2)
		ba, _ := AngularSeparation(ra2, dec2, ra1, dec1)
		if ab != ba {
			t.Fatalf("asymmetric separation: %v vs %v", ab, ba)
		}
		if ab < 0 || ab > 180 {
			t.Fatalf("separation %v outside [0,180]", ab)
		}
	}
}

func TestAngularSeparationRejectsOutOfDomain(t *testing.T) {
	tests := []struct {
		name                 string
		ra1, dec1, ra2, dec2 float64
	}{
		{"nan ra", math.NaN(), 0, 1, 1},
		{"ra 360", 360, 0, 1, 1},
		{"negative ra", -1, 0, 1, 1},
		{"dec above pole", 0, 90.5, 1, 1},
		{"dec below pole", 0, 0, 1, -91},
		{"inf dec", 0, math.Inf(1), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AngularSeparation(tt.ra1, tt.dec1, tt.ra2, tt.dec2); ok {
				t.Fatalf("expected missing result")
			}
		})
	}
}

func TestCartesianSphericalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		ra := rng.Float64() * 359.999
		dec := rng.Float64()*178 - 89
		d := rng.Float64()*1e4 + 1e-3

		v, ok := ToCartesian(ra, dec, d)
		if !ok {
			t.Fatalf("ToCartesian(%g,%g,%g) missing", ra, dec, d)
		}
		s, ok := ToSpherical(v)
		if !ok || !s.Angular {
			t.Fatalf("ToSpherical(%+v) = %+v ok=%v", v, s, ok)
		}
		if relErr(s.RADeg, ra) > 1e-6 && math.Abs(s.RADeg-ra) > 1e-9 {
			t.Fatalf("ra round trip %g -> %g", ra, s.RADeg)
		}
		if relErr(s.DecDeg, dec) > 1e-6 && math.Abs(s.DecDeg-dec) > 1e-9 {
			t.Fatalf("dec round trip %g -> %g", dec, s.DecDeg)
		}
		if relErr(s.Distance, d) > 1e-6 {
			t.Fatalf("distance round trip %g -> %g", d, s.Distance)
		}
	}
}

func TestToSphericalOrigin(t *testing.T) {
	s, ok := ToSpherical(Vec3{})
	if !ok {
		t.Fatalf("origin should be in domain")
	}
	if s.Angular || s.Distance != 0 {
		t.Fatalf("origin = %+v, want undefined angles and zero distance", s)
	}
}

func TestToCartesianRejectsNegativeDistance(t *testing.T) {
	if _, ok := ToCartesian(10, 10, -1); ok {
		t.Fatalf("negative distance should be missing")
	}
	if v, ok := ToCartesian(10, 10, 0); !ok || v.Norm() != 0 {
		t.Fatalf("zero distance = %+v ok=%v, want origin", v, ok)
	}
}

func TestCelestialPointWKT(t *testing.T) {
	got, ok := CelestialPointWKT(0, 0, 1)
	if !ok {
		t.Fatalf("CelestialPointWKT missing")
	}
	if want := "POINT Z(1.00000000 0.00000000 0.00000000)"; got != want {
		t.Fatalf("CelestialPointWKT = %q, want %q", got, want)
	}
	got, _ = CelestialPointWKT(90, 0, 2)
	if want := "POINT Z(0.00000000 2.00000000 0.00000000)"; got != want {
		t.Fatalf("CelestialPointWKT = %q, want %q", got, want)
	}
	if _, ok := CelestialPointWKT(0, 100, 1); ok {
		t.Fatalf("invalid dec should be missing")
	}
}

func TestParallaxToDistance(t *testing.T) {
	d, ok := ParallaxToDistance(100)
	if !ok || math.Abs(d-10) > 1e-12 {
		t.Fatalf("ParallaxToDistance(100) = %g ok=%v, want 10", d, ok)
	}
	if _, ok := ParallaxToDistance(0); ok {
		t.Fatalf("zero parallax should be missing")
	}
}

func TestVec3Helpers(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 2}
	if math.Abs(a.Norm()-3) > 1e-15 {
		t.Fatalf("Norm = %v, want 3", a.Norm())
	}
	if got := a.DistanceTo(Vec3{X: 1, Y: 2, Z: 5}); got != 3 {
		t.Fatalf("DistanceTo = %v, want 3", got)
	}
	if got := a.Dot(Vec3{X: 1, Y: 1, Z: 1}); got != 5 {
		t.Fatalf("Dot = %v, want 5", got)
	}
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestToSphericalExtremeMagnitudes(t *testing.T) {
	s, ok := ToSpherical(Vec3{X: 1e-170})
	if !ok || !s.Angular || s.Distance != 1e-170 || s.RADeg != 0 || s.DecDeg != 0 {
		t.Fatalf("ToSpherical(1e-170,0,0) = %+v ok=%v", s, ok)
	}
	s, ok = ToSpherical(Vec3{X: 1e200, Y: 1e200})
	if !ok || relErr(s.Distance, math.Sqrt2*1e200) > 1e-12 || math.Abs(s.RADeg-45) > 1e-9 {
		t.Fatalf("ToSpherical(1e200,1e200,0) = %+v ok=%v", s, ok)
	}
	if s, ok := ToSpherical(Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}); ok {
		t.Fatalf("overflowing distance = %+v, want missing", s)
	}
}
