package core

import (
	"math"
	"testing"
)

func TestLuminosityDistanceReferenceValues(t *testing.T) {
	// Numerically integrated flat ΛCDM (H0=70, Ωm=0.3) distances in Mpc.
	tests := []struct {
		z, want float64
	}{
		{0.1, 460.3},
		{1.0, 6607.7},
		{3.0, 25422.7},
	}
	for _, tt := range tests {
		got, ok := LuminosityDistance(tt.z, 70)
		if !ok {
			t.Fatalf("LuminosityDistance(%g) missing", tt.z)
		}
		if relErr(got, tt.want) > 0.005 {
			t.Fatalf("LuminosityDistance(%g) = %.1f, want %.1f within 0.5%%", tt.z, got, tt.want)
		}
	}
}

func TestDistanceRelations(t *testing.T) {
	for _, z := range []float64{0.01, 0.5, 2, 6} {
		dl, _ := LuminosityDistance(z, 67.4)
		dc, _ := ComovingDistance(z, 67.4)
		da, _ := AngularDiameterDistance(z, 67.4)
		if relErr(dl, dc*(1+z)) > 1e-12 {
			t.Fatalf("z=%g: D_L=%g != (1+z) D_C=%g", z, dl, dc*(1+z))
		}
		if relErr(da, dc/(1+z)) > 1e-12 {
			t.Fatalf("z=%g: D_A=%g != D_C/(1+z)=%g", z, da, dc/(1+z))
		}
	}
}

func TestLowRedshiftApproachesHubbleLaw(t *testing.T) {
	dl, _ := LuminosityDistance(0.001, 70)
	hl, _ := HubbleLawDistance(0.001, 70)
	if relErr(dl, hl) > 0.01 {
		t.Fatalf("D_L(0.001)=%g, Hubble law %g", dl, hl)
	}
	if got, _ := LuminosityDistance(0, 70); got != 0 {
		t.Fatalf("D_L(0) = %g, want 0", got)
	}
}

func TestCosmologyRejectsInvalidInput(t *testing.T) {
	cases := []struct{ z, h0 float64 }{
		{-0.1, 70},
		{0.5, 0},
		{0.5, -70},
		{math.NaN(), 70},
		{0.5, math.Inf(1)},
	}
	for _, c := range cases {
		if _, ok := LuminosityDistance(c.z, c.h0); ok {
			t.Fatalf("LuminosityDistance(%g,%g) should be missing", c.z, c.h0)
		}
		if _, ok := ComovingDistance(c.z, c.h0); ok {
			t.Fatalf("ComovingDistance(%g,%g) should be missing", c.z, c.h0)
		}
	}
	if _, ok := RedshiftToAge(-1); ok {
		t.Fatalf("RedshiftToAge(-1) should be missing")
	}
}

func TestRedshiftToAge(t *testing.T) {
	now, ok := RedshiftToAge(0)
	if !ok || math.Abs(now-13.47) > 0.05 {
		t.Fatalf("RedshiftToAge(0) = %g, want ≈13.47 Gyr", now)
	}
	prev := now
	for _, z := range []float64{0.5, 1, 2, 5, 10} {
		age, _ := RedshiftToAge(z)
		if age >= prev {
			t.Fatalf("age not decreasing at z=%g: %g >= %g", z, age, prev)
		}
		prev = age
	}
	lb, _ := LookbackTime(0)
	if lb != 0 {
		t.Fatalf("LookbackTime(0) = %g, want 0", lb)
	}
	lb, _ = LookbackTime(1)
	if age1, _ := RedshiftToAge(1); math.Abs(lb+age1-now) > 1e-12 {
		t.Fatalf("lookback + age != age today")
	}
}
