package model

import "testing"

func TestParseBodyClass(t *testing.T) {
	tests := []struct {
		in   string
		want BodyClass
		ok   bool
	}{
		{"main_sequence_star", BodyMainSequenceStar, true},
		{"White Dwarf", BodyWhiteDwarf, true},
		{"gas-giant", BodyGasGiant, true},
		{" ASTEROID ", BodyAsteroid, true},
		{"comet", "", false},
	}
	for _, tt := range tests {
		got, err := ParseBodyClass(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseBodyClass(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestBodyClassesCopy(t *testing.T) {
	classes := BodyClasses()
	if len(classes) != 9 {
		t.Fatalf("BodyClasses len = %d, want 9", len(classes))
	}
	classes[0] = "mutated"
	if BodyClasses()[0] != BodyMainSequenceStar {
		t.Fatalf("BodyClasses must return a copy")
	}
}

func TestIsStellar(t *testing.T) {
	for _, c := range []BodyClass{BodyMainSequenceStar, BodyWhiteDwarf, BodyNeutronStar, BodyBlackHole} {
		if !c.IsStellar() {
			t.Fatalf("%s should be stellar", c)
		}
	}
	for _, c := range []BodyClass{BodyBrownDwarf, BodyRockyPlanet, BodyGasGiant, BodyIceGiant, BodyAsteroid} {
		if c.IsStellar() {
			t.Fatalf("%s should not be stellar", c)
		}
	}
}

func TestParseReferenceFrame(t *testing.T) {
	tests := []struct {
		in   string
		want ReferenceFrame
		ok   bool
	}{
		{"ICRS", FrameICRS, true},
		{"fk5", FrameFK5, true},
		{"ecliptic", FrameEclipticJ2000, true},
		{"Ecliptic_J2000", FrameEclipticJ2000, true},
		{"galactic", FrameGalactic, true},
		{"", "", false},
		{"supergalactic", "", false},
	}
	for _, tt := range tests {
		got, err := ParseReferenceFrame(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseReferenceFrame(%q) = %q, %v", tt.in, got, err)
		}
	}
}
