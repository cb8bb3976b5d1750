package catalog

import (
	"errors"
	"testing"

	"github.com/signalsfoundry/astro-kernel/model"
)

func TestInfoBuiltins(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		name  string
		epoch float64
	}{
		{"gaia_dr3", 2016.0},
		{"GAIA_DR3", 2016.0},
		{" Hipparcos ", 1991.25},
		{"tycho2", 2000.0},
		{"2MASS", 2000.0},
		{"sdss_dr17", 2000.0},
	}
	for _, tt := range tests {
		d := p.Info(tt.name)
		if !d.Known {
			t.Fatalf("Info(%q) not known", tt.name)
		}
		if d.CoordinateSystem != model.CoordinateSystemICRS || d.Epoch != tt.epoch {
			t.Fatalf("Info(%q) = %+v, want ICRS epoch %g", tt.name, d, tt.epoch)
		}
	}
}

func TestInfoUnknownReturnsDefault(t *testing.T) {
	p, _ := New()
	d := p.Info("my_survey")
	if d.Known {
		t.Fatalf("my_survey should not be known")
	}
	if d.Name != "my_survey" || d.CoordinateSystem != "ICRS" || d.Epoch != 2000.0 {
		t.Fatalf("default = %+v", d)
	}
	got := d.IntegrationTags()
	want := []string{"arrow", "spatial", "parquet"}
	if len(got) != len(want) {
		t.Fatalf("integrations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("integrations = %v, want %v", got, want)
		}
	}

	var nilProvider *Provider
	if nilProvider.Info("x").Known {
		t.Fatalf("nil provider should return default")
	}
}

func TestInfoReturnsCopies(t *testing.T) {
	p, _ := New()
	d := p.Info("gaia_dr3")
	d.Integrations[0] = "mutated"
	if p.Info("gaia_dr3").Integrations[0] == "mutated" {
		t.Fatalf("Info leaked internal slice")
	}
}

func TestNewOverridesAndValidates(t *testing.T) {
	p, err := New(model.CatalogDescriptor{
		Name:             "Gaia_DR3",
		Version:          "DR3+",
		CoordinateSystem: "ICRS",
		Epoch:            2016.0,
	}, model.CatalogDescriptor{
		Name:             "panstarrs",
		CoordinateSystem: "ICRS",
		Epoch:            2000.0,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v := p.Info("gaia_dr3").Version; v != "DR3+" {
		t.Fatalf("override version = %q", v)
	}
	if len(p.Names()) != 6 {
		t.Fatalf("Names = %v, want 6 entries", p.Names())
	}

	_, err = New(model.CatalogDescriptor{Name: "  "})
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("empty name err = %v", err)
	}
	_, err = New(model.CatalogDescriptor{Name: "x"})
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("missing system err = %v", err)
	}
}
