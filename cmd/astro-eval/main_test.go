package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/signalsfoundry/astro-kernel/internal/udf"
)

func TestRunEvaluatesFunction(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"mag_to_flux", "0", "0"}, "1"},
		{[]string{"distance_modulus", "1000"}, "10"},
		{[]string{"distance_modulus", "-10"}, "NULL"},
		{[]string{"angular_separation", "NULL", "0", "1", "1"}, "NULL"},
		{[]string{"sector_path", "1", "0", "0", "3"}, `"700"`},
		{[]string{"sector_parent", "0o700", "3"}, "56"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := run(context.Background(), &out, false, "", tt.args); err != nil {
			t.Fatalf("run(%v): %v", tt.args, err)
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Fatalf("run(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRunStructOutput(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, false, "", []string{"catalog_info", "hipparcos"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), `{"catalog":"hipparcos","version":"2007","coordinate_system":"ICRS","epoch":1991.25,`) {
		t.Fatalf("catalog_info output = %s", out.String())
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, true, "", nil); err != nil {
		t.Fatalf("run -list: %v", err)
	}
	if !strings.Contains(out.String(), "orbit_period(semi_major_axis_m DOUBLE, central_mass_kg DOUBLE) -> DOUBLE") {
		t.Fatalf("list output missing orbit_period:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "-> STRUCT(body_model)") {
		t.Fatalf("list output missing struct schema")
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	ctx := context.Background()
	if err := run(ctx, &out, false, "", nil); err == nil {
		t.Fatalf("expected usage error")
	}
	if err := run(ctx, &out, false, "", []string{"nope"}); !errors.Is(err, udf.ErrUnknownFunction) {
		t.Fatalf("unknown function err = %v", err)
	}
	if err := run(ctx, &out, false, "", []string{"mag_to_flux", "1"}); !errors.Is(err, udf.ErrArity) {
		t.Fatalf("arity err = %v", err)
	}
	if err := run(ctx, &out, false, "", []string{"distance_modulus", "far"}); !errors.Is(err, udf.ErrArgumentType) {
		t.Fatalf("type err = %v", err)
	}
}
