package core

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/signalsfoundry/astro-kernel/model"
)

func TestSectorOfIsDeterministic(t *testing.T) {
	p := Vec3{X: 1, Y: 0, Z: 0}
	first, err := SectorOf(p, 3)
	if err != nil {
		t.Fatalf("SectorOf: %v", err)
	}
	// level 1: all coordinates on the non-negative side -> 7; below each
	// level-1 centre afterwards -> 0, 0.
	if first.Code != 7<<6 || first.Depth != 3 {
		t.Fatalf("SectorOf(1,0,0,3) = %+v, want code %d", first, 7<<6)
	}
	for i := 0; i < 10; i++ {
		again, _ := SectorOf(p, 3)
		if again != first {
			t.Fatalf("SectorOf not repeatable: %+v vs %+v", again, first)
		}
	}
	if first.String() != "700" {
		t.Fatalf("String() = %q, want 700", first.String())
	}
}

func TestSectorRootAndOriginTies(t *testing.T) {
	root, err := SectorOf(Vec3{X: -5, Y: 3, Z: 1e9}, 0)
	if err != nil || root != (model.SectorID{}) {
		t.Fatalf("depth 0 = %+v err=%v, want root", root, err)
	}
	origin, _ := SectorOf(Vec3{}, 1)
	if origin.Code != 7 {
		t.Fatalf("origin at depth 1 = %d, want 7 (non-negative side)", origin.Code)
	}
	neg, _ := SectorOf(Vec3{X: -1, Y: -1, Z: -1}, 1)
	if neg.Code != 0 {
		t.Fatalf("negative octant = %d, want 0", neg.Code)
	}
}

func TestSectorContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		p := Vec3{
			X: (rng.Float64()*2 - 1) * 2e5,
			Y: (rng.Float64()*2 - 1) * 2e5,
			Z: (rng.Float64()*2 - 1) * 2e5,
		}
		deepest, err := SectorOf(p, model.MaxSectorDepth)
		if err != nil {
			t.Fatalf("SectorOf: %v", err)
		}
		for d := 0; d < model.MaxSectorDepth; d++ {
			s, _ := SectorOf(p, d)
			if s.Code != deepest.Code>>(3*uint(model.MaxSectorDepth-d)) {
				t.Fatalf("depth %d code %o not a prefix of %o", d, s.Code, deepest.Code)
			}
			if !strings.HasPrefix(deepest.String(), s.String()) {
				t.Fatalf("path %q not a prefix of %q", s.String(), deepest.String())
			}
			if !s.Contains(deepest) || deepest.Ancestor(d) != s {
				t.Fatalf("%+v should contain %+v", s, deepest)
			}
		}
	}
}

func TestSectorBoundsContainPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p := Vec3{
			X: (rng.Float64()*2 - 1) * DefaultSectorHalfExtent,
			Y: (rng.Float64()*2 - 1) * DefaultSectorHalfExtent,
			Z: (rng.Float64()*2 - 1) * DefaultSectorHalfExtent,
		}
		s, _ := SectorOf(p, 8)
		c, half := SectorBounds(s, DefaultSectorHalfExtent)
		if math.Abs(p.X-c.X) > half || math.Abs(p.Y-c.Y) > half || math.Abs(p.Z-c.Z) > half {
			t.Fatalf("point %+v outside cell centre %+v half %g", p, c, half)
		}
	}
}

func TestSectorDepthOutOfRange(t *testing.T) {
	for _, d := range []int{-1, model.MaxSectorDepth + 1, 64} {
		if _, err := SectorOf(Vec3{X: 1}, d); !errors.Is(err, ErrDepthOutOfRange) {
			t.Fatalf("depth %d err = %v, want ErrDepthOutOfRange", d, err)
		}
	}
	if _, err := SectorParent(0, 30); !errors.Is(err, ErrDepthOutOfRange) {
		t.Fatalf("SectorParent depth 30 err = %v", err)
	}
}

func TestSectorDomainErrors(t *testing.T) {
	if _, err := SectorOf(Vec3{X: math.NaN()}, 3); !errors.Is(err, ErrDomain) {
		t.Fatalf("NaN err = %v, want ErrDomain", err)
	}
	if _, err := SectorOfScaled(Vec3{}, 3, 0); !errors.Is(err, ErrDomain) {
		t.Fatalf("zero extent err = %v, want ErrDomain", err)
	}
	if _, err := SectorParent(0o777, 2); !errors.Is(err, ErrDomain) {
		t.Fatalf("wide code err = %v, want ErrDomain", err)
	}
	if !IsDomainError(ErrDomain) || IsDomainError(ErrDepthOutOfRange) {
		t.Fatalf("IsDomainError classification wrong")
	}
}

func TestSectorParent(t *testing.T) {
	p, err := SectorParent(0o735, 3)
	if err != nil {
		t.Fatalf("SectorParent: %v", err)
	}
	if p.Depth != 2 || p.Code != 0o73 {
		t.Fatalf("parent = %+v, want depth 2 code 073", p)
	}
	root, _ := SectorParent(0, 0)
	if root != (model.SectorID{}) {
		t.Fatalf("parent of root = %+v", root)
	}
}
