package core

import (
	"fmt"

	"github.com/signalsfoundry/astro-kernel/model"
)

// DefaultSectorHalfExtent is the half-width of the root cube used by
// SectorOf. In parsecs it spans the Milky Way disc.
const DefaultSectorHalfExtent = 1e5

// Sector codes depend on this exact subdivision rule; changing it invalidates
// every stored code.
//
// The root cell is the cube [-H, H]³ centred on the origin. Each level splits
// the current cell at its centre c and picks the octant
//
//	(x >= cx) << 2 | (y >= cy) << 1 | (z >= cz)
//
// so a coordinate exactly on a dividing plane goes to the positive side. The
// child centre then moves a quarter of the parent width along each axis.
// Points outside the root cube keep following the sign rule and land in the
// outermost cells on their side.

// SectorOf encodes p at the given depth using DefaultSectorHalfExtent.
func SectorOf(p Vec3, depth int) (model.SectorID, error) {
	return SectorOfScaled(p, depth, DefaultSectorHalfExtent)
}

// SectorOfScaled encodes p at the given depth in an octree whose root cube
// has the given half-extent. It fails with ErrDepthOutOfRange for depths
// outside [0, model.MaxSectorDepth] and with ErrDomain for non-finite
// coordinates or a non-positive extent.
func SectorOfScaled(p Vec3, depth int, halfExtent float64) (model.SectorID, error) {
	if depth < 0 || depth > model.MaxSectorDepth {
		return model.SectorID{}, fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, depth, model.MaxSectorDepth)
	}
	if !finite(p.X, p.Y, p.Z) || !positive(halfExtent) {
		return model.SectorID{}, fmt.Errorf("%w: sector point (%g, %g, %g) extent %g", ErrDomain, p.X, p.Y, p.Z, halfExtent)
	}

	var code uint64
	center := Vec3{}
	half := halfExtent
	for level := 0; level < depth; level++ {
		octant := uint64(0)
		step := half / 2
		dx, dy, dz := -step, -step, -step
		if p.X >= center.X {
			octant |= 4
			dx = step
		}
		if p.Y >= center.Y {
			octant |= 2
			dy = step
		}
		if p.Z >= center.Z {
			octant |= 1
			dz = step
		}
		code = code<<3 | octant
		center = Vec3{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
		half = step
	}
	return model.SectorID{Depth: depth, Code: code}, nil
}

// SectorParent returns the parent of the sector with the given code and
// depth. It fails with ErrDepthOutOfRange for depths outside
// [0, model.MaxSectorDepth] and with ErrDomain when code has bits above depth.
func SectorParent(code uint64, depth int) (model.SectorID, error) {
	s, err := NewSectorID(code, depth)
	if err != nil {
		return model.SectorID{}, err
	}
	return s.Parent(), nil
}

// NewSectorID validates a raw code/depth pair.
func NewSectorID(code uint64, depth int) (model.SectorID, error) {
	if depth < 0 || depth > model.MaxSectorDepth {
		return model.SectorID{}, fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, depth, model.MaxSectorDepth)
	}
	if code>>(3*uint(depth)) != 0 {
		return model.SectorID{}, fmt.Errorf("%w: code %d too wide for depth %d", ErrDomain, code, depth)
	}
	return model.SectorID{Depth: depth, Code: code}, nil
}

// SectorBounds returns the centre and half-width of a sector's cell in an
// octree with the given root half-extent.
func SectorBounds(s model.SectorID, halfExtent float64) (center Vec3, half float64) {
	half = halfExtent
	for level := 1; level <= s.Depth; level++ {
		octant := s.Octant(level)
		step := half / 2
		center.X += signedStep(octant&4 != 0, step)
		center.Y += signedStep(octant&2 != 0, step)
		center.Z += signedStep(octant&1 != 0, step)
		half = step
	}
	return center, half
}

func signedStep(positiveSide bool, step float64) float64 {
	if positiveSide {
		return step
	}
	return -step
}
