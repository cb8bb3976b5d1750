package model

import (
	"strconv"
	"strings"
)

// MaxSectorDepth is the deepest octree level a 64-bit code can hold with
// three bits per level.
const MaxSectorDepth = 21

// SectorID names one cell of the fixed octree. Code holds one 3-bit octant
// index per level, most significant level first; the root (depth 0) is code 0.
type SectorID struct {
	Depth int
	Code  uint64
}

// Parent returns the containing sector one level up. The root is its own parent.
func (s SectorID) Parent() SectorID {
	if s.Depth <= 0 {
		return SectorID{}
	}
	return SectorID{Depth: s.Depth - 1, Code: s.Code >> 3}
}

// Ancestor returns the containing sector at the given depth, or s itself when
// depth is not shallower than s.
func (s SectorID) Ancestor(depth int) SectorID {
	if depth < 0 {
		depth = 0
	}
	if depth >= s.Depth {
		return s
	}
	return SectorID{Depth: depth, Code: s.Code >> (3 * uint(s.Depth-depth))}
}

// Contains reports whether other lies inside s (a sector contains itself).
func (s SectorID) Contains(other SectorID) bool {
	if other.Depth < s.Depth {
		return false
	}
	return other.Ancestor(s.Depth) == s
}

// Octant returns the 3-bit octant index chosen at the given level (1-based).
func (s SectorID) Octant(level int) int {
	if level < 1 || level > s.Depth {
		return -1
	}
	shift := 3 * uint(s.Depth-level)
	return int((s.Code >> shift) & 7)
}

// String renders the octal path, one digit per level; the root renders as "".
func (s SectorID) String() string {
	if s.Depth == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(s.Depth)
	for level := 1; level <= s.Depth; level++ {
		b.WriteString(strconv.Itoa(s.Octant(level)))
	}
	return b.String()
}
