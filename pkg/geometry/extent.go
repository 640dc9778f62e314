package geometry

import (
	"fmt"
	"math"
)

// Extent is the size of a voxel grid along each axis. Components are never
// negative.
type Extent struct {
	X, Y, Z int
}

// NewExtent validates and creates an extent.
func NewExtent(x, y, z int) (Extent, error) {
	if x < 0 || y < 0 || z < 0 {
		return Extent{}, Errorf("extent components must be non-negative, got (%d,%d,%d)", x, y, z)
	}
	return Extent{X: x, Y: y, Z: z}, nil
}

// VolumeXY is the number of voxels in a single z-slice.
func (e Extent) VolumeXY() int {
	return e.X * e.Y
}

// Volume is the total number of voxels.
func (e Extent) Volume() int {
	return e.X * e.Y * e.Z
}

// IsEmpty reports whether the extent holds no voxels.
func (e Extent) IsEmpty() bool {
	return e.Volume() == 0
}

// OffsetXY is the linear index of (x,y) within a z-slice.
func (e Extent) OffsetXY(x, y int) int {
	return y*e.X + x
}

// Contains reports whether p lies inside a grid of this extent at the origin.
func (e Extent) Contains(p Point3i) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 &&
		p.X < e.X && p.Y < e.Y && p.Z < e.Z
}

// ContainsBox reports whether b lies entirely inside a grid of this extent.
func (e Extent) ContainsBox(b BoundingBox) bool {
	return e.Contains(b.Corner) && e.Contains(b.CornerMax())
}

// AsPoint returns the extent as a point, useful for corner arithmetic.
func (e Extent) AsPoint() Point3i {
	return Point3i{e.X, e.Y, e.Z}
}

// Grow adds amount to each component.
func (e Extent) Grow(amount Point3i) Extent {
	return Extent{e.X + amount.X, e.Y + amount.Y, e.Z + amount.Z}
}

// Scale multiplies each component by the factor, rounding, and never
// shrinks a non-zero component below one voxel.
func (e Extent) Scale(f ScaleFactor) Extent {
	return Extent{
		X: scaleLength(e.X, f.X),
		Y: scaleLength(e.Y, f.Y),
		Z: scaleLength(e.Z, f.Z),
	}
}

// GreaterOrEqual reports whether every component of e is at least that of o.
func (e Extent) GreaterOrEqual(o Extent) bool {
	return e.X >= o.X && e.Y >= o.Y && e.Z >= o.Z
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%dx%d", e.X, e.Y, e.Z)
}

func scaleLength(length int, factor float64) int {
	if length == 0 {
		return 0
	}
	return max(1, int(math.Round(float64(length)*factor)))
}
