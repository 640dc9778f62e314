// Package geometry provides the integer coordinate primitives used to locate
// voxel buffers and object masks inside a scene: points, extents, bounding
// boxes and scale factors.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3i is an integer coordinate in a 3-D voxel grid.
type Point3i struct {
	X, Y, Z int
}

// NewPoint3i creates a point from its three components.
func NewPoint3i(x, y, z int) Point3i {
	return Point3i{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of p and q.
func (p Point3i) Add(q Point3i) Point3i {
	return Point3i{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point3i) Sub(q Point3i) Point3i {
	return Point3i{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Min returns the component-wise minimum of p and q.
func (p Point3i) Min(q Point3i) Point3i {
	return Point3i{min(p.X, q.X), min(p.Y, q.Y), min(p.Z, q.Z)}
}

// Max returns the component-wise maximum of p and q.
func (p Point3i) Max(q Point3i) Point3i {
	return Point3i{max(p.X, q.X), max(p.Y, q.Y), max(p.Z, q.Z)}
}

// Vec converts the point to a gonum vector.
func (p Point3i) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// PointFromVec rounds each component of v to the nearest integer.
func PointFromVec(v r3.Vec) Point3i {
	return Point3i{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}

// Scale multiplies each component by the matching factor and rounds.
func (p Point3i) Scale(f ScaleFactor) Point3i {
	return PointFromVec(r3.Vec{
		X: float64(p.X) * f.X,
		Y: float64(p.Y) * f.Y,
		Z: float64(p.Z) * f.Z,
	})
}

func (p Point3i) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
