package geometry

import "fmt"

// ScaleFactor is a multiplier per axis.
type ScaleFactor struct {
	X, Y, Z float64
}

// Uniform scales every axis by f.
func Uniform(f float64) ScaleFactor {
	return ScaleFactor{f, f, f}
}

// NewScaleFactorXY scales in the XY plane only, leaving Z unchanged.
func NewScaleFactorXY(x, y float64) ScaleFactor {
	return ScaleFactor{X: x, Y: y, Z: 1}
}

// IsIdentity reports whether scaling by f changes nothing.
func (f ScaleFactor) IsIdentity() bool {
	return f.X == 1 && f.Y == 1 && f.Z == 1
}

// IsValid reports whether every component is strictly positive.
func (f ScaleFactor) IsValid() bool {
	return f.X > 0 && f.Y > 0 && f.Z > 0
}

func (f ScaleFactor) String() string {
	return fmt.Sprintf("[%g,%g,%g]", f.X, f.Y, f.Z)
}
