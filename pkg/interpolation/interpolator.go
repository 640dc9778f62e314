// Package interpolation resamples voxel buffers to a new extent.
//
// Resampling is separable: an Interpolator describes, for one axis, which
// source samples contribute to each destination sample and with what
// weight. Resize combines the three axes.
package interpolation

import (
	"math"

	"github.com/pkg/errors"
)

// Tap is one source sample contributing to a destination sample.
type Tap struct {
	Index  int
	Weight float64
}

// Interpolator is a resampling strategy.
type Interpolator interface {
	// Name identifies the strategy in configuration.
	Name() string

	// CanValueRangeChange reports whether resampling can produce values that
	// were not present in the source, e.g. blends of two labels.
	CanValueRangeChange() bool

	// Taps lists the source samples for destination index dst when an axis
	// of srcSize samples is resampled to dstSize samples. Weights sum to one.
	Taps(dst, srcSize, dstSize int) []Tap
}

// NearestNeighbor copies the closest source sample. It never introduces new
// values, so it is the only strategy suitable for label rasters.
type NearestNeighbor struct{}

// Name implements Interpolator.
func (NearestNeighbor) Name() string { return "nearest" }

// CanValueRangeChange implements Interpolator.
func (NearestNeighbor) CanValueRangeChange() bool { return false }

// Taps implements Interpolator.
func (NearestNeighbor) Taps(dst, srcSize, dstSize int) []Tap {
	return []Tap{{Index: nearestIndex(dst, srcSize, dstSize), Weight: 1}}
}

func nearestIndex(dst, srcSize, dstSize int) int {
	if srcSize == dstSize {
		return dst
	}
	src := int(math.Floor((float64(dst) + 0.5) * float64(srcSize) / float64(dstSize)))
	return min(max(src, 0), srcSize-1)
}

// Linear blends the two closest source samples, sampling at pixel centers.
type Linear struct{}

// Name implements Interpolator.
func (Linear) Name() string { return "linear" }

// CanValueRangeChange implements Interpolator.
func (Linear) CanValueRangeChange() bool { return true }

// Taps implements Interpolator.
func (Linear) Taps(dst, srcSize, dstSize int) []Tap {
	if srcSize == dstSize || srcSize == 1 {
		return []Tap{{Index: nearestIndex(dst, srcSize, dstSize), Weight: 1}}
	}
	s := (float64(dst)+0.5)*float64(srcSize)/float64(dstSize) - 0.5
	s = math.Max(0, math.Min(s, float64(srcSize-1)))
	i0 := int(math.Floor(s))
	i1 := min(i0+1, srcSize-1)
	w := s - float64(i0)
	if w == 0 || i0 == i1 {
		return []Tap{{Index: i0, Weight: 1}}
	}
	return []Tap{{Index: i0, Weight: 1 - w}, {Index: i1, Weight: w}}
}

// FromName returns the interpolator configured by name.
func FromName(name string) (Interpolator, error) {
	switch name {
	case "nearest", "nearest-neighbor":
		return NearestNeighbor{}, nil
	case "linear", "":
		return Linear{}, nil
	default:
		return nil, errors.Errorf("unknown interpolation %q (must be nearest or linear)", name)
	}
}
