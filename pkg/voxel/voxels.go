// Package voxel holds dense 3-D voxel buffers stored as one flat array per
// z-slice, generic over the element kinds used for masks, labels and
// intensities.
package voxel

import (
	"fmt"

	"objmask/pkg/geometry"
)

// Kind is the set of supported voxel element types.
type Kind interface {
	~uint8 | ~uint16 | ~uint32 | ~float32
}

// Voxels is a dense buffer of voxels of a given extent. Each z-slice is a
// separate array of length extent.VolumeXY(), indexed y*X+x.
//
// A *Voxels may be referenced by several object masks at once; mutating it
// through one reference mutates it for all. Use Duplicate for an
// independent copy.
type Voxels[T Kind] struct {
	extent geometry.Extent
	slices [][]T
}

// New allocates a zero-filled buffer.
func New[T Kind](extent geometry.Extent) *Voxels[T] {
	slices := make([][]T, extent.Z)
	for z := range slices {
		slices[z] = make([]T, extent.VolumeXY())
	}
	return &Voxels[T]{extent: extent, slices: slices}
}

// NewFromSlices wraps existing slice arrays without copying. The number of
// slices and the length of each must match extent.
func NewFromSlices[T Kind](extent geometry.Extent, slices [][]T) (*Voxels[T], error) {
	if len(slices) != extent.Z {
		return nil, geometry.Errorf("expected %d slices for extent %v, got %d", extent.Z, extent, len(slices))
	}
	for z, s := range slices {
		if len(s) != extent.VolumeXY() {
			return nil, geometry.Errorf("slice %d has %d voxels, extent %v requires %d", z, len(s), extent, extent.VolumeXY())
		}
	}
	return &Voxels[T]{extent: extent, slices: slices}, nil
}

// NewFromArray builds a buffer from one flat z-major array, copying it.
func NewFromArray[T Kind](extent geometry.Extent, data []T) (*Voxels[T], error) {
	if len(data) != extent.Volume() {
		return nil, geometry.Errorf("array of %d voxels does not match extent %v", len(data), extent)
	}
	v := New[T](extent)
	area := extent.VolumeXY()
	for z := range v.slices {
		copy(v.slices[z], data[z*area:(z+1)*area])
	}
	return v, nil
}

// Extent is the size of the buffer.
func (v *Voxels[T]) Extent() geometry.Extent {
	return v.extent
}

// Slice returns the array backing z-slice z.
func (v *Voxels[T]) Slice(z int) []T {
	return v.slices[z]
}

// Get reads the voxel at p, which must lie inside the extent.
func (v *Voxels[T]) Get(p geometry.Point3i) T {
	return v.slices[p.Z][v.extent.OffsetXY(p.X, p.Y)]
}

// Set writes the voxel at p, which must lie inside the extent.
func (v *Voxels[T]) Set(p geometry.Point3i, value T) {
	v.slices[p.Z][v.extent.OffsetXY(p.X, p.Y)] = value
}

// Fill assigns value to every voxel.
func (v *Voxels[T]) Fill(value T) {
	for _, s := range v.slices {
		for i := range s {
			s[i] = value
		}
	}
}

// FillBox assigns value to every voxel in box, which must lie inside the
// extent.
func (v *Voxels[T]) FillBox(box geometry.BoundingBox, value T) {
	max := box.CornerMaxExclusive()
	for z := box.Corner.Z; z < max.Z; z++ {
		s := v.slices[z]
		for y := box.Corner.Y; y < max.Y; y++ {
			row := v.extent.OffsetXY(0, y)
			for x := box.Corner.X; x < max.X; x++ {
				s[row+x] = value
			}
		}
	}
}

// Duplicate returns a deep copy.
func (v *Voxels[T]) Duplicate() *Voxels[T] {
	out := &Voxels[T]{extent: v.extent, slices: make([][]T, len(v.slices))}
	for z, s := range v.slices {
		out.slices[z] = append([]T(nil), s...)
	}
	return out
}

// SubSlices returns a buffer aliasing slices [zMin, zMin+depth) of v.
func (v *Voxels[T]) SubSlices(zMin, depth int) *Voxels[T] {
	ext := geometry.Extent{X: v.extent.X, Y: v.extent.Y, Z: depth}
	return &Voxels[T]{extent: ext, slices: v.slices[zMin : zMin+depth]}
}

// Equals reports whether both buffers have the same extent and contents.
func (v *Voxels[T]) Equals(o *Voxels[T]) bool {
	if v.extent != o.extent {
		return false
	}
	for z, s := range v.slices {
		os := o.slices[z]
		for i := range s {
			if s[i] != os[i] {
				return false
			}
		}
	}
	return true
}

// Count is the number of voxels equal to value.
func (v *Voxels[T]) Count(value T) int {
	count := 0
	for _, s := range v.slices {
		for _, x := range s {
			if x == value {
				count++
			}
		}
	}
	return count
}

// Any reports whether at least one voxel equals value.
func (v *Voxels[T]) Any(value T) bool {
	for _, s := range v.slices {
		for _, x := range s {
			if x == value {
				return true
			}
		}
	}
	return false
}

// CopyTo copies the region src of v into dst with src.Corner placed at
// dstCorner. Both regions must lie inside their buffers.
func (v *Voxels[T]) CopyTo(src geometry.BoundingBox, dst *Voxels[T], dstCorner geometry.Point3i) {
	for z := 0; z < src.Extent.Z; z++ {
		from := v.slices[src.Corner.Z+z]
		to := dst.slices[dstCorner.Z+z]
		for y := 0; y < src.Extent.Y; y++ {
			fromOffset := v.extent.OffsetXY(src.Corner.X, src.Corner.Y+y)
			toOffset := dst.extent.OffsetXY(dstCorner.X, dstCorner.Y+y)
			copy(to[toOffset:toOffset+src.Extent.X], from[fromOffset:fromOffset+src.Extent.X])
		}
	}
}

// Max returns the largest voxel value, or zero for an empty buffer.
func (v *Voxels[T]) Max() T {
	var m T
	for _, s := range v.slices {
		for _, x := range s {
			if x > m {
				m = x
			}
		}
	}
	return m
}

func (v *Voxels[T]) String() string {
	return fmt.Sprintf("voxels[%T]{%v}", *new(T), v.extent)
}
