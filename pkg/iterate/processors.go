// Package iterate applies a processor to every selected voxel of an extent,
// a bounding box, or the on-voxels of an object mask.
//
// Every traversal is z-major, then y, then x. A processor may additionally
// implement SliceNotifier and RowNotifier; these are detected once per
// traversal and called once for each slice and row visited, before the
// voxels of that slice or row.
package iterate

import (
	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

// Mask is the view of an object mask needed to restrict a traversal to its
// on-voxels. The bounding box is in global coordinates; the voxels cover
// exactly its extent.
type Mask interface {
	BoundingBox() geometry.BoundingBox
	Voxels() *voxel.Voxels[uint8]
	BinaryValuesByte() voxel.BinaryValuesByte
}

// SliceNotifier is told when traversal moves to a new z-slice.
type SliceNotifier interface {
	NotifyChangeSlice(z int)
}

// RowNotifier is told when traversal moves to a new row.
type RowNotifier interface {
	NotifyChangeY(y int)
}

// PointProcessor receives each visited coordinate.
type PointProcessor interface {
	Process(point geometry.Point3i)
}

// PointFunc adapts a function to PointProcessor.
type PointFunc func(point geometry.Point3i)

// Process calls f.
func (f PointFunc) Process(point geometry.Point3i) { f(point) }

// OffsetProcessor receives each visited coordinate and its offset within
// the current z-slice.
type OffsetProcessor interface {
	Process(point geometry.Point3i, offset int)
}

// OffsetFunc adapts a function to OffsetProcessor.
type OffsetFunc func(point geometry.Point3i, offset int)

// Process calls f.
func (f OffsetFunc) Process(point geometry.Point3i, offset int) { f(point, offset) }

// BufferProcessor receives each visited coordinate with the current slice
// of a buffer and the voxel's offset in it.
type BufferProcessor[T voxel.Kind] interface {
	Process(point geometry.Point3i, buffer []T, offset int)
}

// BufferFunc adapts a function to BufferProcessor.
type BufferFunc[T voxel.Kind] func(point geometry.Point3i, buffer []T, offset int)

// Process calls f.
func (f BufferFunc[T]) Process(point geometry.Point3i, buffer []T, offset int) {
	f(point, buffer, offset)
}

// BinaryProcessor receives slices of two buffers of equal extent. The same
// offset addresses the voxel in both.
type BinaryProcessor[T, U voxel.Kind] interface {
	Process(point geometry.Point3i, buffer1 []T, buffer2 []U, offset int)
}

// BinaryFunc adapts a function to BinaryProcessor.
type BinaryFunc[T, U voxel.Kind] func(point geometry.Point3i, buffer1 []T, buffer2 []U, offset int)

// Process calls f.
func (f BinaryFunc[T, U]) Process(point geometry.Point3i, buffer1 []T, buffer2 []U, offset int) {
	f(point, buffer1, buffer2, offset)
}

// TernaryProcessor receives slices of three buffers of equal extent.
type TernaryProcessor[T, U, V voxel.Kind] interface {
	Process(point geometry.Point3i, buffer1 []T, buffer2 []U, buffer3 []V, offset int)
}

// TernaryFunc adapts a function to TernaryProcessor.
type TernaryFunc[T, U, V voxel.Kind] func(point geometry.Point3i, buffer1 []T, buffer2 []U, buffer3 []V, offset int)

// Process calls f.
func (f TernaryFunc[T, U, V]) Process(point geometry.Point3i, buffer1 []T, buffer2 []U, buffer3 []V, offset int) {
	f(point, buffer1, buffer2, buffer3, offset)
}

// ShiftedProcessor receives a voxel of a primary buffer together with the
// voxel of a secondary buffer at the shifted coordinate.
type ShiftedProcessor[T, U voxel.Kind] interface {
	Process(point geometry.Point3i, buffer1 []T, buffer2 []U, offset1, offset2 int)
}

// ShiftedFunc adapts a function to ShiftedProcessor.
type ShiftedFunc[T, U voxel.Kind] func(point geometry.Point3i, buffer1 []T, buffer2 []U, offset1, offset2 int)

// Process calls f.
func (f ShiftedFunc[T, U]) Process(point geometry.Point3i, buffer1 []T, buffer2 []U, offset1, offset2 int) {
	f(point, buffer1, buffer2, offset1, offset2)
}

type notifiers struct {
	slice SliceNotifier
	row   RowNotifier
}

func notifiersOf(processor interface{}) notifiers {
	var n notifiers
	n.slice, _ = processor.(SliceNotifier)
	n.row, _ = processor.(RowNotifier)
	return n
}

func (n notifiers) changeSlice(z int) {
	if n.slice != nil {
		n.slice.NotifyChangeSlice(z)
	}
}

func (n notifiers) changeRow(y int) {
	if n.row != nil {
		n.row.NotifyChangeY(y)
	}
}

func checkExtents(extents ...geometry.Extent) {
	for _, e := range extents[1:] {
		if e != extents[0] {
			panic("iterate: buffers must have equal extents, got " + extents[0].String() + " and " + e.String())
		}
	}
}
