package iterate

import (
	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

// OverBuffer visits every voxel of v.
func OverBuffer[T voxel.Kind](v *voxel.Voxels[T], processor BufferProcessor[T]) {
	OverBufferBox(v, geometry.NewBoundingBoxFromExtent(v.Extent()), processor)
}

// OverBufferBox visits every voxel of box, which must lie inside v.
func OverBufferBox[T voxel.Kind](v *voxel.Voxels[T], box geometry.BoundingBox, processor BufferProcessor[T]) {
	extent := v.Extent()
	n := notifiersOf(processor)
	max := box.CornerMaxExclusive()
	var p geometry.Point3i
	for p.Z = box.Corner.Z; p.Z < max.Z; p.Z++ {
		n.changeSlice(p.Z)
		buffer := v.Slice(p.Z)
		for p.Y = box.Corner.Y; p.Y < max.Y; p.Y++ {
			n.changeRow(p.Y)
			offset := extent.OffsetXY(box.Corner.X, p.Y)
			for p.X = box.Corner.X; p.X < max.X; p.X++ {
				processor.Process(p, buffer, offset)
				offset++
			}
		}
	}
}

// OverBufferMask visits the voxels of v, a scene-sized buffer, that are on
// in m. The mask's box is clamped to the buffer.
func OverBufferMask[T voxel.Kind](m Mask, v *voxel.Voxels[T], processor BufferProcessor[T]) {
	maskBox := m.BoundingBox()
	box, ok := maskBox.ClampTo(v.Extent())
	if !ok {
		return
	}
	maskVoxels := m.Voxels()
	on := m.BinaryValuesByte().On
	extent := v.Extent()
	n := notifiersOf(processor)

	max := box.CornerMaxExclusive()
	var p geometry.Point3i
	for p.Z = box.Corner.Z; p.Z < max.Z; p.Z++ {
		n.changeSlice(p.Z)
		buffer := v.Slice(p.Z)
		maskSlice := maskVoxels.Slice(p.Z - maskBox.Corner.Z)
		for p.Y = box.Corner.Y; p.Y < max.Y; p.Y++ {
			n.changeRow(p.Y)
			offset := extent.OffsetXY(box.Corner.X, p.Y)
			maskOffset := maskBox.Extent.OffsetXY(box.Corner.X-maskBox.Corner.X, p.Y-maskBox.Corner.Y)
			for p.X = box.Corner.X; p.X < max.X; p.X++ {
				if maskSlice[maskOffset] == on {
					processor.Process(p, buffer, offset)
				}
				offset++
				maskOffset++
			}
		}
	}
}

// OverBuffers2 visits every voxel of two buffers in lockstep. It panics if
// their extents differ.
func OverBuffers2[T, U voxel.Kind](a *voxel.Voxels[T], b *voxel.Voxels[U], processor BinaryProcessor[T, U]) {
	checkExtents(a.Extent(), b.Extent())
	extent := a.Extent()
	n := notifiersOf(processor)
	var p geometry.Point3i
	for p.Z = 0; p.Z < extent.Z; p.Z++ {
		n.changeSlice(p.Z)
		sa, sb := a.Slice(p.Z), b.Slice(p.Z)
		offset := 0
		for p.Y = 0; p.Y < extent.Y; p.Y++ {
			n.changeRow(p.Y)
			for p.X = 0; p.X < extent.X; p.X++ {
				processor.Process(p, sa, sb, offset)
				offset++
			}
		}
	}
}

// OverBuffers2Mask visits the voxels of two scene-sized buffers that are on
// in m. It panics if the buffer extents differ.
func OverBuffers2Mask[T, U voxel.Kind](m Mask, a *voxel.Voxels[T], b *voxel.Voxels[U], processor BinaryProcessor[T, U]) {
	checkExtents(a.Extent(), b.Extent())
	var sb []U
	z := -1
	OverBufferMask(m, a, BufferFunc[T](func(p geometry.Point3i, sa []T, offset int) {
		if p.Z != z {
			z = p.Z
			sb = b.Slice(z)
		}
		processor.Process(p, sa, sb, offset)
	}))
}

// OverBuffers3 visits every voxel of three buffers in lockstep. It panics if
// their extents differ.
func OverBuffers3[T, U, V voxel.Kind](a *voxel.Voxels[T], b *voxel.Voxels[U], c *voxel.Voxels[V], processor TernaryProcessor[T, U, V]) {
	checkExtents(a.Extent(), b.Extent(), c.Extent())
	extent := a.Extent()
	n := notifiersOf(processor)
	var p geometry.Point3i
	for p.Z = 0; p.Z < extent.Z; p.Z++ {
		n.changeSlice(p.Z)
		sa, sb, sc := a.Slice(p.Z), b.Slice(p.Z), c.Slice(p.Z)
		offset := 0
		for p.Y = 0; p.Y < extent.Y; p.Y++ {
			n.changeRow(p.Y)
			for p.X = 0; p.X < extent.X; p.X++ {
				processor.Process(p, sa, sb, sc, offset)
				offset++
			}
		}
	}
}

// OverBuffers3Mask visits the voxels of three scene-sized buffers that are
// on in m. It panics if the buffer extents differ.
func OverBuffers3Mask[T, U, V voxel.Kind](m Mask, a *voxel.Voxels[T], b *voxel.Voxels[U], c *voxel.Voxels[V], processor TernaryProcessor[T, U, V]) {
	checkExtents(a.Extent(), b.Extent(), c.Extent())
	var (
		sb []U
		sc []V
	)
	z := -1
	OverBufferMask(m, a, BufferFunc[T](func(p geometry.Point3i, sa []T, offset int) {
		if p.Z != z {
			z = p.Z
			sb, sc = b.Slice(z), c.Slice(z)
		}
		processor.Process(p, sa, sb, sc, offset)
	}))
}

// OverBuffersShifted visits every voxel of box inside a, pairing it with the
// voxel of b at point+shift. Shifted coordinates are not bounds-checked; the
// caller guarantees they fall inside b.
func OverBuffersShifted[T, U voxel.Kind](box geometry.BoundingBox, a *voxel.Voxels[T], b *voxel.Voxels[U], shift geometry.Point3i, processor ShiftedProcessor[T, U]) {
	extentA, extentB := a.Extent(), b.Extent()
	n := notifiersOf(processor)
	max := box.CornerMaxExclusive()
	var p geometry.Point3i
	for p.Z = box.Corner.Z; p.Z < max.Z; p.Z++ {
		n.changeSlice(p.Z)
		sa, sb := a.Slice(p.Z), b.Slice(p.Z+shift.Z)
		for p.Y = box.Corner.Y; p.Y < max.Y; p.Y++ {
			n.changeRow(p.Y)
			offsetA := extentA.OffsetXY(box.Corner.X, p.Y)
			offsetB := extentB.OffsetXY(box.Corner.X+shift.X, p.Y+shift.Y)
			for p.X = box.Corner.X; p.X < max.X; p.X++ {
				processor.Process(p, sa, sb, offsetA, offsetB)
				offsetA++
				offsetB++
			}
		}
	}
}
