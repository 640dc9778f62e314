package iterate

import "objmask/pkg/geometry"

// traverseMask visits the on-voxels of m in global coordinates, passing the
// offset of each voxel inside the mask's own slices. Notifications fire for
// every slice and row of the mask's bounding box.
func traverseMask(m Mask, n notifiers, visit func(p geometry.Point3i, maskOffset int)) {
	box := m.BoundingBox()
	voxels := m.Voxels()
	on := m.BinaryValuesByte().On
	ext := box.Extent

	var p geometry.Point3i
	for z := 0; z < ext.Z; z++ {
		p.Z = box.Corner.Z + z
		n.changeSlice(p.Z)
		s := voxels.Slice(z)
		offset := 0
		for y := 0; y < ext.Y; y++ {
			p.Y = box.Corner.Y + y
			n.changeRow(p.Y)
			for x := 0; x < ext.X; x++ {
				if s[offset] == on {
					p.X = box.Corner.X + x
					visit(p, offset)
				}
				offset++
			}
		}
	}
}

// OverMask visits every on-voxel of m in global coordinates.
func OverMask(m Mask, processor PointProcessor) {
	traverseMask(m, notifiersOf(processor), func(p geometry.Point3i, _ int) {
		processor.Process(p)
	})
}

// OverMaskOffset visits every on-voxel of m, passing the offset of the
// voxel inside the mask's slices.
func OverMaskOffset(m Mask, processor OffsetProcessor) {
	traverseMask(m, notifiersOf(processor), processor.Process)
}

// OverMaskOptional visits the on-voxels of m, or every voxel of extent when
// m is nil.
func OverMaskOptional(extent geometry.Extent, m Mask, processor PointProcessor) {
	if m == nil {
		OverExtent(extent, processor)
		return
	}
	OverMask(m, processor)
}

// OverMaskIntersection visits every voxel that is on in both a and b. Only
// the intersection of the two bounding boxes is scanned. A nil b selects
// every on-voxel of a.
func OverMaskIntersection(a, b Mask, processor PointProcessor) {
	if b == nil {
		OverMask(a, processor)
		return
	}
	boxA, boxB := a.BoundingBox(), b.BoundingBox()
	inter, ok := boxA.Intersection(boxB)
	if !ok {
		return
	}
	voxA, voxB := a.Voxels(), b.Voxels()
	onA, onB := a.BinaryValuesByte().On, b.BinaryValuesByte().On
	traverse(inter, inter.Extent, notifiersOf(processor), func(p geometry.Point3i, _ int) {
		pa := p.Sub(boxA.Corner)
		pb := p.Sub(boxB.Corner)
		if voxA.Get(pa) == onA && voxB.Get(pb) == onB {
			processor.Process(p)
		}
	})
}
