package iterate

import "objmask/pkg/geometry"

// traverse visits every voxel of box, passing each point's offset inside a
// slice of a buffer of the given extent.
func traverse(box geometry.BoundingBox, extent geometry.Extent, n notifiers, visit func(p geometry.Point3i, offset int)) {
	max := box.CornerMaxExclusive()
	var p geometry.Point3i
	for p.Z = box.Corner.Z; p.Z < max.Z; p.Z++ {
		n.changeSlice(p.Z)
		for p.Y = box.Corner.Y; p.Y < max.Y; p.Y++ {
			n.changeRow(p.Y)
			offset := extent.OffsetXY(box.Corner.X, p.Y)
			for p.X = box.Corner.X; p.X < max.X; p.X++ {
				visit(p, offset)
				offset++
			}
		}
	}
}

// OverExtent visits every voxel of extent.
func OverExtent(extent geometry.Extent, processor PointProcessor) {
	traverse(geometry.NewBoundingBoxFromExtent(extent), extent, notifiersOf(processor), func(p geometry.Point3i, _ int) {
		processor.Process(p)
	})
}

// OverExtentOffset visits every voxel of extent with its slice offset.
func OverExtentOffset(extent geometry.Extent, processor OffsetProcessor) {
	traverse(geometry.NewBoundingBoxFromExtent(extent), extent, notifiersOf(processor), processor.Process)
}

// OverBox visits every voxel of box.
func OverBox(box geometry.BoundingBox, processor PointProcessor) {
	traverse(box, box.Extent, notifiersOf(processor), func(p geometry.Point3i, _ int) {
		processor.Process(p)
	})
}

// OverBoxOffset visits every voxel of box, which lies inside a buffer of the
// given extent, with its offset in that buffer's slices.
func OverBoxOffset(extent geometry.Extent, box geometry.BoundingBox, processor OffsetProcessor) {
	traverse(box, extent, notifiersOf(processor), processor.Process)
}
