package iterate

import (
	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

// FindInBox returns the first point of box, in z-y-x order, satisfying
// predicate, or false if none does.
func FindInBox(box geometry.BoundingBox, predicate func(point geometry.Point3i) bool) (geometry.Point3i, bool) {
	max := box.CornerMaxExclusive()
	var p geometry.Point3i
	for p.Z = box.Corner.Z; p.Z < max.Z; p.Z++ {
		for p.Y = box.Corner.Y; p.Y < max.Y; p.Y++ {
			for p.X = box.Corner.X; p.X < max.X; p.X++ {
				if predicate(p) {
					return p, true
				}
			}
		}
	}
	return geometry.Point3i{}, false
}

// FindInExtent is FindInBox over a whole extent at the origin.
func FindInExtent(extent geometry.Extent, predicate func(point geometry.Point3i) bool) (geometry.Point3i, bool) {
	return FindInBox(geometry.NewBoundingBoxFromExtent(extent), predicate)
}

// FindInMask returns the first on-voxel of m, in global coordinates,
// satisfying predicate.
func FindInMask(m Mask, predicate func(point geometry.Point3i) bool) (geometry.Point3i, bool) {
	box := m.BoundingBox()
	voxels := m.Voxels()
	on := m.BinaryValuesByte().On
	ext := box.Extent
	for z := 0; z < ext.Z; z++ {
		s := voxels.Slice(z)
		offset := 0
		for y := 0; y < ext.Y; y++ {
			for x := 0; x < ext.X; x++ {
				if s[offset] == on {
					p := box.Corner.Add(geometry.Point3i{X: x, Y: y, Z: z})
					if predicate(p) {
						return p, true
					}
				}
				offset++
			}
		}
	}
	return geometry.Point3i{}, false
}

// FindInMaskIntersection returns the first voxel on in both a and b, or the
// first on-voxel of a when b is nil.
func FindInMaskIntersection(a, b Mask) (geometry.Point3i, bool) {
	if b == nil {
		return FindInMask(a, func(geometry.Point3i) bool { return true })
	}
	boxA, boxB := a.BoundingBox(), b.BoundingBox()
	inter, ok := boxA.Intersection(boxB)
	if !ok {
		return geometry.Point3i{}, false
	}
	voxA, voxB := a.Voxels(), b.Voxels()
	onA, onB := a.BinaryValuesByte().On, b.BinaryValuesByte().On
	return FindInBox(inter, func(p geometry.Point3i) bool {
		return voxA.Get(p.Sub(boxA.Corner)) == onA && voxB.Get(p.Sub(boxB.Corner)) == onB
	})
}

// FindInBuffer returns the first voxel of v satisfying predicate.
func FindInBuffer[T voxel.Kind](v *voxel.Voxels[T], predicate func(point geometry.Point3i, buffer []T, offset int) bool) (geometry.Point3i, bool) {
	extent := v.Extent()
	var p geometry.Point3i
	for p.Z = 0; p.Z < extent.Z; p.Z++ {
		buffer := v.Slice(p.Z)
		offset := 0
		for p.Y = 0; p.Y < extent.Y; p.Y++ {
			for p.X = 0; p.X < extent.X; p.X++ {
				if predicate(p, buffer, offset) {
					return p, true
				}
				offset++
			}
		}
	}
	return geometry.Point3i{}, false
}
