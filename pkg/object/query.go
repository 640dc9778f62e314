package object

import (
	"gonum.org/v1/gonum/spatial/r3"

	"objmask/pkg/geometry"
	"objmask/pkg/iterate"
)

// IsOn reports whether the voxel at a global point is on. Points outside the
// bounding box are off.
func (m *Mask) IsOn(p geometry.Point3i) bool {
	if !m.box.Contains(p) {
		return false
	}
	return m.voxels.Get(p.Sub(m.box.Corner)) == m.bvb.On
}

// Contains is IsOn: whether the global point belongs to the object.
func (m *Mask) Contains(p geometry.Point3i) bool {
	return m.IsOn(p)
}

// NumberVoxelsOn counts the on-voxels.
func (m *Mask) NumberVoxelsOn() int {
	return m.voxels.Count(m.bvb.On)
}

// IsEmpty reports whether the mask has no on-voxels.
func (m *Mask) IsEmpty() bool {
	return !m.voxels.Any(m.bvb.On)
}

// HasIntersectingVoxels reports whether the two masks share at least one
// on-voxel. It stops at the first shared voxel.
func (m *Mask) HasIntersectingVoxels(other *Mask) bool {
	_, found := iterate.FindInMaskIntersection(m, other)
	return found
}

// FindArbitraryOnVoxel returns an on-voxel in global coordinates. The
// centroid of the bounding box is tried first, then the first on-voxel in
// z-y-x order, so repeated calls on an unchanged mask agree. It returns
// false when the mask is empty.
func (m *Mask) FindArbitraryOnVoxel() (geometry.Point3i, bool) {
	centroid := m.box.Centroid()
	if m.IsOn(centroid) {
		return centroid, true
	}
	return iterate.FindInMask(m, func(geometry.Point3i) bool { return true })
}

// CenterOfGravity is the mean position of the on-voxels, or false when the
// mask is empty.
func (m *Mask) CenterOfGravity() (r3.Vec, bool) {
	var sum r3.Vec
	count := 0
	iterate.OverMask(m, iterate.PointFunc(func(p geometry.Point3i) {
		sum = r3.Add(sum, p.Vec())
		count++
	}))
	if count == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/float64(count), sum), true
}

// Equals reports whether both masks occupy the same bounding box and have
// the same on-voxels, regardless of their binary values.
func (m *Mask) Equals(other *Mask) bool {
	if m.box != other.box {
		return false
	}
	_, differs := iterate.FindInBox(m.box, func(p geometry.Point3i) bool {
		return m.IsOn(p) != other.IsOn(p)
	})
	return !differs
}
