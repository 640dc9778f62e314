package object

import "objmask/pkg/geometry"

// SetOn turns on the voxel at a global point inside the bounding box.
func (m *Mask) SetOn(p geometry.Point3i) error {
	return m.set(p, m.bvb.On)
}

// SetOff turns off the voxel at a global point inside the bounding box.
func (m *Mask) SetOff(p geometry.Point3i) error {
	return m.set(p, m.bvb.Off)
}

func (m *Mask) set(p geometry.Point3i, value uint8) error {
	if !m.box.Contains(p) {
		return geometry.Errorf("point %v lies outside the mask's bounding box %v", p, m.box)
	}
	m.voxels.Set(p.Sub(m.box.Corner), value)
	return nil
}

// AssignOn turns on every voxel of a global box, restricted to the mask's
// bounding box. It fails if the boxes do not intersect.
func (m *Mask) AssignOn(box geometry.BoundingBox) error {
	return m.assign(box, m.bvb.On)
}

// AssignOff turns off every voxel of a global box, restricted to the mask's
// bounding box. It fails if the boxes do not intersect.
func (m *Mask) AssignOff(box geometry.BoundingBox) error {
	return m.assign(box, m.bvb.Off)
}

func (m *Mask) assign(box geometry.BoundingBox, value uint8) error {
	inter, ok := box.Intersection(m.box)
	if !ok {
		return geometry.Errorf("box %v does not intersect the mask's bounding box %v", box, m.box)
	}
	m.voxels.FillBox(inter.ShiftBy(geometry.Point3i{}.Sub(m.box.Corner)), value)
	return nil
}
