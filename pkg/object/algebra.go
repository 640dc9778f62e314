package object

import (
	"objmask/pkg/geometry"
	"objmask/pkg/iterate"
)

// ShiftBy returns a mask moved by shift, sharing this mask's buffer.
func (m *Mask) ShiftBy(shift geometry.Point3i) *Mask {
	return m.alias(m.box.ShiftBy(shift), m.voxels)
}

// ShiftToOrigin returns a mask with its corner at the origin, sharing this
// mask's buffer.
func (m *Mask) ShiftToOrigin() *Mask {
	return m.alias(m.box.ShiftToOrigin(), m.voxels)
}

// MapBoundingBoxPreserveExtent relocates the mask to box, which must have
// the same extent. The buffer is shared.
func (m *Mask) MapBoundingBoxPreserveExtent(box geometry.BoundingBox) (*Mask, error) {
	if box.Extent != m.box.Extent {
		return nil, geometry.Errorf("cannot map %v onto %v: extents differ", m.box, box)
	}
	return m.alias(box, m.voxels), nil
}

// MapBoundingBoxChangeExtent places the mask inside a larger box. The new
// box must be at least as large in every dimension and contain the current
// box. If box equals the current box, the buffer is reused; otherwise a new
// buffer is allocated, the voxels are copied to their relative position and
// the rest is off.
func (m *Mask) MapBoundingBoxChangeExtent(box geometry.BoundingBox) (*Mask, error) {
	if !box.Extent.GreaterOrEqual(m.box.Extent) {
		return nil, geometry.Errorf("new extent %v is smaller than the existing extent %v", box.Extent, m.box.Extent)
	}
	if box == m.box {
		return m.alias(box, m.voxels), nil
	}
	if !box.ContainsBox(m.box) {
		return nil, geometry.Errorf("new bounding box %v does not contain the existing box %v", box, m.box)
	}
	out := newOffMask(box, m.bv)
	m.voxels.CopyTo(m.box.ShiftToOrigin(), out.voxels, m.box.RelativePositionTo(box))
	return out, nil
}

// GrowBuffer enlarges the bounding box by negative before the corner and by
// positive after the far corner, in a newly allocated buffer whose new
// voxels are off. If clip is given, the grown box must lie inside a scene of
// that extent.
func (m *Mask) GrowBuffer(negative, positive geometry.Point3i, clip *geometry.Extent) (*Mask, error) {
	grown := m.box.Grow(negative, positive)
	if clip != nil && !clip.ContainsBox(grown) {
		return nil, geometry.Errorf("cannot grow %v to %v: outside the clip region %v", m.box, grown, *clip)
	}
	if !grown.ContainsBox(m.box) {
		return nil, geometry.Errorf("growth (%v, %v) would shrink %v", negative, positive, m.box)
	}
	out := newOffMask(grown, m.bv)
	m.voxels.CopyTo(m.box.ShiftToOrigin(), out.voxels, negative)
	return out, nil
}

// GrowToZ turns a single-slice mask into a mask of depth sz, repeating the
// slice. The corner is unchanged.
func (m *Mask) GrowToZ(sz int) (*Mask, error) {
	if m.box.Extent.Z != 1 {
		return nil, geometry.Errorf("only a mask with a single z-slice can grow in z, got %v", m.box.Extent)
	}
	if sz < 1 {
		return nil, geometry.Errorf("z-extent must be at least 1, got %d", sz)
	}
	box := m.box
	box.Extent.Z = sz
	out := newOffMask(box, m.bv)
	src := m.voxels.Slice(0)
	for z := 0; z < sz; z++ {
		copy(out.voxels.Slice(z), src)
	}
	return out, nil
}

// Region returns the part of the mask inside box, which must lie within the
// mask's bounding box. With reuse, a box spanning the full XY plane shares
// the underlying slices instead of copying them.
func (m *Mask) Region(box geometry.BoundingBox, reuse bool) (*Mask, error) {
	if !m.box.ContainsBox(box) {
		return nil, geometry.Errorf("region %v is not contained in %v", box, m.box)
	}
	fullPlane := box.Corner.X == m.box.Corner.X && box.Corner.Y == m.box.Corner.Y &&
		box.Extent.X == m.box.Extent.X && box.Extent.Y == m.box.Extent.Y
	if reuse && fullPlane {
		return m.alias(box, m.voxels.SubSlices(box.Corner.Z-m.box.Corner.Z, box.Extent.Z)), nil
	}
	return m.RegionIntersecting(box)
}

// RegionIntersecting returns a mask shaped exactly like box, holding this
// mask's voxels where the two boxes overlap and off elsewhere. It fails if
// box does not intersect the mask's bounding box.
func (m *Mask) RegionIntersecting(box geometry.BoundingBox) (*Mask, error) {
	inter, ok := box.Intersection(m.box)
	if !ok {
		return nil, geometry.Errorf("box %v does not intersect the mask's bounding box %v", box, m.box)
	}
	out := newOffMask(box, m.bv)
	m.voxels.CopyTo(inter.ShiftBy(geometry.Point3i{}.Sub(m.box.Corner)), out.voxels, inter.RelativePositionTo(box))
	return out, nil
}

// ClampTo restricts the mask to a scene of the given extent. A mask already
// inside the scene is returned unchanged; one entirely outside is an error.
func (m *Mask) ClampTo(extent geometry.Extent) (*Mask, error) {
	if extent.ContainsBox(m.box) {
		return m, nil
	}
	clamped, ok := m.box.ClampTo(extent)
	if !ok {
		return nil, geometry.Errorf("mask %v lies entirely outside the scene %v", m.box, extent)
	}
	return m.RegionIntersecting(clamped)
}

// ExtractSlice returns the single z-slice at global z as a mask sharing the
// slice's voxels. With keepZ the slice keeps its z-coordinate, otherwise it
// is placed at z=0.
func (m *Mask) ExtractSlice(z int, keepZ bool) (*Mask, error) {
	local := z - m.box.Corner.Z
	if local < 0 || local >= m.box.Extent.Z {
		return nil, geometry.Errorf("slice %d lies outside %v", z, m.box)
	}
	box := m.box
	box.Extent.Z = 1
	box.Corner.Z = 0
	if keepZ {
		box.Corner.Z = z
	}
	return m.alias(box, m.voxels.SubSlices(local, 1)), nil
}

// Flatten projects the mask along z: a voxel of the single output slice is
// on if it is on in any slice.
func (m *Mask) Flatten() *Mask {
	box := m.box
	box.Extent.Z = 1
	out := newOffMask(box, m.bv)
	plane := out.voxels.Slice(0)
	iterate.OverMaskOffset(m, iterate.OffsetFunc(func(_ geometry.Point3i, offset int) {
		plane[offset] = out.bvb.On
	}))
	return out
}

// Invert returns a copy whose on-voxels are this mask's off-voxels. The
// buffer is duplicated and the binary values swapped.
func (m *Mask) Invert() *Mask {
	bv := m.bv.Invert()
	return &Mask{box: m.box, voxels: m.voxels.Duplicate(), bv: bv, bvb: bv.AsByte()}
}

// Intersect returns a mask over the intersection of the two bounding boxes,
// optionally clamped to a scene extent, whose voxels are on where both a and
// b are on. It returns false when the boxes do not overlap, when clamping
// removes the overlap, or when no voxel is on in both. The result uses a's
// binary values.
func Intersect(a, b *Mask, clamp *geometry.Extent) (*Mask, bool) {
	inter, ok := a.box.Intersection(b.box)
	if !ok {
		return nil, false
	}
	if clamp != nil {
		if inter, ok = inter.ClampTo(*clamp); !ok {
			return nil, false
		}
	}
	out := newOffMask(inter, a.bv)
	found := false
	iterate.OverMaskIntersection(a, b, iterate.PointFunc(func(p geometry.Point3i) {
		if inter.Contains(p) {
			out.voxels.Set(p.Sub(inter.Corner), out.bvb.On)
			found = true
		}
	}))
	if !found {
		return nil, false
	}
	return out, true
}

// Merge returns a mask over the union of the bounding boxes whose voxels are
// on where either a or b is on. The result uses a's binary values.
func Merge(a, b *Mask) *Mask {
	out := newOffMask(a.box.Union(b.box), a.bv)
	stamp := iterate.PointFunc(func(p geometry.Point3i) {
		out.voxels.Set(p.Sub(out.box.Corner), out.bvb.On)
	})
	iterate.OverMask(a, stamp)
	iterate.OverMask(b, stamp)
	return out
}
