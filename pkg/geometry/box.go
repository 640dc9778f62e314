package geometry

import "fmt"

// BoundingBox is an axis-aligned region: a minimum corner plus an extent.
// The corner is inclusive; CornerMax is the last voxel inside the box.
type BoundingBox struct {
	Corner Point3i
	Extent Extent
}

// NewBoundingBox creates a box at corner with the given extent.
func NewBoundingBox(corner Point3i, extent Extent) BoundingBox {
	return BoundingBox{Corner: corner, Extent: extent}
}

// NewBoundingBoxFromExtent creates a box at the origin covering extent.
func NewBoundingBoxFromExtent(extent Extent) BoundingBox {
	return BoundingBox{Extent: extent}
}

// NewBoundingBoxFromCorners creates the box spanning two inclusive corners.
func NewBoundingBoxFromCorners(min, max Point3i) (BoundingBox, error) {
	if max.X < min.X || max.Y < min.Y || max.Z < min.Z {
		return BoundingBox{}, Errorf("corner %v is not below corner %v", min, max)
	}
	return BoundingBox{
		Corner: min,
		Extent: Extent{max.X - min.X + 1, max.Y - min.Y + 1, max.Z - min.Z + 1},
	}, nil
}

// CornerMax is the inclusive maximum corner.
func (b BoundingBox) CornerMax() Point3i {
	return b.CornerMaxExclusive().Sub(Point3i{1, 1, 1})
}

// CornerMaxExclusive is one past the maximum corner along each axis.
func (b BoundingBox) CornerMaxExclusive() Point3i {
	return b.Corner.Add(b.Extent.AsPoint())
}

// Volume is the number of voxels in the box.
func (b BoundingBox) Volume() int {
	return b.Extent.Volume()
}

// Contains reports whether p lies inside the box.
func (b BoundingBox) Contains(p Point3i) bool {
	return b.Extent.Contains(p.Sub(b.Corner))
}

// ContainsBox reports whether o lies entirely inside b.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	if o.Extent.IsEmpty() {
		return b.Contains(o.Corner)
	}
	return b.Contains(o.Corner) && b.Contains(o.CornerMax())
}

// Intersects reports whether the two boxes share at least one voxel.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	_, ok := b.Intersection(o)
	return ok
}

// Intersection returns the overlapping region of two boxes, and false if
// they share no voxel.
func (b BoundingBox) Intersection(o BoundingBox) (BoundingBox, bool) {
	lo := b.Corner.Max(o.Corner)
	hi := b.CornerMaxExclusive().Min(o.CornerMaxExclusive())
	if hi.X <= lo.X || hi.Y <= lo.Y || hi.Z <= lo.Z {
		return BoundingBox{}, false
	}
	return BoundingBox{Corner: lo, Extent: Extent{hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z}}, true
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	lo := b.Corner.Min(o.Corner)
	hi := b.CornerMaxExclusive().Max(o.CornerMaxExclusive())
	return BoundingBox{Corner: lo, Extent: Extent{hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z}}
}

// UnionAll returns the smallest box containing every box. It fails when no
// box is given.
func UnionAll(boxes ...BoundingBox) (BoundingBox, error) {
	if len(boxes) == 0 {
		return BoundingBox{}, Errorf("cannot form the union of zero bounding boxes")
	}
	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	return union, nil
}

// ClampTo restricts the box to a scene of the given extent at the origin.
// It returns false if nothing of the box remains.
func (b BoundingBox) ClampTo(extent Extent) (BoundingBox, bool) {
	return b.Intersection(NewBoundingBoxFromExtent(extent))
}

// ShiftBy moves the box by shift.
func (b BoundingBox) ShiftBy(shift Point3i) BoundingBox {
	return BoundingBox{Corner: b.Corner.Add(shift), Extent: b.Extent}
}

// ShiftTo moves the box so its corner is at corner.
func (b BoundingBox) ShiftTo(corner Point3i) BoundingBox {
	return BoundingBox{Corner: corner, Extent: b.Extent}
}

// ShiftToOrigin moves the box so its corner is at the origin.
func (b BoundingBox) ShiftToOrigin() BoundingBox {
	return BoundingBox{Extent: b.Extent}
}

// RelativePositionTo is the corner of b expressed relative to other's corner.
func (b BoundingBox) RelativePositionTo(other BoundingBox) Point3i {
	return b.Corner.Sub(other.Corner)
}

// Centroid is the integer center of the box.
func (b BoundingBox) Centroid() Point3i {
	return b.Corner.Add(Point3i{b.Extent.X / 2, b.Extent.Y / 2, b.Extent.Z / 2})
}

// Scale scales the corner and the extent independently.
func (b BoundingBox) Scale(f ScaleFactor) BoundingBox {
	return BoundingBox{Corner: b.Corner.Scale(f), Extent: b.Extent.Scale(f)}
}

// Grow moves the corner back by negative and widens the extent by negative
// plus positive.
func (b BoundingBox) Grow(negative, positive Point3i) BoundingBox {
	return BoundingBox{
		Corner: b.Corner.Sub(negative),
		Extent: b.Extent.Grow(negative.Add(positive)),
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%v+%v", b.Corner, b.Extent)
}
