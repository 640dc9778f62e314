package object

import (
	"github.com/pkg/errors"

	"objmask/pkg/geometry"
	"objmask/pkg/interpolation"
)

// Collection is an ordered list of masks. The same mask may appear more
// than once. Transformations return new collections; only Add, AddAll and
// Remove change a collection in place.
type Collection struct {
	masks []*Mask
}

// NewCollection creates a collection holding masks.
func NewCollection(masks ...*Mask) *Collection {
	return &Collection{masks: append([]*Mask(nil), masks...)}
}

// Add appends a mask.
func (c *Collection) Add(m *Mask) {
	c.masks = append(c.masks, m)
}

// AddAll appends every mask of other.
func (c *Collection) AddAll(other *Collection) {
	c.masks = append(c.masks, other.masks...)
}

// Remove deletes the mask at index.
func (c *Collection) Remove(index int) {
	c.masks = append(c.masks[:index], c.masks[index+1:]...)
}

// Get returns the mask at index.
func (c *Collection) Get(index int) *Mask {
	return c.masks[index]
}

// Size is the number of masks.
func (c *Collection) Size() int {
	return len(c.masks)
}

// IsEmpty reports whether the collection holds no masks.
func (c *Collection) IsEmpty() bool {
	return len(c.masks) == 0
}

// Masks returns a copy of the list of masks.
func (c *Collection) Masks() []*Mask {
	return append([]*Mask(nil), c.masks...)
}

// Map applies f to every mask.
func (c *Collection) Map(f func(*Mask) *Mask) *Collection {
	out := &Collection{masks: make([]*Mask, len(c.masks))}
	for i, m := range c.masks {
		out.masks[i] = f(m)
	}
	return out
}

// MapWithError applies f to every mask, stopping at the first failure.
func (c *Collection) MapWithError(f func(*Mask) (*Mask, error)) (*Collection, error) {
	out := &Collection{masks: make([]*Mask, len(c.masks))}
	for i, m := range c.masks {
		mapped, err := f(m)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		out.masks[i] = mapped
	}
	return out, nil
}

// Filter keeps the masks satisfying predicate, in order.
func (c *Collection) Filter(predicate func(*Mask) bool) *Collection {
	out := &Collection{}
	for _, m := range c.masks {
		if predicate(m) {
			out.masks = append(out.masks, m)
		}
	}
	return out
}

// FlatMap replaces each mask by the collection f returns for it.
func (c *Collection) FlatMap(f func(*Mask) *Collection) *Collection {
	out := &Collection{}
	for _, m := range c.masks {
		out.AddAll(f(m))
	}
	return out
}

// Duplicate copies the list; the masks themselves are shared.
func (c *Collection) Duplicate() *Collection {
	return NewCollection(c.masks...)
}

// DuplicateDeep copies the list and every mask's buffer.
func (c *Collection) DuplicateDeep() *Collection {
	return c.Map((*Mask).Duplicate)
}

// BoundingBox is the smallest box containing every mask. It fails for an
// empty collection.
func (c *Collection) BoundingBox() (geometry.BoundingBox, error) {
	boxes := make([]geometry.BoundingBox, len(c.masks))
	for i, m := range c.masks {
		boxes[i] = m.box
	}
	return geometry.UnionAll(boxes...)
}

// ShiftBy moves every mask by shift, sharing buffers.
func (c *Collection) ShiftBy(shift geometry.Point3i) *Collection {
	return c.Map(func(m *Mask) *Mask { return m.ShiftBy(shift) })
}

// ScaleIndependently scales each mask on its own. Shared borders between
// neighbouring masks may not survive; see the scale package for scaling a
// collection as a unit.
func (c *Collection) ScaleIndependently(factor geometry.ScaleFactor, interp interpolation.Interpolator, clip *geometry.Extent) (*Collection, error) {
	return c.MapWithError(func(m *Mask) (*Mask, error) {
		return m.Scale(factor, interp, clip)
	})
}

// NumberVoxelsOn is the total of on-voxels over all masks.
func (c *Collection) NumberVoxelsOn() int {
	total := 0
	for _, m := range c.masks {
		total += m.NumberVoxelsOn()
	}
	return total
}

// Merged combines every mask into a single mask. It fails for an empty
// collection.
func (c *Collection) Merged() (*Mask, error) {
	if c.IsEmpty() {
		return nil, geometry.Errorf("cannot merge an empty collection")
	}
	merged := c.masks[0].Duplicate()
	for _, m := range c.masks[1:] {
		merged = Merge(merged, m)
	}
	return merged, nil
}
