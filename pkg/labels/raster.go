// Package labels stamps a collection of masks into a single integer raster,
// one label per mask, and recovers masks from such a raster. Label 0 is
// background.
package labels

import (
	"math"

	"github.com/pkg/errors"

	"objmask/pkg/geometry"
	"objmask/pkg/interpolation"
	"objmask/pkg/iterate"
	"objmask/pkg/object"
	"objmask/pkg/voxel"
)

// MaxLabels is the largest number of labels a raster holds: every uint16
// value except background.
const MaxLabels = math.MaxUint16 - 1

var (
	// ErrCapacity reports more objects than available labels.
	ErrCapacity = errors.New("label capacity exceeded")
	// ErrOverlap reports an object that could not be stamped when no
	// overlap handler was supplied.
	ErrOverlap = errors.New("object overlaps an earlier object")
)

// OverlapHandler receives an object that was not stamped, with its index in
// the input collection.
type OverlapHandler func(index int, mask *object.Mask)

// Options control Create.
type Options struct {
	// MaxLabels lowers the label limit. Zero or values above the package
	// MaxLabels mean the package limit.
	MaxLabels int
	// OnOverlap receives objects that overlap an already stamped object,
	// and those selected by Skip. If nil, such an object is an error.
	OnOverlap OverlapHandler
	// Skip selects objects to hand to OnOverlap without trying to stamp
	// them.
	Skip func(index int) bool
}

func (o Options) limit() int {
	if o.MaxLabels <= 0 || o.MaxLabels > MaxLabels {
		return MaxLabels
	}
	return o.MaxLabels
}

// Raster is a label buffer positioned in the scene by a bounding box.
type Raster struct {
	box     geometry.BoundingBox
	voxels  *voxel.Voxels[uint16]
	indices []int
}

// Create stamps objects, in order, into a raster covering box. The n-th
// stamped object receives label n. An object is stamped only if every one
// of its on-voxels is still background; otherwise it is passed to
// opts.OnOverlap and receives no label. Every object must lie inside box.
func Create(objects *object.Collection, box geometry.BoundingBox, opts Options) (*Raster, error) {
	r := &Raster{box: box, voxels: voxel.New[uint16](box.Extent)}
	limit := opts.limit()
	origin := geometry.Point3i{}.Sub(box.Corner)

	for i, m := range objects.Masks() {
		if opts.Skip != nil && opts.Skip(i) {
			if err := r.reject(opts, i, m); err != nil {
				return nil, err
			}
			continue
		}
		if !box.ContainsBox(m.BoundingBox()) {
			return nil, geometry.Errorf("object %d at %v lies outside the raster %v", i, m.BoundingBox(), box)
		}
		local := m.ShiftBy(origin)
		if _, taken := iterate.FindInMask(local, func(p geometry.Point3i) bool {
			return r.voxels.Get(p) != 0
		}); taken {
			if err := r.reject(opts, i, m); err != nil {
				return nil, err
			}
			continue
		}
		if len(r.indices) >= limit {
			return nil, errors.Wrapf(ErrCapacity, "object %d needs label %d, limit is %d", i, len(r.indices)+1, limit)
		}
		r.indices = append(r.indices, i)
		label := uint16(len(r.indices))
		iterate.OverBufferMask[uint16](local, r.voxels, iterate.BufferFunc[uint16](func(_ geometry.Point3i, buffer []uint16, offset int) {
			buffer[offset] = label
		}))
	}
	return r, nil
}

func (r *Raster) reject(opts Options, index int, m *object.Mask) error {
	if opts.OnOverlap == nil {
		return errors.Wrapf(ErrOverlap, "object %d at %v", index, m.BoundingBox())
	}
	opts.OnOverlap(index, m)
	return nil
}

// BoundingBox is the raster's position in the scene.
func (r *Raster) BoundingBox() geometry.BoundingBox {
	return r.box
}

// Voxels returns the label buffer.
func (r *Raster) Voxels() *voxel.Voxels[uint16] {
	return r.voxels
}

// NumLabels is the number of stamped objects.
func (r *Raster) NumLabels() int {
	return len(r.indices)
}

// Labels maps each label to the index of the input object that received
// it. The result is a copy.
func (r *Raster) Labels() map[int]int {
	out := make(map[int]int, len(r.indices))
	for i, index := range r.indices {
		out[i+1] = index
	}
	return out
}

// IndexOf returns the input index carrying label, if any.
func (r *Raster) IndexOf(label int) (int, bool) {
	if label < 1 || label > len(r.indices) {
		return 0, false
	}
	return r.indices[label-1], true
}

// Scale resamples the raster by factor with nearest-neighbour
// interpolation, the only kind that never invents labels. The corner and
// extent of the box are scaled separately.
func (r *Raster) Scale(factor geometry.ScaleFactor) (*Raster, error) {
	if !factor.IsValid() {
		return nil, geometry.Errorf("invalid scale factor %v", factor)
	}
	box := r.box.Scale(factor)
	return &Raster{
		box:     box,
		voxels:  interpolation.Resize(r.voxels, box.Extent, interpolation.NearestNeighbor{}),
		indices: r.indices,
	}, nil
}

// Objects recovers one mask per label present in the raster, in scene
// coordinates. See ExtractObjects for minVolume.
func (r *Raster) Objects(minVolume int) map[int]*object.Mask {
	masks := ExtractObjects(r.voxels, minVolume)
	for label, m := range masks {
		masks[label] = m.ShiftBy(r.box.Corner)
	}
	return masks
}
