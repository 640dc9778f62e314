// Package spatial indexes the bounding boxes of a collection of masks in an
// R-tree so that overlap queries avoid scanning the whole collection.
//
// An Index stores keys and integer handles only. A handle is a position in
// the collection the index was built over; the index never changes the
// collection, and removing an entry from the index leaves the collection
// untouched. Callers that edit one must keep the other in step.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/sirupsen/logrus"

	"objmask/pkg/geometry"
	"objmask/pkg/iterate"
	"objmask/pkg/object"
)

const dimensions = 3

// Options configure the branching of the R-tree.
type Options struct {
	MinChildren int
	MaxChildren int
	Logger      logrus.FieldLogger
}

// DefaultOptions returns the branching factors used when none are given.
func DefaultOptions() Options {
	return Options{MinChildren: 2, MaxChildren: 8}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinChildren <= 0 {
		o.MinChildren = d.MinChildren
	}
	if o.MaxChildren < 2*o.MinChildren {
		o.MaxChildren = max(d.MaxChildren, 2*o.MinChildren)
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// entry is one key in the tree: the box a mask had when it was added, and
// its handle.
type entry struct {
	box    geometry.BoundingBox
	handle int
	rect   rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// rectOf converts a voxel box to a half-open R-tree rectangle, so boxes that
// merely touch do not intersect. Empty boxes have no rectangle.
func rectOf(box geometry.BoundingBox) (rtreego.Rect, bool) {
	if box.Extent.IsEmpty() {
		return rtreego.Rect{}, false
	}
	r, err := rtreego.NewRect(
		rtreego.Point{float64(box.Corner.X), float64(box.Corner.Y), float64(box.Corner.Z)},
		[]float64{float64(box.Extent.X), float64(box.Extent.Y), float64(box.Extent.Z)},
	)
	return r, err == nil
}

// Index is an R-tree over the bounding boxes of masks in a collection.
type Index struct {
	objects *object.Collection
	tree    *rtreego.Rtree
	entries []*entry
	log     logrus.FieldLogger
}

// NewIndex indexes every mask of objects under its position in the
// collection. Masks with an empty bounding box cannot be found by any query
// and are skipped.
func NewIndex(objects *object.Collection, opts Options) *Index {
	opts = opts.withDefaults()
	idx := &Index{objects: objects, log: opts.Logger}

	spatials := make([]rtreego.Spatial, 0, objects.Size())
	for i, m := range objects.Masks() {
		if e, ok := newEntry(m.BoundingBox(), i); ok {
			idx.entries = append(idx.entries, e)
			spatials = append(spatials, e)
		}
	}
	idx.tree = rtreego.NewTree(dimensions, opts.MinChildren, opts.MaxChildren, spatials...)
	idx.log.WithFields(logrus.Fields{
		"objects": objects.Size(),
		"indexed": len(idx.entries),
	}).Debug("built spatial index")
	return idx
}

func newEntry(box geometry.BoundingBox, handle int) (*entry, bool) {
	r, ok := rectOf(box)
	if !ok {
		return nil, false
	}
	return &entry{box: box, handle: handle, rect: r}, true
}

// Add indexes mask under handle, keyed by its current bounding box. The
// handle must refer to the mask's position in the collection, which the
// caller appends to separately. It reports false for an empty box.
func (idx *Index) Add(mask *object.Mask, handle int) bool {
	e, ok := newEntry(mask.BoundingBox(), handle)
	if !ok {
		return false
	}
	idx.entries = append(idx.entries, e)
	idx.tree.Insert(e)
	return true
}

// Remove drops the entry whose key equals the mask's current bounding box
// and whose handle is handle. Nothing happens when no entry matches; the
// collection is never modified.
func (idx *Index) Remove(mask *object.Mask, handle int) bool {
	box := mask.BoundingBox()
	for i, e := range idx.entries {
		if e.handle != handle || e.box != box {
			continue
		}
		if !idx.tree.Delete(e) {
			return false
		}
		idx.entries = append(idx.entries[:i], idx.entries[i+1:]...)
		return true
	}
	return false
}

// Size is the number of entries in the index.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

func (idx *Index) search(box geometry.BoundingBox) []*entry {
	r, ok := rectOf(box)
	if !ok {
		return nil
	}
	found := idx.tree.SearchIntersect(r)
	out := make([]*entry, len(found))
	for i, s := range found {
		out[i] = s.(*entry)
	}
	return out
}

// selectHandles returns the sorted, distinct handles of the entries
// intersecting box that satisfy keep.
func (idx *Index) selectHandles(box geometry.BoundingBox, keep func(*entry) bool) []int {
	seen := make(map[int]bool)
	var handles []int
	for _, e := range idx.search(box) {
		if seen[e.handle] || !keep(e) {
			continue
		}
		seen[e.handle] = true
		handles = append(handles, e.handle)
	}
	sort.Ints(handles)
	return handles
}

// CandidatesIntersecting returns the handles whose keys intersect box,
// without looking at any voxels.
func (idx *Index) CandidatesIntersecting(box geometry.BoundingBox) []int {
	return idx.selectHandles(box, func(*entry) bool { return true })
}

// Contains returns the handles of masks with an on-voxel at the global point
// p.
func (idx *Index) Contains(p geometry.Point3i) []int {
	unit := geometry.NewBoundingBox(p, geometry.Extent{X: 1, Y: 1, Z: 1})
	return idx.selectHandles(unit, func(e *entry) bool {
		return idx.objects.Get(e.handle).Contains(p)
	})
}

// IntersectsWith returns the handles of masks sharing at least one on-voxel
// with mask. If mask is itself indexed, its own handle is included.
func (idx *Index) IntersectsWith(mask *object.Mask) []int {
	return idx.selectHandles(mask.BoundingBox(), func(e *entry) bool {
		return mask.HasIntersectingVoxels(idx.objects.Get(e.handle))
	})
}

// IntersectsWithBox returns the handles of masks with at least one on-voxel
// inside box.
func (idx *Index) IntersectsWithBox(box geometry.BoundingBox) []int {
	return idx.selectHandles(box, func(e *entry) bool {
		m := idx.objects.Get(e.handle)
		inter, ok := box.Intersection(m.BoundingBox())
		if !ok {
			return false
		}
		_, found := iterate.FindInBox(inter, m.IsOn)
		return found
	})
}
