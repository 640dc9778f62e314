package scale

import "objmask/pkg/object"

// Result pairs every input mask with its scaled mask.
type Result struct {
	originals  []*object.Mask
	scaled     []*object.Mask
	collective []bool
}

func newResult(objects *object.Collection) *Result {
	return &Result{
		originals:  objects.Masks(),
		scaled:     make([]*object.Mask, objects.Size()),
		collective: make([]bool, objects.Size()),
	}
}

func (r *Result) set(index int, m *object.Mask, collective bool) {
	r.scaled[index] = m
	r.collective[index] = collective
}

// Size is the number of scaled masks, always the number of inputs.
func (r *Result) Size() int {
	return len(r.scaled)
}

// At returns the scaled mask of the input at index.
func (r *Result) At(index int) *object.Mask {
	return r.scaled[index]
}

// Get returns the scaled mask of original, which must be one of the input
// masks as passed in (before any pre-operation). If the same mask was passed
// more than once, the first occurrence wins.
func (r *Result) Get(original *object.Mask) (*object.Mask, bool) {
	for i, m := range r.originals {
		if m == original {
			return r.scaled[i], true
		}
	}
	return nil, false
}

// Collective reports whether the input at index went through the shared
// label raster rather than being scaled on its own.
func (r *Result) Collective(index int) bool {
	return r.collective[index]
}

// Scaled returns the scaled masks in input order.
func (r *Result) Scaled() *object.Collection {
	return object.NewCollection(r.scaled...)
}
