// Package scale resizes a collection of masks as one unit, so that objects
// sharing a border before scaling still share it afterwards.
//
// Scaling each mask on its own rounds every box independently and opens
// gaps or overlaps along shared borders. Collective stamps the objects into
// one label raster, resizes the raster with nearest-neighbour
// interpolation and cuts the objects back out. Objects that overlap another
// object cannot share a raster and are scaled independently.
package scale

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"objmask/pkg/geometry"
	"objmask/pkg/interpolation"
	"objmask/pkg/iterate"
	"objmask/pkg/labels"
	"objmask/pkg/object"
	"objmask/pkg/spatial"
	"objmask/pkg/voxel"
)

// ErrEmptyCollection reports an attempt to scale no objects. It is also a
// geometry error.
var ErrEmptyCollection = errors.Wrap(geometry.ErrGeometry, "empty collection")

// Operation transforms a single mask before or after scaling.
type Operation func(*object.Mask) (*object.Mask, error)

// Options control Collective.
type Options struct {
	// Interpolator scales the objects that take the independent path.
	// Nil means linear.
	Interpolator interpolation.Interpolator
	// Clip, if set, clamps every scaled mask to a scene of this extent.
	Clip *geometry.Extent
	// MaxLabels lowers the label limit of the raster.
	MaxLabels int
	// MinLabelVolume drops recovered labels whose box is smaller. Their
	// objects are scaled independently instead.
	MinLabelVolume int
	// PreOperation is applied to every object before scaling.
	PreOperation Operation
	// PostOperation is applied to every scaled object.
	PostOperation Operation
	// Index configures the R-tree used to find overlapping objects.
	Index spatial.Options
	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Interpolator == nil {
		o.Interpolator = interpolation.Linear{}
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Index.Logger == nil {
		o.Index.Logger = o.Logger
	}
	return o
}

// Collective scales objects by factor and returns one scaled mask per input
// mask, in input order.
func Collective(objects *object.Collection, factor geometry.ScaleFactor, opts Options) (*Result, error) {
	if objects.IsEmpty() {
		return nil, errors.WithStack(ErrEmptyCollection)
	}
	if !factor.IsValid() {
		return nil, geometry.Errorf("invalid scale factor %v", factor)
	}
	opts = opts.withDefaults()
	log := opts.Logger.WithField("factor", factor.String())

	prepared := objects
	if opts.PreOperation != nil {
		var err error
		if prepared, err = objects.MapWithError(opts.PreOperation); err != nil {
			return nil, errors.Wrap(err, "pre-operation")
		}
	}

	overlapping := findOverlapping(prepared, opts.Index)
	log.WithFields(logrus.Fields{
		"objects":     prepared.Size(),
		"overlapping": len(overlapping),
	}).Debug("detected overlapping objects")

	box, err := prepared.BoundingBox()
	if err != nil {
		return nil, err
	}
	raster, err := labels.Create(prepared, box, labels.Options{
		MaxLabels: opts.MaxLabels,
		Skip:      func(i int) bool { return overlapping[i] },
		OnOverlap: func(i int, _ *object.Mask) { overlapping[i] = true },
	})
	if err != nil {
		return nil, err
	}
	scaledRaster, err := raster.Scale(factor)
	if err != nil {
		return nil, err
	}
	recovered := scaledRaster.Objects(opts.MinLabelVolume)
	log.WithFields(logrus.Fields{
		"labels":    raster.NumLabels(),
		"recovered": len(recovered),
		"raster":    scaledRaster.BoundingBox().String(),
	}).Debug("scaled label raster")

	res := newResult(objects)
	for label, index := range raster.Labels() {
		if m, ok := recovered[label]; ok {
			encoded, err := withBinaryValues(m, prepared.Get(index).BinaryValues())
			if err != nil {
				return nil, errors.Wrapf(err, "re-encoding object %d", index)
			}
			res.set(index, encoded, true)
		}
	}

	independent := 0
	for i := 0; i < prepared.Size(); i++ {
		if res.scaled[i] != nil {
			continue
		}
		m, err := prepared.Get(i).Scale(factor, opts.Interpolator, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		res.set(i, m, false)
		independent++
	}
	log.WithField("independent", independent).Debug("scaled remaining objects independently")

	for i, m := range res.scaled {
		if opts.Clip != nil {
			if m, err = m.ClampTo(*opts.Clip); err != nil {
				return nil, errors.Wrapf(err, "object %d", i)
			}
		}
		if opts.PostOperation != nil {
			if m, err = opts.PostOperation(m); err != nil {
				return nil, errors.Wrapf(err, "post-operation on object %d", i)
			}
		}
		res.scaled[i] = m
	}
	return res, nil
}

// findOverlapping marks every object that shares an on-voxel with another
// object. Both members of an overlapping pair are marked.
func findOverlapping(objects *object.Collection, opts spatial.Options) map[int]bool {
	idx := spatial.NewIndex(objects, opts)
	overlapping := make(map[int]bool)
	for i, m := range objects.Masks() {
		for _, h := range idx.IntersectsWith(m) {
			if h != i {
				overlapping[i] = true
				overlapping[h] = true
			}
		}
	}
	return overlapping
}

// withBinaryValues re-encodes m with bv, keeping its on-voxels.
func withBinaryValues(m *object.Mask, bv voxel.BinaryValues) (*object.Mask, error) {
	if m.BinaryValues() == bv {
		return m, nil
	}
	bvb := bv.AsByte()
	v := voxel.New[uint8](m.Extent())
	v.Fill(bvb.Off)
	local := m.ShiftToOrigin()
	iterate.OverMask(local, iterate.PointFunc(func(p geometry.Point3i) {
		v.Set(p, bvb.On)
	}))
	return object.NewMaskWithValues(m.BoundingBox(), v, bv)
}
