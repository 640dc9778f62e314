package object

import (
	"github.com/pkg/errors"

	"objmask/pkg/geometry"
	"objmask/pkg/interpolation"
	"objmask/pkg/voxel"
)

// Scale resamples the mask by factor. Only the canonical 0/255 binary
// values, in either polarity, are supported. When interp can produce
// intermediate values the result is rethresholded at the midpoint of the
// binary values. If clip is given, the result is clamped to a scene of that
// extent.
func (m *Mask) Scale(factor geometry.ScaleFactor, interp interpolation.Interpolator, clip *geometry.Extent) (*Mask, error) {
	if !m.bv.IsCanonical() {
		return nil, errors.Wrapf(ErrUnsupportedOperation, "cannot scale a mask with binary values %v", m.bv)
	}
	if !factor.IsValid() {
		return nil, geometry.Errorf("invalid scale factor %v", factor)
	}

	box := m.box.Scale(factor)
	voxels := interpolation.Resize(m.voxels, box.Extent, interp)
	if interp.CanValueRangeChange() {
		voxel.Binarize(voxels, m.bvb)
	}
	scaled := m.alias(box, voxels)
	if clip == nil {
		return scaled, nil
	}
	return scaled.ClampTo(*clip)
}
