// Package object represents detected objects as binary masks confined to a
// bounding box, together with the algebra and collections built on them.
//
// A mask's voxel buffer may be shared by several Mask values (see ShiftBy,
// MapBoundingBoxPreserveExtent, Region and ExtractSlice). Such masks are
// aliases: SetOn, AssignOn and the other in-place assignments through one of
// them are visible through all. Duplicate is the only way to obtain an
// independently mutable copy. Masks are not safe for concurrent mutation.
package object

import (
	"fmt"

	"github.com/pkg/errors"

	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

// ErrUnsupportedOperation is the cause of failures where an operation does
// not support the mask's binary values.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Mask is a binary bitmap over a bounding box in scene coordinates. Every
// voxel equals either the on or the off value, and the buffer's extent
// always equals the box's extent.
type Mask struct {
	box    geometry.BoundingBox
	voxels *voxel.Voxels[uint8]
	bv     voxel.BinaryValues
	bvb    voxel.BinaryValuesByte
}

// NewMask creates a mask over box with every voxel off.
func NewMask(box geometry.BoundingBox) *Mask {
	return newOffMask(box, voxel.DefaultBinaryValues)
}

// NewMaskAllOn creates a mask over box with every voxel on.
func NewMaskAllOn(box geometry.BoundingBox) *Mask {
	m := NewMask(box)
	m.voxels.Fill(m.bvb.On)
	return m
}

// NewMaskFromVoxels creates a mask at the origin over an existing buffer,
// using the default binary values. The buffer is not copied.
func NewMaskFromVoxels(v *voxel.Voxels[uint8]) *Mask {
	bv := voxel.DefaultBinaryValues
	return &Mask{
		box:    geometry.NewBoundingBoxFromExtent(v.Extent()),
		voxels: v,
		bv:     bv,
		bvb:    bv.AsByte(),
	}
}

// NewMaskWithValues creates a mask over box using an existing buffer and
// binary values. The buffer is not copied and must have the box's extent.
func NewMaskWithValues(box geometry.BoundingBox, v *voxel.Voxels[uint8], bv voxel.BinaryValues) (*Mask, error) {
	if v.Extent() != box.Extent {
		return nil, geometry.Errorf("voxel extent %v does not match bounding box %v", v.Extent(), box)
	}
	return &Mask{box: box, voxels: v, bv: bv, bvb: bv.AsByte()}, nil
}

func newOffMask(box geometry.BoundingBox, bv voxel.BinaryValues) *Mask {
	m := &Mask{box: box, voxels: voxel.New[uint8](box.Extent), bv: bv, bvb: bv.AsByte()}
	if m.bvb.Off != 0 {
		m.voxels.Fill(m.bvb.Off)
	}
	return m
}

// alias returns a mask over box sharing v with m's binary values.
func (m *Mask) alias(box geometry.BoundingBox, v *voxel.Voxels[uint8]) *Mask {
	return &Mask{box: box, voxels: v, bv: m.bv, bvb: m.bvb}
}

// BoundingBox locates the mask in the scene.
func (m *Mask) BoundingBox() geometry.BoundingBox { return m.box }

// Extent is the size of the mask's bounding box.
func (m *Mask) Extent() geometry.Extent { return m.box.Extent }

// Voxels is the mask's buffer, possibly shared with other masks.
func (m *Mask) Voxels() *voxel.Voxels[uint8] { return m.voxels }

// BinaryValues are the on and off intensities.
func (m *Mask) BinaryValues() voxel.BinaryValues { return m.bv }

// BinaryValuesByte are the on and off intensities as bytes.
func (m *Mask) BinaryValuesByte() voxel.BinaryValuesByte { return m.bvb }

// Duplicate returns a deep copy owning its own buffer.
func (m *Mask) Duplicate() *Mask {
	return m.alias(m.box, m.voxels.Duplicate())
}

func (m *Mask) String() string {
	return fmt.Sprintf("mask{%v, %v}", m.box, m.bv)
}
