package labels

import (
	"objmask/pkg/geometry"
	"objmask/pkg/iterate"
	"objmask/pkg/object"
	"objmask/pkg/voxel"
)

// bounds accumulates the tight box of one label.
type bounds struct {
	min, max geometry.Point3i
}

func (b *bounds) add(p geometry.Point3i) {
	b.min = b.min.Min(p)
	b.max = b.max.Max(p)
}

func (b *bounds) box() geometry.BoundingBox {
	box, _ := geometry.NewBoundingBoxFromCorners(b.min, b.max)
	return box
}

// ExtractObjects returns one mask per non-zero label of v, keyed by label,
// positioned in v's coordinates. The tight box of every label comes from a
// single pass over v. Labels whose box has a volume below minVolume are
// dropped.
func ExtractObjects(v *voxel.Voxels[uint16], minVolume int) map[int]*object.Mask {
	found := make(map[uint16]*bounds)
	iterate.OverBuffer[uint16](v, iterate.BufferFunc[uint16](func(p geometry.Point3i, buffer []uint16, offset int) {
		label := buffer[offset]
		if label == 0 {
			return
		}
		if b, ok := found[label]; ok {
			b.add(p)
			return
		}
		found[label] = &bounds{min: p, max: p}
	}))

	masks := make(map[int]*object.Mask, len(found))
	for label, b := range found {
		box := b.box()
		if box.Volume() < minVolume {
			continue
		}
		m := object.NewMask(box)
		mv := m.Voxels()
		on := m.BinaryValuesByte().On
		iterate.OverBufferBox[uint16](v, box, iterate.BufferFunc[uint16](func(p geometry.Point3i, buffer []uint16, offset int) {
			if buffer[offset] == label {
				mv.Set(p.Sub(box.Corner), on)
			}
		}))
		masks[int(label)] = m
	}
	return masks
}
