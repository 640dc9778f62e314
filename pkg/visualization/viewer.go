// Package visualization renders a collection of masks for inspection: as
// grey-level images of planes through the scene, or as text.
package visualization

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/pkg/errors"

	"objmask/pkg/geometry"
	"objmask/pkg/iterate"
	"objmask/pkg/object"
	"objmask/pkg/voxel"
)

// glyphs label objects in text renderings, cycling when exhausted.
const glyphs = "123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Viewer paints the masks of a collection into a scene of fixed extent.
// Object i is drawn with label i+1; where objects overlap, the later one is
// drawn. Voxels outside the scene are not drawn.
type Viewer struct {
	objects *object.Collection
	scene   geometry.Extent
	labels  *voxel.Voxels[uint16]
}

// NewViewer creates a viewer of objects in a scene of the given extent.
func NewViewer(objects *object.Collection, scene geometry.Extent) *Viewer {
	return &Viewer{objects: objects, scene: scene}
}

// Labels returns the scene raster: 0 for background, i+1 where object i is
// on. It is computed on first use.
func (v *Viewer) Labels() *voxel.Voxels[uint16] {
	if v.labels != nil {
		return v.labels
	}
	v.labels = voxel.New[uint16](v.scene)
	for i, m := range v.objects.Masks() {
		label := uint16(i + 1)
		iterate.OverBufferMask[uint16](m, v.labels, iterate.BufferFunc[uint16](func(_ geometry.Point3i, buffer []uint16, offset int) {
			buffer[offset] = label
		}))
	}
	return v.labels
}

// GreyLevel is the intensity object label is drawn with when there are n
// objects. Levels are distinct for up to 255 objects.
func GreyLevel(label, n int) uint8 {
	if label <= 0 || n <= 0 {
		return 0
	}
	return uint8(math.Max(1, math.Min(255, math.Round(float64(label)*255/float64(n)))))
}

// ExtractSlice renders the plane perpendicular to axis ("x", "y" or "z") at
// position. An x-slice is depth wide and height tall, a y-slice is width
// wide and depth tall, and a z-slice is width wide and height tall.
func (v *Viewer) ExtractSlice(axis string, position int) (*image.Gray, error) {
	if position < 0 {
		return nil, geometry.Errorf("position must be non-negative, got %d", position)
	}
	labels := v.Labels()
	n := v.objects.Size()
	e := v.scene

	var img *image.Gray
	switch axis {
	case "x", "X":
		if position >= e.X {
			return nil, geometry.Errorf("position %d exceeds width %d", position, e.X)
		}
		img = image.NewGray(image.Rect(0, 0, e.Z, e.Y))
		for z := 0; z < e.Z; z++ {
			for y := 0; y < e.Y; y++ {
				img.SetGray(z, y, color.Gray{Y: GreyLevel(int(labels.Get(geometry.Point3i{X: position, Y: y, Z: z})), n)})
			}
		}

	case "y", "Y":
		if position >= e.Y {
			return nil, geometry.Errorf("position %d exceeds height %d", position, e.Y)
		}
		img = image.NewGray(image.Rect(0, 0, e.X, e.Z))
		for z := 0; z < e.Z; z++ {
			for x := 0; x < e.X; x++ {
				img.SetGray(x, z, color.Gray{Y: GreyLevel(int(labels.Get(geometry.Point3i{X: x, Y: position, Z: z})), n)})
			}
		}

	case "z", "Z":
		if position >= e.Z {
			return nil, geometry.Errorf("position %d exceeds depth %d", position, e.Z)
		}
		img = image.NewGray(image.Rect(0, 0, e.X, e.Y))
		plane := labels.Slice(position)
		for y := 0; y < e.Y; y++ {
			for x := 0; x < e.X; x++ {
				img.SetGray(x, y, color.Gray{Y: GreyLevel(int(plane[e.OffsetXY(x, y)]), n)})
			}
		}

	default:
		return nil, errors.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}
	return img, nil
}

// ExtractRegion copies the part of the scene raster inside box, which must
// lie within the scene.
func (v *Viewer) ExtractRegion(box geometry.BoundingBox) (*voxel.Voxels[uint16], error) {
	if box.Extent.IsEmpty() {
		return nil, geometry.Errorf("region %v is empty", box)
	}
	if !v.scene.ContainsBox(box) {
		return nil, geometry.Errorf("region %v extends beyond the scene %v", box, v.scene)
	}
	region := voxel.New[uint16](box.Extent)
	v.Labels().CopyTo(box, region, geometry.Point3i{})
	return region, nil
}

// RenderPlane draws the z-plane at z as text, one line per row: '.' for
// background and a glyph per object otherwise.
func (v *Viewer) RenderPlane(z int) (string, error) {
	if z < 0 || z >= v.scene.Z {
		return "", geometry.Errorf("plane %d lies outside the scene %v", z, v.scene)
	}
	plane := v.Labels().Slice(z)
	var sb strings.Builder
	for y := 0; y < v.scene.Y; y++ {
		for x := 0; x < v.scene.X; x++ {
			label := plane[v.scene.OffsetXY(x, y)]
			if label == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(glyphs[(int(label)-1)%len(glyphs)])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
