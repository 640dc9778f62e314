package labels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmask/pkg/geometry"
	"objmask/pkg/object"
	"objmask/pkg/voxel"
)

func bbox(x, y, z, ex, ey, ez int) geometry.BoundingBox {
	return geometry.NewBoundingBox(geometry.Point3i{X: x, Y: y, Z: z}, geometry.Extent{X: ex, Y: ey, Z: ez})
}

func pt(x, y, z int) geometry.Point3i {
	return geometry.Point3i{X: x, Y: y, Z: z}
}

func rect(x, y, ex, ey int) *object.Mask {
	return object.NewMaskAllOn(bbox(x, y, 0, ex, ey, 1))
}

func TestCreateStampsInOrder(t *testing.T) {
	objects := object.NewCollection(rect(5, 5, 2, 2), rect(7, 5, 3, 2))
	r, err := Create(objects, bbox(5, 5, 0, 5, 2, 1), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, r.NumLabels())
	assert.Equal(t, map[int]int{1: 0, 2: 1}, r.Labels())
	assert.Equal(t, 4, r.Voxels().Count(1))
	assert.Equal(t, 6, r.Voxels().Count(2))
	assert.Equal(t, uint16(2), r.Voxels().Get(pt(2, 0, 0)), "raster coordinates are relative to its box")

	index, ok := r.IndexOf(2)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	_, ok = r.IndexOf(3)
	assert.False(t, ok)
}

func TestCreateStampsDisjointVoxelsInOverlappingBoxes(t *testing.T) {
	column := object.NewMask(bbox(0, 0, 0, 3, 3, 1))
	require.NoError(t, column.AssignOn(bbox(0, 0, 0, 1, 3, 1)))
	rest := object.NewMask(bbox(1, 0, 0, 3, 3, 1))
	require.NoError(t, rest.AssignOn(bbox(1, 0, 0, 3, 3, 1)))

	r, err := Create(object.NewCollection(column, rest), bbox(0, 0, 0, 4, 3, 1), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.NumLabels())
	assert.Equal(t, 0, r.Voxels().Count(0))
}

func TestCreateOverlap(t *testing.T) {
	objects := object.NewCollection(rect(0, 0, 3, 3), rect(2, 2, 3, 3), rect(6, 6, 1, 1))
	box := bbox(0, 0, 0, 7, 7, 1)

	_, err := Create(objects, box, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverlap))

	var rejected []int
	r, err := Create(objects, box, Options{OnOverlap: func(index int, _ *object.Mask) {
		rejected = append(rejected, index)
	}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, rejected)
	assert.Equal(t, map[int]int{1: 0, 2: 2}, r.Labels(), "a rejected object consumes no label")
	assert.Equal(t, 9, r.Voxels().Count(1), "the rejected object left no trace")
}

func TestCreateSkip(t *testing.T) {
	objects := object.NewCollection(rect(0, 0, 2, 2), rect(4, 0, 2, 2))
	var rejected []int
	r, err := Create(objects, bbox(0, 0, 0, 6, 2, 1), Options{
		Skip:      func(index int) bool { return index == 0 },
		OnOverlap: func(index int, _ *object.Mask) { rejected = append(rejected, index) },
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rejected)
	assert.Equal(t, map[int]int{1: 1}, r.Labels())

	_, err = Create(objects, bbox(0, 0, 0, 6, 2, 1), Options{Skip: func(int) bool { return true }})
	assert.True(t, errors.Is(err, ErrOverlap))
}

func TestCreateCapacity(t *testing.T) {
	objects := object.NewCollection(rect(0, 0, 1, 1), rect(2, 0, 1, 1), rect(4, 0, 1, 1))
	_, err := Create(objects, bbox(0, 0, 0, 5, 1, 1), Options{MaxLabels: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacity))

	_, err = Create(objects, bbox(0, 0, 0, 5, 1, 1), Options{MaxLabels: 3})
	assert.NoError(t, err)
	assert.Equal(t, MaxLabels, Options{MaxLabels: 1 << 20}.limit())
}

func TestCreateRejectsObjectsOutsideBox(t *testing.T) {
	_, err := Create(object.NewCollection(rect(4, 4, 2, 2)), bbox(0, 0, 0, 5, 5, 1), Options{})
	assert.True(t, errors.Is(err, geometry.ErrGeometry))
}

func TestExtractObjects(t *testing.T) {
	v := voxel.New[uint16](geometry.Extent{X: 6, Y: 4, Z: 2})
	v.Set(pt(1, 1, 0), 3)
	v.Set(pt(2, 1, 0), 3)
	v.Set(pt(1, 2, 1), 3)
	v.Set(pt(5, 3, 1), 7)

	masks := ExtractObjects(v, 0)
	require.Len(t, masks, 2)

	l3 := masks[3]
	require.NotNil(t, l3)
	assert.Equal(t, bbox(1, 1, 0, 2, 2, 2), l3.BoundingBox())
	assert.Equal(t, 3, l3.NumberVoxelsOn())
	assert.True(t, l3.IsOn(pt(1, 2, 1)))
	assert.False(t, l3.IsOn(pt(2, 2, 1)))

	assert.Equal(t, bbox(5, 3, 1, 1, 1, 1), masks[7].BoundingBox())

	filtered := ExtractObjects(v, 2)
	assert.Len(t, filtered, 1)
	assert.Contains(t, filtered, 3)
}

func TestObjectsRoundTrip(t *testing.T) {
	objects := object.NewCollection(rect(10, 10, 3, 2), rect(13, 10, 2, 4))
	r, err := Create(objects, bbox(10, 10, 0, 5, 4, 1), Options{})
	require.NoError(t, err)

	recovered := r.Objects(0)
	require.Len(t, recovered, 2)
	for label, index := range r.Labels() {
		assert.True(t, recovered[label].Equals(objects.Get(index)), "label %d", label)
	}
}

func TestRasterScale(t *testing.T) {
	objects := object.NewCollection(rect(2, 2, 2, 2), rect(4, 2, 2, 2))
	r, err := Create(objects, bbox(2, 2, 0, 4, 2, 1), Options{})
	require.NoError(t, err)

	scaled, err := r.Scale(geometry.NewScaleFactorXY(2, 2))
	require.NoError(t, err)
	assert.Equal(t, bbox(4, 4, 0, 8, 4, 1), scaled.BoundingBox())
	assert.Equal(t, 16, scaled.Voxels().Count(1))
	assert.Equal(t, 16, scaled.Voxels().Count(2))
	assert.Equal(t, r.Labels(), scaled.Labels())

	masks := scaled.Objects(0)
	assert.Equal(t, bbox(4, 4, 0, 4, 4, 1), masks[1].BoundingBox())
	assert.Equal(t, bbox(8, 4, 0, 4, 4, 1), masks[2].BoundingBox())

	_, err = r.Scale(geometry.ScaleFactor{})
	assert.True(t, errors.Is(err, geometry.ErrGeometry))
}
