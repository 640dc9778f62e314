package object

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

func pt(x, y, z int) geometry.Point3i {
	return geometry.Point3i{X: x, Y: y, Z: z}
}

func bbox(x, y, z, ex, ey, ez int) geometry.BoundingBox {
	return geometry.NewBoundingBox(pt(x, y, z), geometry.Extent{X: ex, Y: ey, Z: ez})
}

// rectangle is a mask over box with every voxel on.
func rectangle(x, y, ex, ey int) *Mask {
	return NewMaskAllOn(bbox(x, y, 0, ex, ey, 1))
}

// assertBufferInvariant checks that the buffer matches the box and that
// every voxel is one of the binary values.
func assertBufferInvariant(t *testing.T, m *Mask) {
	t.Helper()
	require.Equal(t, m.BoundingBox().Extent, m.Voxels().Extent())
	total := 0
	for z := 0; z < m.Extent().Z; z++ {
		total += len(m.Voxels().Slice(z))
	}
	assert.Equal(t, m.BoundingBox().Volume(), total)
	assert.True(t, voxel.IsBinary(m.Voxels(), m.BinaryValuesByte()))
}

func TestNewMaskWithValuesChecksExtent(t *testing.T) {
	v := voxel.New[uint8](geometry.Extent{X: 3, Y: 3, Z: 1})
	_, err := NewMaskWithValues(bbox(0, 0, 0, 4, 3, 1), v, voxel.DefaultBinaryValues)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrGeometry))

	m, err := NewMaskWithValues(bbox(2, 2, 0, 3, 3, 1), v, voxel.DefaultBinaryValues)
	require.NoError(t, err)
	assertBufferInvariant(t, m)
	assert.True(t, m.IsEmpty())
}

func TestNewMaskFromVoxelsAssumesOrigin(t *testing.T) {
	v := voxel.New[uint8](geometry.Extent{X: 2, Y: 2, Z: 1})
	m := NewMaskFromVoxels(v)
	assert.Equal(t, bbox(0, 0, 0, 2, 2, 1), m.BoundingBox())
	assert.Same(t, v, m.Voxels())
}

func TestInvertedMaskStartsOff(t *testing.T) {
	m := newOffMask(bbox(0, 0, 0, 2, 2, 1), voxel.InvertedBinaryValues)
	assert.Equal(t, 4, m.Voxels().Count(255))
	assert.True(t, m.IsEmpty())
	require.NoError(t, m.SetOn(pt(1, 1, 0)))
	assert.Equal(t, uint8(0), m.Voxels().Get(pt(1, 1, 0)))
	assert.Equal(t, 1, m.NumberVoxelsOn())
}

func TestSetAndAssignUseGlobalCoordinates(t *testing.T) {
	m := NewMask(bbox(10, 10, 0, 5, 5, 1))
	require.NoError(t, m.SetOn(pt(12, 13, 0)))
	assert.True(t, m.IsOn(pt(12, 13, 0)))
	assert.False(t, m.IsOn(pt(2, 3, 0)))

	err := m.SetOn(pt(2, 3, 0))
	assert.True(t, errors.Is(err, geometry.ErrGeometry))

	require.NoError(t, m.AssignOn(bbox(13, 13, 0, 10, 10, 1)))
	assert.Equal(t, 5, m.NumberVoxelsOn())
	require.NoError(t, m.AssignOff(bbox(0, 0, 0, 14, 14, 1)))
	assert.Equal(t, 3, m.NumberVoxelsOn())

	assert.Error(t, m.AssignOn(bbox(0, 0, 0, 2, 2, 1)))
}

func TestDuplicateOwnsBuffer(t *testing.T) {
	m := rectangle(0, 0, 3, 3)
	alias := m.ShiftBy(pt(5, 0, 0))
	dup := m.Duplicate()

	require.NoError(t, m.SetOff(pt(1, 1, 0)))
	assert.False(t, alias.IsOn(pt(6, 1, 0)), "aliases observe mutation")
	assert.True(t, dup.IsOn(pt(1, 1, 0)), "duplicates do not")
}

func TestFindArbitraryOnVoxel(t *testing.T) {
	t.Run("single voxel off-centre", func(t *testing.T) {
		m := NewMask(bbox(20, 30, 2, 10, 10, 1))
		require.NoError(t, m.SetOn(pt(23, 34, 2)))
		p, ok := m.FindArbitraryOnVoxel()
		require.True(t, ok)
		assert.Equal(t, pt(23, 34, 2), p)
	})

	t.Run("local example at origin", func(t *testing.T) {
		v := voxel.New[uint8](geometry.Extent{X: 10, Y: 10, Z: 1})
		v.Set(pt(3, 4, 0), 255)
		m := NewMaskFromVoxels(v)
		p, ok := m.FindArbitraryOnVoxel()
		require.True(t, ok)
		assert.Equal(t, pt(3, 4, 0), p)
	})

	t.Run("centroid preferred", func(t *testing.T) {
		m := rectangle(0, 0, 5, 5)
		p, ok := m.FindArbitraryOnVoxel()
		require.True(t, ok)
		assert.Equal(t, pt(2, 2, 0), p)
	})

	t.Run("deterministic", func(t *testing.T) {
		m := NewMask(bbox(0, 0, 0, 8, 8, 3))
		for _, p := range []geometry.Point3i{pt(7, 7, 2), pt(1, 6, 1), pt(5, 0, 2)} {
			require.NoError(t, m.SetOn(p))
		}
		first, ok := m.FindArbitraryOnVoxel()
		require.True(t, ok)
		assert.Equal(t, pt(1, 6, 1), first)
		for i := 0; i < 5; i++ {
			again, _ := m.FindArbitraryOnVoxel()
			assert.Equal(t, first, again)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := NewMask(bbox(0, 0, 0, 3, 3, 1)).FindArbitraryOnVoxel()
		assert.False(t, ok)
	})
}

func TestCenterOfGravity(t *testing.T) {
	c, ok := rectangle(2, 4, 3, 3).CenterOfGravity()
	require.True(t, ok)
	assert.InDelta(t, 3, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
	assert.InDelta(t, 0, c.Z, 1e-9)

	_, ok = NewMask(bbox(0, 0, 0, 2, 2, 1)).CenterOfGravity()
	assert.False(t, ok)
}

func TestHasIntersectingVoxels(t *testing.T) {
	a := NewMask(bbox(0, 0, 0, 4, 4, 1))
	b := NewMask(bbox(2, 2, 0, 4, 4, 1))
	require.NoError(t, a.SetOn(pt(0, 0, 0)))
	require.NoError(t, b.SetOn(pt(5, 5, 0)))
	assert.False(t, a.HasIntersectingVoxels(b), "boxes overlap but no shared on-voxel")

	require.NoError(t, a.SetOn(pt(3, 3, 0)))
	require.NoError(t, b.SetOn(pt(3, 3, 0)))
	assert.True(t, a.HasIntersectingVoxels(b))
	assert.True(t, b.HasIntersectingVoxels(a))
}

func TestEqualsIgnoresBinaryValues(t *testing.T) {
	a := rectangle(0, 0, 2, 2)
	b := a.Invert().Invert()
	assert.True(t, a.Equals(b))
	assert.NotEqual(t, a.BinaryValues(), a.Invert().BinaryValues())
	assert.False(t, a.Equals(a.Invert()))
	assert.False(t, a.Equals(rectangle(1, 0, 2, 2)))
}
