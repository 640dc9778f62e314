package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

func TestNearestTaps(t *testing.T) {
	n := NearestNeighbor{}
	var upscaled []int
	for d := 0; d < 10; d++ {
		upscaled = append(upscaled, n.Taps(d, 5, 10)[0].Index)
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}, upscaled)

	var downscaled []int
	for d := 0; d < 3; d++ {
		downscaled = append(downscaled, n.Taps(d, 6, 3)[0].Index)
	}
	assert.Equal(t, []int{1, 3, 5}, downscaled)
}

func TestLinearTapsWeightsSumToOne(t *testing.T) {
	l := Linear{}
	for _, sizes := range [][2]int{{5, 10}, {10, 5}, {3, 7}, {1, 4}} {
		for d := 0; d < sizes[1]; d++ {
			sum := 0.0
			for _, tap := range l.Taps(d, sizes[0], sizes[1]) {
				require.GreaterOrEqual(t, tap.Index, 0)
				require.Less(t, tap.Index, sizes[0])
				sum += tap.Weight
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func TestResizeNearestPreservesLabels(t *testing.T) {
	src, err := voxel.NewFromArray(geometry.Extent{X: 2, Y: 1, Z: 1}, []uint16{3, 7})
	require.NoError(t, err)

	dst := Resize(src, geometry.Extent{X: 4, Y: 2, Z: 1}, NearestNeighbor{})
	assert.Equal(t, []uint16{3, 3, 7, 7, 3, 3, 7, 7}, dst.Slice(0))
}

func TestResizeLinearBlends(t *testing.T) {
	src, err := voxel.NewFromArray(geometry.Extent{X: 2, Y: 1, Z: 1}, []uint8{0, 255})
	require.NoError(t, err)

	dst := Resize(src, geometry.Extent{X: 4, Y: 1, Z: 1}, Linear{})
	assert.Equal(t, []uint8{0, 64, 191, 255}, dst.Slice(0))
}

func TestResizeFloat(t *testing.T) {
	src, err := voxel.NewFromArray(geometry.Extent{X: 2, Y: 1, Z: 1}, []float32{0, 1})
	require.NoError(t, err)

	dst := Resize(src, geometry.Extent{X: 4, Y: 1, Z: 1}, Linear{})
	assert.InDelta(t, 0.25, dst.Slice(0)[1], 1e-6)
}

func TestResizeSameExtentCopies(t *testing.T) {
	src := voxel.New[uint8](geometry.Extent{X: 2, Y: 2, Z: 1})
	dst := Resize(src, src.Extent(), Linear{})
	dst.Fill(1)
	assert.Equal(t, 0, src.Count(1))
}

func TestFromName(t *testing.T) {
	in, err := FromName("nearest")
	require.NoError(t, err)
	assert.False(t, in.CanValueRangeChange())

	in, err = FromName("linear")
	require.NoError(t, err)
	assert.True(t, in.CanValueRangeChange())

	_, err = FromName("cubic")
	assert.Error(t, err)
}
