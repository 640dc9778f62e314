package interpolation

import (
	"math"

	"objmask/pkg/geometry"
	"objmask/pkg/voxel"
)

// Resize resamples src to extent using interp.
func Resize[T voxel.Kind](src *voxel.Voxels[T], extent geometry.Extent, interp Interpolator) *voxel.Voxels[T] {
	srcExtent := src.Extent()
	if srcExtent == extent {
		return src.Duplicate()
	}

	tapsX := axisTaps(interp, srcExtent.X, extent.X)
	tapsY := axisTaps(interp, srcExtent.Y, extent.Y)
	tapsZ := axisTaps(interp, srcExtent.Z, extent.Z)

	_, isFloat := any(*new(T)).(float32)
	dst := voxel.New[T](extent)
	for z := 0; z < extent.Z; z++ {
		out := dst.Slice(z)
		offset := 0
		for y := 0; y < extent.Y; y++ {
			for x := 0; x < extent.X; x++ {
				out[offset] = sample(src, tapsX[x], tapsY[y], tapsZ[z], isFloat)
				offset++
			}
		}
	}
	return dst
}

func axisTaps(interp Interpolator, srcSize, dstSize int) [][]Tap {
	taps := make([][]Tap, dstSize)
	for i := range taps {
		taps[i] = interp.Taps(i, srcSize, dstSize)
	}
	return taps
}

func sample[T voxel.Kind](src *voxel.Voxels[T], tx, ty, tz []Tap, isFloat bool) T {
	extent := src.Extent()
	if len(tx) == 1 && len(ty) == 1 && len(tz) == 1 {
		return src.Slice(tz[0].Index)[extent.OffsetXY(tx[0].Index, ty[0].Index)]
	}
	var sum float64
	for _, z := range tz {
		s := src.Slice(z.Index)
		for _, y := range ty {
			row := extent.OffsetXY(0, y.Index)
			wzy := z.Weight * y.Weight
			for _, x := range tx {
				sum += wzy * x.Weight * float64(s[row+x.Index])
			}
		}
	}
	if isFloat {
		return T(sum)
	}
	return T(math.Round(sum))
}
