package voxel

// Binarize rethresholds a byte buffer at the midpoint of bv so that every
// voxel equals exactly bv.On or bv.Off. Voxels at or beyond the midpoint,
// on the on side, become on.
func Binarize(v *Voxels[uint8], bv BinaryValuesByte) {
	mid := bv.AsInt().Midpoint()
	onHigh := bv.On >= bv.Off
	for z := 0; z < v.extent.Z; z++ {
		s := v.slices[z]
		for i, x := range s {
			high := float64(x) >= mid
			if high == onHigh {
				s[i] = bv.On
			} else {
				s[i] = bv.Off
			}
		}
	}
}

// IsBinary reports whether every voxel equals bv.On or bv.Off.
func IsBinary(v *Voxels[uint8], bv BinaryValuesByte) bool {
	for _, s := range v.slices {
		for _, x := range s {
			if x != bv.On && x != bv.Off {
				return false
			}
		}
	}
	return true
}
