package voxel

import "fmt"

// BinaryValues are the two intensities that encode membership in a binary
// mask.
type BinaryValues struct {
	On  int
	Off int
}

// BinaryValuesByte is the unsigned byte encoding of BinaryValues.
type BinaryValuesByte struct {
	On  uint8
	Off uint8
}

var (
	// DefaultBinaryValues marks members with 255 and background with 0.
	DefaultBinaryValues = BinaryValues{On: 255, Off: 0}

	// InvertedBinaryValues marks members with 0 and background with 255.
	InvertedBinaryValues = BinaryValues{On: 0, Off: 255}
)

// AsByte converts to the byte encoding. Both values must fit in a byte.
func (b BinaryValues) AsByte() BinaryValuesByte {
	return BinaryValuesByte{On: uint8(b.On), Off: uint8(b.Off)}
}

// Invert swaps on and off.
func (b BinaryValues) Invert() BinaryValues {
	return BinaryValues{On: b.Off, Off: b.On}
}

// IsCanonical reports whether the pair is 0/255 in either polarity.
func (b BinaryValues) IsCanonical() bool {
	return b == DefaultBinaryValues || b == InvertedBinaryValues
}

// Midpoint is halfway between on and off.
func (b BinaryValues) Midpoint() float64 {
	return float64(b.On+b.Off) / 2
}

func (b BinaryValues) String() string {
	return fmt.Sprintf("on=%d,off=%d", b.On, b.Off)
}

// AsInt converts back to the integer encoding.
func (b BinaryValuesByte) AsInt() BinaryValues {
	return BinaryValues{On: int(b.On), Off: int(b.Off)}
}
