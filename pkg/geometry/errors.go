package geometry

import "github.com/pkg/errors"

// ErrGeometry is the cause of every construction or geometry failure: box and
// extent mismatches, regions that must intersect but do not, and growth that
// leaves a clip region. Failures are wrapped with context; test with
// errors.Is.
var ErrGeometry = errors.New("geometry")

// Errorf wraps ErrGeometry with a formatted message.
func Errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrGeometry, format, args...)
}
