package disjointset

import "github.com/pingcap/errors"

// ErrOutOfBounds is the cause of every error reported for an element index
// outside [0, Size()). Test for it with IsOutOfBounds or errors.Cause.
var ErrOutOfBounds = errors.New("disjointset: index out of bounds")

// IsOutOfBounds reports whether err was caused by an out-of-range element index.
func IsOutOfBounds(err error) bool {
	return err != nil && errors.Cause(err) == ErrOutOfBounds
}

func outOfBounds(element, size int) error {
	return errors.Annotatef(ErrOutOfBounds, "element %d not in [0, %d)", element, size)
}
