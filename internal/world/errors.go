package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every BoundsError.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// BoundsError reports an accessor called outside its valid range.
// Limit holds the exclusive upper bound per axis.
type BoundsError struct {
	Op      string
	X, Y, Z int
	Limit   [3]int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: (%d, %d, %d) outside [0,%d)x[0,%d)x[0,%d)",
		e.Op, e.X, e.Y, e.Z, e.Limit[0], e.Limit[1], e.Limit[2])
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
