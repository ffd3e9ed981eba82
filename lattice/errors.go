package lattice

import "errors"

var (
	// ErrNegativeSize indicates a negative width or height.
	ErrNegativeSize = errors.New("lattice: width and height must not be negative")
	// ErrLabel indicates an algebraic label that cannot be parsed.
	ErrLabel = errors.New("lattice: malformed algebraic label")
	// ErrOutOfBounds indicates a cell outside the rectangle.
	ErrOutOfBounds = errors.New("lattice: cell out of bounds")
)
