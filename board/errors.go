package board

import "errors"

// Sentinel errors for board construction and deserialization.
var (
	// ErrDuplicateHex indicates the same axial hex was inserted twice on a
	// path that does not merge duplicates.
	ErrDuplicateHex = errors.New("board: duplicate hex")

	// ErrMixedFrame indicates records that disagree on orientation or parity.
	ErrMixedFrame = errors.New("board: records mix orientation or parity")

	// ErrSealed indicates an insertion into a board that was already indexed.
	ErrSealed = errors.New("board: board is sealed")
)
