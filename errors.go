package rcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rcube package.
var (
	// ErrInvalidMove is returned for a move name outside the 18-move vocabulary.
	ErrInvalidMove = errors.New("rcube: invalid move")
)

// InvalidMoveError reports the move name that was rejected.
// It matches ErrInvalidMove with errors.Is.
type InvalidMoveError struct {
	Notation string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidMove, e.Notation)
}

// Is reports whether target is ErrInvalidMove.
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
