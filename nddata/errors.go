package nddata

import (
	"errors"
	"fmt"
)

// Error kinds shared by every reduction package. Callers match them with
// errors.Is; packages wrap them with call-site context.
var (
	// ErrShapeMismatch reports disagreeing array shapes.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidArgument reports an argument outside its enumerated or valid range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotImplemented reports a declared stage or strategy that has no
	// defined algorithm. It is never replaced by a silent pass-through.
	ErrNotImplemented = errors.New("not implemented")
)

func shapeMismatch(what string, got, want Shape) error {
	return fmt.Errorf("%w: %s %v, want %v", ErrShapeMismatch, what, got, want)
}
