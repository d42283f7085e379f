package nddata

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape lists the extent of every axis, outermost first.
type Shape []int

// Size returns the number of elements described by s.
// A zero-dimensional shape has size 0.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether s and o have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Validate checks that s has at least one axis and all extents are positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidArgument)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidArgument, i, d)
		}
	}
	return nil
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Offset returns the row-major flat index of idx.
func (s Shape) Offset(idx ...int) (int, error) {
	if len(idx) != len(s) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrInvalidArgument, len(idx), len(s))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= s[i] {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d) on axis %d", ErrInvalidArgument, v, s[i], i)
		}
		off = off*s[i] + v
	}
	return off, nil
}

// String formats s as a parenthesised tuple, e.g. "(2,3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
