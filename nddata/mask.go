package nddata

import "fmt"

// Mask is a boolean array with its own shape.
//
// Used as a flagging mask, true marks pixels the condition applies to.
// Used as the validity mask of an Array, true marks invalid pixels.
type Mask struct {
	Shape  Shape
	Values []bool
}

// NewMask returns an all-false mask of the given shape.
func NewMask(shape Shape) (*Mask, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Mask{Shape: shape.Clone(), Values: make([]bool, shape.Size())}, nil
}

// MaskFrom wraps values as a mask of the given shape without copying.
func MaskFrom(shape Shape, values []bool) (*Mask, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(values) != shape.Size() {
		return nil, fmt.Errorf("%w: %d mask values for shape %v", ErrShapeMismatch, len(values), shape)
	}
	return &Mask{Shape: shape.Clone(), Values: values}, nil
}

// Count returns the number of true elements.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Values {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m. A nil mask clones to nil.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	v := make([]bool, len(m.Values))
	copy(v, m.Values)
	return &Mask{Shape: m.Shape.Clone(), Values: v}
}

// CheckShape returns ErrShapeMismatch unless m has exactly the given shape.
func (m *Mask) CheckShape(want Shape) error {
	if !m.Shape.Equal(want) || len(m.Values) != want.Size() {
		return shapeMismatch("mask shape", m.Shape, want)
	}
	return nil
}
