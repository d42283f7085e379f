package nddata

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Array is a labeled N-dimensional float64 array stored in row-major order.
type Array struct {
	Shape       Shape
	Data        []float64
	Uncertainty []float64 // optional, same length as Data
	Mask        *Mask     // optional validity mask, true = invalid
	Labels
}

// Option configures an Array at construction.
type Option func(*Array)

// WithUncertainty attaches per-element uncertainties.
func WithUncertainty(u []float64) Option {
	return func(a *Array) {
		a.Uncertainty = u
	}
}

// WithMask attaches a validity mask.
func WithMask(m *Mask) Option {
	return func(a *Array) {
		a.Mask = m
	}
}

// WithMeta attaches a metadata map.
func WithMeta(meta map[string]any) Option {
	return func(a *Array) {
		a.Meta = meta
	}
}

// WithUnit sets the physical unit of the data.
func WithUnit(unit string) Option {
	return func(a *Array) {
		a.Unit = unit
	}
}

// WithLabels sets metadata and unit together.
func WithLabels(l Labels) Option {
	return func(a *Array) {
		a.Labels = l
	}
}

// New wraps data (by reference) as an Array of the given shape.
func New(shape Shape, data []float64, opts ...Option) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), shape)
	}
	a := &Array{Shape: shape.Clone(), Data: data}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.Uncertainty != nil && len(a.Uncertainty) != len(a.Data) {
		return nil, fmt.Errorf("%w: %d uncertainties for shape %v", ErrShapeMismatch, len(a.Uncertainty), shape)
	}
	if a.Mask != nil {
		if err := a.Mask.CheckShape(shape); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Zeros returns a zero-filled Array of the given shape.
func Zeros(shape Shape, opts ...Option) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return New(shape, make([]float64, shape.Size()), opts...)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.Shape)
}

// At returns the element at idx.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.Shape.Offset(idx...)
	if err != nil {
		return 0, err
	}
	return a.Data[off], nil
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	out := &Array{
		Shape:  a.Shape.Clone(),
		Data:   append([]float64(nil), a.Data...),
		Mask:   a.Mask.Clone(),
		Labels: a.Labels.Clone(),
	}
	if a.Uncertainty != nil {
		out.Uncertainty = append([]float64(nil), a.Uncertainty...)
	}
	return out
}

// Dense returns a matrix view of a 2-D array. The matrix shares the backing
// data, so writes through either are visible in both.
func (a *Array) Dense() (*mat.Dense, error) {
	if len(a.Shape) != 2 {
		return nil, fmt.Errorf("%w: dense view needs rank 2, got shape %v", ErrShapeMismatch, a.Shape)
	}
	return mat.NewDense(a.Shape[0], a.Shape[1], a.Data), nil
}

// String prints the data with one bracketed row per line for 2-D arrays and
// a single bracketed list otherwise.
func (a *Array) String() string {
	if len(a.Shape) != 2 {
		return fmt.Sprint(a.Data)
	}
	var sb strings.Builder
	cols := a.Shape[1]
	sb.WriteByte('[')
	for r := 0; r < a.Shape[0]; r++ {
		if r > 0 {
			sb.WriteString("\n ")
		}
		fmt.Fprint(&sb, a.Data[r*cols:(r+1)*cols])
	}
	sb.WriteByte(']')
	return sb.String()
}
