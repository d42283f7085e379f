package flags

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/nddata"
)

// Option configures a Plane.
type Option func(*config)

type config struct {
	width Width
}

func defaultConfig() config {
	return config{width: DefaultWidth}
}

// WithWidth sets the number of bits per pixel. Unsupported widths are ignored.
func WithWidth(w Width) Option {
	return func(c *config) {
		if w.Valid() {
			c.width = w
		}
	}
}

// Plane is a per-pixel bitmask paired with a data array of the same shape.
//
// The bits are not allocated until the first Apply; until then the plane is
// unset and every pixel reads as zero.
type Plane struct {
	shape nddata.Shape
	width Width
	bits  []uint64
}

// New returns an unset plane for data of the given shape.
func New(shape nddata.Shape, opts ...Option) (*Plane, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Plane{shape: shape.Clone(), width: cfg.width}, nil
}

// Shape returns the plane shape.
func (p *Plane) Shape() nddata.Shape {
	return p.shape.Clone()
}

// Width returns the configured bits per pixel.
func (p *Plane) Width() Width {
	return p.width
}

// IsSet reports whether any flag has been applied yet.
func (p *Plane) IsSet() bool {
	return p.bits != nil
}

// Apply ORs code into every pixel where mask is true, or into every pixel
// when mask is nil. The mask shape must equal the plane shape.
func (p *Plane) Apply(code Flag, mask *nddata.Mask) error {
	if err := validateCode(code, p.width); err != nil {
		return err
	}
	if mask != nil {
		if err := mask.CheckShape(p.shape); err != nil {
			return err
		}
	}
	if p.bits == nil {
		p.bits = make([]uint64, p.shape.Size())
	}

	c := uint64(code)
	if mask == nil {
		for i := range p.bits {
			p.bits[i] |= c
		}
		return nil
	}
	for i, set := range mask.Values {
		if set {
			p.bits[i] |= c
		}
	}
	return nil
}

// Bits returns the flag values in row-major order, or nil while the plane is
// unset. The slice is the plane's own storage.
func (p *Plane) Bits() []uint64 {
	return p.bits
}

// At returns the flags of the pixel at idx.
func (p *Plane) At(idx ...int) (Flag, error) {
	off, err := p.shape.Offset(idx...)
	if err != nil {
		return 0, err
	}
	if p.bits == nil {
		return 0, nil
	}
	return Flag(p.bits[off]), nil
}

// Where returns a mask that is true for pixels carrying any bit of code.
func (p *Plane) Where(code Flag) *nddata.Mask {
	m := &nddata.Mask{Shape: p.shape.Clone(), Values: make([]bool, p.shape.Size())}
	if p.bits == nil {
		return m
	}
	c := uint64(code)
	for i, b := range p.bits {
		m.Values[i] = b&c != 0
	}
	return m
}

// Count returns the number of pixels carrying any bit of code.
func (p *Plane) Count(code Flag) int {
	n := 0
	c := uint64(code)
	for _, b := range p.bits {
		if b&c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of p.
func (p *Plane) Clone() *Plane {
	out := &Plane{shape: p.shape.Clone(), width: p.width}
	if p.bits != nil {
		out.bits = append([]uint64(nil), p.bits...)
	}
	return out
}

// Accumulate applies code to p, first creating a plane of the given shape and
// width when p is nil. It returns the plane that now holds the flags. On
// error a newly created plane is discarded and p is returned unchanged.
func Accumulate(p *Plane, shape nddata.Shape, w Width, code Flag, mask *nddata.Mask) (*Plane, error) {
	if p != nil {
		return p, p.Apply(code, mask)
	}
	np, err := New(shape, WithWidth(w))
	if err != nil {
		return nil, err
	}
	if err := np.Apply(code, mask); err != nil {
		return nil, err
	}
	return np, nil
}

// FromBits builds a set plane from existing flag values, e.g. a mask read
// from disk. bits is copied; every value must fit w.
func FromBits(shape nddata.Shape, w Width, bits []uint64) (*Plane, error) {
	p, err := New(shape, WithWidth(w))
	if err != nil {
		return nil, err
	}
	if len(bits) != shape.Size() {
		return nil, fmt.Errorf("%w: %d flag values for shape %v", nddata.ErrShapeMismatch, len(bits), shape)
	}
	for i, b := range bits {
		if b > p.width.Max() {
			return nil, fmt.Errorf("%w: pixel %d value %#x does not fit %s", ErrFlagOverflow, i, b, p.width)
		}
	}
	p.bits = append([]uint64(nil), bits...)
	return p, nil
}
