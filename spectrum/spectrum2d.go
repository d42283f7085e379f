package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/flags"
	"github.com/cwbudde/algo-apogee/nddata"
)

// Spectrum2D holds one spectrum per fiber as a (fibers, pixels) flux array.
type Spectrum2D struct {
	Flux       *nddata.Array
	Wavelength []float64 // optional, row-major (fiber, pixel)

	flags     *flags.Plane
	flagWidth flags.Width
}

// New2D wraps a rank-2 (fibers, pixels) flux array.
func New2D(flux *nddata.Array, opts ...Option) (*Spectrum2D, error) {
	if flux == nil {
		return nil, fmt.Errorf("%w: nil flux", nddata.ErrInvalidArgument)
	}
	if flux.Rank() != 2 {
		return nil, fmt.Errorf("%w: 2-D spectrum needs rank 2, got shape %v", nddata.ErrShapeMismatch, flux.Shape)
	}
	cfg := applyOptions(opts)
	if cfg.wavelength != nil && len(cfg.wavelength) != len(flux.Data) {
		return nil, fmt.Errorf("%w: %d wavelengths for shape %v", nddata.ErrShapeMismatch, len(cfg.wavelength), flux.Shape)
	}
	return &Spectrum2D{Flux: flux, Wavelength: cfg.wavelength, flagWidth: cfg.flagWidth}, nil
}

// Fibers returns the number of fibers.
func (s *Spectrum2D) Fibers() int { return s.Flux.Shape[0] }

// Pixels returns the number of pixels per fiber.
func (s *Spectrum2D) Pixels() int { return s.Flux.Shape[1] }

// Flags returns the flag plane or nil.
func (s *Spectrum2D) Flags() *flags.Plane {
	return s.flags
}

// Flag ORs code into the pixels selected by mask, or every pixel when mask is
// nil.
func (s *Spectrum2D) Flag(code flags.Flag, mask *nddata.Mask) error {
	p, err := flags.Accumulate(s.flags, s.Flux.Shape, s.flagWidth, code, mask)
	if err != nil {
		return err
	}
	s.flags = p
	return nil
}

// Fiber copies fiber i out as a 1-D Spectrum, including its uncertainties,
// validity mask, wavelengths and flags. Labels are copied.
func (s *Spectrum2D) Fiber(i int) (*Spectrum, error) {
	if i < 0 || i >= s.Fibers() {
		return nil, fmt.Errorf("%w: fiber %d out of range [0,%d)", nddata.ErrInvalidArgument, i, s.Fibers())
	}
	n := s.Pixels()
	lo, hi := i*n, (i+1)*n
	shape := nddata.Shape{n}

	flux := &nddata.Array{
		Shape:  shape,
		Data:   append([]float64(nil), s.Flux.Data[lo:hi]...),
		Labels: s.Flux.Labels.Clone(),
	}
	if s.Flux.Uncertainty != nil {
		flux.Uncertainty = append([]float64(nil), s.Flux.Uncertainty[lo:hi]...)
	}
	if s.Flux.Mask != nil {
		flux.Mask = &nddata.Mask{Shape: shape.Clone(), Values: append([]bool(nil), s.Flux.Mask.Values[lo:hi]...)}
	}

	out := &Spectrum{Flux: flux, flagWidth: s.flagWidth}
	if s.Wavelength != nil {
		out.Wavelength = append([]float64(nil), s.Wavelength[lo:hi]...)
	}
	if s.flags != nil && s.flags.IsSet() {
		p, err := flags.FromBits(shape, s.flags.Width(), s.flags.Bits()[lo:hi])
		if err != nil {
			return nil, err
		}
		out.flags = p
	}
	return out, nil
}

// String prints the flux values, one fiber per line.
func (s *Spectrum2D) String() string {
	return s.Flux.String()
}
