package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/flags"
	"github.com/cwbudde/algo-apogee/nddata"
)

// Spectrum is a 1-D flux array with an optional wavelength axis and flag plane.
type Spectrum struct {
	Flux       *nddata.Array
	Wavelength []float64

	flags     *flags.Plane
	flagWidth flags.Width
}

// New wraps a rank-1 flux array.
func New(flux *nddata.Array, opts ...Option) (*Spectrum, error) {
	if flux == nil {
		return nil, fmt.Errorf("%w: nil flux", nddata.ErrInvalidArgument)
	}
	if flux.Rank() != 1 {
		return nil, fmt.Errorf("%w: spectrum needs rank 1, got shape %v", nddata.ErrShapeMismatch, flux.Shape)
	}
	cfg := applyOptions(opts)
	if cfg.wavelength != nil && len(cfg.wavelength) != len(flux.Data) {
		return nil, fmt.Errorf("%w: %d wavelengths for %d pixels", nddata.ErrShapeMismatch, len(cfg.wavelength), len(flux.Data))
	}
	return &Spectrum{Flux: flux, Wavelength: cfg.wavelength, flagWidth: cfg.flagWidth}, nil
}

// Len returns the number of pixels.
func (s *Spectrum) Len() int {
	return len(s.Flux.Data)
}

// Flags returns the flag plane or nil.
func (s *Spectrum) Flags() *flags.Plane {
	return s.flags
}

// Flag ORs code into the pixels selected by mask, or every pixel when mask is
// nil.
func (s *Spectrum) Flag(code flags.Flag, mask *nddata.Mask) error {
	p, err := flags.Accumulate(s.flags, s.Flux.Shape, s.flagWidth, code, mask)
	if err != nil {
		return err
	}
	s.flags = p
	return nil
}

// String prints the flux values.
func (s *Spectrum) String() string {
	return s.Flux.String()
}
