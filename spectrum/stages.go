package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/nddata"
)

func notImplemented(stage string) error {
	return fmt.Errorf("%s: %w", stage, nddata.ErrNotImplemented)
}

// SkySubtract removes the sky measured by the sky fibers.
func (s *Spectrum2D) SkySubtract() (*Spectrum2D, error) {
	return nil, notImplemented("sky subtraction")
}

// TelluricCorrect divides out telluric absorption measured by the hot-star
// fibers.
func (s *Spectrum2D) TelluricCorrect() (*Spectrum2D, error) {
	return nil, notImplemented("telluric correction")
}

// WavelengthCorrect applies a per-fiber wavelength shift derived from the
// airglow lines.
func (s *Spectrum2D) WavelengthCorrect() (*Spectrum2D, error) {
	return nil, notImplemented("wavelength correction")
}

// RelativeFluxCalibrate normalises the fiber-to-fiber throughput.
func (s *Spectrum2D) RelativeFluxCalibrate() (*Spectrum2D, error) {
	return nil, notImplemented("relative flux calibration")
}

// AbsoluteFluxCalibrate scales each star to its H-band magnitude.
func (s *Spectrum2D) AbsoluteFluxCalibrate() (*Spectrum2D, error) {
	return nil, notImplemented("absolute flux calibration")
}
