package exposure

import (
	"github.com/cwbudde/algo-apogee/nddata"
	"github.com/cwbudde/algo-apogee/spectrum"
)

// RefPixCorrect subtracts the reference-pixel bias drift.
func (c *Cube) RefPixCorrect() (*Cube, error) {
	return nil, notImplemented("reference pixel correction")
}

// LinearityCorrect applies the detector non-linearity correction.
func (c *Cube) LinearityCorrect() (*Cube, error) {
	return nil, notImplemented("linearity correction")
}

// DarkCorrect subtracts the dark current.
func (c *Cube) DarkCorrect() (*Cube, error) {
	return nil, notImplemented("dark correction")
}

// FlagCosmicRays detects cosmic-ray jumps between reads and, with repair,
// removes them from the ramp.
func (c *Cube) FlagCosmicRays(repair bool) (*Cube, error) {
	return nil, notImplemented("cosmic ray flagging")
}

// FlagSaturation detects saturated pixels and, with repair, restores them
// from the unsaturated reads.
func (c *Cube) FlagSaturation(repair bool) (*Cube, error) {
	return nil, notImplemented("saturation flagging")
}

// Extract extracts one spectrum per fiber using the PSF model.
func (im *Image) Extract(psf *nddata.Array) (*spectrum.Spectrum2D, error) {
	return nil, notImplemented("spectral extraction")
}
