// Package spectrum holds extracted spectra: Spectrum for a single 1-D
// spectrum and Spectrum2D for one spectrum per fiber stacked into a
// (fibers, pixels) array.
//
// The post-extraction calibration stages (sky subtraction, telluric
// correction, wavelength shift, relative and absolute flux calibration) are
// declared on Spectrum2D and currently return nddata.ErrNotImplemented.
package spectrum
