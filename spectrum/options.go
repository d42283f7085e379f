package spectrum

import "github.com/cwbudde/algo-apogee/flags"

// Option configures a Spectrum or Spectrum2D.
type Option func(*config)

type config struct {
	flagWidth  flags.Width
	wavelength []float64
}

func defaultConfig() config {
	return config{flagWidth: flags.DefaultWidth}
}

// WithFlagWidth sets the bit width of the flag plane created on first Flag.
// Unsupported widths are ignored.
func WithFlagWidth(w flags.Width) Option {
	return func(c *config) {
		if w.Valid() {
			c.flagWidth = w
		}
	}
}

// WithWavelength attaches a wavelength axis. For a Spectrum it has one value
// per pixel; for a Spectrum2D one value per (fiber, pixel), row-major.
func WithWavelength(w []float64) Option {
	return func(c *config) {
		c.wavelength = w
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
