package exposure

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-apogee/flags"
	"github.com/cwbudde/algo-apogee/nddata"
)

// ImageOption configures an Image.
type ImageOption func(*imageConfig)

type imageConfig struct {
	flagWidth flags.Width
}

func defaultImageConfig() imageConfig {
	return imageConfig{flagWidth: flags.DefaultWidth}
}

// WithFlagWidth sets the bit width of the flag plane created on first Flag.
// Unsupported widths are ignored.
func WithFlagWidth(w flags.Width) ImageOption {
	return func(c *imageConfig) {
		if w.Valid() {
			c.flagWidth = w
		}
	}
}

// Image is a 2-D detector frame with an optional pixel flag plane.
type Image struct {
	Array *nddata.Array

	flags     *flags.Plane
	flagWidth flags.Width
}

// NewImage wraps a rank-2 array.
func NewImage(arr *nddata.Array, opts ...ImageOption) (*Image, error) {
	if arr == nil {
		return nil, fmt.Errorf("%w: nil image array", nddata.ErrInvalidArgument)
	}
	if arr.Rank() != 2 {
		return nil, fmt.Errorf("%w: image needs rank 2, got shape %v", nddata.ErrShapeMismatch, arr.Shape)
	}
	cfg := defaultImageConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Image{Array: arr, flagWidth: cfg.flagWidth}, nil
}

// Rows returns the number of rows.
func (im *Image) Rows() int { return im.Array.Shape[0] }

// Cols returns the number of columns.
func (im *Image) Cols() int { return im.Array.Shape[1] }

// At returns the pixel value at (row, col).
func (im *Image) At(row, col int) (float64, error) {
	return im.Array.At(row, col)
}

// Flags returns the flag plane, or nil if nothing has been flagged and no
// plane was attached.
func (im *Image) Flags() *flags.Plane {
	return im.flags
}

// SetFlags attaches an existing plane. Its shape must match the image.
func (im *Image) SetFlags(p *flags.Plane) error {
	if p != nil && !p.Shape().Equal(im.Array.Shape) {
		return fmt.Errorf("%w: flag plane %v for image %v", nddata.ErrShapeMismatch, p.Shape(), im.Array.Shape)
	}
	im.flags = p
	return nil
}

// Flag ORs code into the pixels selected by mask, or into every pixel when
// mask is nil. The flag plane is created on first use.
func (im *Image) Flag(code flags.Flag, mask *nddata.Mask) error {
	p, err := flags.Accumulate(im.flags, im.Array.Shape, im.flagWidth, code, mask)
	if err != nil {
		return err
	}
	im.flags = p
	return nil
}

// Scale returns a new image with data multiplied by factor and the unit
// replaced, e.g. a gain conversion from ADU to electrons. Uncertainties scale
// by |factor|; flags are copied.
func (im *Image) Scale(factor float64, unit string) *Image {
	src := im.Array
	data := make([]float64, len(src.Data))
	vecmath.ScaleBlock(data, src.Data, factor)

	arr := &nddata.Array{
		Shape:  src.Shape.Clone(),
		Data:   data,
		Mask:   src.Mask.Clone(),
		Labels: src.Labels.Clone(),
	}
	arr.Unit = unit
	if src.Uncertainty != nil {
		arr.Uncertainty = make([]float64, len(src.Uncertainty))
		vecmath.ScaleBlock(arr.Uncertainty, src.Uncertainty, math.Abs(factor))
	}

	out := &Image{Array: arr, flagWidth: im.flagWidth}
	if im.flags != nil {
		out.flags = im.flags.Clone()
	}
	return out
}

// Stats summarises the pixels that are neither masked invalid nor carry any
// bit of exclude.
type Stats struct {
	Good   int
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Stats computes summary statistics over good pixels. With no good pixels
// every statistic is NaN.
func (im *Image) Stats(exclude flags.Flag) Stats {
	good := make([]float64, 0, len(im.Array.Data))
	var bits []uint64
	if im.flags != nil {
		bits = im.flags.Bits()
	}
	for i, v := range im.Array.Data {
		if im.Array.Mask != nil && im.Array.Mask.Values[i] {
			continue
		}
		if bits != nil && bits[i]&uint64(exclude) != 0 {
			continue
		}
		good = append(good, v)
	}
	if len(good) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, StdDev: nan, Median: nan, Min: nan, Max: nan}
	}

	slices.Sort(good)
	mean, std := stat.MeanStdDev(good, nil)
	if len(good) == 1 {
		std = 0
	}
	return Stats{
		Good:   len(good),
		Mean:   mean,
		StdDev: std,
		Median: median(good),
		Min:    floats.Min(good),
		Max:    floats.Max(good),
	}
}

// median of sorted values, averaging the two middle values for an even
// count. stat.Quantile with Empirical returns the lower one.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// String prints the pixel data.
func (im *Image) String() string {
	return im.Array.String()
}
