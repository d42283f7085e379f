package exposure

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-apogee/nddata"
)

// Collapse reduces the read axis and returns a (rows, cols) image. The cube
// is not modified; metadata and unit are copied to the image.
//
// A single-read cube collapses to a copy of that read under UpTheRamp.
// Fowler always fails with nddata.ErrNotImplemented and an unknown strategy
// with nddata.ErrInvalidArgument, as does a cube without reads.
func (c *Cube) Collapse(strategy Strategy, opts ...ImageOption) (*Image, error) {
	if c == nil || len(c.reads) == 0 {
		return nil, fmt.Errorf("%w: cube has no reads", nddata.ErrInvalidArgument)
	}
	var (
		data []float64
		err  error
	)
	switch strategy {
	case UpTheRamp:
		data = c.sumReads()
	case Fowler:
		err = notImplemented("fowler collapse")
	default:
		err = fmt.Errorf("%w: unknown collapse strategy %v", nddata.ErrInvalidArgument, strategy)
	}
	if err != nil {
		return nil, err
	}

	arr, err := nddata.New(nddata.Shape{c.rows, c.cols}, data, nddata.WithLabels(c.Labels.Clone()))
	if err != nil {
		return nil, err
	}
	return NewImage(arr, opts...)
}

func (c *Cube) sumReads() []float64 {
	out := make([]float64, c.rows*c.cols)
	copy(out, c.reads[0])
	for _, plane := range c.reads[1:] {
		vecmath.AddBlockInPlace(out, plane)
	}
	return out
}
