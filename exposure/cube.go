package exposure

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/nddata"
)

// Cube is a multi-read exposure: rows × cols pixels sampled non-destructively
// reads times, ordered by acquisition.
//
// Each read is stored as its own contiguous row-major plane.
type Cube struct {
	rows, cols int
	reads      [][]float64
	nddata.Labels
}

// NewCube builds a cube from data laid out row-major over (row, col, read),
// the layout of a numpy array indexed [row, col, read]. data is copied.
func NewCube(shape nddata.Shape, data []float64) (*Cube, error) {
	if err := validateCubeShape(shape); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: %d values for cube shape %v", nddata.ErrShapeMismatch, len(data), shape)
	}

	rows, cols, n := shape[0], shape[1], shape[2]
	reads := make([][]float64, n)
	for k := range reads {
		reads[k] = make([]float64, rows*cols)
	}
	for p := 0; p < rows*cols; p++ {
		base := p * n
		for k := 0; k < n; k++ {
			reads[k][p] = data[base+k]
		}
	}
	return &Cube{rows: rows, cols: cols, reads: reads}, nil
}

// NewCubeFromReads wraps per-read planes, each rows*cols long and row-major,
// without copying.
func NewCubeFromReads(rows, cols int, reads ...[]float64) (*Cube, error) {
	if err := validatePlanes(rows, cols, reads); err != nil {
		return nil, err
	}
	return &Cube{rows: rows, cols: cols, reads: reads}, nil
}

// Shape returns (rows, cols, reads).
func (c *Cube) Shape() nddata.Shape {
	return nddata.Shape{c.rows, c.cols, len(c.reads)}
}

// Rows returns the number of detector rows.
func (c *Cube) Rows() int { return c.rows }

// Cols returns the number of detector columns.
func (c *Cube) Cols() int { return c.cols }

// Reads returns the length of the read axis.
func (c *Cube) Reads() int { return len(c.reads) }

// Read returns read k as a row-major plane. The plane is the cube's own
// storage and must not be modified.
func (c *Cube) Read(k int) ([]float64, error) {
	if k < 0 || k >= len(c.reads) {
		return nil, fmt.Errorf("%w: read %d out of range [0,%d)", nddata.ErrInvalidArgument, k, len(c.reads))
	}
	return c.reads[k], nil
}

// At returns the sample of pixel (row, col) at read k.
func (c *Cube) At(row, col, k int) (float64, error) {
	if _, err := c.Shape().Offset(row, col, k); err != nil {
		return 0, err
	}
	return c.reads[k][row*c.cols+col], nil
}

// Array returns a copy of the cube as a rank-3 labeled array laid out
// row-major over (row, col, read).
func (c *Cube) Array() *nddata.Array {
	n := len(c.reads)
	data := make([]float64, c.rows*c.cols*n)
	for k, plane := range c.reads {
		for p, v := range plane {
			data[p*n+k] = v
		}
	}
	return &nddata.Array{Shape: c.Shape(), Data: data, Labels: c.Labels.Clone()}
}
