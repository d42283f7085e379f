package exposure

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/nddata"
)

func notImplemented(stage string) error {
	return fmt.Errorf("%s: %w", stage, nddata.ErrNotImplemented)
}

func validateCubeShape(shape nddata.Shape) error {
	if len(shape) != 3 {
		return fmt.Errorf("%w: cube needs (rows, cols, reads), got %v", nddata.ErrShapeMismatch, shape)
	}
	return shape.Validate()
}

func validatePlanes(rows, cols int, reads [][]float64) error {
	if err := (nddata.Shape{rows, cols}).Validate(); err != nil {
		return err
	}
	if len(reads) == 0 {
		return fmt.Errorf("%w: cube needs at least one read", nddata.ErrInvalidArgument)
	}
	for k, r := range reads {
		if len(r) != rows*cols {
			return fmt.Errorf("%w: read %d has %d pixels, want %d", nddata.ErrShapeMismatch, k, len(r), rows*cols)
		}
	}
	return nil
}
