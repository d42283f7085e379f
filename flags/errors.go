package flags

import (
	"fmt"

	"github.com/cwbudde/algo-apogee/nddata"
)

var (
	// ErrFlagOverflow is returned when a flag code does not fit the plane width.
	ErrFlagOverflow = fmt.Errorf("%w: flag exceeds plane width", nddata.ErrInvalidArgument)

	errZeroFlag         = fmt.Errorf("%w: flag code must be > 0", nddata.ErrInvalidArgument)
	errUnsupportedWidth = fmt.Errorf("%w: unsupported flag width", nddata.ErrInvalidArgument)
	errUnknownFlag      = fmt.Errorf("%w: unknown flag name", nddata.ErrInvalidArgument)
)

func validateCode(code Flag, w Width) error {
	if code == 0 {
		return errZeroFlag
	}
	if uint64(code) > w.Max() {
		return fmt.Errorf("%w: %#x does not fit %s", ErrFlagOverflow, uint64(code), w)
	}
	return nil
}
