package flags

import "fmt"

// Width is the number of bits available per pixel.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// DefaultWidth matches the 16-bit masks written by the APOGEE pipeline.
const DefaultWidth = Width16

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// Max returns the largest flag value representable in w.
func (w Width) Max() uint64 {
	if w >= Width64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", uint8(w))
}

// ParseWidth converts a bit count into a Width.
func ParseWidth(bits int) (Width, error) {
	if bits < 0 || bits > 255 || !Width(bits).Valid() {
		return 0, fmt.Errorf("%w: %d", errUnsupportedWidth, bits)
	}
	return Width(bits), nil
}
