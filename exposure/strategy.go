package exposure

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-apogee/nddata"
)

// Strategy selects how Collapse reduces the read axis.
type Strategy int

const (
	// UpTheRamp estimates the accumulated charge from every read. With no
	// ramp-fitting model configured this is the per-pixel sum over reads.
	UpTheRamp Strategy = iota
	// Fowler compares the first and last reads. It is declared but has no
	// algorithm yet, so Collapse always rejects it.
	Fowler
)

var strategyNames = map[Strategy]string{
	UpTheRamp: "UP_THE_RAMP",
	Fowler:    "FOWLER",
}

// Valid reports whether s is one of the enumerated strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the canonical names "UP_THE_RAMP" and "FOWLER",
// case-insensitively, with "-" or "_" separators or none. Spaces are not
// accepted.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToUpper(strings.NewReplacer("-", "", "_", "").Replace(name))
	switch key {
	case "UPTHERAMP":
		return UpTheRamp, nil
	case "FOWLER":
		return Fowler, nil
	default:
		return 0, fmt.Errorf("%w: unknown collapse strategy %q", nddata.ErrInvalidArgument, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %v", nddata.ErrInvalidArgument, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
