package flags

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Flag is a single bit or a combination of bits in a pixel mask.
type Flag uint64

// APOGEE pixel mask bits.
const (
	BadPixel      Flag = 1 << iota // BADPIX: bad pixel mask or other bad-pixel origin
	CosmicRay                      // CRPIX: cosmic ray
	Saturated                      // SATPIX: saturated
	Unfixable                      // UNFIXABLE: could not be fixed
	BadDark                        // BADDARK: bad dark frame
	BadFlat                        // BADFLAT: bad flat field
	BadError                       // BADERR: large error
	NoSky                          // NOSKY: no sky available
	LittrowGhost                   // LITTROW_GHOST: Littrow ghost
	PersistHigh                    // PERSIST_HIGH: high persistence region
	PersistMed                     // PERSIST_MED: medium persistence region
	PersistLow                     // PERSIST_LOW: low persistence region
	SigSkyline                     // SIG_SKYLINE: significant sky line
	SigTelluric                    // SIG_TELLURIC: significant telluric absorption
	NotEnoughPSF                   // NOT_ENOUGH_PSF: less than half of the PSF in good pixels
)

var flagNames = [...]string{
	"BADPIX",
	"CRPIX",
	"SATPIX",
	"UNFIXABLE",
	"BADDARK",
	"BADFLAT",
	"BADERR",
	"NOSKY",
	"LITTROW_GHOST",
	"PERSIST_HIGH",
	"PERSIST_MED",
	"PERSIST_LOW",
	"SIG_SKYLINE",
	"SIG_TELLURIC",
	"NOT_ENOUGH_PSF",
}

// Definition describes one named mask bit.
type Definition struct {
	Bit  int
	Flag Flag
	Name string
}

// Definitions returns the named mask bits in bit order.
func Definitions() []Definition {
	out := make([]Definition, len(flagNames))
	for i, name := range flagNames {
		out[i] = Definition{Bit: i, Flag: Flag(1) << i, Name: name}
	}
	return out
}

// Decode returns the names of all bits set in v, in bit order. Bits without
// a name are reported as "BIT<n>".
func Decode(v Flag) []string {
	var names []string
	for v != 0 {
		bit := bits.TrailingZeros64(uint64(v))
		if bit < len(flagNames) {
			names = append(names, flagNames[bit])
		} else {
			names = append(names, "BIT"+strconv.Itoa(bit))
		}
		v &^= Flag(1) << bit
	}
	return names
}

// String joins the decoded bit names with "|". Zero prints as "0".
func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	return strings.Join(Decode(f), "|")
}

// ParseFlag accepts a "|"-separated list of bit names, "BIT<n>" tokens, or
// plain integers (decimal or 0x hex) and ORs them together.
func ParseFlag(s string) (Flag, error) {
	var out Flag
	for _, tok := range strings.Split(s, "|") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			return 0, fmt.Errorf("%w: empty token in %q", errUnknownFlag, s)
		}
		f, err := parseToken(tok)
		if err != nil {
			return 0, err
		}
		out |= f
	}
	return out, nil
}

func parseToken(tok string) (Flag, error) {
	for i, name := range flagNames {
		if tok == name {
			return Flag(1) << i, nil
		}
	}
	if rest, ok := strings.CutPrefix(tok, "BIT"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n > 63 {
			return 0, fmt.Errorf("%w: %q", errUnknownFlag, tok)
		}
		return Flag(1) << n, nil
	}
	v, err := strconv.ParseUint(strings.ToLower(tok), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnknownFlag, tok)
	}
	return Flag(v), nil
}
