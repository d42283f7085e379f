package flags

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-apogee/nddata"
)

func TestDefinitionsFitDefaultWidth(t *testing.T) {
	t.Parallel()

	defs := Definitions()
	if len(defs) != 15 {
		t.Fatalf("len(Definitions()) = %d, want 15", len(defs))
	}
	for _, d := range defs {
		if uint64(d.Flag) > DefaultWidth.Max() {
			t.Fatalf("%s does not fit %v", d.Name, DefaultWidth)
		}
		if d.Flag != Flag(1)<<d.Bit {
			t.Fatalf("%s: flag %#x does not match bit %d", d.Name, uint64(d.Flag), d.Bit)
		}
	}
	if defs[8].Name != "LITTROW_GHOST" || defs[8].Flag != LittrowGhost {
		t.Fatalf("bit 8 = %+v, want LITTROW_GHOST", defs[8])
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	got := Decode(BadPixel | Saturated | PersistMed | 1<<20)
	want := []string{"BADPIX", "SATPIX", "PERSIST_MED", "BIT20"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
	}
	if Decode(0) != nil {
		t.Fatal("Decode(0) should be empty")
	}
}

func TestFlagString(t *testing.T) {
	t.Parallel()

	if got := (CosmicRay | NoSky).String(); got != "CRPIX|NOSKY" {
		t.Fatalf("String() = %q", got)
	}
	if got := Flag(0).String(); got != "0" {
		t.Fatalf("String() = %q, want 0", got)
	}
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Flag
	}{
		{in: "BADPIX", want: BadPixel},
		{in: "badpix | satpix", want: BadPixel | Saturated},
		{in: "BIT15", want: 1 << 15},
		{in: "0x100", want: LittrowGhost},
		{in: "6", want: CosmicRay | Saturated},
	}
	for _, tt := range tests {
		got, err := ParseFlag(tt.in)
		if err != nil {
			t.Fatalf("ParseFlag(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFlag(%q) = %#x, want %#x", tt.in, uint64(got), uint64(tt.want))
		}
	}

	for _, bad := range []string{"", "NOPE", "BIT64", "BADPIX||SATPIX"} {
		if _, err := ParseFlag(bad); !errors.Is(err, nddata.ErrInvalidArgument) {
			t.Fatalf("ParseFlag(%q) err = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestParseWidth(t *testing.T) {
	t.Parallel()

	w, err := ParseWidth(32)
	if err != nil || w != Width32 {
		t.Fatalf("ParseWidth(32) = %v, %v", w, err)
	}
	for _, bad := range []int{0, 12, -8, 300} {
		if _, err := ParseWidth(bad); !errors.Is(err, nddata.ErrInvalidArgument) {
			t.Fatalf("ParseWidth(%d) err = %v, want ErrInvalidArgument", bad, err)
		}
	}
	if Width8.Max() != 0xff || Width64.Max() != ^uint64(0) {
		t.Fatal("unexpected Max values")
	}
}
