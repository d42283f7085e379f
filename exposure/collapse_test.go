package exposure

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-apogee/internal/testutil"
	"github.com/cwbudde/algo-apogee/nddata"
)

func mustCube(t *testing.T, shape nddata.Shape, data []float64) *Cube {
	t.Helper()
	c, err := NewCube(shape, data)
	if err != nil {
		t.Fatalf("NewCube(%v): %v", shape, err)
	}
	return c
}

func TestCollapseUpTheRampSumsReads(t *testing.T) {
	t.Parallel()

	c := mustCube(t, nddata.Shape{2, 2, 3}, testutil.Sequential(2, 2, 3))

	im, err := c.Collapse(UpTheRamp)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if !im.Array.Shape.Equal(nddata.Shape{2, 2}) {
		t.Fatalf("shape = %v, want (2,2)", im.Array.Shape)
	}
	if diff := cmp.Diff([]float64{6, 15, 24, 33}, im.Array.Data); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
	v, _ := im.At(0, 0)
	if v != 6 {
		t.Fatalf("pixel (0,0) = %v, want 6", v)
	}
}

func TestCollapseDefaultStrategyIsUpTheRamp(t *testing.T) {
	t.Parallel()

	var s Strategy
	if s != UpTheRamp {
		t.Fatalf("zero Strategy = %v, want UP_THE_RAMP", s)
	}
}

func TestCollapseLinearRamp(t *testing.T) {
	t.Parallel()

	const rows, cols, reads = 5, 7, 12
	c := mustCube(t, nddata.Shape{rows, cols, reads}, testutil.LinearRamp(rows, cols, reads, 100, 3.5))

	im, err := c.Collapse(UpTheRamp)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFrameNearlyEqual(t, im.Array.Data, testutil.RampSum(rows, cols, reads, 100, 3.5), cols, 1e-9)
}

func TestCollapseSingleReadIsIdentity(t *testing.T) {
	t.Parallel()

	data := []float64{1.5, -2, 3, 4}
	c := mustCube(t, nddata.Shape{2, 2, 1}, data)

	im, err := c.Collapse(UpTheRamp)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(data, im.Array.Data); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}

	plane, _ := c.Read(0)
	im.Array.Data[0] = 99
	if plane[0] != 1.5 {
		t.Fatal("collapsed frame shares storage with the cube")
	}
}

func TestCollapseFowlerNotImplemented(t *testing.T) {
	t.Parallel()

	for _, shape := range []nddata.Shape{{2, 2, 3}, {2, 2, 1}, {1, 1, 8}} {
		c := mustCube(t, shape, testutil.Sequential(shape[0], shape[1], shape[2]))
		im, err := c.Collapse(Fowler)
		if !errors.Is(err, nddata.ErrNotImplemented) {
			t.Fatalf("Collapse(Fowler) on %v err = %v, want ErrNotImplemented", shape, err)
		}
		if im != nil {
			t.Fatal("Collapse(Fowler) returned an image")
		}
	}
}

func TestCollapseUnknownStrategy(t *testing.T) {
	t.Parallel()

	c := mustCube(t, nddata.Shape{2, 2, 3}, testutil.Sequential(2, 2, 3))
	if _, err := c.Collapse(Strategy(42)); !errors.Is(err, nddata.ErrInvalidArgument) {
		t.Fatalf("Collapse(42) err = %v, want ErrInvalidArgument", err)
	}

	if _, err := ParseStrategy("bogus"); !errors.Is(err, nddata.ErrInvalidArgument) {
		t.Fatalf(`ParseStrategy("bogus") err = %v, want ErrInvalidArgument`, err)
	}
}

func TestCollapseEmptyCube(t *testing.T) {
	t.Parallel()

	for _, c := range []*Cube{nil, {}} {
		for _, s := range []Strategy{UpTheRamp, Fowler} {
			if _, err := c.Collapse(s); !errors.Is(err, nddata.ErrInvalidArgument) {
				t.Fatalf("Collapse(%v) on empty cube err = %v, want ErrInvalidArgument", s, err)
			}
		}
	}
}

func TestCollapseDoesNotMutateCube(t *testing.T) {
	t.Parallel()

	data := testutil.NoisyRamp(3, 3, 4, 6, 10, 1, 0.25)
	c := mustCube(t, nddata.Shape{3, 4, 6}, data)
	before := c.Array().Data

	im, err := c.Collapse(UpTheRamp)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, c.Array().Data); diff != "" {
		t.Fatalf("cube mutated (-before +after):\n%s", diff)
	}

	testutil.RequireFinite(t, im.Array.Data)
	d, err := testutil.MaxAbsDiff(im.Array.Data, testutil.RampSum(3, 4, 6, 10, 1))
	if err != nil {
		t.Fatal(err)
	}
	if d > 6*0.25+1e-9 {
		t.Fatalf("noisy collapse off by %v, want <= %v", d, 6*0.25)
	}
}

func TestCollapsePassesLabelsThrough(t *testing.T) {
	t.Parallel()

	c := mustCube(t, nddata.Shape{1, 2, 2}, []float64{1, 2, 3, 4})
	c.Meta = map[string]any{"EXPTIME": 10.6, "CHIP": "b"}
	c.Unit = "adu"

	im, err := c.Collapse(UpTheRamp)
	if err != nil {
		t.Fatal(err)
	}
	if im.Array.Unit != "adu" {
		t.Fatalf("unit = %q, want adu", im.Array.Unit)
	}
	if diff := cmp.Diff(c.Meta, im.Array.Meta); diff != "" {
		t.Fatalf("meta mismatch (-cube +image):\n%s", diff)
	}
	im.Array.Meta["CHIP"] = "c"
	if c.Meta["CHIP"] != "b" {
		t.Fatal("image meta shares map with cube")
	}
}

func TestCollapseFlagWidthOption(t *testing.T) {
	t.Parallel()

	c := mustCube(t, nddata.Shape{1, 1, 2}, []float64{1, 2})
	im, err := c.Collapse(UpTheRamp, WithFlagWidth(32))
	if err != nil {
		t.Fatal(err)
	}
	if err := im.Flag(1<<20, nil); err != nil {
		t.Fatalf("32-bit flag on 32-bit image: %v", err)
	}
}
