package spectrum

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-apogee/flags"
	"github.com/cwbudde/algo-apogee/nddata"
)

func mustArray(t *testing.T, shape nddata.Shape, data []float64, opts ...nddata.Option) *nddata.Array {
	t.Helper()
	a, err := nddata.New(shape, data, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewSpectrum(t *testing.T) {
	t.Parallel()

	flux := mustArray(t, nddata.Shape{3}, []float64{1, 2, 3})
	s, err := New(flux, WithWavelength([]float64{15100, 15101, 15102}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d", s.Len())
	}

	if _, err := New(flux, WithWavelength([]float64{1})); !errors.Is(err, nddata.ErrShapeMismatch) {
		t.Fatalf("short wavelength err = %v", err)
	}
	img := mustArray(t, nddata.Shape{1, 3}, []float64{1, 2, 3})
	if _, err := New(img); !errors.Is(err, nddata.ErrShapeMismatch) {
		t.Fatalf("rank 2 err = %v", err)
	}
	if _, err := New(nil); !errors.Is(err, nddata.ErrInvalidArgument) {
		t.Fatalf("nil flux err = %v", err)
	}
}

func TestSpectrumFlag(t *testing.T) {
	t.Parallel()

	s, _ := New(mustArray(t, nddata.Shape{4}, make([]float64, 4)))
	sky, _ := nddata.MaskFrom(nddata.Shape{4}, []bool{false, true, true, false})

	if err := s.Flag(flags.SigSkyline, sky); err != nil {
		t.Fatal(err)
	}
	if err := s.Flag(flags.SigSkyline, sky); err != nil {
		t.Fatal(err)
	}
	want := []uint64{0, uint64(flags.SigSkyline), uint64(flags.SigSkyline), 0}
	if diff := cmp.Diff(want, s.Flags().Bits()); diff != "" {
		t.Fatalf("bits mismatch (-want +got):\n%s", diff)
	}
}

func TestSpectrum2DFiber(t *testing.T) {
	t.Parallel()

	mask, _ := nddata.MaskFrom(nddata.Shape{2, 3}, []bool{false, false, false, true, false, false})
	flux := mustArray(t, nddata.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6},
		nddata.WithUncertainty([]float64{.1, .2, .3, .4, .5, .6}),
		nddata.WithMask(mask),
		nddata.WithLabels(nddata.Labels{Meta: map[string]any{"PLATE": 1234}, Unit: "1e-17 erg/s/cm2/A"}),
	)
	s, err := New2D(flux, WithWavelength([]float64{10, 11, 12, 20, 21, 22}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Fibers() != 2 || s.Pixels() != 3 {
		t.Fatalf("dims = %d x %d", s.Fibers(), s.Pixels())
	}

	tell, _ := nddata.MaskFrom(nddata.Shape{2, 3}, []bool{false, false, false, false, true, false})
	_ = s.Flag(flags.SigTelluric, tell)

	f, err := s.Fiber(1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{4, 5, 6}, f.Flux.Data); diff != "" {
		t.Fatalf("flux mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{.4, .5, .6}, f.Flux.Uncertainty); diff != "" {
		t.Fatalf("uncertainty mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false, false}, f.Flux.Mask.Values); diff != "" {
		t.Fatalf("mask mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20, 21, 22}, f.Wavelength); diff != "" {
		t.Fatalf("wavelength mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{0, uint64(flags.SigTelluric), 0}, f.Flags().Bits()); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}
	if f.Flux.Unit != flux.Unit || f.Flux.Meta["PLATE"] != 1234 {
		t.Fatalf("labels not carried: %+v", f.Flux.Labels)
	}

	f.Flux.Data[0] = -1
	if flux.Data[3] != 4 {
		t.Fatal("fiber shares flux storage with the 2-D spectrum")
	}

	if _, err := s.Fiber(2); !errors.Is(err, nddata.ErrInvalidArgument) {
		t.Fatalf("Fiber(2) err = %v", err)
	}
}

func TestSpectrum2DFiberWithoutFlags(t *testing.T) {
	t.Parallel()

	s, _ := New2D(mustArray(t, nddata.Shape{1, 2}, []float64{1, 2}))
	f, err := s.Fiber(0)
	if err != nil {
		t.Fatal(err)
	}
	if f.Flags() != nil || f.Wavelength != nil || f.Flux.Mask != nil {
		t.Fatalf("unexpected optional parts on fiber: %+v", f)
	}
}

func TestNew2DErrors(t *testing.T) {
	t.Parallel()

	if _, err := New2D(mustArray(t, nddata.Shape{3}, []float64{1, 2, 3})); !errors.Is(err, nddata.ErrShapeMismatch) {
		t.Fatalf("rank 1 err = %v", err)
	}
	if _, err := New2D(mustArray(t, nddata.Shape{1, 2}, []float64{1, 2}), WithWavelength([]float64{1})); !errors.Is(err, nddata.ErrShapeMismatch) {
		t.Fatalf("wavelength err = %v", err)
	}
}

func TestCalibrationStagesNotImplemented(t *testing.T) {
	t.Parallel()

	s, _ := New2D(mustArray(t, nddata.Shape{1, 1}, []float64{1}))
	stages := []func() (*Spectrum2D, error){
		s.SkySubtract,
		s.TelluricCorrect,
		s.WavelengthCorrect,
		s.RelativeFluxCalibrate,
		s.AbsoluteFluxCalibrate,
	}
	for i, run := range stages {
		out, err := run()
		if !errors.Is(err, nddata.ErrNotImplemented) {
			t.Fatalf("stage %d err = %v, want ErrNotImplemented", i, err)
		}
		if out != nil {
			t.Fatalf("stage %d returned data", i)
		}
	}
}
