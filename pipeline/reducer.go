package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-apogee/config"
	"github.com/cwbudde/algo-apogee/exposure"
	"github.com/cwbudde/algo-apogee/nddata"
	"github.com/cwbudde/algo-apogee/spectrum"
)

// Option configures a Reducer.
type Option func(*reducerConfig)

type reducerConfig struct {
	cubes   *Registry[*exposure.Cube]
	spectra *Registry[*spectrum.Spectrum2D]
}

// WithCubeRegistry resolves cube stage names against r instead of
// DefaultCubeRegistry.
func WithCubeRegistry(r *Registry[*exposure.Cube]) Option {
	return func(c *reducerConfig) {
		if r != nil {
			c.cubes = r
		}
	}
}

// WithSpectrumRegistry resolves spectrum stage names against r instead of
// DefaultSpectrumRegistry.
func WithSpectrumRegistry(r *Registry[*spectrum.Spectrum2D]) Option {
	return func(c *reducerConfig) {
		if r != nil {
			c.spectra = r
		}
	}
}

// Reducer runs a recipe: cube corrections, then collapse to an image.
// Calibrate runs the spectrum stages on extracted spectra.
type Reducer struct {
	cfg     config.Config
	cubes   *Sequence[*exposure.Cube]
	spectra *Sequence[*spectrum.Spectrum2D]
}

// NewReducer validates cfg and resolves its stage names.
func NewReducer(cfg config.Config, opts ...Option) (*Reducer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rc := reducerConfig{
		cubes:   DefaultCubeRegistry(),
		spectra: DefaultSpectrumRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&rc)
		}
	}

	cubes, err := rc.cubes.Build(cfg.CubeStages)
	if err != nil {
		return nil, fmt.Errorf("cube_stages: %w", err)
	}
	spectra, err := rc.spectra.Build(cfg.SpectrumStages)
	if err != nil {
		return nil, fmt.Errorf("spectrum_stages: %w", err)
	}
	return &Reducer{cfg: cfg, cubes: cubes, spectra: spectra}, nil
}

// CubeStages returns the cube stage names in run order.
func (r *Reducer) CubeStages() []string {
	return r.cubes.Names()
}

// SpectrumStages returns the spectrum stage names in run order.
func (r *Reducer) SpectrumStages() []string {
	return r.spectra.Names()
}

// Reduce runs the cube stages on c and collapses the result.
func (r *Reducer) Reduce(c *exposure.Cube) (*exposure.Image, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil cube", nddata.ErrInvalidArgument)
	}
	corrected, err := r.cubes.Run(c)
	if err != nil {
		return nil, err
	}
	if corrected == nil {
		return nil, fmt.Errorf("%w: cube stages returned no cube", nddata.ErrInvalidArgument)
	}
	Logf("pipeline: collapsing %v with %v", corrected.Shape(), r.cfg.Strategy)
	return corrected.Collapse(r.cfg.Strategy, exposure.WithFlagWidth(r.cfg.Width()))
}

// ReduceAll reduces independent exposures on up to cfg.Workers goroutines.
// Images are returned in input order. The first failure cancels exposures
// that have not started yet and is returned with the index of its cube.
func (r *Reducer) ReduceAll(ctx context.Context, cubes []*exposure.Cube) ([]*exposure.Image, error) {
	images := make([]*exposure.Image, len(cubes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, c := range cubes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			im, err := r.Reduce(c)
			if err != nil {
				return fmt.Errorf("exposure %d: %w", i, err)
			}
			images[i] = im
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	Logf("pipeline: reduced %d exposures", len(cubes))
	return images, nil
}

// Calibrate runs the spectrum stages on s.
func (r *Reducer) Calibrate(s *spectrum.Spectrum2D) (*spectrum.Spectrum2D, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil spectrum", nddata.ErrInvalidArgument)
	}
	return r.spectra.Run(s)
}
