// Package config loads reduction recipes: the collapse strategy, flag plane
// width, the ordered cube and spectrum stages to run, and the number of
// exposures reduced concurrently.
//
// Values are resolved with priority environment > file > defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-apogee/exposure"
	"github.com/cwbudde/algo-apogee/flags"
	"github.com/cwbudde/algo-apogee/nddata"
)

// Environment variables that override file values.
const (
	EnvStrategy  = "APOGEE_COLLAPSE_STRATEGY"
	EnvFlagWidth = "APOGEE_FLAG_WIDTH"
	EnvWorkers   = "APOGEE_WORKERS"
)

// Config is a reduction recipe.
type Config struct {
	Strategy       exposure.Strategy `yaml:"strategy"`
	FlagWidth      int               `yaml:"flag_width"`
	CubeStages     []string          `yaml:"cube_stages"`
	SpectrumStages []string          `yaml:"spectrum_stages"`
	Workers        int               `yaml:"workers"`
}

// Default returns a recipe that collapses up the ramp into 16-bit flagged
// images with no correction stages, using one worker per CPU.
func Default() Config {
	return Config{
		Strategy:  exposure.UpTheRamp,
		FlagWidth: int(flags.DefaultWidth),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Load reads the recipe at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML recipe over the defaults and validates it. The
// environment is not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// decode rejects keys that Config does not define. An empty document
// leaves the defaults in place.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvStrategy); v != "" {
		s, err := exposure.ParseStrategy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrategy, err)
		}
		cfg.Strategy = s
	}
	if v := os.Getenv(EnvFlagWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", EnvFlagWidth, nddata.ErrInvalidArgument, v)
		}
		cfg.FlagWidth = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", EnvWorkers, nddata.ErrInvalidArgument, v)
		}
		cfg.Workers = n
	}
	return nil
}

// Validate checks enumerated values and stage lists. Stage names are
// resolved later against a stage registry.
func (c Config) Validate() error {
	var errs []error
	if !c.Strategy.Valid() {
		errs = append(errs, fmt.Errorf("%w: strategy %v", nddata.ErrInvalidArgument, c.Strategy))
	}
	if _, err := flags.ParseWidth(c.FlagWidth); err != nil {
		errs = append(errs, fmt.Errorf("flag_width: %w", err))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be >= 1: %d", nddata.ErrInvalidArgument, c.Workers))
	}
	errs = append(errs, validateStages("cube_stages", c.CubeStages), validateStages("spectrum_stages", c.SpectrumStages))
	return errors.Join(errs...)
}

// Width returns the configured flag width. Call Validate first.
func (c Config) Width() flags.Width {
	return flags.Width(c.FlagWidth)
}

func validateStages(field string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: %s[%d] is empty", nddata.ErrInvalidArgument, field, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s lists %q twice", nddata.ErrInvalidArgument, field, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
