package generator

import (
	"errors"
	"fmt"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/pkg/noise"
)

// Validate checks that cfg can produce a world.
// Zero width or height is allowed and yields empty meshes.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	var errs []error
	t := cfg.Terrain
	if t.Width < 0 || t.Height < 0 {
		errs = append(errs, fmt.Errorf("negative grid size %dx%d", t.Width, t.Height))
	}
	if t.Octaves < 1 {
		errs = append(errs, fmt.Errorf("octaves must be at least 1, got %d", t.Octaves))
	}
	if t.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", t.Scale))
	}
	if t.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", t.Steps))
	}
	if err := t.Gradient.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("terrain gradient: %w", err))
	}

	switch noise.Kind(cfg.Noise.Kind) {
	case noise.KindPerlin, noise.KindSimplex, "":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", noise.ErrUnknownKind, cfg.Noise.Kind))
	}

	if cfg.Water.Enabled {
		if err := cfg.Water.Gradient.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("water gradient: %w", err))
		}
		if cfg.Water.WaveAmplitude < 0 {
			errs = append(errs, fmt.Errorf("wave amplitude must not be negative, got %g", cfg.Water.WaveAmplitude))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
