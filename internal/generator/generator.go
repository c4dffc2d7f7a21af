// Package generator builds island worlds from configuration and animates their water.
//
// A Generator replaces per-frame engine callbacks with two explicit calls:
// Regenerate rebuilds everything from a config, Tick advances the waves.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/terrain"
	"github.com/Faultbox/isoterrain/internal/water"
	"github.com/Faultbox/isoterrain/pkg/heightfield"
	"github.com/Faultbox/isoterrain/pkg/noise"
)

// ErrInvalidConfig is returned by Regenerate when the config cannot produce a world.
var ErrInvalidConfig = errors.New("invalid terrain config")

// World is one generated island.
type World struct {
	RunID   string
	Seed    noise.Seed
	Land    *terrain.Mesh
	Water   *terrain.Mesh // nil when water is disabled
	Heights []float64     // Signed heightfield shared by land and water
	Elapsed float64       // Time of the last Tick
}

// Generator owns the current world. It is not safe for concurrent use.
type Generator struct {
	log      *zap.Logger
	clock    noise.Clock
	parallel *bool

	world    *World
	animator *water.Animator
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithClock sets the time source used to randomize a zero seed.
func WithClock(clock noise.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// WithParallel overrides the config's parallel lattice evaluation setting.
func WithParallel(parallel bool) Option {
	return func(g *Generator) {
		g.parallel = &parallel
	}
}

// New creates a Generator with no world.
func New(opts ...Option) *Generator {
	g := &Generator{
		log:   zap.NewNop(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// World returns the current world, or nil before the first Regenerate.
func (g *Generator) World() *World {
	return g.world
}

// Regenerate builds a new world from cfg and makes it current.
// On error the previous world is kept.
func (g *Generator) Regenerate(cfg *config.Config) (*World, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	seed := cfg.Noise.Seed
	if seed == 0 && cfg.Noise.SeedName != "" {
		seed = uint32(noise.FromString(cfg.Noise.SeedName))
	}
	resolved := noise.Resolve(noise.Seed(seed), g.clock)

	sampler, err := noise.New(noise.Kind(cfg.Noise.Kind), resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	start := time.Now()
	t := cfg.Terrain
	params := heightfield.Params{
		Width:        t.Width,
		Height:       t.Height,
		Octaves:      t.Octaves,
		Scale:        t.Scale,
		FalloffScale: t.FalloffScale,
		Spread:       t.Spread,
		Coherence:    t.Coherence,
		OffsetX:      cfg.Noise.OffsetX,
		OffsetY:      cfg.Noise.OffsetY,
		Steps:        t.Steps,
		Policy:       heightfield.Signed,
	}

	parallel := t.Parallel
	if g.parallel != nil {
		parallel = *g.parallel
	}
	synth := heightfield.New(sampler, resolved, params)
	var signed []float64
	if parallel {
		signed = synth.GridParallel()
	} else {
		signed = synth.Grid()
	}

	w := &World{
		RunID:   uuid.NewString(),
		Seed:    resolved,
		Heights: signed,
		Land:    terrain.BuildMesh(clampLand(signed), t.Width, t.Height, t.Depth, t.Gradient),
	}

	var animator *water.Animator
	if cfg.Water.Enabled {
		w.Water = water.BuildSurface(signed, t.Width, t.Height, cfg.Water.Depth, cfg.Water.Gradient)
		waves := water.WaveParams{
			Scale:     cfg.Water.WaveScale,
			Speed:     cfg.Water.WaveSpeed,
			Amplitude: cfg.Water.WaveAmplitude,
			Level:     cfg.Water.Level,
		}
		if waves.Enabled() {
			animator = water.NewAnimator(w.Water, sampler, waves)
		}
	}

	g.world = w
	g.animator = animator

	lo, hi := heightfield.Range(signed)
	g.log.Info("terrain generated",
		zap.String("run_id", w.RunID),
		zap.Uint32("seed", uint32(resolved)),
		zap.Bool("random_seed", seed == 0),
		zap.String("noise", cfg.Noise.Kind),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
		zap.Int("vertices", len(w.Land.Vertices)),
		zap.Int("triangles", w.Land.TriangleCount()),
		zap.Float64("min_height", lo),
		zap.Float64("max_height", hi),
		zap.Duration("took", time.Since(start)),
	)
	return w, nil
}

// Tick advances the water animation to elapsed seconds since the last Regenerate.
// It returns the new wave heights, or nil when there is nothing to animate.
func (g *Generator) Tick(elapsed float64) []float64 {
	if g.world == nil || g.animator == nil {
		return nil
	}
	g.world.Elapsed = elapsed
	heights := g.animator.Tick(elapsed)
	g.log.Debug("water tick", zap.Float64("elapsed", elapsed), zap.Int("points", len(heights)))
	return heights
}

// clampLand floors a signed heightfield at sea level. NaN passes through.
func clampLand(signed []float64) []float64 {
	land := make([]float64, len(signed))
	for i, v := range signed {
		if v >= 0 || v != v {
			land[i] = v
		}
	}
	return land
}
