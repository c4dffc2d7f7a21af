// Package noise provides seeded 2D gradient noise samplers for terrain generation.
package noise

import (
	"errors"
	"fmt"
	"math"
)

// Kind selects a noise backend.
type Kind string

// Supported noise backends.
const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// ErrUnknownKind is returned by New for an unsupported backend name.
var ErrUnknownKind = errors.New("unknown noise kind")

// Sampler evaluates continuous 2D noise.
// Sample returns a value in [-1, 1] and is deterministic for a given seed.
// Implementations must be safe for concurrent reads.
type Sampler interface {
	Sample(x, y float64) float64
}

// New creates a sampler of the given kind seeded with seed.
func New(kind Kind, seed Seed) (Sampler, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Unit remaps a sample from [-1, 1] into [0, 1].
func Unit(s Sampler, x, y float64) float64 {
	return clamp((s.Sample(x, y)+1)/2, 0, 1)
}

// clamp keeps NaN as NaN so non-finite input propagates instead of being hidden.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
