// Package heightfield synthesizes island heightmaps from fractal noise.
package heightfield

import (
	"math"

	"github.com/Faultbox/isoterrain/pkg/noise"
)

// Policy decides what happens to heights below sea level.
type Policy int

const (
	// Clamped floors heights at 0. Used for land.
	Clamped Policy = iota
	// Signed keeps negative heights. Used for water so underwater areas dip.
	Signed
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Clamped:
		return "clamped"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// Params describes a heightfield.
type Params struct {
	Width   int // Cells along x
	Height  int // Cells along y
	Octaves int
	Scale   float64 // Base noise scale; larger is smoother

	FalloffScale float64 // Lattice divisor for the island mask (0 means 1)
	Spread       float64 // Radius-squared offset of the island mask
	Coherence    float64 // Strength of the island mask

	OffsetX float64 // Added to the seed origin in noise space
	OffsetY float64

	Steps  int // Quantize the fractal term to this many levels (0 = smooth)
	Policy Policy
}

// DefaultParams returns a 256x256 island.
func DefaultParams() Params {
	return Params{
		Width:        256,
		Height:       256,
		Octaves:      4,
		Scale:        20,
		FalloffScale: 1,
		Spread:       0.05,
		Coherence:    3,
		Policy:       Clamped,
	}
}

// Synthesizer evaluates heights for one seed and parameter set.
// It holds no mutable state and is safe for concurrent use.
type Synthesizer struct {
	params  Params
	sampler noise.Sampler
	weights []float64
	originX float64
	originY float64
}

// New creates a Synthesizer. The seed must already be resolved; see noise.Resolve.
func New(sampler noise.Sampler, seed noise.Seed, p Params) *Synthesizer {
	origin := noise.Origin(seed)
	return &Synthesizer{
		params:  p,
		sampler: sampler,
		weights: OctaveWeights(p.Octaves),
		originX: origin + p.OffsetX,
		originY: origin + p.OffsetY,
	}
}

// Params returns the parameters the synthesizer was built with.
func (s *Synthesizer) Params() Params {
	return s.params
}

// OctaveWeights returns per-octave weights 1/2^i normalized to sum to 1.
func OctaveWeights(octaves int) []float64 {
	if octaves < 1 {
		return nil
	}
	weights := make([]float64, octaves)
	var total float64
	for i := range weights {
		weights[i] = 1 / math.Pow(2, float64(i))
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// Fractal returns the fBm term at lattice point (x, y), in [0, 1].
// Octave i divides coordinates by Scale/2^i, so each octave doubles in frequency.
func (s *Synthesizer) Fractal(x, y float64) float64 {
	var sum float64
	octaveScale := s.params.Scale
	for _, w := range s.weights {
		nx := x/octaveScale + s.originX
		ny := y/octaveScale + s.originY
		sum += noise.Unit(s.sampler, nx, ny) * w
		octaveScale /= 2
	}
	if s.params.Steps > 0 {
		steps := float64(s.params.Steps)
		sum = math.Round(sum*steps) / steps
	}
	return sum
}

// Falloff returns the island mask at lattice point (x, y).
// It grows with distance from the grid center, negative near the center.
func (s *Synthesizer) Falloff(x, y float64) float64 {
	fs := s.params.FalloffScale
	if fs == 0 {
		fs = 1
	}
	w := float64(s.params.Width)
	h := float64(s.params.Height)
	dx := (x/fs - w/2) / w
	dy := (y/fs - h/2) / h
	return (dx*dx + dy*dy - s.params.Spread) * s.params.Coherence
}

// At returns the height at lattice point (x, y) under the configured policy.
func (s *Synthesizer) At(x, y float64) float64 {
	v := s.Fractal(x, y) - s.Falloff(x, y)
	if s.params.Policy == Clamped && v < 0 {
		return 0
	}
	return v
}

// Height evaluates one lattice point without building a Synthesizer first.
func Height(sampler noise.Sampler, seed noise.Seed, p Params, x, y float64) float64 {
	return New(sampler, seed, p).At(x, y)
}
