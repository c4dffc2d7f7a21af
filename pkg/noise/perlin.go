package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin is classic single-octave Perlin gradient noise.
// Octave summation is left to the caller.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin sampler.
func NewPerlin(seed Seed) *Perlin {
	// alpha and beta are irrelevant with a single octave.
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, int64(seed))}
}

// Sample implements Sampler.
// Raw 2D Perlin output peaks near ±sqrt(1/2), so it is stretched to fill [-1, 1].
func (n *Perlin) Sample(x, y float64) float64 {
	if !finite(x, y) {
		return math.NaN()
	}
	return clamp(n.p.Noise2D(x, y)*math.Sqrt2, -1, 1)
}
