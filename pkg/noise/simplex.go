package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Simplex is OpenSimplex noise.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an OpenSimplex sampler.
func NewSimplex(seed Seed) *Simplex {
	return &Simplex{n: opensimplex.New(int64(seed))}
}

// Sample implements Sampler.
func (n *Simplex) Sample(x, y float64) float64 {
	if !finite(x, y) {
		return math.NaN()
	}
	return clamp(n.n.Eval2(x, y), -1, 1)
}
