// Package water builds the water surface mesh and animates its waves.
package water

import (
	"github.com/Faultbox/isoterrain/internal/terrain"
	"github.com/Faultbox/isoterrain/pkg/heightfield"
	"github.com/Faultbox/isoterrain/pkg/noise"
)

// WaveParams configures the wave animation of a water surface.
type WaveParams struct {
	Width     int
	Height    int
	Scale     float64 // Noise scale across the whole surface
	Speed     float64 // Noise-space units per second
	Amplitude float64 // Peak wave height in world units
	Level     float32 // Rest height of the surface in world units
}

// Enabled reports whether waves move or have any height.
func (p WaveParams) Enabled() bool {
	return p.Amplitude != 0
}

// BuildSurface creates the water mesh from a signed height grid scaled by depth.
// Waves are layered on later by an Animator.
func BuildSurface(heights []float64, width, height int, depth float32, gradient terrain.Gradient) *terrain.Mesh {
	return terrain.BuildMesh(heights, width, height, depth, gradient)
}

// WaveHeights returns the wave offset of every lattice point at elapsed time t.
// It always returns a fresh slice.
func WaveHeights(sampler noise.Sampler, p WaveParams, t float64) []float64 {
	out := make([]float64, heightfield.LatticeSize(p.Width, p.Height))
	if len(out) == 0 {
		return out
	}

	w := float64(p.Width)
	h := float64(p.Height)
	drift := p.Speed * t
	for x := 0; x <= p.Width; x++ {
		for y := 0; y <= p.Height; y++ {
			nx := float64(x)/w*p.Scale + drift
			ny := float64(y)/h*p.Scale + drift
			out[heightfield.Index(x, y, p.Height)] = (noise.Unit(sampler, nx, ny)*2 - 1) * p.Amplitude
		}
	}
	return out
}
