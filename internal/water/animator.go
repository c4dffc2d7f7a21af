package water

import (
	"github.com/Faultbox/isoterrain/internal/terrain"
	"github.com/Faultbox/isoterrain/pkg/noise"
)

// Animator drives the waves of one water mesh.
// It is not safe for concurrent use; call Tick from the host's frame loop.
type Animator struct {
	mesh    *terrain.Mesh
	sampler noise.Sampler
	params  WaveParams
	base    []float32
	elapsed float64
}

// NewAnimator creates an animator for mesh. The grid size is taken from the mesh.
// The current vertex Y values become the resting surface the waves ride on.
func NewAnimator(mesh *terrain.Mesh, sampler noise.Sampler, params WaveParams) *Animator {
	params.Width = mesh.Width
	params.Height = mesh.Height
	base := make([]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		base[i] = v.Position[1]
	}
	return &Animator{
		mesh:    mesh,
		sampler: sampler,
		params:  params,
		base:    base,
	}
}

// Tick recomputes the surface for elapsed seconds and writes vertex Y only.
// Each vertex ends up at its resting height plus Level plus the wave offset,
// so underwater areas stay below the level and vertex colors stay valid.
// The returned buffer holds the wave offsets; it is new on every call and owned by the caller.
func (a *Animator) Tick(elapsed float64) []float64 {
	a.elapsed = elapsed
	heights := WaveHeights(a.sampler, a.params, elapsed)

	ys := make([]float32, len(a.base))
	for i := range ys {
		ys[i] = a.base[i] + a.params.Level
		if i < len(heights) {
			ys[i] += float32(heights[i])
		}
	}
	// Sizes match by construction; the mesh never shrinks under an animator.
	_ = a.mesh.SetY(ys)
	return heights
}

// Base returns the resting Y of each vertex, before Level and waves.
func (a *Animator) Base() []float32 {
	return a.base
}

// Elapsed returns the time of the last Tick.
func (a *Animator) Elapsed() float64 {
	return a.elapsed
}

// Mesh returns the animated mesh.
func (a *Animator) Mesh() *terrain.Mesh {
	return a.mesh
}

// Params returns the wave parameters.
func (a *Animator) Params() WaveParams {
	return a.params
}
