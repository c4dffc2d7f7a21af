package terrain

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/isoterrain/pkg/heightfield"
)

// ErrSizeMismatch is returned when a height buffer does not cover every vertex of a mesh.
var ErrSizeMismatch = errors.New("height buffer does not match mesh")

// BuildTriangles returns the index buffer for a width x height grid.
// It depends only on grid size, so callers build it once and reuse it across height updates.
func BuildTriangles(width, height int) []uint32 {
	if width <= 0 || height <= 0 {
		return []uint32{}
	}

	stride := uint32(height + 1)
	indices := make([]uint32, 0, width*height*6)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			v := uint32(heightfield.Index(x, y, height))
			// Two triangles per quad, both wound so the face normal points up.
			indices = append(indices,
				v, v+1, v+stride,
				v+stride, v+1, v+stride+1,
			)
		}
	}
	return indices
}

// BuildVertices places one vertex per lattice point, centered on the origin.
// heights is row-major as produced by heightfield.Grid and is scaled by depth.
func BuildVertices(heights []float64, width, height int, depth float32) []Vertex {
	n := heightfield.LatticeSize(width, height)
	if n == 0 || len(heights) < n {
		return []Vertex{}
	}

	halfW := float32(width) / 2
	halfH := float32(height) / 2
	vertices := make([]Vertex, n)
	for x := 0; x <= width; x++ {
		for y := 0; y <= height; y++ {
			i := heightfield.Index(x, y, height)
			vertices[i].Position = mgl32.Vec3{
				float32(x) - halfW,
				float32(heights[i]) * depth,
				float32(y) - halfH,
			}
		}
	}
	return vertices
}

// HeightFunc returns the unscaled height at a lattice point.
type HeightFunc func(x, y float64) float64

// BuildVerticesFunc evaluates fn at every lattice point and places the vertices.
func BuildVerticesFunc(fn HeightFunc, width, height int, depth float32) []Vertex {
	heights := make([]float64, heightfield.LatticeSize(width, height))
	if len(heights) == 0 {
		return []Vertex{}
	}
	for x := 0; x <= width; x++ {
		for y := 0; y <= height; y++ {
			heights[heightfield.Index(x, y, height)] = fn(float64(x), float64(y))
		}
	}
	return BuildVertices(heights, width, height, depth)
}

// BuildMesh builds a complete mesh from a height grid.
// The gradient colors vertices by height/depth; a nil gradient leaves them white.
func BuildMesh(heights []float64, width, height int, depth float32, gradient Gradient) *Mesh {
	m := &Mesh{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Vertices: BuildVertices(heights, width, height, depth),
		Indices:  BuildTriangles(width, height),
	}
	if len(m.Vertices) == 0 {
		m.Indices = []uint32{}
	}
	m.refresh()
	m.Recolor(gradient)
	return m
}

// UpdateHeights rewrites vertex Y from a new height grid, keeping X, Z and the index buffer.
// A grid shorter than the vertex buffer is rejected and the mesh is left unchanged.
func (m *Mesh) UpdateHeights(heights []float64, depth float32) error {
	if len(heights) < len(m.Vertices) {
		return fmt.Errorf("%w: %d heights for %d vertices", ErrSizeMismatch, len(heights), len(m.Vertices))
	}
	m.Depth = depth
	for i := range m.Vertices {
		m.Vertices[i].Position[1] = float32(heights[i]) * depth
	}
	m.refresh()
	return nil
}

// SetY writes raw Y values (already in world units) to every vertex.
// A buffer shorter than the vertex buffer is rejected and the mesh is left unchanged.
func (m *Mesh) SetY(ys []float32) error {
	if len(ys) < len(m.Vertices) {
		return fmt.Errorf("%w: %d values for %d vertices", ErrSizeMismatch, len(ys), len(m.Vertices))
	}
	for i := range m.Vertices {
		m.Vertices[i].Position[1] = ys[i]
	}
	m.refresh()
	return nil
}

// Recolor recomputes vertex colors from the gradient.
func (m *Mesh) Recolor(gradient Gradient) {
	if len(gradient) == 0 {
		for i := range m.Vertices {
			m.Vertices[i].Color = White
		}
		return
	}
	colors := Colorize(m.Vertices, m.Depth, gradient)
	for i := range m.Vertices {
		m.Vertices[i].Color = colors[i]
	}
}

func (m *Mesh) refresh() {
	SmoothNormals(m.Vertices, m.Indices)
	m.Bounds = computeBounds(m.Vertices)
}

// SmoothNormals sets each vertex normal to the normalized sum of the face
// normals of the triangles that share it. Larger faces weigh more.
func SmoothNormals(vertices []Vertex, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = mgl32.Vec3{}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		pa := vertices[a].Position
		edge1 := vertices[b].Position.Sub(pa)
		edge2 := vertices[c].Position.Sub(pa)
		face := edge1.Cross(edge2)
		vertices[a].Normal = vertices[a].Normal.Add(face)
		vertices[b].Normal = vertices[b].Normal.Add(face)
		vertices[c].Normal = vertices[c].Normal.Add(face)
	}

	for i := range vertices {
		vertices[i].Normal = normalize(vertices[i].Normal)
	}
}

// Helper functions

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for i := range vertices[1:] {
		p := vertices[i+1].Position
		for k := 0; k < 3; k++ {
			b.Min[k] = math32.Min(b.Min[k], p[k])
			b.Max[k] = math32.Max(b.Max[k], p[k])
		}
	}
	return b
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 || math32.IsNaN(l) {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize()
}
