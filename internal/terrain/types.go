// Package terrain builds renderable heightfield meshes: vertices, triangles, normals and colors.
package terrain

import "github.com/go-gl/mathgl/mgl32"

// Color is linear RGBA with components in [0, 1].
type Color [4]float32

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    Color
}

// Mesh holds a grid mesh ready for a renderer or collision host.
type Mesh struct {
	Width    int // Cells along x
	Height   int // Cells along z
	Depth    float32
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Positions returns vertex positions as a flat x,y,z array.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// Colors returns vertex colors as a flat r,g,b,a array.
func (m *Mesh) Colors() []float32 {
	out := make([]float32, 0, len(m.Vertices)*4)
	for i := range m.Vertices {
		c := m.Vertices[i].Color
		out = append(out, c[0], c[1], c[2], c[3])
	}
	return out
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
