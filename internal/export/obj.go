// Package export writes generated meshes and heightmaps to files.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/isoterrain/internal/terrain"
)

// WriteOBJ writes mesh as a Wavefront OBJ object.
// Vertex colors use the common "v x y z r g b" extension.
func WriteOBJ(w io.Writer, name string, mesh *terrain.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for i := range mesh.Vertices {
		p := mesh.Vertices[i].Position
		c := mesh.Vertices[i].Color
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p[0], p[1], p[2], c[0], c[1], c[2])
	}
	for i := range mesh.Vertices {
		n := mesh.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	// OBJ indices are 1-based.
	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		a, b, c := mesh.Indices[t]+1, mesh.Indices[t+1]+1, mesh.Indices[t+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}
