package export

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/Faultbox/isoterrain/internal/generator"
	"github.com/Faultbox/isoterrain/internal/terrain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MeshDocument is the JSON form of one mesh, laid out as flat GPU buffers.
type MeshDocument struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Depth     float32   `json:"depth"`
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	Indices   []uint32  `json:"indices"`
}

// WorldDocument is the JSON form of a generated world.
type WorldDocument struct {
	RunID string        `json:"run_id"`
	Seed  uint32        `json:"seed"`
	Land  MeshDocument  `json:"land"`
	Water *MeshDocument `json:"water,omitempty"`
}

// NewMeshDocument flattens a mesh.
func NewMeshDocument(m *terrain.Mesh) MeshDocument {
	return MeshDocument{
		Width:     m.Width,
		Height:    m.Height,
		Depth:     m.Depth,
		Positions: m.Positions(),
		Colors:    m.Colors(),
		Indices:   m.Indices,
	}
}

// NewWorldDocument flattens a world.
func NewWorldDocument(w *generator.World) WorldDocument {
	doc := WorldDocument{
		RunID: w.RunID,
		Seed:  uint32(w.Seed),
		Land:  NewMeshDocument(w.Land),
	}
	if w.Water != nil {
		water := NewMeshDocument(w.Water)
		doc.Water = &water
	}
	return doc
}

// WriteJSON writes the world as a single JSON document.
func WriteJSON(w io.Writer, world *generator.World) error {
	enc := json.NewEncoder(w)
	return enc.Encode(NewWorldDocument(world))
}
