// Package primitives builds canonical geometry for common shapes. Every factory is
// parameterless and returns a fresh MeshData, so callers never share backing arrays.
package primitives

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// MeshData is flat, render-ready geometry. Positions holds x,y,z per vertex, TexCoords holds
// u,v per vertex in the same order, and Indices lists triangles (three per face, CCW seen from
// the front). Treat it as read-only; use Clone before modifying.
type MeshData struct {
	Positions []float32 `json:"positions" yaml:"positions,flow"`
	TexCoords []float32 `json:"tex_coords" yaml:"tex_coords,flow"`
	Indices   []uint32  `json:"indices" yaml:"indices,flow"`
}

// VertexCount returns the number of vertices.
func (m MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that positions and texture coordinates line up and every index points at a vertex.
func (m MeshData) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("primitives: %d position floats is not a multiple of 3", len(m.Positions))
	}
	if len(m.TexCoords)%2 != 0 {
		return fmt.Errorf("primitives: %d texcoord floats is not a multiple of 2", len(m.TexCoords))
	}
	if n, uv := m.VertexCount(), len(m.TexCoords)/2; n != uv {
		return fmt.Errorf("primitives: %d vertices but %d texcoord pairs", n, uv)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("primitives: %d indices is not a multiple of 3", len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("primitives: index %d (position %d) out of range [0,%d)", idx, i, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned min and max corners. An empty mesh returns two zero vectors.
func (m MeshData) Bounds() (lo, hi [3]float32) {
	if len(m.Positions) < 3 {
		return lo, hi
	}
	copy(lo[:], m.Positions[:3])
	copy(hi[:], m.Positions[:3])
	for i := 3; i+2 < len(m.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := m.Positions[i+a]
			lo[a] = min(lo[a], v)
			hi[a] = max(hi[a], v)
		}
	}
	return lo, hi
}

// Clone returns a deep copy that shares no arrays with m.
func (m MeshData) Clone() MeshData {
	var out MeshData
	if err := copier.CopyWithOption(&out, &m, copier.Option{DeepCopy: true}); err != nil {
		// Only plain slices of numbers are copied; copier cannot fail on them.
		panic("primitives: clone mesh: " + err.Error())
	}
	return out
}

// Scaled returns a copy with every position multiplied per axis. Zero factors are treated as 1.
func (m MeshData) Scaled(s [3]float32) MeshData {
	for a := range s {
		if s[a] == 0 {
			s[a] = 1
		}
	}
	out := m.Clone()
	for i := 0; i+2 < len(out.Positions); i += 3 {
		out.Positions[i] *= s[0]
		out.Positions[i+1] *= s[1]
		out.Positions[i+2] *= s[2]
	}
	return out
}
