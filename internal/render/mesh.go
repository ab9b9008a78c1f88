package render

import (
	"fmt"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/primitives"
)

// gpuBuffers holds the CPU arrays handed to raylib. They must outlive the upload because the
// mesh points into them.
type gpuBuffers struct {
	positions []float32
	texcoords []float32
	indices   []uint16
}

// buffers flattens m into raylib's layout. raylib indexes with uint16, so meshes with more
// than 65535 vertices are rejected.
func buffers(m primitives.MeshData) (gpuBuffers, error) {
	if err := m.Validate(); err != nil {
		return gpuBuffers{}, err
	}
	if m.VertexCount() > math.MaxUint16 {
		return gpuBuffers{}, fmt.Errorf("render: %d vertices exceed 16-bit index range", m.VertexCount())
	}
	c := m.Clone()
	b := gpuBuffers{
		positions: c.Positions,
		texcoords: c.TexCoords,
		indices:   make([]uint16, len(c.Indices)),
	}
	for i, idx := range c.Indices {
		b.indices[i] = uint16(idx)
	}
	return b, nil
}

// toRaylib builds an rl.Mesh pointing at b. The mesh is not uploaded.
func toRaylib(b gpuBuffers) rl.Mesh {
	mesh := rl.Mesh{
		VertexCount:   int32(len(b.positions) / 3),
		TriangleCount: int32(len(b.indices) / 3),
	}
	if len(b.positions) > 0 {
		mesh.Vertices = unsafe.SliceData(b.positions)
		mesh.Texcoords = unsafe.SliceData(b.texcoords)
	}
	if len(b.indices) > 0 {
		mesh.Indices = unsafe.SliceData(b.indices)
	}
	return mesh
}
