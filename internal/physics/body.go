package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/primitives"
)

// Body is a 3D rigid body with an axis-aligned box. Offset is the box centre relative to
// Position, Half its half extents. Static bodies do not move and ignore gravity.
type Body struct {
	Position [3]float32
	Velocity [3]float32
	Offset   [3]float32
	Half     [3]float32
	Mass     float32
	Static   bool
}

// NewBody returns a body whose box is centred on position with size scale (zero axes become 1).
// mass <= 0 is treated as 1.
func NewBody(position, scale [3]float32, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	b := &Body{Position: position, Mass: mass, Static: static}
	for a := 0; a < 3; a++ {
		s := scale[a]
		if s == 0 {
			s = 1
		}
		b.Half[a] = s * 0.5
	}
	return b
}

// NewMeshBody sizes the body from the scaled bounds of mesh, so the box matches what is drawn
// at position with that scale.
func NewMeshBody(mesh primitives.MeshData, position, scale [3]float32, mass float32, static bool) *Body {
	b := NewBody(position, scale, mass, static)
	lo, hi := mesh.Scaled(scale).Bounds()
	for a := 0; a < 3; a++ {
		b.Offset[a] = (lo[a] + hi[a]) * 0.5
		b.Half[a] = (hi[a] - lo[a]) * 0.5
	}
	return b
}

// AABB returns the world-space box of b.
func (b *Body) AABB() rl.BoundingBox {
	var lo, hi [3]float32
	for a := 0; a < 3; a++ {
		c := b.Position[a] + b.Offset[a]
		lo[a] = c - b.Half[a]
		hi[a] = c + b.Half[a]
	}
	return rl.NewBoundingBox(rl.NewVector3(lo[0], lo[1], lo[2]), rl.NewVector3(hi[0], hi[1], hi[2]))
}
