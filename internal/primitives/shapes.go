package primitives

import (
	"sort"

	"github.com/chewxy/math32"
)

// Sphere and cylinder resolution, and the radius that gives both a diameter of 1.
const (
	defaultSphereRings    = 16
	defaultSphereSlices   = 16
	defaultCylinderSlices = 16
	defaultRadius         = float32(0.5)
	defaultCylinderHeight = float32(1)
)

// quadUV is the texture mapping shared by every four-corner face: bottom-left, bottom-right,
// top-right, top-left.
var quadUV = [8]float32{0, 1, 1, 1, 1, 0, 0, 0}

// Quad returns the unit square in the XY plane at Z=0, facing +Z, as two triangles.
func Quad() MeshData {
	return MeshData{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		TexCoords: []float32{
			0, 1,
			1, 1,
			1, 0,
			0, 0,
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// Triangle returns a single unit triangle in the XY plane at Z=0, facing +Z.
func Triangle() MeshData {
	return MeshData{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0.5, 1, 0,
		},
		TexCoords: []float32{0, 1, 1, 1, 0.5, 0},
		Indices:   []uint32{0, 1, 2},
	}
}

// Plane returns a 1×1 quad in the XZ plane centred on the origin, facing +Y.
func Plane() MeshData {
	var m MeshData
	m.appendFace(
		[3]float32{-0.5, 0, 0.5},
		[3]float32{0.5, 0, 0.5},
		[3]float32{0.5, 0, -0.5},
		[3]float32{-0.5, 0, -0.5},
	)
	return m
}

// Cube returns a unit cube centred on the origin. Each face has its own four vertices so
// every face maps the full texture.
func Cube() MeshData {
	const h = 0.5
	m := MeshData{
		Positions: make([]float32, 0, 6*4*3),
		TexCoords: make([]float32, 0, 6*4*2),
		Indices:   make([]uint32, 0, 6*6),
	}
	// front, back, right, left, top, bottom
	m.appendFace([3]float32{-h, -h, h}, [3]float32{h, -h, h}, [3]float32{h, h, h}, [3]float32{-h, h, h})
	m.appendFace([3]float32{h, -h, -h}, [3]float32{-h, -h, -h}, [3]float32{-h, h, -h}, [3]float32{h, h, -h})
	m.appendFace([3]float32{h, -h, h}, [3]float32{h, -h, -h}, [3]float32{h, h, -h}, [3]float32{h, h, h})
	m.appendFace([3]float32{-h, -h, -h}, [3]float32{-h, -h, h}, [3]float32{-h, h, h}, [3]float32{-h, h, -h})
	m.appendFace([3]float32{-h, h, h}, [3]float32{h, h, h}, [3]float32{h, h, -h}, [3]float32{-h, h, -h})
	m.appendFace([3]float32{-h, -h, -h}, [3]float32{h, -h, -h}, [3]float32{h, -h, h}, [3]float32{-h, -h, h})
	return m
}

// Sphere returns a UV sphere of radius 0.5 centred on the origin. Pole triangles that would
// collapse to a line are left out.
func Sphere() MeshData {
	const rings, slices = defaultSphereRings, defaultSphereSlices
	m := MeshData{
		Positions: make([]float32, 0, (rings+1)*(slices+1)*3),
		TexCoords: make([]float32, 0, (rings+1)*(slices+1)*2),
		Indices:   make([]uint32, 0, slices*(2*rings-2)*3),
	}
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / rings
		y := math32.Cos(phi) * defaultRadius
		rr := math32.Sin(phi) * defaultRadius
		for s := 0; s <= slices; s++ {
			theta := 2 * math32.Pi * float32(s) / slices
			m.Positions = append(m.Positions, rr*math32.Sin(theta), y, rr*math32.Cos(theta))
			m.TexCoords = append(m.TexCoords, float32(s)/slices, float32(r)/rings)
		}
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			a := uint32(r*(slices+1) + s)
			b := a + slices + 1
			if r != 0 {
				m.Indices = append(m.Indices, a, b, a+1)
			}
			if r != rings-1 {
				m.Indices = append(m.Indices, a+1, b, b+1)
			}
		}
	}
	return m
}

// Cylinder returns a capped cylinder of radius 0.5 and height 1 with its base at Y=0.
func Cylinder() MeshData {
	const slices = defaultCylinderSlices
	var m MeshData
	// side: one bottom/top pair per slice edge, seam duplicated for texturing
	for s := 0; s <= slices; s++ {
		theta := 2 * math32.Pi * float32(s) / slices
		x, z := defaultRadius*math32.Sin(theta), defaultRadius*math32.Cos(theta)
		u := float32(s) / slices
		m.Positions = append(m.Positions, x, 0, z, x, defaultCylinderHeight, z)
		m.TexCoords = append(m.TexCoords, u, 1, u, 0)
	}
	for s := uint32(0); s < slices; s++ {
		bot, top := 2*s, 2*s+1
		m.Indices = append(m.Indices, top, bot, top+2, top+2, bot, bot+2)
	}
	m.appendCap(defaultCylinderHeight, slices, true)
	m.appendCap(0, slices, false)
	return m
}

// appendFace adds one four-corner face given counter-clockwise from its bottom-left corner.
func (m *MeshData) appendFace(bl, br, tr, tl [3]float32) {
	base := uint32(m.VertexCount())
	for _, p := range [4][3]float32{bl, br, tr, tl} {
		m.Positions = append(m.Positions, p[0], p[1], p[2])
	}
	m.TexCoords = append(m.TexCoords, quadUV[:]...)
	m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
}

// appendCap adds a triangle fan disc at height y, facing +Y when up is true and -Y otherwise.
func (m *MeshData) appendCap(y float32, slices int, up bool) {
	center := uint32(m.VertexCount())
	m.Positions = append(m.Positions, 0, y, 0)
	m.TexCoords = append(m.TexCoords, 0.5, 0.5)
	for s := 0; s <= slices; s++ {
		theta := 2 * math32.Pi * float32(s) / float32(slices)
		sin, cos := math32.Sin(theta), math32.Cos(theta)
		m.Positions = append(m.Positions, defaultRadius*sin, y, defaultRadius*cos)
		m.TexCoords = append(m.TexCoords, 0.5+0.5*sin, 0.5+0.5*cos)
	}
	for s := uint32(0); s < uint32(slices); s++ {
		cur, next := center+1+s, center+2+s
		if up {
			m.Indices = append(m.Indices, center, cur, next)
		} else {
			m.Indices = append(m.Indices, center, next, cur)
		}
	}
}

var factories = map[string]func() MeshData{
	"quad":     Quad,
	"triangle": Triangle,
	"plane":    Plane,
	"cube":     Cube,
	"sphere":   Sphere,
	"cylinder": Cylinder,
}

// ByName returns the primitive registered under name ("quad", "cube", ...).
func ByName(name string) (MeshData, bool) {
	f, ok := factories[name]
	if !ok {
		return MeshData{}, false
	}
	return f(), true
}

// Names returns every primitive name in sorted order.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
