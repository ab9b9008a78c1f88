// Package render draws primitive meshes with raylib. GPU resources are created lazily on the
// first draw of each mesh, after the window and OpenGL context exist.
package render

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/primitives"
)

// cached is an uploaded mesh, its tinted material and the CPU buffers it was built from.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	buf  gpuBuffers
}

// Engine resolves mesh names to geometry and draws them. Names are looked up first in the
// loaded definitions, then among the built-in primitives.
type Engine struct {
	Camera      rl.Camera3D
	GridVisible bool

	log    *slog.Logger
	defs   map[string]primitives.Def
	meshes map[string]primitives.MeshData
	cache  map[string]cached
}

// New returns an engine with a perspective camera looking at the origin from (10,10,10).
func New(defs map[string]primitives.Def, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		GridVisible: true,
		log:         log,
		defs:        defs,
		meshes:      make(map[string]primitives.MeshData),
		cache:       make(map[string]cached),
	}
	e.Camera.Position = rl.NewVector3(10, 10, 10)
	e.Camera.Target = rl.NewVector3(0, 0, 0)
	e.Camera.Up = rl.NewVector3(0, 1, 0)
	e.Camera.Fovy = 45
	e.Camera.Projection = rl.CameraPerspective
	return e
}

// Mesh returns the CPU geometry for name, building and remembering it on first use.
func (e *Engine) Mesh(name string) (primitives.MeshData, error) {
	if m, ok := e.meshes[name]; ok {
		return m, nil
	}
	var m primitives.MeshData
	if d, ok := e.defs[name]; ok {
		built, err := d.Build()
		if err != nil {
			return primitives.MeshData{}, fmt.Errorf("render: mesh %q: %w", name, err)
		}
		m = built
	} else if p, ok := primitives.ByName(name); ok {
		m = p
	} else {
		return primitives.MeshData{}, fmt.Errorf("render: unknown mesh %q", name)
	}
	if _, err := buffers(m); err != nil {
		return primitives.MeshData{}, fmt.Errorf("render: mesh %q: %w", name, err)
	}
	e.meshes[name] = m
	return m, nil
}

// Color returns the albedo tint for name: the definition's color, or primitives.DefaultColor
// for built-ins and definitions whose color does not parse.
func (e *Engine) Color(name string) rl.Color {
	c := primitives.DefaultColor
	if d, ok := e.defs[name]; ok {
		if parsed, err := d.RGBA(); err == nil {
			c = parsed
		} else {
			e.log.Warn("bad primitive color", "mesh", name, "err", err)
		}
	}
	return rl.NewColor(c[0], c[1], c[2], c[3])
}

// ensure uploads name to the GPU if it is not cached yet.
func (e *Engine) ensure(name string) (cached, error) {
	if c, ok := e.cache[name]; ok {
		return c, nil
	}
	m, err := e.Mesh(name)
	if err != nil {
		return cached{}, err
	}
	buf, err := buffers(m)
	if err != nil {
		return cached{}, err
	}
	mesh := toRaylib(buf)
	rl.UploadMesh(&mesh, false)
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = e.Color(name)
	}
	c := cached{mesh: mesh, mtl: mtl, buf: buf}
	e.cache[name] = c
	e.log.Debug("mesh uploaded", "mesh", name, "vertices", m.VertexCount(), "triangles", m.TriangleCount())
	return c, nil
}

// Draw draws mesh name at position with scale (zero axes become 1). Must be called between
// BeginMode3D and EndMode3D; Frame does that.
func (e *Engine) Draw(name string, position, scale [3]float32) error {
	c, err := e.ensure(name)
	if err != nil {
		return err
	}
	sx, sy, sz := scale[0], scale[1], scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	transform := rl.MatrixMultiply(rl.MatrixScale(sx, sy, sz), rl.MatrixTranslate(position[0], position[1], position[2]))
	rl.DrawMesh(c.mesh, c.mtl, transform)
	return nil
}

// Frame wraps draw in BeginMode3D/EndMode3D with the engine camera and draws the grid.
func (e *Engine) Frame(draw func(*Engine)) {
	rl.BeginMode3D(e.Camera)
	if e.GridVisible {
		rl.DrawGrid(gridSlices, gridSpacing)
	}
	if draw != nil {
		draw(e)
	}
	rl.EndMode3D()
}

// Unload frees every uploaded mesh and its material. The CPU arrays belong to Go, so they are detached before
// raylib frees the mesh.
func (e *Engine) Unload() {
	for name, c := range e.cache {
		c.mesh.Vertices = nil
		c.mesh.Texcoords = nil
		c.mesh.Indices = nil
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(e.cache, name)
	}
}

const (
	gridSlices  = 20
	gridSpacing = 1
)
