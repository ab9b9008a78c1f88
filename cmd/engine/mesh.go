package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"gopkg.in/yaml.v3"

	"engine3d/internal/commands"
	"engine3d/internal/primitives"
)

// meshDump is what the mesh command prints.
type meshDump struct {
	Name                string `json:"name" yaml:"name"`
	Vertices            int    `json:"vertices" yaml:"vertices"`
	Triangles           int    `json:"triangles" yaml:"triangles"`
	primitives.MeshData `yaml:",inline"`
}

func registerMesh(reg *commands.Registry, a *app) {
	fs := flag.NewFlagSet("mesh", flag.ContinueOnError)
	name := fs.String("name", "quad", "primitive or definition name")
	format := fs.String("format", "yaml", "output format: yaml or json")
	reg.Register("mesh", "print the geometry of a primitive", fs, func() error {
		m, err := lookupMesh(a.prefs.PrimitivesDir, *name)
		if err != nil {
			return err
		}
		dump := meshDump{Name: *name, Vertices: m.VertexCount(), Triangles: m.TriangleCount(), MeshData: m}
		switch *format {
		case "yaml":
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(dump); err != nil {
				return fmt.Errorf("mesh: %w", err)
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(a.out)
			enc.SetIndent("", "  ")
			return enc.Encode(dump)
		default:
			return fmt.Errorf("mesh: unknown format %q", *format)
		}
	})
}

// lookupMesh resolves name against the definitions in dir, then the built-in primitives.
func lookupMesh(dir, name string) (primitives.MeshData, error) {
	defs, err := primitives.LoadDefs(dir)
	if err != nil {
		return primitives.MeshData{}, err
	}
	if d, ok := defs[name]; ok {
		return d.Build()
	}
	if m, ok := primitives.ByName(name); ok {
		return m, nil
	}
	return primitives.MeshData{}, fmt.Errorf("mesh: unknown primitive %q (built-in: %v)", name, primitives.Names())
}
