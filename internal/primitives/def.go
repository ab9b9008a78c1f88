package primitives

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefsDir is where primitive definitions live, relative to the working directory.
const DefsDir = "assets/primitives"

// Def is the YAML definition for a default primitive (e.g. assets/primitives/cube.yaml).
type Def struct {
	Type  string     `yaml:"type"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// Build returns the mesh for d.Type scaled by d.Size.
func (d Def) Build() (MeshData, error) {
	m, ok := ByName(d.Type)
	if !ok {
		return MeshData{}, fmt.Errorf("primitives: unknown type %q", d.Type)
	}
	if d.Size == [3]float32{} {
		return m, nil
	}
	return m.Scaled(d.Size), nil
}

// RGBA returns the parsed d.Color, or DefaultColor when none is set.
func (d Def) RGBA() ([4]uint8, error) {
	if d.Color == "" {
		return DefaultColor, nil
	}
	return ParseHexColor(d.Color)
}

// ParseDef decodes one YAML definition.
func ParseDef(data []byte) (Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("primitives: %w", err)
	}
	if d.Type == "" {
		return Def{}, fmt.Errorf("primitives: definition has no type")
	}
	if _, err := d.RGBA(); err != nil {
		return Def{}, err
	}
	return d, nil
}

// LoadDefs reads every .yaml/.yml file in dir, keyed by file name without extension.
// A missing dir yields an empty map.
func LoadDefs(dir string) (map[string]Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Def{}, nil
		}
		return nil, fmt.Errorf("primitives: %w", err)
	}
	defs := make(map[string]Def, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("primitives: %w", err)
		}
		d, err := ParseDef(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		defs[strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))] = d
	}
	return defs, nil
}
