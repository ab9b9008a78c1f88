package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"engine3d/internal/dotenv"
	"engine3d/internal/logger"
	"engine3d/internal/primitives"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnvPrefix is prepended to every environment variable name (e.g. ENGINE_WINDOW_WIDTH).
const EnvPrefix = "ENGINE_"

// WindowPrefs configures the display opened by the DisplayManager.
type WindowPrefs struct {
	Title      string `json:"title" env:"TITLE"`
	Width      int32  `json:"width" env:"WIDTH"`
	Height     int32  `json:"height" env:"HEIGHT"`
	Fullscreen bool   `json:"fullscreen" env:"FULLSCREEN"`
}

// PhysicsPrefs configures the LogicEngine's fixed-step simulation.
type PhysicsPrefs struct {
	Timestep float32 `json:"timestep" env:"TIMESTEP"`
	GravityY float32 `json:"gravity_y" env:"GRAVITY_Y"`
	MaxSteps int     `json:"max_steps" env:"MAX_STEPS"`
}

// EnginePrefs holds engine-wide settings. Persisted across runs; each field can be overridden
// from the environment.
type EnginePrefs struct {
	Window        WindowPrefs       `json:"window" envPrefix:"WINDOW_"`
	TargetFPS     int32             `json:"target_fps" env:"TARGET_FPS"`
	LogPath       string            `json:"log_path" env:"LOG_PATH"`
	PrimitivesDir string            `json:"primitives_dir" env:"PRIMITIVES_DIR"`
	Physics       PhysicsPrefs      `json:"physics" envPrefix:"PHYSICS_"`
	Bindings      map[string]string `json:"bindings,omitempty" env:"BINDINGS"`
	ShowFPS       bool              `json:"show_fps" env:"SHOW_FPS"`
	ShowMemAlloc  bool              `json:"show_memalloc" env:"SHOW_MEMALLOC"`
}

// Default returns default engine preferences.
func Default() EnginePrefs {
	return EnginePrefs{
		Window: WindowPrefs{
			Title:  "engine3d",
			Width:  1280,
			Height: 720,
		},
		TargetFPS:     60,
		LogPath:       logger.DefaultPath,
		PrimitivesDir: primitives.DefsDir,
		Physics: PhysicsPrefs{
			Timestep: 1.0 / 60,
			GravityY: -9.8,
			MaxSteps: 5,
		},
		Bindings: map[string]string{
			"forward": "W",
			"back":    "S",
			"left":    "A",
			"right":   "D",
			"jump":    "SPACE",
			"quit":    "ESCAPE",
		},
	}
}

// Load reads preferences from path on top of Default(). A missing file is not an error.
// An unreadable or invalid file returns Default() together with the error.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// ApplyEnv overrides fields of p from environ using the ENGINE_ variable names.
// Variables that are not set leave the field unchanged. ENGINE_BINDINGS is
// merged over the existing bindings, the same way a config file is.
func ApplyEnv(p *EnginePrefs, environ map[string]string) error {
	base := p.Bindings
	p.Bindings = nil
	err := env.ParseWithOptions(p, env.Options{Environment: environ, Prefix: EnvPrefix})
	p.Bindings = mergeBindings(base, p.Bindings)
	if err != nil {
		return fmt.Errorf("engineconfig: parse env: %w", err)
	}
	return nil
}

func mergeBindings(base, over map[string]string) map[string]string {
	if len(over) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(over))
	for action, key := range base {
		merged[action] = key
	}
	for action, key := range over {
		merged[action] = key
	}
	return merged
}

// Resolve loads path, then applies the dotenv file and the process environment on top.
// The process environment wins over dotenvPath.
func Resolve(path, dotenvPath string) (EnginePrefs, error) {
	p, err := Load(path)
	if err != nil {
		return p, err
	}
	file, err := dotenv.Read(dotenvPath)
	if err != nil {
		return p, err
	}
	if err := ApplyEnv(&p, dotenv.Environ(file)); err != nil {
		return p, err
	}
	return p, nil
}

// Save writes engine preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
