package engine

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/engineconfig"
	"engine3d/internal/primitives"
	"engine3d/internal/render"
	"engine3d/internal/subsystem"
)

// DisplayManager owns the RenderEngine and the window it draws into.
type DisplayManager struct {
	handle    *subsystem.Handle[*render.Engine]
	window    engineconfig.WindowPrefs
	targetFPS int32
	defs      map[string]primitives.Def
	log       *slog.Logger
}

// NewDisplayManager returns a manager whose RenderEngine is not created yet.
func NewDisplayManager(prefs engineconfig.EnginePrefs, defs map[string]primitives.Def, log *slog.Logger) *DisplayManager {
	return &DisplayManager{
		handle:    subsystem.NewHandle[*render.Engine](subsystem.Render),
		window:    prefs.Window,
		targetFPS: prefs.TargetFPS,
		defs:      defs,
		log:       orDiscard(log).With("subsystem", subsystem.Render.String()),
	}
}

// Create builds the RenderEngine once and returns it. Later calls return the existing engine.
// No GPU work happens here; meshes upload on first draw.
func (m *DisplayManager) Create() *render.Engine {
	if m.handle.Create(render.New(m.defs, m.log)) {
		m.log.Info("engine created", "engine", subsystem.Render.Engine())
	} else {
		m.log.Warn("create ignored, engine already exists", "engine", subsystem.Render.Engine())
	}
	e, _ := m.handle.Require()
	return e
}

// Created reports whether Create has run.
func (m *DisplayManager) Created() bool {
	return m.handle.Created()
}

// Engine returns the RenderEngine, or a Render *subsystem.NotCreatedError.
func (m *DisplayManager) Engine() (*render.Engine, error) {
	return m.handle.Require()
}

// Run opens the window and, every frame, calls update, then draw inside the 3D pass, then
// overlay in screen space. It stops when the window closes or update returns false, and fails
// before touching the window if the RenderEngine was never created.
func (m *DisplayManager) Run(update func() bool, draw func(*render.Engine), overlay func()) error {
	e, err := m.Engine()
	if err != nil {
		return err
	}
	if m.window.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	}
	rl.InitWindow(m.window.Width, m.window.Height, m.window.Title)
	defer rl.CloseWindow()
	defer e.Unload()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(m.targetFPS)
	m.log.Info("window opened", "width", m.window.Width, "height", m.window.Height)

	for !rl.WindowShouldClose() {
		if update != nil && !update() {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		e.Frame(draw)
		if overlay != nil {
			overlay()
		}
		rl.EndDrawing()
	}
	m.log.Info("window closed")
	return nil
}
