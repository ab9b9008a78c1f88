package engine

import (
	"log/slog"

	"engine3d/internal/input"
	"engine3d/internal/subsystem"
)

// InputManager owns the InputEngine.
type InputManager struct {
	handle *subsystem.Handle[*input.Engine]
	src    input.KeySource
	log    *slog.Logger
}

// NewInputManager returns a manager whose InputEngine is not created yet. A nil src reads the
// raylib window.
func NewInputManager(src input.KeySource, log *slog.Logger) *InputManager {
	if src == nil {
		src = input.Raylib{}
	}
	return &InputManager{
		handle: subsystem.NewHandle[*input.Engine](subsystem.Input),
		src:    src,
		log:    orDiscard(log).With("subsystem", subsystem.Input.String()),
	}
}

// Create builds the InputEngine with bindings once and returns it. Invalid bindings leave the
// subsystem uncreated. Once created, later calls return the existing engine and ignore bindings.
func (m *InputManager) Create(bindings map[string]string) (*input.Engine, error) {
	if e, err := m.handle.Require(); err == nil {
		m.log.Warn("create ignored, engine already exists", "engine", subsystem.Input.Engine())
		return e, nil
	}
	e, err := input.New(bindings, m.src)
	if err != nil {
		return nil, err
	}
	if m.handle.Create(e) {
		m.log.Info("engine created", "engine", subsystem.Input.Engine(), "actions", len(bindings))
	}
	return m.handle.Require()
}

// Created reports whether Create has run.
func (m *InputManager) Created() bool {
	return m.handle.Created()
}

// Engine returns the InputEngine, or an Input *subsystem.NotCreatedError.
func (m *InputManager) Engine() (*input.Engine, error) {
	return m.handle.Require()
}
