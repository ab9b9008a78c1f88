package engine

import (
	"log/slog"

	"engine3d/internal/engineconfig"
	"engine3d/internal/logic"
	"engine3d/internal/physics"
	"engine3d/internal/subsystem"
)

// GameManager owns the LogicEngine.
type GameManager struct {
	handle  *subsystem.Handle[*logic.Engine]
	physics engineconfig.PhysicsPrefs
	log     *slog.Logger
}

// NewGameManager returns a manager whose LogicEngine is not created yet.
func NewGameManager(prefs engineconfig.PhysicsPrefs, log *slog.Logger) *GameManager {
	return &GameManager{
		handle:  subsystem.NewHandle[*logic.Engine](subsystem.Logic),
		physics: prefs,
		log:     orDiscard(log).With("subsystem", subsystem.Logic.String()),
	}
}

// Create builds the LogicEngine and its physics world once and returns it.
func (m *GameManager) Create() *logic.Engine {
	world := physics.NewWorld(m.physics.GravityY)
	if m.handle.Create(logic.New(world, m.physics.Timestep, m.physics.MaxSteps)) {
		m.log.Info("engine created", "engine", subsystem.Logic.Engine(), "timestep", m.physics.Timestep)
	} else {
		m.log.Warn("create ignored, engine already exists", "engine", subsystem.Logic.Engine())
	}
	e, _ := m.handle.Require()
	return e
}

// Created reports whether Create has run.
func (m *GameManager) Created() bool {
	return m.handle.Created()
}

// Engine returns the LogicEngine, or a Logic *subsystem.NotCreatedError.
func (m *GameManager) Engine() (*logic.Engine, error) {
	return m.handle.Require()
}

// Tick advances the LogicEngine by dt seconds and returns the number of fixed steps run.
func (m *GameManager) Tick(dt float32) (int, error) {
	e, err := m.Engine()
	if err != nil {
		return 0, err
	}
	return e.Tick(dt), nil
}
