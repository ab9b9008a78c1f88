package engine

import (
	"errors"
	"strings"
	"testing"

	"engine3d/internal/engineconfig"
	"engine3d/internal/logger"
	"engine3d/internal/subsystem"
)

type noKeys struct{}

func (noKeys) IsKeyDown(int32) bool    { return false }
func (noKeys) IsKeyPressed(int32) bool { return false }

func assertNotCreated(t *testing.T, err error, kind subsystem.Kind) {
	t.Helper()
	var nce *subsystem.NotCreatedError
	if !errors.As(err, &nce) {
		t.Fatalf("error = %v, want *subsystem.NotCreatedError", err)
	}
	if nce.Kind != kind {
		t.Errorf("Kind = %v, want %v", nce.Kind, kind)
	}
	if !strings.Contains(err.Error(), kind.Manager()) {
		t.Errorf("message %q does not name %s", err.Error(), kind.Manager())
	}
}

func TestDisplayManagerGuard(t *testing.T) {
	m := NewDisplayManager(engineconfig.Default(), nil, nil)
	_, err := m.Engine()
	assertNotCreated(t, err, subsystem.Render)
	if !strings.Contains(err.Error(), "RenderEngine") {
		t.Errorf("message %q does not name RenderEngine", err.Error())
	}

	e := m.Create()
	if e == nil || !m.Created() {
		t.Fatal("Create() did not create the engine")
	}
	for i := 0; i < 2; i++ {
		got, err := m.Engine()
		if err != nil || got != e {
			t.Errorf("Engine() = %p, %v, want %p", got, err, e)
		}
	}
	if again := m.Create(); again != e {
		t.Error("second Create() replaced the engine")
	}
}

func TestDisplayManagerRunBeforeCreate(t *testing.T) {
	m := NewDisplayManager(engineconfig.Default(), nil, nil)
	called := false
	err := m.Run(func() bool { called = true; return false }, nil, nil)
	assertNotCreated(t, err, subsystem.Render)
	if called {
		t.Error("update called without a RenderEngine")
	}
}

func TestGameManagerGuard(t *testing.T) {
	m := NewGameManager(engineconfig.Default().Physics, nil)
	_, err := m.Tick(1)
	assertNotCreated(t, err, subsystem.Logic)
	_, err = m.Engine()
	assertNotCreated(t, err, subsystem.Logic)

	e := m.Create()
	if m.Create() != e {
		t.Error("second Create() replaced the engine")
	}
	n, err := m.Tick(1.0 / 60)
	if err != nil || n != 1 {
		t.Errorf("Tick() = %d, %v, want 1 step", n, err)
	}
	if e.World().Gravity[1] != -9.8 {
		t.Errorf("gravity = %v, want -9.8", e.World().Gravity)
	}
}

func TestInputManagerGuard(t *testing.T) {
	m := NewInputManager(noKeys{}, nil)
	_, err := m.Engine()
	assertNotCreated(t, err, subsystem.Input)

	if _, err := m.Create(map[string]string{"jump": "NOPE"}); err == nil {
		t.Fatal("Create(bad bindings) succeeded")
	}
	if m.Created() {
		t.Fatal("failed Create left the subsystem Created")
	}
	_, err = m.Engine()
	assertNotCreated(t, err, subsystem.Input)

	e, err := m.Create(map[string]string{"jump": "SPACE"})
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	again, err := m.Create(map[string]string{"jump": "NOPE"})
	if err != nil || again != e {
		t.Errorf("second Create() = %p, %v, want existing engine", again, err)
	}
	got, err := m.Engine()
	if err != nil || got != e {
		t.Errorf("Engine() = %p, %v", got, err)
	}
}

func TestManagersLogLifecycle(t *testing.T) {
	l := logger.New("")
	m := NewGameManager(engineconfig.Default().Physics, l.Slog())
	m.Create()
	m.Create()
	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() = %v, want 2 lines", lines)
	}
	if !strings.Contains(lines[0], "engine created") || !strings.Contains(lines[0], "subsystem=Logic") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "level=WARN") {
		t.Errorf("second line = %q, want WARN", lines[1])
	}
}
