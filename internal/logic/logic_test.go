package logic

import (
	"testing"

	"engine3d/internal/physics"
)

func TestTickFixedSteps(t *testing.T) {
	e := New(physics.NewWorld(0), 0.25, 10)
	var calls []float32
	e.AddSystem(func(dt float32) { calls = append(calls, dt) })

	if n := e.Tick(0.1); n != 0 {
		t.Errorf("Tick(0.1) = %d steps, want 0", n)
	}
	if n := e.Tick(0.5); n != 2 {
		t.Errorf("Tick(0.5) = %d steps, want 2", n)
	}
	if len(calls) != 2 || calls[0] != 0.25 {
		t.Errorf("system calls = %v, want two of 0.25", calls)
	}
	if e.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", e.Ticks())
	}
	if a := e.Alpha(); a < 0.39 || a > 0.41 {
		t.Errorf("Alpha() = %v, want ~0.4", a)
	}
}

func TestTickCapsSteps(t *testing.T) {
	e := New(physics.NewWorld(0), 0.5, 3)
	if n := e.Tick(10); n != 3 {
		t.Errorf("Tick(10) = %d steps, want 3", n)
	}
	if e.Alpha() != 0 {
		t.Errorf("Alpha() = %v after overflow, want 0", e.Alpha())
	}
	if n := e.Tick(-1); n != 0 {
		t.Errorf("Tick(-1) = %d steps, want 0", n)
	}
}

func TestTickStepsWorld(t *testing.T) {
	w := physics.NewWorld(-10)
	b := physics.NewBody([3]float32{0, 10, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(b)
	e := New(w, 0.5, 0)
	e.Tick(0.5)
	if b.Position[1] != 7.5 {
		t.Errorf("body y = %v, want 7.5", b.Position[1])
	}
	if e.World() != w {
		t.Error("World() returned a different world")
	}
}

func TestNewDefaults(t *testing.T) {
	e := New(physics.NewWorld(0), 0, 0)
	if e.step != 1.0/60 || e.maxSteps != 5 {
		t.Errorf("defaults = %v, %d", e.step, e.maxSteps)
	}
}
