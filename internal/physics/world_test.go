package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/primitives"
)

func box(x0, y0, z0, x1, y1, z1 float32) rl.BoundingBox {
	return rl.NewBoundingBox(rl.NewVector3(x0, y0, z0), rl.NewVector3(x1, y1, z1))
}

func TestPenetration(t *testing.T) {
	a := box(0, 0, 0, 2, 2, 2)
	tests := []struct {
		name      string
		b         rl.BoundingBox
		wantDepth float32
		wantAxis  int
	}{
		{"separate", box(3, 0, 0, 4, 1, 1), 0, -1},
		{"touching", box(2, 0, 0, 3, 1, 1), 0, -1},
		{"shallow x", box(1.75, 0, 0, 3, 2, 2), 0.25, 0},
		{"shallow y", box(0, 1.5, 0, 2, 3, 2), 0.5, 1},
		{"shallow z", box(0.5, 0.5, 1.75, 1.5, 1.5, 3), 0.25, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, axis := Penetration(a, tt.b)
			if depth != tt.wantDepth || axis != tt.wantAxis {
				t.Errorf("Penetration() = (%v, %d), want (%v, %d)", depth, axis, tt.wantDepth, tt.wantAxis)
			}
		})
	}
}

func TestStepSkipsTouchingBodies(t *testing.T) {
	w := NewWorld(0)
	a := NewBody([3]float32{0, 0, 0}, [3]float32{1, 1, 1}, 1, false)
	b := NewBody([3]float32{1, 0, 0}, [3]float32{1, 1, 1}, 1, false)
	a.Velocity = [3]float32{0, 0, 2}
	w.AddBody(a)
	w.AddBody(b)
	w.Step(0)
	if a.Position != [3]float32{} || b.Position != [3]float32{1, 0, 0} {
		t.Errorf("touching bodies moved to %v, %v", a.Position, b.Position)
	}
	if a.Velocity[2] != 2 {
		t.Errorf("velocity = %v, want z 2 kept", a.Velocity)
	}
}

func TestStepGravity(t *testing.T) {
	w := NewWorld(-10)
	b := NewBody([3]float32{0, 10, 0}, [3]float32{1, 1, 1}, 1, false)
	s := NewBody([3]float32{5, 10, 0}, [3]float32{1, 1, 1}, 1, true)
	w.AddBody(b)
	w.AddBody(s)
	w.Step(0.5)
	if b.Velocity[1] != -5 || b.Position[1] != 7.5 {
		t.Errorf("dynamic body pos/vel = %v/%v, want y 7.5 / -5", b.Position, b.Velocity)
	}
	if s.Position != [3]float32{5, 10, 0} {
		t.Errorf("static body moved to %v", s.Position)
	}
}

func TestStepRestsOnStaticFloor(t *testing.T) {
	w := NewWorld(-9.8)
	floor := NewBody([3]float32{0, -0.5, 0}, [3]float32{10, 1, 10}, 1, true)
	box := NewBody([3]float32{0, 2, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(floor)
	w.AddBody(box)
	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}
	if y := box.Position[1]; y < 0.49 || y > 0.51 {
		t.Errorf("box y = %v, want resting at 0.5", y)
	}
	if floor.Position[1] != -0.5 {
		t.Errorf("floor moved to %v", floor.Position)
	}
}

func TestStepSplitsByMass(t *testing.T) {
	w := NewWorld(0)
	light := NewBody([3]float32{0, 0, 0}, [3]float32{1, 1, 1}, 1, false)
	heavy := NewBody([3]float32{0.5, 0, 0}, [3]float32{1, 1.5, 1.5}, 3, false)
	w.AddBody(light)
	w.AddBody(heavy)
	w.Step(0)
	// overlap 0.5 on X: light moves 3/4 of it left, heavy 1/4 right
	if light.Position[0] != -0.375 || heavy.Position[0] != 0.625 {
		t.Errorf("positions = %v, %v", light.Position[0], heavy.Position[0])
	}
}

func TestNewMeshBody(t *testing.T) {
	b := NewMeshBody(primitives.Quad(), [3]float32{1, 1, 1}, [3]float32{2, 2, 2}, 0, true)
	got := b.AABB()
	if got != box(1, 1, 1, 3, 3, 1) {
		t.Errorf("AABB() = %+v", got)
	}
	if b.Mass != 1 {
		t.Errorf("Mass = %v, want 1", b.Mass)
	}
}
