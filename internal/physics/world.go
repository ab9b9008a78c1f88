package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) with the smallest overlap.
// Boxes that only touch or do not overlap return (0, -1).
func Penetration(a, b rl.BoundingBox) (depth float32, axis int) {
	overlap := [3]float32{
		min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X),
		min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y),
		min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z),
	}
	if overlap[0] <= 0 || overlap[1] <= 0 || overlap[2] <= 0 {
		return 0, -1
	}
	depth, axis = overlap[0], 0
	for i := 1; i < 3; i++ {
		if overlap[i] < depth {
			depth, axis = overlap[i], i
		}
	}
	return depth, axis
}

// World holds a set of bodies and runs a simple 3D step: gravity, integration, AABB push-apart.
type World struct {
	Gravity [3]float32
	Bodies  []*Body
}

// NewWorld returns a world with gravity (0, gravityY, 0). Y is up, so pass a negative value.
func NewWorld(gravityY float32) *World {
	return &World{Gravity: [3]float32{0, gravityY, 0}}
}

// AddBody appends a body. Order is preserved so callers can keep parallel slices.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		for a := 0; a < 3; a++ {
			b.Velocity[a] += w.Gravity[a] * dt
			b.Position[a] += b.Velocity[a] * dt
		}
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			boxI, boxJ := bi.AABB(), bj.AABB()
			if !rl.CheckCollisionBoxes(boxI, boxJ) {
				continue
			}
			depth, axis := Penetration(boxI, boxJ)
			if axis < 0 {
				continue
			}
			// move apart along axis in the direction that separates the centres
			dir := float32(1)
			if bi.Position[axis]+bi.Offset[axis] > bj.Position[axis]+bj.Offset[axis] {
				dir = -1
			}
			var moveI, moveJ float32
			switch {
			case bi.Static:
				moveJ = depth * dir
			case bj.Static:
				moveI = -depth * dir
			default:
				total := bi.Mass + bj.Mass
				moveI = -depth * dir * (bj.Mass / total)
				moveJ = depth * dir * (bi.Mass / total)
			}
			bi.Position[axis] += moveI
			bj.Position[axis] += moveJ
			if !bi.Static {
				bi.Velocity[axis] = 0
			}
			if !bj.Static {
				bj.Velocity[axis] = 0
			}
		}
	}
}
