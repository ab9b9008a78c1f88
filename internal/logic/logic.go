// Package logic runs the game simulation at a fixed timestep.
package logic

import "engine3d/internal/physics"

// System is called once per fixed step, before physics, with the step length in seconds.
type System func(dt float32)

// Engine advances registered systems and the physics world in fixed steps. Frame time is
// accumulated and consumed in whole steps; at most maxSteps run per Tick so a long frame
// cannot stall the loop.
type Engine struct {
	world    *physics.World
	step     float32
	maxSteps int
	acc      float32
	ticks    uint64
	systems  []System
}

// New returns an Engine stepping world every step seconds. step <= 0 defaults to 1/60 and
// maxSteps <= 0 to 5.
func New(world *physics.World, step float32, maxSteps int) *Engine {
	if step <= 0 {
		step = 1.0 / 60
	}
	if maxSteps <= 0 {
		maxSteps = 5
	}
	return &Engine{world: world, step: step, maxSteps: maxSteps}
}

// World returns the physics world.
func (e *Engine) World() *physics.World {
	return e.world
}

// AddSystem registers fn to run every step, in registration order.
func (e *Engine) AddSystem(fn System) {
	e.systems = append(e.systems, fn)
}

// Tick adds dt seconds of frame time and runs as many whole steps as fit. Returns the number
// of steps run. Time beyond maxSteps is dropped.
func (e *Engine) Tick(dt float32) int {
	if dt > 0 {
		e.acc += dt
	}
	n := 0
	for e.acc >= e.step && n < e.maxSteps {
		for _, fn := range e.systems {
			fn(e.step)
		}
		e.world.Step(e.step)
		e.acc -= e.step
		e.ticks++
		n++
	}
	if n == e.maxSteps && e.acc >= e.step {
		e.acc = 0
	}
	return n
}

// Ticks returns the total number of fixed steps run.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Alpha is the fraction of a step left in the accumulator, for interpolating draw positions.
func (e *Engine) Alpha() float32 {
	return e.acc / e.step
}
