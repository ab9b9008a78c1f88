package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"engine3d/internal/commands"
	"engine3d/internal/debug"
	"engine3d/internal/engine"
	"engine3d/internal/input"
	"engine3d/internal/physics"
	"engine3d/internal/primitives"
	"engine3d/internal/render"
)

const (
	moveSpeed = float32(4)
	jumpSpeed = float32(6)
)

// object is one drawable body in the demo scene.
type object struct {
	mesh  string
	scale [3]float32
	body  *physics.Body
}

// scene is the demo world: a floor, a player cube and a few props, all sized from their meshes.
type scene struct {
	objects []object
	player  *physics.Body
}

func registerRun(reg *commands.Registry, a *app) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	grid := fs.Bool("grid", true, "draw the ground grid")
	reg.Register("run", "open the window and run the demo scene", fs, func() error {
		defs, err := primitives.LoadDefs(a.prefs.PrimitivesDir)
		if err != nil {
			return err
		}
		display := engine.NewDisplayManager(a.prefs, defs, a.log)
		game := engine.NewGameManager(a.prefs.Physics, a.log)
		in := engine.NewInputManager(nil, a.log)

		renderer := display.Create()
		renderer.GridVisible = *grid
		logicEngine := game.Create()
		keys, err := in.Create(a.prefs.Bindings)
		if err != nil {
			return err
		}

		scn, err := buildScene(renderer, logicEngine.World())
		if err != nil {
			return err
		}
		ctl := &controller{player: scn.player, keys: keys}
		logicEngine.AddSystem(ctl.step)

		update := func() bool {
			if keys.Pressed("quit") {
				return false
			}
			ctl.poll()
			if _, err := game.Tick(rl.GetFrameTime()); err != nil {
				a.log.Error("tick failed", "err", err)
				return false
			}
			return true
		}
		draw := func(r *render.Engine) {
			for _, o := range scn.objects {
				if err := r.Draw(o.mesh, o.body.Position, o.scale); err != nil {
					a.log.Error("draw failed", "mesh", o.mesh, "err", err)
				}
			}
		}
		hud := debug.New()
		hud.ShowFPS = a.prefs.ShowFPS
		hud.ShowMemAlloc = a.prefs.ShowMemAlloc
		hud.Stats = func() []string {
			return []string{fmt.Sprintf("Ticks: %d", logicEngine.Ticks())}
		}
		return display.Run(update, draw, hud.Draw)
	})
}

// buildScene adds the demo objects to world. Bodies take their boxes from the mesh the
// renderer will draw, so collisions match what is on screen.
func buildScene(r *render.Engine, world *physics.World) (*scene, error) {
	s := &scene{}
	add := func(mesh string, pos, scale [3]float32, static bool) (*physics.Body, error) {
		m, err := r.Mesh(mesh)
		if err != nil {
			return nil, err
		}
		b := physics.NewMeshBody(m, pos, scale, 1, static)
		world.AddBody(b)
		s.objects = append(s.objects, object{mesh: mesh, scale: scale, body: b})
		return b, nil
	}
	if _, err := add("cube", [3]float32{0, -0.5, 0}, [3]float32{20, 1, 20}, true); err != nil {
		return nil, err
	}
	player, err := add("cube", [3]float32{0, 3, 0}, [3]float32{1, 1, 1}, false)
	if err != nil {
		return nil, err
	}
	s.player = player
	props := []struct {
		mesh string
		pos  [3]float32
	}{
		{"sphere", [3]float32{3, 5, 0}},
		{"cylinder", [3]float32{-3, 4, 2}},
		{"quad", [3]float32{-2, 0, -4}},
	}
	for _, p := range props {
		if _, err := add(p.mesh, p.pos, [3]float32{1, 1, 1}, p.mesh == "quad"); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// controller moves the player on XZ from the movement actions and jumps when grounded.
// Jump presses are latched once per frame by poll and consumed by the next step, so a
// frame that runs no fixed step keeps its press.
type controller struct {
	player *physics.Body
	keys   *input.Engine
	jump   bool
}

func (c *controller) poll() {
	if c.keys.Pressed("jump") {
		c.jump = true
	}
}

// step is a logic.System.
func (c *controller) step(dt float32) {
	c.player.Velocity[0] = c.keys.Axis("left", "right") * moveSpeed
	c.player.Velocity[2] = c.keys.Axis("forward", "back") * moveSpeed
	if c.jump && c.player.Velocity[1] == 0 {
		c.player.Velocity[1] = jumpSpeed
	}
	c.jump = false
}
