package main

import (
	"flag"
	"fmt"
	"strings"

	"engine3d/internal/commands"
	"engine3d/internal/engine"
	"engine3d/internal/subsystem"
)

func registerStatus(reg *commands.Registry, a *app) {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	create := fs.String("create", "", "comma-separated subsystems to create first (render,logic,input)")
	reg.Register("status", "show which subsystems are created", fs, func() error {
		display := engine.NewDisplayManager(a.prefs, nil, a.log)
		game := engine.NewGameManager(a.prefs.Physics, a.log)
		in := engine.NewInputManager(nil, a.log)

		for _, k := range strings.Split(*create, ",") {
			switch strings.ToLower(strings.TrimSpace(k)) {
			case "":
			case "render":
				display.Create()
			case "logic":
				game.Create()
			case "input":
				if _, err := in.Create(a.prefs.Bindings); err != nil {
					return err
				}
			default:
				return fmt.Errorf("status: unknown subsystem %q", k)
			}
		}

		errs := map[subsystem.Kind]error{}
		_, errs[subsystem.Render] = display.Engine()
		_, errs[subsystem.Logic] = game.Engine()
		_, errs[subsystem.Input] = in.Engine()
		for _, k := range subsystem.Kinds() {
			if err := errs[k]; err != nil {
				fmt.Fprintf(a.out, "%-6s uninitialized: %v\n", k, err)
			} else {
				fmt.Fprintf(a.out, "%-6s created\n", k)
			}
		}
		return nil
	})
}
