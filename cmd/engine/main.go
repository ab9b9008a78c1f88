package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"engine3d/internal/commands"
	"engine3d/internal/engineconfig"
	"engine3d/internal/logger"
)

// app is the state shared by every subcommand.
type app struct {
	prefs engineconfig.EnginePrefs
	log   *slog.Logger
	out   io.Writer
}

func main() {
	prefs, err := engineconfig.Resolve(engineconfig.EngineConfigPath, ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	a := &app{prefs: prefs, log: logger.New(prefs.LogPath).Slog(), out: os.Stdout}
	reg := newRegistry(a)

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"run"}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "usage: engine <command> [flags]")
		reg.Usage(os.Stderr)
		return
	}
	if err := reg.Execute(args); err != nil {
		a.log.Error("command failed", "command", args[0], "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRegistry(a *app) *commands.Registry {
	reg := commands.NewRegistry()
	registerRun(reg, a)
	registerMesh(reg, a)
	registerStatus(reg, a)
	return reg
}
