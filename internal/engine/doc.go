// Package engine holds the managers that own the Render, Logic and Input engines.
//
// Each manager creates its engine once, with Create, and hands it out through a
// subsystem.Handle. Every guarded operation asks the handle first, so using a subsystem
// before its manager created it fails with a *subsystem.NotCreatedError that names the
// manager to call. Create returns the engine itself; code holding that value can use it
// directly without going through the guard again.
//
// Engines are never torn down through a manager: once Created, a subsystem stays Created
// for the life of the manager.
package engine

import "log/slog"

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
