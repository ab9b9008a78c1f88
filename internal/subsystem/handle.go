package subsystem

import "sync/atomic"

// Handle is the manager-owned slot for one subsystem's engine. It starts Uninitialized and
// moves to Created exactly once. There is no way back: teardown belongs to the manager.
//
// The engine is published through an atomic pointer, so a Require on another goroutine sees
// either no engine or the fully constructed one.
type Handle[T any] struct {
	kind   Kind
	engine atomic.Pointer[T]
}

// NewHandle returns an empty handle for kind.
func NewHandle[T any](kind Kind) *Handle[T] {
	return &Handle[T]{kind: kind}
}

// Kind returns the subsystem this handle guards.
func (h *Handle[T]) Kind() Kind {
	return h.kind
}

// Create stores engine and marks the subsystem Created. Only the first call wins; later calls
// leave the stored engine untouched and return false.
func (h *Handle[T]) Create(engine T) bool {
	e := engine
	return h.engine.CompareAndSwap(nil, &e)
}

// Created reports whether Create has run.
func (h *Handle[T]) Created() bool {
	return h.engine.Load() != nil
}

// Require returns the created engine, or a *NotCreatedError for the handle's kind.
func (h *Handle[T]) Require() (T, error) {
	p := h.engine.Load()
	if p == nil {
		var zero T
		return zero, &NotCreatedError{Kind: h.kind}
	}
	return *p, nil
}

// Require is the function form of h.Require.
func Require[T any](h *Handle[T]) (T, error) {
	return h.Require()
}
