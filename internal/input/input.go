// Package input maps named actions to keys. Reading the keyboard is left to a KeySource.
package input

import (
	"fmt"
	"sort"
	"strings"
)

// KeySource reports keyboard state for raylib key codes.
type KeySource interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

// Engine resolves action names ("jump", "left") to key codes and queries its source.
type Engine struct {
	src      KeySource
	bindings map[string]int32
}

// New returns an Engine with the given action → key name bindings (e.g. "jump": "SPACE").
// An unknown key name is an error and no engine is returned.
func New(bindings map[string]string, src KeySource) (*Engine, error) {
	e := &Engine{src: src, bindings: make(map[string]int32, len(bindings))}
	for action, key := range bindings {
		if err := e.Bind(action, key); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Bind maps action to the named key, replacing any earlier binding.
func (e *Engine) Bind(action, key string) error {
	code, ok := KeyCode(key)
	if !ok {
		return fmt.Errorf("input: unknown key %q for action %q", key, action)
	}
	e.bindings[action] = code
	return nil
}

// Down reports whether the key bound to action is held. Unbound actions are never down.
func (e *Engine) Down(action string) bool {
	code, ok := e.bindings[action]
	return ok && e.src.IsKeyDown(code)
}

// Pressed reports whether the key bound to action went down this frame.
func (e *Engine) Pressed(action string) bool {
	code, ok := e.bindings[action]
	return ok && e.src.IsKeyPressed(code)
}

// Actions returns the bound action names in sorted order.
func (e *Engine) Actions() []string {
	out := make([]string, 0, len(e.bindings))
	for a := range e.bindings {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Axis returns -1, 0 or 1 from a pair of opposing actions (e.g. "left", "right").
func (e *Engine) Axis(negative, positive string) float32 {
	var v float32
	if e.Down(negative) {
		v--
	}
	if e.Down(positive) {
		v++
	}
	return v
}

// KeyCode returns the raylib key code for a case-insensitive key name.
func KeyCode(name string) (int32, bool) {
	code, ok := keyCodes[strings.ToUpper(strings.TrimSpace(name))]
	return code, ok
}
