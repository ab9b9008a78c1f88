package subsystem

import (
	"errors"
	"fmt"
)

// ErrNotCreated matches every NotCreatedError regardless of kind via errors.Is.
var ErrNotCreated = errors.New("subsystem not created")

// NotCreatedError is returned when an operation needs an engine that its manager has not created yet.
// It indicates an ordering bug in the caller; retrying without creating the engine cannot succeed.
type NotCreatedError struct {
	Kind Kind
}

// messages is fixed per kind so the text always points at the responsible manager.
var messages = func() map[Kind]string {
	m := make(map[Kind]string, len(names))
	for k, n := range names {
		m[k] = fmt.Sprintf("%s has not been created. Call %s.Create() before performing any %s operation.",
			n.engine, n.manager, n.operation)
	}
	return m
}()

func (e *NotCreatedError) Error() string {
	if msg, ok := messages[e.Kind]; ok {
		return msg
	}
	return fmt.Sprintf("subsystem %d has not been created", int(e.Kind))
}

// Is reports whether target is ErrNotCreated or a NotCreatedError of the same kind.
func (e *NotCreatedError) Is(target error) bool {
	if target == ErrNotCreated {
		return true
	}
	var other *NotCreatedError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}
