package subsystem

// Kind identifies one of the engine's independently created subsystems.
type Kind int

const (
	Render Kind = iota
	Logic
	Input
)

// Kinds returns every subsystem in creation order. The slice is fresh on each call.
func Kinds() []Kind {
	return []Kind{Render, Logic, Input}
}

// names holds the engine type and owning manager type for each kind.
var names = map[Kind]struct {
	kind, engine, manager, operation string
}{
	Render: {"Render", "RenderEngine", "DisplayManager", "render"},
	Logic:  {"Logic", "LogicEngine", "GameManager", "logic"},
	Input:  {"Input", "InputEngine", "InputManager", "input"},
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n.kind
	}
	return "Unknown"
}

// Engine returns the engine type name for k (e.g. "RenderEngine").
func (k Kind) Engine() string {
	return names[k].engine
}

// Manager returns the name of the manager that must create k's engine (e.g. "DisplayManager").
func (k Kind) Manager() string {
	return names[k].manager
}
