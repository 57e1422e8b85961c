// input_manager.go - Per-frame input edge state boundary (spec §4.H)
//
// A full keyboard/mouse backend is out of scope (spec §1); this fixes the
// one operation the draw loop depends on and gives it a minimal,
// concrete, in-memory implementation for hosts that don't wire a real
// windowing layer.

package gm8run

// InputManager exposes the single operation the frame loop depends on:
// clearing "just pressed"/"just released" edge state once all views have
// drawn (spec §4.D, §4.H).
type InputManager interface {
	ClearPresses()
}

// NoOpInputManager satisfies InputManager for hosts with no real input
// backend wired in.
type NoOpInputManager struct{}

func (NoOpInputManager) ClearPresses() {}

// EdgeTrackingInputManager is a minimal concrete InputManager that tracks
// which keys were pressed or released since the last clear, for hosts
// that want real edge-detection semantics without adopting a full
// windowing/input library.
type EdgeTrackingInputManager struct {
	Pressed  map[int]bool
	Released map[int]bool
	Held     map[int]bool
}

// NewEdgeTrackingInputManager returns an input manager with empty state.
func NewEdgeTrackingInputManager() *EdgeTrackingInputManager {
	return &EdgeTrackingInputManager{
		Pressed:  make(map[int]bool),
		Released: make(map[int]bool),
		Held:     make(map[int]bool),
	}
}

// Press records key as newly pressed and held, idempotently.
func (m *EdgeTrackingInputManager) Press(key int) {
	if !m.Held[key] {
		m.Pressed[key] = true
	}
	m.Held[key] = true
}

// Release records key as newly released and no longer held.
func (m *EdgeTrackingInputManager) Release(key int) {
	if m.Held[key] {
		m.Released[key] = true
	}
	m.Held[key] = false
}

// ClearPresses drops the edge state accumulated since the last call,
// leaving Held untouched.
func (m *EdgeTrackingInputManager) ClearPresses() {
	m.Pressed = make(map[int]bool)
	m.Released = make(map[int]bool)
}
