// gml.go - GML event dispatch boundary (spec §4.H)
//
// The GML bytecode/AST executor itself is out of scope (spec §1); this
// file only fixes the contract the draw pass dispatches through, plus
// the event-kind constant named in spec §6.

package gm8run

import "fmt"

// EventKind identifies a GML event category. Only DrawEvent is relevant
// to this core.
type EventKind int

const (
	// DrawEvent is the event kind dispatched for custom-draw instances
	// (spec §4.E, §6).
	DrawEvent EventKind = iota
)

// GMLError wraps a GML dispatch failure with enough context for a caller
// to report which instance and event aborted the frame (spec §7).
type GMLError struct {
	Instance InstanceID
	Event    EventKind
	Reason   string
}

func (e *GMLError) Error() string {
	return fmt.Sprintf("GML error in event %d on instance %d: %s", e.Event, e.Instance, e.Reason)
}

// GMLExecutor runs a single GML event for an instance. A non-nil error
// aborts the current frame's draw pass (spec §4.H, §7); implementations
// must not panic.
type GMLExecutor interface {
	RunEvent(kind EventKind, subtype int, self, other InstanceID, argv []float64) error
}

// NoOpGMLExecutor never has any custom-draw objects to dispatch to; it is
// useful for hosts that don't embed a scripting layer at all.
type NoOpGMLExecutor struct{}

func (NoOpGMLExecutor) RunEvent(kind EventKind, subtype int, self, other InstanceID, argv []float64) error {
	return nil
}
