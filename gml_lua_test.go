package gm8run

import "testing"

func TestLuaGMLExecutorRunsDrawScript(t *testing.T) {
	list := NewInstanceList()
	id := list.Add(Instance{ObjectIndex: 1, X: RealFromInt(3), Y: RealFromInt(4)})

	exec := NewLuaGMLExecutor(list)
	if err := exec.LoadDrawScript(1, "obj1_draw", `x = self.x + 1`); err != nil {
		t.Fatalf("LoadDrawScript: %v", err)
	}

	if err := exec.RunEvent(DrawEvent, 0, id, 0, nil); err != nil {
		t.Fatalf("RunEvent: %v", err)
	}
}

func TestLuaGMLExecutorPropagatesScriptError(t *testing.T) {
	list := NewInstanceList()
	id := list.Add(Instance{ObjectIndex: 2})

	exec := NewLuaGMLExecutor(list)
	if err := exec.LoadDrawScript(2, "obj2_draw", `error("boom")`); err != nil {
		t.Fatalf("LoadDrawScript: %v", err)
	}

	err := exec.RunEvent(DrawEvent, 0, id, 0, nil)
	if err == nil {
		t.Fatal("expected error from failing script")
	}
	gmlErr, ok := err.(*GMLError)
	if !ok {
		t.Fatalf("expected *GMLError, got %T", err)
	}
	if gmlErr.Instance != id {
		t.Errorf("Instance = %d, want %d", gmlErr.Instance, id)
	}
}

func TestLuaGMLExecutorSkipsMissingScript(t *testing.T) {
	list := NewInstanceList()
	id := list.Add(Instance{ObjectIndex: 5})

	exec := NewLuaGMLExecutor(list)
	if err := exec.RunEvent(DrawEvent, 0, id, 0, nil); err != nil {
		t.Fatalf("expected no-op for object with no script, got %v", err)
	}
}

func TestLuaGMLExecutorIgnoresNonDrawEvents(t *testing.T) {
	list := NewInstanceList()
	id := list.Add(Instance{ObjectIndex: 9})

	exec := NewLuaGMLExecutor(list)
	if err := exec.LoadDrawScript(9, "obj9_draw", `error("should not run")`); err != nil {
		t.Fatalf("LoadDrawScript: %v", err)
	}
	if err := exec.RunEvent(EventKind(99), 0, id, 0, nil); err != nil {
		t.Fatalf("expected non-draw events to be no-ops, got %v", err)
	}
}
