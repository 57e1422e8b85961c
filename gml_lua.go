// gml_lua.go - Lua-backed stand-in for the GML executor (spec §4.H)
//
// The real GML bytecode/AST executor is out of scope (spec §1). This
// gives the draw pass's custom-draw branch a runnable collaborator by
// embedding github.com/yuin/gopher-lua, declared but never exercised in
// the teacher's own go.mod. Each custom-draw object index maps to a
// compiled Lua chunk; dispatch pushes self/other instance state as Lua
// tables, matching the "self/other owner" distinction in the original
// GML AST (original_source/src/gml/runtime.rs's VarOwner).

package gm8run

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// LuaGMLExecutor maps custom-draw object indices to a compiled draw
// script and runs it against a live InstanceList on dispatch.
type LuaGMLExecutor struct {
	scripts   map[int]*lua.FunctionProto
	instances *InstanceList
}

// NewLuaGMLExecutor returns an executor whose dispatch reads and writes
// instances through list.
func NewLuaGMLExecutor(list *InstanceList) *LuaGMLExecutor {
	return &LuaGMLExecutor{scripts: make(map[int]*lua.FunctionProto), instances: list}
}

// LoadDrawScript compiles source as the DRAW event body for objectIndex.
func (e *LuaGMLExecutor) LoadDrawScript(objectIndex int, name, source string) error {
	chunk, err := lua.Parse(strings.NewReader(source), name)
	if err != nil {
		return fmt.Errorf("parse draw script for object %d: %w", objectIndex, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return fmt.Errorf("compile draw script for object %d: %w", objectIndex, err)
	}
	e.scripts[objectIndex] = proto
	return nil
}

// RunEvent implements GMLExecutor. Only DrawEvent is meaningful here; any
// other event kind is a no-op since this stand-in only models scripted
// draws.
func (e *LuaGMLExecutor) RunEvent(kind EventKind, subtype int, self, other InstanceID, argv []float64) error {
	if kind != DrawEvent {
		return nil
	}
	inst, ok := e.instances.GetByID(self)
	if !ok {
		return nil
	}
	proto, ok := e.scripts[inst.ObjectIndex]
	if !ok {
		return nil
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("self", instanceTable(L, e.instances, self))
	L.SetGlobal("other", instanceTable(L, e.instances, other))

	fn := L.NewFunctionFromProto(proto)
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return &GMLError{Instance: self, Event: kind, Reason: err.Error()}
	}
	return nil
}

// instanceTable builds a Lua table holding a copy of id's fields.
// Writes through the table are not reflected back onto the Go Instance in
// this minimal stand-in; a full binding would install __newindex
// metamethods that call back into InstanceList.
func instanceTable(L *lua.LState, list *InstanceList, id InstanceID) *lua.LTable {
	t := L.NewTable()
	inst, ok := list.GetByID(id)
	if !ok {
		return t
	}
	t.RawSetString("id", lua.LNumber(inst.ID))
	t.RawSetString("object_index", lua.LNumber(inst.ObjectIndex))
	t.RawSetString("sprite_index", lua.LNumber(inst.SpriteIndex))
	t.RawSetString("x", lua.LNumber(inst.X.Float64()))
	t.RawSetString("y", lua.LNumber(inst.Y.Float64()))
	t.RawSetString("depth", lua.LNumber(inst.Depth.Float64()))
	t.RawSetString("image_index", lua.LNumber(inst.ImageIndex.Float64()))
	t.RawSetString("image_xscale", lua.LNumber(inst.ImageXScale.Float64()))
	t.RawSetString("image_yscale", lua.LNumber(inst.ImageYScale.Float64()))
	t.RawSetString("image_angle", lua.LNumber(inst.ImageAngle.Float64()))
	t.RawSetString("image_alpha", lua.LNumber(inst.ImageAlpha.Float64()))
	return t
}
