// Package hook runs an optional user Lua script against the computed
// command plan before launch. The script may rename the target server
// or force a plain local launch; anything else it returns is ignored.
//
// The script defines:
//
//	function on_plan(plan)
//	    -- plan = {kind=..., server=..., files={...}, payload=...}
//	    return {server = "WORK"}          -- retarget
//	    -- or: return {force_local = true}
//	end
//
// A missing script, a script without on_plan, or a nil return all leave
// the plan untouched.
package hook

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimrelay/internal/plan"
)

// Overrides is what a hook script may change about a plan.
type Overrides struct {
	// Server replaces the plan's target server name when non-empty.
	Server string

	// ForceLocal discards the remote plan in favor of a local launch.
	ForceLocal bool
}

// IsZero reports whether the hook changed nothing.
func (o Overrides) IsZero() bool {
	return o.Server == "" && !o.ForceLocal
}

// Run executes the script at path with the plan and returns its
// overrides. An empty path is a no-op.
func Run(path string, p plan.Plan) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return Overrides{}, fmt.Errorf("hook %s: %w", path, err)
	}

	fn, ok := L.GetGlobal("on_plan").(*lua.LFunction)
	if !ok {
		return Overrides{}, nil
	}

	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, planTable(L, p)); err != nil {
		return Overrides{}, fmt.Errorf("hook %s: on_plan: %w", path, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	return readOverrides(ret), nil
}

// planTable converts the plan into the table passed to on_plan.
func planTable(L *lua.LState, p plan.Plan) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(p.Kind.String()))
	t.RawSetString("server", lua.LString(p.Target))
	t.RawSetString("payload", lua.LString(p.SendKeys))

	files := L.NewTable()
	for _, f := range p.Files {
		files.Append(lua.LString(f))
	}
	t.RawSetString("files", files)

	return t
}

// readOverrides extracts the recognized fields from the script's return
// value. Non-table returns mean no overrides.
func readOverrides(v lua.LValue) Overrides {
	t, ok := v.(*lua.LTable)
	if !ok {
		return Overrides{}
	}

	var o Overrides
	if s, ok := t.RawGetString("server").(lua.LString); ok {
		o.Server = string(s)
	}
	if b, ok := t.RawGetString("force_local").(lua.LBool); ok {
		o.ForceLocal = bool(b)
	}
	return o
}
