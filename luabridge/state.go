package luabridge

import (
	lua "github.com/yuin/gopher-lua"
)

// NewState creates a Lua state with only the libraries a fuzzy-finder
// plugin script needs: base, table, string, math. io/os/debug/package
// are left unopened, since scripts embedding this adapter have no
// business touching the filesystem or process.
func NewState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}
