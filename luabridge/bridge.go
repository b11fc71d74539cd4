package luabridge

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/dispatcher"
)

// Bridge holds the registry of open matcher handles backing the Lua
// globals it installs. The zero value is not usable; construct with
// New.
type Bridge struct {
	mu       sync.Mutex
	matchers map[int64]*dispatcher.Dispatcher
	next     int64
}

// New creates an empty Bridge.
func New() *Bridge {
	return &Bridge{matchers: make(map[int64]*dispatcher.Dispatcher)}
}

// Register installs the seven boundary operations as Lua globals under
// the "fuzzyfind" table: fuzzyfind.new_matcher, .query, .feed, .done,
// .get_result, .update, .free_matcher.
func (b *Bridge) Register(L *lua.LState) {
	tbl := L.NewTable()
	L.SetGlobal("fuzzyfind", tbl)

	L.SetField(tbl, "new_matcher", L.NewFunction(b.luaNewMatcher))
	L.SetField(tbl, "query", L.NewFunction(b.luaQuery))
	L.SetField(tbl, "feed", L.NewFunction(b.luaFeed))
	L.SetField(tbl, "done", L.NewFunction(b.luaDone))
	L.SetField(tbl, "get_result", L.NewFunction(b.luaGetResult))
	L.SetField(tbl, "update", L.NewFunction(b.luaUpdate))
	L.SetField(tbl, "free_matcher", L.NewFunction(b.luaFreeMatcher))
}

// luaNewMatcher() -> handle
func (b *Bridge) luaNewMatcher(L *lua.LState) int {
	d := dispatcher.NewWithDefaults()
	d.Start()

	b.mu.Lock()
	b.next++
	handle := b.next
	b.matchers[handle] = d
	b.mu.Unlock()

	L.Push(lua.LNumber(handle))
	return 1
}

// luaQuery(handle, query, context, num_results) -> command_id
func (b *Bridge) luaQuery(L *lua.LState) int {
	d, ok := b.lookup(L.CheckInt64(1))
	if !ok {
		L.ArgError(1, "unknown matcher handle")
		return 0
	}
	query := L.CheckString(2)
	context := L.OptString(3, "")
	numResults := L.OptInt(4, 50)

	id := d.Query(query, context, numResults)
	L.Push(lua.LNumber(id))
	return 1
}

// luaFeed(handle, lines) appends a Lua array of {path=, text=} tables.
func (b *Bridge) luaFeed(L *lua.LState) int {
	d, ok := b.lookup(L.CheckInt64(1))
	if !ok {
		L.ArgError(1, "unknown matcher handle")
		return 0
	}
	tbl := L.CheckTable(2)

	var batch []core.Line
	tbl.ForEach(func(_, v lua.LValue) {
		lt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		batch = append(batch, core.Line{
			Path: lt.RawGetString("path").String(),
			Text: lt.RawGetString("text").String(),
		})
	})

	d.Feed(batch)
	return 0
}

// luaDone(handle) signals end-of-input for the handle's current
// session.
func (b *Bridge) luaDone(L *lua.LState) int {
	d, ok := b.lookup(L.CheckInt64(1))
	if !ok {
		L.ArgError(1, "unknown matcher handle")
		return 0
	}
	d.Done()
	return 0
}

// luaGetResult(handle, command_id) -> status, matches_or_nil, err_or_nil
func (b *Bridge) luaGetResult(L *lua.LState) int {
	d, ok := b.lookup(L.CheckInt64(1))
	if !ok {
		L.ArgError(1, "unknown matcher handle")
		return 0
	}
	id := uint64(L.CheckInt64(2))

	r := d.GetResult(id)
	switch r.Status {
	case dispatcher.StatusNone:
		L.Push(lua.LString("none"))
		L.Push(lua.LNil)
		L.Push(lua.LNil)
	case dispatcher.StatusOk:
		L.Push(lua.LString("ok"))
		L.Push(matchesToLua(L, r.Matches))
		L.Push(lua.LNil)
	case dispatcher.StatusErr:
		L.Push(lua.LString("err"))
		L.Push(lua.LNil)
		L.Push(lua.LString(r.Err))
	}
	return 3
}

// luaUpdate(handle, path) notifies the frecency counter of a selection.
func (b *Bridge) luaUpdate(L *lua.LState) int {
	d, ok := b.lookup(L.CheckInt64(1))
	if !ok {
		L.ArgError(1, "unknown matcher handle")
		return 0
	}
	d.Update(L.CheckString(2))
	return 0
}

// luaFreeMatcher(handle) stops the worker and releases the handle.
func (b *Bridge) luaFreeMatcher(L *lua.LState) int {
	handle := L.CheckInt64(1)

	b.mu.Lock()
	d, ok := b.matchers[handle]
	delete(b.matchers, handle)
	b.mu.Unlock()

	if ok {
		d.Stop()
	}
	return 0
}

func (b *Bridge) lookup(handle int64) (*dispatcher.Dispatcher, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.matchers[handle]
	return d, ok
}

// matchesToLua converts matches into a 1-indexed Lua array of tables,
// each with index/score/context_score/query_score/frequency_score
// fields.
func matchesToLua(L *lua.LState, matches []core.Match) *lua.LTable {
	out := L.NewTable()
	for i, m := range matches {
		row := L.NewTable()
		L.SetField(row, "index", lua.LNumber(m.Index))
		L.SetField(row, "score", lua.LNumber(m.Score))
		L.SetField(row, "context_score", lua.LNumber(m.ContextScore))
		L.SetField(row, "query_score", lua.LNumber(m.QueryScore))
		L.SetField(row, "frequency_score", lua.LNumber(m.FrequencyScore))
		out.RawSetInt(i+1, row)
	}
	return out
}
