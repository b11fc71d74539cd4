package luabridge

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestNewMatcherReturnsDistinctHandles(t *testing.T) {
	L := NewState()
	defer L.Close()

	b := New()
	b.Register(L)

	script := `
		h1 = fuzzyfind.new_matcher()
		h2 = fuzzyfind.new_matcher()
		fuzzyfind.free_matcher(h1)
		fuzzyfind.free_matcher(h2)
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	h1 := L.GetGlobal("h1")
	h2 := L.GetGlobal("h2")
	if h1.String() == h2.String() {
		t.Fatalf("expected distinct handles, got %v and %v", h1, h2)
	}
}

func TestQueryFeedDoneGetResultRoundTrip(t *testing.T) {
	L := NewState()
	defer L.Close()

	b := New()
	b.Register(L)

	script := `
		handle = fuzzyfind.new_matcher()
		cmd_id = fuzzyfind.query(handle, "main", "", 10)
		fuzzyfind.feed(handle, {
			{path = "main.go", text = "func main() {}"},
			{path = "helper.go", text = "func helper() {}"},
		})
		fuzzyfind.done(handle)

		status = "none"
		matches = nil
		for i = 1, 10000 do
			status, matches, err = fuzzyfind.get_result(handle, cmd_id)
			if status ~= "none" then
				break
			end
		end

		fuzzyfind.free_matcher(handle)
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	status := L.GetGlobal("status")
	if status.String() != "ok" {
		t.Fatalf("status = %q, want ok", status.String())
	}

	matches, ok := L.GetGlobal("matches").(*lua.LTable)
	if !ok {
		t.Fatalf("matches is not a table: %v", L.GetGlobal("matches"))
	}
	if matches.Len() == 0 {
		t.Fatalf("expected at least one match")
	}
}

func TestGetResultAfterFreeMatcherIsAnError(t *testing.T) {
	L := NewState()
	defer L.Close()

	b := New()
	b.Register(L)

	script := `
		handle = fuzzyfind.new_matcher()
		cmd_id = fuzzyfind.query(handle, "main", "", 10)
		fuzzyfind.free_matcher(handle)
		fuzzyfind.get_result(handle, cmd_id)
	`
	if err := L.DoString(script); err == nil {
		t.Fatalf("expected a Lua error referencing a handle after free_matcher")
	}
}
