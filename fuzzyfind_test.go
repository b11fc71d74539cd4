package fuzzyfind

import (
	"testing"
	"time"
)

func TestEndToEndQuery(t *testing.T) {
	m := New()
	defer m.Close()

	id := m.Query("main", "", 10)
	m.Feed([]Line{
		{Path: "main.go", Text: "func main() {}"},
		{Path: "helper.go", Text: "func helper() {}"},
		{Path: "domain.go", Text: "type Domain struct{}"},
	})
	m.Done()

	deadline := time.After(2 * time.Second)
	for {
		matches, status, err := m.GetResult(id)
		if status == Ready {
			if len(matches) == 0 {
				t.Fatal("expected at least one match for query \"main\"")
			}
			return
		}
		if status == Failed {
			t.Fatalf("unexpected failure: %v", err)
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for result")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestCloseThenGetResultFails(t *testing.T) {
	m := New()
	m.Close()

	deadline := time.After(2 * time.Second)
	for {
		_, status, err := m.GetResult(1)
		if status == Failed {
			if err == nil {
				t.Fatal("expected a non-nil error alongside Failed")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for a failure status after Close")
		case <-time.After(time.Millisecond):
		}
	}
}
