package wire

import (
	"reflect"
	"testing"

	"github.com/dshills/fuzzyfind/internal/core"
)

func TestQueryArgsRoundTrip(t *testing.T) {
	want := QueryArgs{Query: "main", Context: "editor.go", NumResults: 50}
	got, err := DecodeQueryArgs(EncodeQueryArgs(want))
	if err != nil {
		t.Fatalf("DecodeQueryArgs: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeQueryArgsInvalidJSON(t *testing.T) {
	if _, err := DecodeQueryArgs("not json"); err == nil {
		t.Fatal("expected an error for invalid json")
	}
}

func TestLinesRoundTrip(t *testing.T) {
	want := []core.Line{
		{Path: "a.go", Text: "package a"},
		{Path: "b.go", Text: "package b"},
	}
	got, err := DecodeLines(EncodeLines(want))
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestEmptyLinesRoundTrip(t *testing.T) {
	got, err := DecodeLines(EncodeLines(nil))
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}

func TestMatchesRoundTrip(t *testing.T) {
	want := []core.Match{
		{Index: 0, Score: 125.5, ContextScore: 0, QueryScore: 125.5, FrequencyScore: 0},
		{Index: 3, Score: 10, ContextScore: 0, QueryScore: 0, FrequencyScore: 10},
	}
	got, err := DecodeMatches(EncodeMatches(want))
	if err != nil {
		t.Fatalf("DecodeMatches: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeLinesInvalidJSON(t *testing.T) {
	if _, err := DecodeLines("{not valid"); err == nil {
		t.Fatal("expected an error for invalid json")
	}
}
