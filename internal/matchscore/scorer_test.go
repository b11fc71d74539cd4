package matchscore

import (
	"testing"

	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/frecency"
)

func TestScoreEmptyQueryIncludesEveryLine(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	got, ok := s.Score("", "", 0, core.Line{Path: "a.go", Text: "package a"})
	if !ok {
		t.Fatalf("empty query must never exclude a line")
	}
	if got.QueryScore != 0 {
		t.Errorf("QueryScore = %v, want 0 for empty query", got.QueryScore)
	}
}

func TestScoreNoMatchExcludesLine(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	_, ok := s.Score("zzz", "", 0, core.Line{Path: "a.go", Text: "package a"})
	if ok {
		t.Fatalf("non-matching query must exclude the line")
	}
}

func TestScoreSubsequenceMatch(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	got, ok := s.Score("main", "", 0, core.Line{Path: "main.go", Text: "func main() {}"})
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.QueryScore <= 0 {
		t.Errorf("QueryScore = %v, want positive", got.QueryScore)
	}
}

func TestScorePrefixBeatsMidString(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	prefix, ok := s.Score("main", "", 0, core.Line{Path: "a.go", Text: "main.go"})
	if !ok {
		t.Fatalf("expected prefix match")
	}
	mid, ok := s.Score("main", "", 1, core.Line{Path: "b.go", Text: "domain.go"})
	if !ok {
		t.Fatalf("expected mid-string match")
	}
	if prefix.Score <= mid.Score {
		t.Errorf("prefix score %v should exceed mid-string score %v", prefix.Score, mid.Score)
	}
}

func TestScoreSmartCaseInsensitiveByDefault(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	_, ok := s.Score("main", "", 0, core.Line{Path: "a.go", Text: "func MAIN() {}"})
	if !ok {
		t.Fatalf("an all-lowercase query should match uppercase text case-insensitively")
	}
}

func TestScoreSmartCaseSensitiveWithUppercaseQuery(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	// "Main" is mixed-case, so matching becomes case-sensitive: it
	// must not match all-lowercase text.
	_, ok := s.Score("Main", "", 0, core.Line{Path: "a.go", Text: "func main() {}"})
	if ok {
		t.Fatalf("mixed-case query should not match all-lowercase text under smart case")
	}

	got, ok := s.Score("Main", "", 0, core.Line{Path: "a.go", Text: "func Main() {}"})
	if !ok {
		t.Fatalf("mixed-case query should match identically-cased text")
	}
	if got.QueryScore <= 0 {
		t.Errorf("QueryScore = %v, want positive", got.QueryScore)
	}
}

func TestScoreBasenamePreferredOverFullPath(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	withSlash, ok := s.Score("main", "", 0, core.Line{Path: "a.go", Text: "cmd/server/main.go"})
	if !ok {
		t.Fatalf("expected basename match")
	}

	noSlash, ok := s.Score("main", "", 1, core.Line{Path: "b.go", Text: "main.go"})
	if !ok {
		t.Fatalf("expected direct match")
	}

	if withSlash.QueryScore != noSlash.QueryScore {
		t.Errorf("basename score %v should equal scoring the basename directly %v", withSlash.QueryScore, noSlash.QueryScore)
	}
}

func TestScoreFrequencyContribution(t *testing.T) {
	fc := frecency.New()
	fc.Update("hot.go")
	s := New(fc)

	hot, ok := s.Score("", "", 0, core.Line{Path: "hot.go", Text: "package hot"})
	if !ok {
		t.Fatalf("expected match")
	}
	cold, ok := s.Score("", "", 1, core.Line{Path: "cold.go", Text: "package cold"})
	if !ok {
		t.Fatalf("expected match")
	}
	if hot.Score <= cold.Score {
		t.Errorf("recently-used path score %v should exceed untracked path score %v", hot.Score, cold.Score)
	}
	if hot.FrequencyScore != cold.FrequencyScore+10 {
		t.Errorf("FrequencyScore = %v, want cold+10 (FrequencyWeight*Score=1)", hot.FrequencyScore)
	}
}

func TestScoreDeterministic(t *testing.T) {
	fc := frecency.New()
	fc.Update("a.go")
	s := New(fc)

	line := core.Line{Path: "a.go", Text: "package main"}
	first, _ := s.Score("main", "ctx", 5, line)
	second, _ := s.Score("main", "ctx", 5, line)

	if first != second {
		t.Errorf("Score is not deterministic: %+v != %+v", first, second)
	}
}

func TestScoreIndexPreserved(t *testing.T) {
	fc := frecency.New()
	s := New(fc)

	got, ok := s.Score("", "", 42, core.Line{Path: "a.go", Text: "x"})
	if !ok {
		t.Fatalf("expected match")
	}
	if got.Index != 42 {
		t.Errorf("Index = %d, want 42", got.Index)
	}
}

func TestContextDecayShape(t *testing.T) {
	short := ContextDecay("a")
	long := ContextDecay("abcdef")
	if short <= long {
		t.Errorf("ContextDecay should decrease with query length: short=%v long=%v", short, long)
	}
	if ContextDecay("") != 1.0 {
		t.Errorf("ContextDecay(\"\") = %v, want 1.0", ContextDecay(""))
	}
}
