package matchscore

import (
	"math"
	"strings"

	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/frecency"
)

// Scorer combines a frequency_score from a frecency Counter, a
// context_score envelope held at zero, and a smart-case, path-aware
// query_score into one Match. It is a pure function of its inputs plus
// the frecency counter's current state; any scratch state it holds
// (none, currently) must never affect results.
type Scorer struct {
	frecency *frecency.Counter
	weights  Weights
}

// New creates a Scorer backed by the given frecency counter and default
// weights.
func New(fc *frecency.Counter) *Scorer {
	return NewWithWeights(fc, DefaultWeights())
}

// NewWithWeights creates a Scorer with explicit weights, for tests that
// need to pin non-default values.
func NewWithWeights(fc *frecency.Counter, w Weights) *Scorer {
	return &Scorer{frecency: fc, weights: w}
}

// ContextDecay is the context-scoring envelope, exp(-0.5*len(query)).
// The envelope is kept as a real, callable function, multiplied by zero
// in Score below, rather than inlined as a literal zero, so that
// reintroducing a non-zero context metric is a one-line change at the
// call site.
func ContextDecay(query string) float64 {
	return math.Exp(-0.5 * float64(len([]rune(query))))
}

// Score scores one candidate line against query and context at the given
// stream index. It returns ok=false if query is non-empty and does not
// subsequence-match line anywhere (including its basename), in which
// case the line must be excluded from results entirely.
func (s *Scorer) Score(query, context string, index uint64, line core.Line) (core.Match, bool) {
	frequencyScore := s.weights.FrequencyWeight * s.frecency.Score(line.Path)

	// Context scoring is held at zero; the decay envelope is preserved
	// so a future non-zero metric is a one-line multiply.
	contextScore := ContextDecay(query) * 0

	if query == "" {
		return core.Match{
			Index:          index,
			Score:          frequencyScore + contextScore,
			ContextScore:   contextScore,
			QueryScore:     0,
			FrequencyScore: frequencyScore,
		}, true
	}

	queryScore, matched := s.queryScore(query, line.Text)
	if !matched {
		return core.Match{}, false
	}

	return core.Match{
		Index:          index,
		Score:          frequencyScore + contextScore + queryScore,
		ContextScore:   contextScore,
		QueryScore:     queryScore,
		FrequencyScore: frequencyScore,
	}, true
}

// queryScore runs the smart-case subsequence matcher against line, and
// again against its basename if it contains a path separator, returning
// the basename score when present, since users type basenames for
// paths far more often than full paths.
func (s *Scorer) queryScore(query, line string) (float64, bool) {
	caseSensitive := hasUpper(query)

	wholeScore, wholeOK := s.matchOne(query, line, caseSensitive)

	if idx := strings.LastIndexByte(line, '/'); idx >= 0 && idx+1 < len(line) {
		basename := line[idx+1:]
		if baseScore, baseOK := s.matchOne(query, basename, caseSensitive); baseOK {
			return baseScore, true
		}
	}

	return wholeScore, wholeOK
}

// matchOne runs the subsequence matcher once, applying smart-case
// folding unless caseSensitive.
func (s *Scorer) matchOne(query, text string, caseSensitive bool) (float64, bool) {
	original := []rune(text)

	compareQuery := query
	compareText := text
	if !caseSensitive {
		compareQuery = fold(query)
		compareText = fold(text)
	}

	return subsequenceMatch([]rune(compareQuery), original, []rune(compareText), s.weights)
}
