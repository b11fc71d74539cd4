package matchsession

import (
	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/matchscore"
	"github.com/dshills/fuzzyfind/internal/topk"
)

// Progress reports a Session's state after a Process call: either the
// session is still Working, or it is done and Results holds the final
// sorted matches. Results is nil whenever Working is true.
type Progress struct {
	Working bool
	Results []core.Match
}

// Session holds one query's incremental matching state: the query and
// context strings it was opened with, the fed-so-far candidate buffer,
// how far scoring has progressed into it, and the persistent top-K
// heap that survives across Process calls.
//
// Session is not safe for concurrent use; exactly one goroutine (the
// dispatcher's worker) may call FeedLines/Process on a given Session.
type Session struct {
	query   string
	context string
	scorer  *matchscore.Scorer
	heap    *topk.Selector

	lines        []core.Line
	progressedTo int

	done    bool
	results []core.Match
}

// New opens a session for query/context, scoring with scorer and
// retaining the numResults best matches.
func New(query, context string, scorer *matchscore.Scorer, numResults int) *Session {
	return &Session{
		query:   query,
		context: context,
		scorer:  scorer,
		heap:    topk.New(numResults),
	}
}

// FeedLines appends batch to the session's candidate buffer. It never
// scores; scoring only happens inside Process. Safe to call at any
// point in the session's life, including after Done, though lines fed
// after Done are retained but never scored: Process keeps returning the
// results it finished with.
func (s *Session) FeedLines(batch []core.Line) {
	s.lines = append(s.lines, batch...)
}

// Process scores up to chunkSize more lines from the fed buffer,
// offering survivors to the top-K heap, and reports whether the
// session has caught up to everything fed so far. Calling Process
// again after it has finished is idempotent: it returns the same
// result without rescoring anything.
func (s *Session) Process(chunkSize int) Progress {
	if s.done {
		return Progress{Working: false, Results: s.results}
	}

	if s.progressedTo >= len(s.lines) {
		return s.finish()
	}

	end := s.progressedTo + chunkSize
	if end > len(s.lines) {
		end = len(s.lines)
	}

	for i := s.progressedTo; i < end; i++ {
		m, ok := s.scorer.Score(s.query, s.context, uint64(i), s.lines[i])
		if ok {
			s.heap.Offer(m)
		}
	}
	s.progressedTo = end

	if s.progressedTo >= len(s.lines) {
		return s.finish()
	}
	return Progress{Working: true}
}

func (s *Session) finish() Progress {
	s.results = s.heap.DrainSorted()
	s.done = true
	return Progress{Working: false, Results: s.results}
}

// Done reports whether this session has produced its final results.
func (s *Session) Done() bool {
	return s.done
}
