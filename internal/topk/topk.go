package topk

import (
	"container/heap"
	"sort"

	"github.com/dshills/fuzzyfind/internal/core"
)

// Selector retains the K best core.Match values offered to it, in the
// engine's canonical order (score descending, index ascending), without
// ever holding more than K at once. It is not safe for concurrent use;
// callers needing concurrency (the dispatcher's worker, a parallel
// scan) must serialize their own Offer calls.
type Selector struct {
	k int
	h matchHeap
}

// New creates a Selector that retains at most k matches. A
// non-positive k is clamped to 0, a Selector that retains nothing and
// drains empty; it never panics, since a caller-supplied result count
// must not be able to bring down a caller it doesn't run in-process.
func New(k int) *Selector {
	if k < 0 {
		k = 0
	}
	return &Selector{k: k, h: make(matchHeap, 0, k)}
}

// Offer considers m for retention. If fewer than K matches are held, m
// is kept unconditionally. Otherwise m replaces the current
// worst-of-kept match if and only if m ranks better under core.Less.
func (s *Selector) Offer(m core.Match) {
	if s.k == 0 {
		return
	}
	if s.h.Len() < s.k {
		heap.Push(&s.h, m)
		return
	}
	if core.Less(m, s.h[0]) {
		s.h[0] = m
		heap.Fix(&s.h, 0)
	}
}

// Len reports how many matches are currently held (at most K).
func (s *Selector) Len() int {
	return s.h.Len()
}

// DrainSorted empties the selector and returns its held matches sorted
// into the engine's canonical order (score descending, index
// ascending). After DrainSorted, the selector holds zero matches and
// can be reused for a fresh top-K pass.
func (s *Selector) DrainSorted() []core.Match {
	out := make([]core.Match, len(s.h))
	copy(out, s.h)
	s.h = s.h[:0]

	sort.Slice(out, func(i, j int) bool {
		return core.Less(out[i], out[j])
	})
	return out
}

// matchHeap is a min-heap of core.Match ordered so the worst-of-kept
// match (per core.Less) sits at the root.
type matchHeap []core.Match

func (h matchHeap) Len() int { return len(h) }

func (h matchHeap) Less(i, j int) bool {
	// h[i] is worse than h[j] exactly when h[j] is better than h[i].
	return core.Less(h[j], h[i])
}

func (h matchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *matchHeap) Push(x any) {
	*h = append(*h, x.(core.Match))
}

func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
