package dispatcher

import "github.com/dshills/fuzzyfind/internal/core"

// ResultStatus is the sum-type discriminant of ResultState returned by
// GetResult.
type ResultStatus int

const (
	// StatusNone means the command's result is not yet available.
	StatusNone ResultStatus = iota

	// StatusOk means Matches holds the session's final, sorted results.
	StatusOk

	// StatusErr means an error occurred; Err holds its message. The
	// dispatcher never returns an error of its own accord beyond
	// ErrExpired ("expired command") and ErrWorkerDead ("processing
	// thread has died"); callers should treat Err as opaque otherwise.
	StatusErr
)

// ResultState is what GetResult returns: {None | Ok(matches) | Err(msg)}.
type ResultState struct {
	Status  ResultStatus
	Matches []core.Match
	Err     string
}

// resultMsg is what the worker posts on the worker→host channel:
// a (command_id, outcome) pair for a completed session.
type resultMsg struct {
	id      uint64
	matches []core.Match
}
