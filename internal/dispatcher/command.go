package dispatcher

import "github.com/dshills/fuzzyfind/internal/core"

// Kind discriminates the four commands the host may enqueue.
type Kind int

const (
	// KindQuery begins a new matching session, abandoning any session
	// currently running.
	KindQuery Kind = iota

	// KindFeed appends candidate lines to the current session.
	KindFeed

	// KindDone signals end-of-input for the current session; the
	// dispatcher drives it to completion.
	KindDone

	// KindUpdate notifies the frecency counter of a selection. Produces
	// no result.
	KindUpdate
)

// Command is the unit of work enqueued on the host→worker channel.
// Only the fields relevant to Kind are populated.
type Command struct {
	Kind Kind

	// ID is assigned by Dispatcher.Query and echoed back on the result
	// channel; zero and unused for every other Kind.
	ID uint64

	// Query fields.
	Query      string
	Context    string
	NumResults int

	// Feed fields.
	Lines []core.Line

	// Update fields.
	Path string
}
