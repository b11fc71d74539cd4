package fuzzyfind

import (
	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/dispatcher"
)

// Line and Match are re-exported from the internal core package so
// callers never need to import internal/core directly.
type (
	Line  = core.Line
	Match = core.Match
)

// Status mirrors dispatcher.ResultStatus under public names.
type Status int

const (
	// Pending means the query's result is not yet available.
	Pending Status = iota
	// Ready means matches holds the query's final, sorted results.
	Ready
	// Failed means an error occurred; see the accompanying error.
	Failed
)

// Matcher is the engine's public entry point: one Matcher owns one
// dispatcher worker and its frecency state.
type Matcher struct {
	d *dispatcher.Dispatcher
}

// Config configures a Matcher. Start from DefaultConfig: fields are used
// as given, and zero values are not replaced by defaults.
type Config = dispatcher.Config

// DefaultConfig returns sensible defaults (see dispatcher.DefaultConfig).
func DefaultConfig() Config {
	return dispatcher.DefaultConfig()
}

// New creates and starts a Matcher with DefaultConfig.
func New() *Matcher {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates and starts a Matcher with an explicit Config.
func NewWithConfig(cfg Config) *Matcher {
	d := dispatcher.New(cfg)
	d.Start()
	return &Matcher{d: d}
}

// Query begins a new matching session and returns its command_id.
// Issuing a new Query abandons whatever session is currently running.
func (m *Matcher) Query(query, context string, numResults int) uint64 {
	return m.d.Query(query, context, numResults)
}

// Feed appends candidate lines to the currently running session.
func (m *Matcher) Feed(batch []Line) {
	m.d.Feed(batch)
}

// Done signals end-of-input for the currently running session.
func (m *Matcher) Done() {
	m.d.Done()
}

// Update notifies the frecency counter that path was selected.
func (m *Matcher) Update(path string) {
	m.d.Update(path)
}

// GetResult polls for the outcome of commandID. It never blocks.
func (m *Matcher) GetResult(commandID uint64) ([]Match, Status, error) {
	r := m.d.GetResult(commandID)
	switch r.Status {
	case dispatcher.StatusOk:
		return r.Matches, Ready, nil
	case dispatcher.StatusErr:
		return nil, Failed, statusError{r.Err}
	default:
		return nil, Pending, nil
	}
}

// Close stops the Matcher's worker. A Matcher must not be used after
// Close.
func (m *Matcher) Close() {
	m.d.Stop()
}

// statusError wraps the dispatcher's plain-string errors ("expired command",
// "processing thread has died") as an error value.
type statusError struct{ msg string }

func (e statusError) Error() string { return e.msg }
