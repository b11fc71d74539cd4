// Package dispatcher decouples the host from the scoring worker.
//
// It runs exactly one worker goroutine. The host communicates with it
// over two unidirectional paths: Query/Feed/Done/Update commands flow
// host→worker through an unbounded queue, and (command_id, result)
// pairs flow worker→host over a buffered channel. The host caller is
// never blocked: enqueuing a command only takes a brief lock, and
// polling GetResult never waits.
//
// # Commands
//
//   - Query(query, context, numResults) starts a new session and
//     returns its command_id. It abandons whatever session is
//     currently running; no result is ever posted for an abandoned
//     session's id.
//   - Feed(batch) appends candidate lines to the running session.
//   - Done() signals end-of-input; the worker drives the session to
//     completion and posts its result, unless superseded first.
//   - Update(path) applies a frecency update. It never produces a
//     result and never interrupts draining except to abandon a
//     running session the same way Query does.
//
// # Supersession
//
// While a session is running, the worker processes one chunk at a
// time (internal/matchsession) and drains the command queue between
// chunks. A pending Query or Update abandons the running session
// outright; a pending Feed or Done is applied and draining continues.
// This yields the guarantee that, for any command_id, the host
// receives at most one result, and results for superseded sessions are
// silently dropped.
//
// # Result retrieval
//
// GetResult(id) never blocks. It holds a side table of results that
// arrived out of order relative to what the host has asked for: if a
// later id's result shows up before the host polls an earlier one,
// the earlier id is reported as expired, since its session could only
// have produced that ordering by being superseded.
//
// # Usage
//
//	d := dispatcher.NewWithDefaults()
//	d.Start()
//	id := d.Query("main", "", 50)
//	d.Feed(lines)
//	d.Done()
//	for {
//		r := d.GetResult(id)
//		if r.Status != dispatcher.StatusNone {
//			break
//		}
//	}
//	d.Stop()
package dispatcher
