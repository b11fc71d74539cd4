package dispatcher

import "errors"

// Dispatcher errors. The message text is part of the get_result
// contract: hosts match on these exact strings, not just the sentinel.
var (
	// ErrExpired is returned by GetResult when a result for a later
	// command_id has already arrived, meaning the requested id's
	// session was superseded from the host's point of view.
	ErrExpired = errors.New("expired command")

	// ErrWorkerDead is returned by GetResult once the worker goroutine
	// has terminated.
	ErrWorkerDead = errors.New("processing thread has died")
)
