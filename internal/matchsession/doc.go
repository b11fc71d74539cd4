// Package matchsession implements the fuzzy-finder's incremental
// matcher: a stateful session that scores a growing candidate buffer in
// fixed-size chunks, maintaining a persistent top-K heap across chunks
// so the dispatcher can interleave scoring with command-channel checks
// without ever scoring the same line twice or losing progress.
//
// The session itself holds no concurrency primitives; it is driven
// synchronously, one Process call at a time, by a single caller (the
// dispatcher's worker goroutine in package dispatcher).
package matchsession
