// Package luabridge exposes the fuzzy-finder's boundary operations to an
// embedded Lua runtime: new_matcher, query, feed, done, get_result,
// update, free_matcher. NewState opens a sandboxed library set and
// Bridge converts between Lua values and the engine's Go types.
//
// The adapter is deliberately thin: it holds a registry of open
// matcher handles and nothing else. It never blocks, since every
// dispatcher call it forwards is itself non-blocking, and it
// introduces no state beyond that registry.
package luabridge
