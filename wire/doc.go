// Package wire is the JSON boundary adapter for native callers that
// talk to the engine over a plain byte protocol rather than an embedded
// Lua runtime (see package luabridge for that one). It (de)serializes
// Line, Match, and the Query command's arguments, and nothing else: no
// blocking, no session state.
//
// Encoding uses github.com/tidwall/sjson to build JSON without a
// struct-to-map round trip, and decoding uses github.com/tidwall/gjson
// to extract fields without unmarshaling into an intermediate struct.
package wire
