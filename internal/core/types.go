// Package core holds the data types shared across the fuzzy-finder
// engine's components: the candidate Line the host feeds in, and the
// scored Match the engine hands back.
package core

// Line is an input candidate fed by the host. Both fields are owned
// copies made at ingestion time; the engine never holds a reference back
// into host memory.
type Line struct {
	// Path identifies the candidate for frecency lookups and
	// tie-breaking; for file candidates this is typically the file path.
	Path string

	// Text is the text shown to the user and scored against the query.
	Text string
}

// Match is a scored result. Index is the position of the Line within the
// full fed stream for the query that produced it (0-based, stable across
// chunks). Score is the sum of the other three fields.
type Match struct {
	Index          uint64
	Score          float64
	ContextScore   float64
	QueryScore     float64
	FrequencyScore float64
}

// Less orders matches by score descending, then index ascending, which is
// the engine's one true result ordering (spec data model §3).
func Less(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}
