// Package frecency tracks per-path usage so recently and frequently
// selected candidates can be biased upward in search results.
//
// A Counter holds a bounded LRU of (path, logical-clock) entries plus the
// clock itself. Score decays exponentially with clock distance, so one
// recent selection outscores many distant ones. The cache is a deliberate
// simplification: frecency here is a tiebreaker, not a history, so only
// the most recent Capacity paths are tracked at all.
package frecency
