// Package fuzzyfind is the engine's public facade: a Matcher wraps the
// internal dispatcher, scorer, and frecency counter into the operations
// a host needs without exposing any of the internal packages.
//
//	m := fuzzyfind.New()
//	defer m.Close()
//
//	id := m.Query("main", "", 50)
//	m.Feed(lines)
//	m.Done()
//
//	for {
//		matches, status, err := m.GetResult(id)
//		if status != fuzzyfind.Pending {
//			break
//		}
//	}
package fuzzyfind
