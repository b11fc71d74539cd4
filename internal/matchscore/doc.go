// Package matchscore implements the fuzzy-finder's scoring function:
// smart-case subsequence matching with path-aware bonuses, blended with
// frecency and a (currently zero-valued) context contribution.
//
// # Scoring
//
// Score(query, context, index, text, path) combines three terms:
//
//   - frequency_score = 10 * frecency.Score(path)
//   - context_score   = exp(-0.5*len(query)) * 0 (held at zero; see
//     ContextDecay)
//   - query_score     = smart-case subsequence match against text, or
//     against the basename if text contains '/'
//
// If the query is non-empty and does not subsequence-match, the line is
// excluded entirely (Score returns ok=false).
//
// # Smart case
//
// The query is matched case-insensitively unless it contains an
// uppercase character, in which case matching is case-sensitive. Case
// folding uses golang.org/x/text/cases rather than strings.ToLower, since
// query and line text are untrusted UTF-8 content from arbitrary files.
package matchscore
