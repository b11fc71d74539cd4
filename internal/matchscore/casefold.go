package matchscore

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseFolder lowercases text for case-insensitive matching. Built once
// and reused by the single scoring goroutine that calls fold; a Caser
// is not safe to share across concurrent callers, so a Scorer used from
// more than one goroutine needs its own serialization.
var caseFolder = cases.Lower(language.Und)

// hasUpper reports whether s contains an uppercase rune, which under
// smart-case semantics makes matching case-sensitive.
func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// fold lowercases s using Unicode case-folding rules (not a byte-wise
// ASCII fold), so multi-byte casing (e.g. İ/i̇, ẞ/ß) behaves correctly
// for arbitrary file content.
func fold(s string) string {
	return caseFolder.String(s)
}
