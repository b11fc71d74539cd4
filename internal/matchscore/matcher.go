package matchscore

import "unicode"

// subsequenceMatch scores a smart-case subsequence match of queryRunes
// against text with a greedy left-to-right scan plus bonus/penalty
// scoring (consecutive runs, word boundaries, prefix matches, gap and
// leading-character penalties, a length bonus for shorter text). It
// returns ok=false if queryRunes does not occur as a subsequence of
// text at all, in which case the line must be excluded entirely.
//
// queryRunes must already be case-folded if caseSensitive is false;
// originalRunes/textRunes are the text in its original casing and its
// comparison casing (folded, unless caseSensitive), respectively.
func subsequenceMatch(queryRunes, originalRunes, textRunes []rune, w Weights) (score float64, ok bool) {
	if len(queryRunes) == 0 || len(textRunes) == 0 {
		return 0, false
	}

	matches := make([]int, 0, len(queryRunes))
	qi := 0
	for i := 0; i < len(textRunes) && qi < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[qi] {
			matches = append(matches, i)
			qi++
		}
	}
	if qi != len(queryRunes) {
		return 0, false
	}

	s := w.BaseScore

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			s += w.ConsecutiveBonus
		}
	}

	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			s += w.WordBoundaryBonus
		}
	}

	if matches[0] == 0 {
		s += w.PrefixBonus
	}

	if len(matches) > 1 {
		totalGap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if totalGap > 0 {
			s -= float64(totalGap) * w.GapPenalty
		}
	}

	if matches[0] > 0 {
		s -= float64(matches[0]) * w.LeadingPenalty
	}

	textLen := len(textRunes)
	if textLen < w.LengthBonusThreshold {
		s += float64(w.LengthBonusThreshold - textLen)
	}

	if len(textRunes) >= len(queryRunes) {
		isPrefix := true
		for i, qr := range queryRunes {
			if textRunes[i] != qr {
				isPrefix = false
				break
			}
		}
		if isPrefix {
			s += w.ExactPrefixBonus
		}
	}

	if s < 1 {
		s = 1
	}
	return s, true
}

// isWordBoundary reports whether the rune at idx in runes starts a word:
// position 0, after a space/punctuation separator, or a camelCase
// lower-to-upper transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, cur := runes[idx-1], runes[idx]

	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return false
}
