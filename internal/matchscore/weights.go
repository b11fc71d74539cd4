package matchscore

// Weights configures the relative contribution of each scoring factor.
// The defaults (a 10x frequency weight among them) are heuristics, not
// values derived from first principles; they are exposed here as named
// fields rather than inline magic numbers, so tests can pin non-default
// values without touching the scorer itself.
type Weights struct {
	// FrequencyWeight scales the frecency score into frequency_score.
	FrequencyWeight float64

	// BaseScore is the starting score for any subsequence match.
	BaseScore float64

	// ConsecutiveBonus is added for each consecutive matched character.
	ConsecutiveBonus float64

	// WordBoundaryBonus is added for matches at word boundaries (after a
	// separator, or a lower-to-upper camelCase transition).
	WordBoundaryBonus float64

	// PrefixBonus is added when the first match is at position 0.
	PrefixBonus float64

	// ExactPrefixBonus is added when the query matches the start of the
	// text exactly (case-folded).
	ExactPrefixBonus float64

	// GapPenalty is subtracted per gap character between matches.
	GapPenalty float64

	// LeadingPenalty is subtracted per character before the first match.
	LeadingPenalty float64

	// LengthBonusThreshold: texts shorter than this get a bonus
	// proportional to how much shorter they are (more specific match).
	LengthBonusThreshold int
}

// DefaultWeights returns the engine's default weights: a 10x frequency
// weight and a bonus/penalty shape tuned for path-aware fuzzy matching.
func DefaultWeights() Weights {
	return Weights{
		FrequencyWeight:      10.0,
		BaseScore:            100,
		ConsecutiveBonus:     20,
		WordBoundaryBonus:    15,
		PrefixBonus:          25,
		ExactPrefixBonus:     50,
		GapPenalty:           2,
		LeadingPenalty:       1,
		LengthBonusThreshold: 20,
	}
}
