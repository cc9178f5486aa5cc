package summarize

// Policy collects the tunable parameters of the summarization pipeline in
// one place instead of scattering them across the call sites.
type Policy struct {
	// TruncateChars is the hard cap on transcript characters sent to the
	// model. Content beyond the cap is dropped, not summarized.
	TruncateChars int

	// TokenBudgets maps a requested length to the output token cap of the
	// summary call.
	TokenBudgets map[string]int

	// ConceptMapTokens is the output token cap of the concept-map call.
	ConceptMapTokens int

	// DetectPrefixChars is how much of the input is sent for language
	// detection.
	DetectPrefixChars int

	SummaryTemperature    float64
	ConceptMapTemperature float64
	DetectTemperature     float64
}

// DefaultPolicy returns the canonical pipeline parameters.
func DefaultPolicy() Policy {
	return Policy{
		TruncateChars: 8000,
		TokenBudgets: map[string]int{
			LengthShort:  300,
			LengthMedium: 500,
			LengthLong:   800,
		},
		ConceptMapTokens:  1200,
		DetectPrefixChars: 200,

		SummaryTemperature:    0.4,
		ConceptMapTemperature: 0.3,
		DetectTemperature:     0,
	}
}

// TokenBudget resolves the output token cap for a requested length. Unknown
// or missing lengths resolve to the medium budget. Same length always yields
// the same budget.
func (p Policy) TokenBudget(length string) int {
	if budget, ok := p.TokenBudgets[length]; ok {
		return budget
	}
	return p.TokenBudgets[LengthMedium]
}

// truncateText caps s at limit runes. Multi-byte text is never cut inside a
// rune.
func truncateText(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
