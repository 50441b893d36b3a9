package matching

// reasoningRule pairs a threshold predicate with the sentence it emits.
// Rules are evaluated in declaration order so the reasoning list always comes
// out in the same sequence for the same breakdown; a dimension with a middling
// score produces no line at all.
type reasoningRule struct {
	applies func(b MatchBreakdown) bool
	message string
}

var reasoningRules = []reasoningRule{
	{func(b MatchBreakdown) bool { return b.SkillsMatch > 0.8 },
		"Excellent skill alignment between mentor expertise and mentee needs"},
	{func(b MatchBreakdown) bool { return b.SkillsMatch > 0.6 && b.SkillsMatch <= 0.8 },
		"Good overlap in key skill areas"},
	{func(b MatchBreakdown) bool { return b.SkillsMatch < 0.3 },
		"Limited skill overlap, but cross-domain mentorship can offer fresh perspectives"},
	{func(b MatchBreakdown) bool { return b.ExperienceCompatibility > 0.8 },
		"Optimal experience gap for effective mentorship"},
	{func(b MatchBreakdown) bool { return b.ExperienceCompatibility < 0.4 },
		"Experience levels may not be ideally matched"},
	{func(b MatchBreakdown) bool { return b.AvailabilityMatch > 0.7 },
		"Strong schedule compatibility for regular sessions"},
	{func(b MatchBreakdown) bool { return b.AvailabilityMatch < 0.3 },
		"Limited schedule overlap, sessions may require flexibility"},
	{func(b MatchBreakdown) bool { return b.GoalsAlignment > 0.6 },
		"Well-aligned career goals and objectives"},
	{func(b MatchBreakdown) bool { return b.PersonalityFit > 0.7 },
		"Compatible personality traits and working styles"},
	{func(b MatchBreakdown) bool { return b.LocationCompatibility > 0.8 },
		"Same timezone region enables real-time sessions"},
	{func(b MatchBreakdown) bool { return b.LocationCompatibility < 0.4 },
		"Different timezone regions, remote asynchronous mentorship recommended"},
}

// generateReasoning renders the human-readable explanation for a breakdown.
func generateReasoning(b MatchBreakdown) []string {
	var reasoning []string
	for _, rule := range reasoningRules {
		if rule.applies(b) {
			reasoning = append(reasoning, rule.message)
		}
	}
	return reasoning
}
