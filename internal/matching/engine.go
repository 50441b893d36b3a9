package matching

import (
	"math"
	"sync"
)

// maxConfidence caps the reported confidence: the engine never claims
// certainty about a pairing it has only scored heuristically.
const maxConfidence = 0.95

// Engine scores mentor/mentee pairs and ranks candidate pools. It is safe for
// concurrent use: scoring itself is stateless, and the interaction history is
// guarded by a read/write mutex.
//
// Construct one Engine per application (or per test) with NewEngine; there is
// no package-level singleton.
type Engine struct {
	mu           sync.RWMutex
	interactions map[string][]Interaction
}

// NewEngine creates an engine with an empty interaction history.
func NewEngine() *Engine {
	return &Engine{
		interactions: make(map[string][]Interaction),
	}
}

// CalculateMatch scores one (mentor, mentee) pair. Overrides, when non-nil,
// replace individual default weights without re-normalization (see
// WeightOverrides). The same inputs always produce the same output.
func (e *Engine) CalculateMatch(mentor, mentee *UserPreferences, overrides *WeightOverrides) (*MatchScore, error) {
	if err := ValidateProfile(mentor); err != nil {
		return nil, err
	}
	if err := ValidateProfile(mentee); err != nil {
		return nil, err
	}

	breakdown := MatchBreakdown{
		SkillsMatch:             skillsMatch(mentor.Skills, mentee.Skills),
		InterestsMatch:          JaccardSimilarity(mentor.Interests, mentee.Interests),
		GoalsAlignment:          JaccardSimilarity(mentor.Goals, mentee.Goals),
		ExperienceCompatibility: experienceMatch(mentor, mentee),
		AvailabilityMatch:       availabilityMatch(mentor, mentee),
		PersonalityFit:          personalityMatch(mentor.PersonalityTraits, mentee.PersonalityTraits),
		CommunicationStyle:      communicationMatch(mentor, mentee),
		LocationCompatibility:   locationMatch(mentor, mentee),
		BudgetCompatibility:     budgetMatch(mentor, mentee),
		LanguageMatch:           JaccardSimilarity(mentor.Languages, mentee.Languages),
	}

	weights := overrides.apply(DefaultWeights())

	overall := breakdown.SkillsMatch*weights.Skills +
		breakdown.InterestsMatch*weights.Interests +
		breakdown.GoalsAlignment*weights.Goals +
		breakdown.ExperienceCompatibility*weights.Experience +
		breakdown.AvailabilityMatch*weights.Availability +
		breakdown.PersonalityFit*weights.Personality +
		breakdown.CommunicationStyle*weights.Communication +
		breakdown.LocationCompatibility*weights.Location +
		breakdown.BudgetCompatibility*weights.Budget +
		breakdown.LanguageMatch*weights.Language

	confidence := math.Min(maxConfidence, overall*dataCompleteness(mentor, mentee))

	return &MatchScore{
		MentorID:     mentor.ID,
		MenteeID:     mentee.ID,
		OverallScore: overall,
		Breakdown:    breakdown,
		Confidence:   confidence,
		Reasoning:    generateReasoning(breakdown),
	}, nil
}

// dataCompleteness measures how much of each profile is filled in, as the
// mean of six presence checks per side. Sparse profiles lower confidence
// without affecting the score itself.
func dataCompleteness(mentor, mentee *UserPreferences) float64 {
	mentorChecks := []bool{
		len(mentor.Skills) > 0,
		len(mentor.Interests) > 0,
		mentor.ExperienceLevel != "",
		len(mentor.Availability.Days) > 0,
		len(mentor.PersonalityTraits) > 0,
		len(mentor.Languages) > 0,
	}
	menteeChecks := []bool{
		len(mentee.Skills) > 0,
		len(mentee.Interests) > 0,
		len(mentee.Goals) > 0,
		len(mentee.Availability.Days) > 0,
		len(mentee.PersonalityTraits) > 0,
		len(mentee.Languages) > 0,
	}
	return (presentFraction(mentorChecks) + presentFraction(menteeChecks)) / 2
}

func presentFraction(checks []bool) float64 {
	present := 0
	for _, ok := range checks {
		if ok {
			present++
		}
	}
	return float64(present) / float64(len(checks))
}
