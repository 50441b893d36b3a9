package matching

import (
	"math"
	"sort"
)

const (
	// DefaultLimit is used when a caller passes a non-positive limit.
	DefaultLimit = 10

	// InstantMatchLimit caps the cheap first-impression suggestion list.
	InstantMatchLimit = 5

	// collaborativeBoost is the flat score bonus for candidates favored by
	// users with similar interaction history.
	collaborativeBoost = 0.1

	// similarUserThreshold is the minimum interaction-set Jaccard for two
	// users to count as similar.
	similarUserThreshold = 0.3

	// maxSimilarUsers caps the similar-user set per lookup.
	maxSimilarUsers = 10
)

// collaborativeReason is appended to a match boosted by interaction history.
const collaborativeReason = "Recommended by users with similar preferences"

// FindBestMatches ranks a mentor pool for a mentee. Candidates that are not
// mentors, or whose profiles are structurally invalid, are skipped rather
// than failing the whole ranking. Results are sorted descending by overall
// score; equal scores keep pool order (stable sort).
func (e *Engine) FindBestMatches(mentee *UserPreferences, mentors []*UserPreferences, limit int) ([]*MatchScore, error) {
	if err := ValidateProfile(mentee); err != nil {
		return nil, err
	}

	scores := e.scorePool(mentee, mentors, RoleMentor)
	sortByScore(scores)
	return truncate(scores, normalizeLimit(limit)), nil
}

// FindBestMentees ranks a mentee pool for a mentor, mirroring FindBestMatches.
func (e *Engine) FindBestMentees(mentor *UserPreferences, mentees []*UserPreferences, limit int) ([]*MatchScore, error) {
	if err := ValidateProfile(mentor); err != nil {
		return nil, err
	}

	scores := e.scorePool(mentor, mentees, RoleMentee)
	sortByScore(scores)
	return truncate(scores, normalizeLimit(limit)), nil
}

// FindEnhancedMatches layers a collaborative-filtering boost on top of the
// content-based ranking: candidates whose interaction history resembles the
// user's get a flat bonus, clamped so the overall score never exceeds 1.0.
func (e *Engine) FindEnhancedMatches(user *UserPreferences, candidates []*UserPreferences, limit int) ([]*MatchScore, error) {
	if err := ValidateProfile(user); err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit)

	// Rank a wider slate first so boosted candidates outside the top N can
	// still surface.
	wantRole := RoleMentor
	if user.Role == RoleMentor {
		wantRole = RoleMentee
	}
	scores := e.scorePool(user, candidates, wantRole)
	sortByScore(scores)
	scores = truncate(scores, 2*limit)

	similar := e.similarUsers(user.ID)
	for _, score := range scores {
		candidateID := score.MentorID
		if user.Role == RoleMentor {
			candidateID = score.MenteeID
		}
		if similar[candidateID] {
			score.OverallScore = math.Min(1.0, score.OverallScore+collaborativeBoost)
			score.Reasoning = append(score.Reasoning, collaborativeReason)
		}
	}

	sortByScore(scores)
	return truncate(scores, limit), nil
}

// GetInstantMatches is a cheap approximation for low-latency suggestions
// before a profile is complete: skills and interests Jaccard only, all other
// breakdown dimensions left at zero, confidence discounted accordingly.
func (e *Engine) GetInstantMatches(preferences *UserPreferences, candidatePool []*UserPreferences) ([]*MatchScore, error) {
	if err := ValidateProfile(preferences); err != nil {
		return nil, err
	}

	var scores []*MatchScore
	for _, candidate := range candidatePool {
		if candidate == nil || candidate.Role == preferences.Role || !candidate.Role.IsValid() {
			continue
		}

		skillOverlap := JaccardSimilarity(preferences.Skills, candidate.Skills)
		interestOverlap := JaccardSimilarity(preferences.Interests, candidate.Interests)
		quick := skillOverlap*0.6 + interestOverlap*0.4

		mentorID, menteeID := pairIDs(preferences, candidate)
		scores = append(scores, &MatchScore{
			MentorID:     mentorID,
			MenteeID:     menteeID,
			OverallScore: quick,
			Breakdown: MatchBreakdown{
				SkillsMatch:    skillOverlap,
				InterestsMatch: interestOverlap,
			},
			Confidence: quick * 0.7,
		})
	}

	sortByScore(scores)
	return truncate(scores, InstantMatchLimit), nil
}

// scorePool runs the full scorer over every pool member with the wanted role.
// Invalid candidates are dropped: a bad record in a large pool should degrade
// the ranking, not abort it.
func (e *Engine) scorePool(user *UserPreferences, pool []*UserPreferences, wantRole Role) []*MatchScore {
	var scores []*MatchScore
	for _, candidate := range pool {
		if candidate == nil || candidate.Role != wantRole {
			continue
		}

		mentor, mentee := user, candidate
		if wantRole == RoleMentor {
			mentor, mentee = candidate, user
		}

		score, err := e.CalculateMatch(mentor, mentee, nil)
		if err != nil {
			continue
		}
		scores = append(scores, score)
	}
	return scores
}

func pairIDs(a, b *UserPreferences) (mentorID, menteeID string) {
	if a.Role == RoleMentor {
		return a.ID, b.ID
	}
	return b.ID, a.ID
}

func sortByScore(scores []*MatchScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].OverallScore > scores[j].OverallScore
	})
}

func truncate(scores []*MatchScore, limit int) []*MatchScore {
	if limit < len(scores) {
		return scores[:limit]
	}
	return scores
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
