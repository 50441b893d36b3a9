package matching

import "math"

// neutralScore is returned when a dimension has no data to judge either way.
const neutralScore = 0.5

// skillsMatch rewards mentors covering each of the mentee's stated skills:
// for every mentee skill with a known embedding it takes the best cosine
// similarity against the mentor's known skills, then averages those maxima.
// When no mentee skill has an embedding it falls back to raw-string Jaccard.
func skillsMatch(mentorSkills, menteeSkills []string) float64 {
	var total float64
	var counted int

	for _, menteeSkill := range menteeSkills {
		menteeVec, ok := skillVector(menteeSkill)
		if !ok {
			continue
		}

		best := 0.0
		for _, mentorSkill := range mentorSkills {
			mentorVec, ok := skillVector(mentorSkill)
			if !ok {
				continue
			}
			if sim := CosineSimilarity(menteeVec, mentorVec); sim > best {
				best = sim
			}
		}

		total += best
		counted++
	}

	if counted == 0 {
		return JaccardSimilarity(mentorSkills, menteeSkills)
	}
	return total / float64(counted)
}

// defaultIdealExperienceGap is used when the mentee states no mentor-level
// preference: a mentor one to two levels above sits in the sweet spot.
const defaultIdealExperienceGap = 1.5

// experienceMatch scores how well the mentor's career stage suits the mentee.
// A mentor at or below the mentee's level scores a hard floor of 0.1 rather
// than zero, so it dampens but never disqualifies a pairing on its own.
func experienceMatch(mentor, mentee *UserPreferences) float64 {
	diff := mentor.ExperienceLevel.Rank() - mentee.ExperienceLevel.Rank()

	switch {
	case diff <= 0:
		return 0.1
	case diff > 3:
		return 0.3
	case diff <= 2:
		return 1.0
	}

	idealDiff := defaultIdealExperienceGap
	if pref := mentee.PreferredMentorExperience.Rank(); pref > 0 {
		idealDiff = float64(pref - mentee.ExperienceLevel.Rank())
	}
	return math.Max(0.5, 1-math.Abs(float64(diff)-idealDiff)*0.3)
}

// availabilityMatch averages the day-set and hour-set overlaps.
func availabilityMatch(mentor, mentee *UserPreferences) float64 {
	dayOverlap := JaccardSimilarity(mentor.Availability.Days, mentee.Availability.Days)
	hourOverlap := JaccardSimilarity(mentor.Availability.Hours, mentee.Availability.Hours)
	return (dayOverlap + hourOverlap) / 2
}

// timezoneGroups clusters recognized zone strings and abbreviations into
// coarse geographic groups for same-region comparison.
var timezoneGroups = map[string][]string{
	"utc": {"UTC", "GMT", "Europe/London", "Etc/UTC"},
	"us-east": {
		"America/New_York", "America/Toronto", "America/Detroit",
		"US/Eastern", "EST", "EDT",
	},
	"us-west": {
		"America/Los_Angeles", "America/Vancouver", "America/Tijuana",
		"US/Pacific", "PST", "PDT",
	},
	"eu": {
		"Europe/Berlin", "Europe/Paris", "Europe/Madrid", "Europe/Rome",
		"Europe/Amsterdam", "Europe/Warsaw", "CET", "CEST",
	},
	"asia": {
		"Asia/Tokyo", "Asia/Shanghai", "Asia/Singapore", "Asia/Seoul",
		"Asia/Kolkata", "Asia/Dubai", "JST", "IST", "SGT",
	},
}

// timezoneGroup returns the geographic group a zone string belongs to.
func timezoneGroup(zone string) (string, bool) {
	for group, zones := range timezoneGroups {
		for _, z := range zones {
			if z == zone {
				return group, true
			}
		}
	}
	return "", false
}

// locationMatch gives full credit for an identical non-empty location or a
// shared timezone group, and partial credit otherwise: remote mentorship is
// always viable, so this never reaches zero.
func locationMatch(mentor, mentee *UserPreferences) float64 {
	if mentor.Location != "" && mentor.Location == mentee.Location {
		return 1.0
	}

	mentorGroup, mentorOK := timezoneGroup(mentor.Timezone)
	menteeGroup, menteeOK := timezoneGroup(mentee.Timezone)
	if mentorOK && menteeOK && mentorGroup == menteeGroup {
		return 1.0
	}
	return 0.3
}

// budgetMatch compares the mentor's hourly rate against the mentee's budget
// band. Missing information on either side is neutral rather than penalized.
func budgetMatch(mentor, mentee *UserPreferences) float64 {
	if mentor.HourlyRate == nil || mentee.BudgetRange == nil {
		return neutralScore
	}

	rate := *mentor.HourlyRate
	budget := mentee.BudgetRange
	if rate >= budget.Min && rate <= budget.Max {
		return 1.0
	}

	var distance float64
	if rate < budget.Min {
		distance = (budget.Min - rate) / budget.Min
	} else {
		distance = (rate - budget.Max) / budget.Max
	}
	return math.Max(0, 1-distance)
}

// traitScores places each known personality descriptor on a single scalar
// axis. Unmapped traits sit at 0.
var traitScores = map[string]float64{
	"extroverted":   1.0,
	"introverted":   -1.0,
	"analytical":    1.0,
	"creative":      0.5,
	"patient":       0.8,
	"encouraging":   0.9,
	"direct":        0.3,
	"challenging":   0.2,
	"structured":    0.7,
	"flexible":      0.4,
	"empathetic":    0.8,
	"pragmatic":     0.5,
	"detail-oriented": 0.9,
	"big-picture":   0.1,
}

// personalityMatch averages pairwise closeness over every (mentee trait,
// mentor trait) pair: full credit when the mapped scalars are within 0.5 of
// each other, half credit otherwise. Either side empty is neutral.
func personalityMatch(mentorTraits, menteeTraits []string) float64 {
	if len(mentorTraits) == 0 || len(menteeTraits) == 0 {
		return neutralScore
	}

	var total float64
	var pairs int
	for _, menteeTrait := range menteeTraits {
		menteeScore := traitScores[normalizeTerm(menteeTrait)]
		for _, mentorTrait := range mentorTraits {
			mentorScore := traitScores[normalizeTerm(mentorTrait)]
			if math.Abs(menteeScore-mentorScore) < 0.5 {
				total += 1.0
			} else {
				total += 0.5
			}
			pairs++
		}
	}
	return total / float64(pairs)
}

// communicationMatch is a binary equality check with partial credit for a
// mismatch, since mixed styles still work.
func communicationMatch(mentor, mentee *UserPreferences) float64 {
	if mentor.CommunicationStyle == mentee.CommunicationStyle {
		return 1.0
	}
	return 0.5
}
