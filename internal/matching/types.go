// Package matching implements the mentor/mentee compatibility engine: a
// deterministic, rule-based scorer that combines per-dimension similarity
// metrics into a weighted overall score with generated reasoning.
package matching

import (
	"fmt"
	"time"
)

// Role identifies which side of a mentorship pairing a profile is on.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleMentor || r == RoleMentee
}

// ExperienceLevel is an ordered career-stage category.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// experienceRanks maps each level to its ordinal rank.
var experienceRanks = map[ExperienceLevel]int{
	ExperienceEntry:     1,
	ExperienceMid:       2,
	ExperienceSenior:    3,
	ExperienceExecutive: 4,
}

// Rank returns the ordinal rank of the level (1-4), or 0 if unknown.
func (l ExperienceLevel) Rank() int {
	return experienceRanks[l]
}

// CommunicationStyle describes how a participant prefers to communicate.
type CommunicationStyle string

const (
	CommunicationFormal CommunicationStyle = "formal"
	CommunicationCasual CommunicationStyle = "casual"
	CommunicationMixed  CommunicationStyle = "mixed"
)

// Availability holds the weekly windows a participant can meet in. Both
// sub-fields are a required part of the profile shape.
type Availability struct {
	Days  []string `json:"days"`
	Hours []string `json:"hours"`
}

// BudgetRange is a mentee's acceptable hourly-rate band.
type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// UserPreferences describes one mentor or mentee candidate. The engine treats
// a profile as immutable input: it is read to produce a score, never mutated.
type UserPreferences struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`

	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Goals     []string `json:"goals"`
	Industry  []string `json:"industry"`
	Languages []string `json:"languages"`

	ExperienceLevel ExperienceLevel `json:"experience_level"`
	// PreferredMentorExperience is the mentee's desired mentor level.
	// Empty means no preference.
	PreferredMentorExperience ExperienceLevel `json:"preferred_mentor_experience,omitempty"`

	Timezone string `json:"timezone"`
	Location string `json:"location,omitempty"`

	Availability Availability `json:"availability"`

	CommunicationStyle CommunicationStyle `json:"communication_style"`
	PersonalityTraits  []string           `json:"personality_traits"`

	// BudgetRange is set on mentee profiles, HourlyRate on mentor profiles.
	BudgetRange *BudgetRange `json:"budget_range,omitempty"`
	HourlyRate  *float64     `json:"hourly_rate,omitempty"`

	// Descriptive fields carried through but not scored.
	SessionFrequency      string `json:"session_frequency,omitempty"`
	SessionDuration       string `json:"session_duration,omitempty"`
	MentorshipType        string `json:"mentorship_type,omitempty"`
	LearningStyle         string `json:"learning_style,omitempty"`
	RemotePreference      string `json:"remote_preference,omitempty"`
	CompanySizePreference string `json:"company_size_preference,omitempty"`
}

// MatchBreakdown holds the ten normalized [0,1] dimension scores.
type MatchBreakdown struct {
	SkillsMatch             float64 `json:"skills_match"`
	InterestsMatch          float64 `json:"interests_match"`
	GoalsAlignment          float64 `json:"goals_alignment"`
	ExperienceCompatibility float64 `json:"experience_compatibility"`
	AvailabilityMatch       float64 `json:"availability_match"`
	PersonalityFit          float64 `json:"personality_fit"`
	CommunicationStyle      float64 `json:"communication_style"`
	LocationCompatibility   float64 `json:"location_compatibility"`
	BudgetCompatibility     float64 `json:"budget_compatibility"`
	LanguageMatch           float64 `json:"language_match"`
}

// MatchScore is the scorer's output for one (mentor, mentee) pair. It is a
// transient value object: recomputed on demand, never persisted by the engine.
type MatchScore struct {
	MentorID     string         `json:"mentor_id"`
	MenteeID     string         `json:"mentee_id"`
	OverallScore float64        `json:"overall_score"`
	Breakdown    MatchBreakdown `json:"breakdown"`
	Confidence   float64        `json:"confidence"`
	Reasoning    []string       `json:"reasoning"`
}

// Interaction records one user acting on a target profile (viewed, contacted,
// booked, ...). Only TargetID participates in similarity computation.
type Interaction struct {
	TargetID  string    `json:"target_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidationError reports a structurally invalid profile. Missing optional
// fields degrade gracefully and never produce one; a ValidationError means the
// input violated the shape contract itself.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Message)
}

// ValidateProfile checks the required shape of a profile.
func ValidateProfile(p *UserPreferences) error {
	if p == nil {
		return ValidationError{Field: "profile", Message: "profile is required"}
	}
	if p.ID == "" {
		return ValidationError{Field: "id", Message: "id is required"}
	}
	if !p.Role.IsValid() {
		return ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", p.Role)}
	}
	if p.Availability.Days == nil {
		return ValidationError{Field: "availability.days", Message: "days set is required"}
	}
	if p.Availability.Hours == nil {
		return ValidationError{Field: "availability.hours", Message: "hours set is required"}
	}
	return nil
}
