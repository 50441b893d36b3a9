package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
)

// ProfileRepository provides access to stored mentor and mentee profiles.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `
	id, role, skills, interests, goals, industry, languages,
	experience_level, preferred_mentor_experience, timezone, location,
	availability_days, availability_hours, communication_style,
	personality_traits, budget_min, budget_max, budget_currency, hourly_rate,
	session_frequency, session_duration, mentorship_type, learning_style,
	remote_preference, company_size_preference`

// GetProfile fetches one profile by ID. Returns db.ErrNotFound when absent.
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*matching.UserPreferences, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// CreateProfile inserts a profile, replacing any existing row with the same ID.
func (r *ProfileRepository) CreateProfile(ctx context.Context, p *matching.UserPreferences) error {
	var budgetMin, budgetMax *float64
	var budgetCurrency *string
	if p.BudgetRange != nil {
		budgetMin = &p.BudgetRange.Min
		budgetMax = &p.BudgetRange.Max
		budgetCurrency = &p.BudgetRange.Currency
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (
			id, role, skills, interests, goals, industry, languages,
			experience_level, preferred_mentor_experience, timezone, location,
			availability_days, availability_hours, communication_style,
			personality_traits, budget_min, budget_max, budget_currency, hourly_rate,
			session_frequency, session_duration, mentorship_type, learning_style,
			remote_preference, company_size_preference
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		ON CONFLICT (id) DO UPDATE SET
			role = EXCLUDED.role,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			goals = EXCLUDED.goals,
			industry = EXCLUDED.industry,
			languages = EXCLUDED.languages,
			experience_level = EXCLUDED.experience_level,
			preferred_mentor_experience = EXCLUDED.preferred_mentor_experience,
			timezone = EXCLUDED.timezone,
			location = EXCLUDED.location,
			availability_days = EXCLUDED.availability_days,
			availability_hours = EXCLUDED.availability_hours,
			communication_style = EXCLUDED.communication_style,
			personality_traits = EXCLUDED.personality_traits,
			budget_min = EXCLUDED.budget_min,
			budget_max = EXCLUDED.budget_max,
			budget_currency = EXCLUDED.budget_currency,
			hourly_rate = EXCLUDED.hourly_rate,
			session_frequency = EXCLUDED.session_frequency,
			session_duration = EXCLUDED.session_duration,
			mentorship_type = EXCLUDED.mentorship_type,
			learning_style = EXCLUDED.learning_style,
			remote_preference = EXCLUDED.remote_preference,
			company_size_preference = EXCLUDED.company_size_preference,
			updated_at = now()`,
		p.ID, string(p.Role), p.Skills, p.Interests, p.Goals, p.Industry, p.Languages,
		string(p.ExperienceLevel), nullableLevel(p.PreferredMentorExperience),
		p.Timezone, p.Location,
		p.Availability.Days, p.Availability.Hours, string(p.CommunicationStyle),
		p.PersonalityTraits, budgetMin, budgetMax, budgetCurrency, p.HourlyRate,
		p.SessionFrequency, p.SessionDuration, p.MentorshipType, p.LearningStyle,
		p.RemotePreference, p.CompanySizePreference,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ListByRole returns up to limit profiles with the given role.
func (r *ProfileRepository) ListByRole(ctx context.Context, role matching.Role, limit int) ([]*matching.UserPreferences, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE role = $1 ORDER BY id LIMIT $2`,
		string(role), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*matching.UserPreferences
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return profiles, nil
}

// DeleteProfile removes a profile. Returns db.ErrNotFound when no row matched.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*matching.UserPreferences, error) {
	var (
		p              matching.UserPreferences
		role           string
		level          string
		preferredLevel *string
		style          string
		budgetMin      *float64
		budgetMax      *float64
		budgetCurrency *string
	)

	err := row.Scan(
		&p.ID, &role, &p.Skills, &p.Interests, &p.Goals, &p.Industry, &p.Languages,
		&level, &preferredLevel, &p.Timezone, &p.Location,
		&p.Availability.Days, &p.Availability.Hours, &style,
		&p.PersonalityTraits, &budgetMin, &budgetMax, &budgetCurrency, &p.HourlyRate,
		&p.SessionFrequency, &p.SessionDuration, &p.MentorshipType, &p.LearningStyle,
		&p.RemotePreference, &p.CompanySizePreference,
	)
	if err != nil {
		return nil, err
	}

	p.Role = matching.Role(role)
	p.ExperienceLevel = matching.ExperienceLevel(level)
	if preferredLevel != nil {
		p.PreferredMentorExperience = matching.ExperienceLevel(*preferredLevel)
	}
	p.CommunicationStyle = matching.CommunicationStyle(style)
	if budgetMin != nil && budgetMax != nil {
		p.BudgetRange = &matching.BudgetRange{Min: *budgetMin, Max: *budgetMax}
		if budgetCurrency != nil {
			p.BudgetRange.Currency = *budgetCurrency
		}
	}
	if p.Availability.Days == nil {
		p.Availability.Days = []string{}
	}
	if p.Availability.Hours == nil {
		p.Availability.Hours = []string{}
	}
	return &p, nil
}

func nullableLevel(level matching.ExperienceLevel) *string {
	if level == "" {
		return nil
	}
	s := string(level)
	return &s
}
