// Package service wires the match engine to profile and interaction storage.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/logger"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
)

// ErrRoleMismatch is returned when a profile's role does not fit the
// requested operation, e.g. asking for mentor matches on a mentor profile.
var ErrRoleMismatch = errors.New("profile role does not fit this operation")

type profileReader interface {
	GetProfile(ctx context.Context, id string) (*matching.UserPreferences, error)
	ListByRole(ctx context.Context, role matching.Role, limit int) ([]*matching.UserPreferences, error)
}

type interactionStore interface {
	ReplaceInteractions(ctx context.Context, userID string, interactions []matching.Interaction) error
	ListAll(ctx context.Context) (map[string][]matching.Interaction, error)
}

// MatchService exposes matching operations over stored profiles.
type MatchService struct {
	engine    *matching.Engine
	profiles  profileReader
	history   interactionStore
	poolLimit int
}

// NewMatchService creates a match service. poolLimit caps how many candidate
// profiles are loaded from storage per ranking request.
func NewMatchService(engine *matching.Engine, profiles profileReader, history interactionStore, poolLimit int) *MatchService {
	return &MatchService{
		engine:    engine,
		profiles:  profiles,
		history:   history,
		poolLimit: poolLimit,
	}
}

// Hydrate replays persisted interaction history into the engine. Called once
// at startup so collaborative boosts survive restarts.
func (s *MatchService) Hydrate(ctx context.Context) error {
	all, err := s.history.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load interaction history: %w", err)
	}
	for userID, interactions := range all {
		s.engine.UpdateUserInteractions(userID, interactions)
	}
	logger.Info().Int("users", len(all)).Msg("interaction history hydrated")
	return nil
}

// CalculateMatch scores one stored mentor against one stored mentee.
func (s *MatchService) CalculateMatch(ctx context.Context, mentorID, menteeID string, overrides *matching.WeightOverrides) (*matching.MatchScore, error) {
	mentor, err := s.profiles.GetProfile(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, err)
	}
	if mentor.Role != matching.RoleMentor {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, ErrRoleMismatch)
	}

	mentee, err := s.profiles.GetProfile(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("mentee %s: %w", menteeID, err)
	}
	if mentee.Role != matching.RoleMentee {
		return nil, fmt.Errorf("mentee %s: %w", menteeID, ErrRoleMismatch)
	}

	return s.engine.CalculateMatch(mentor, mentee, overrides)
}

// BestMatchesForMentee ranks stored mentors for the given mentee. When
// enhanced is set, interaction-history boosts are applied.
func (s *MatchService) BestMatchesForMentee(ctx context.Context, menteeID string, limit int, enhanced bool) ([]*matching.MatchScore, error) {
	mentee, err := s.profiles.GetProfile(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("mentee %s: %w", menteeID, err)
	}
	if mentee.Role != matching.RoleMentee {
		return nil, fmt.Errorf("mentee %s: %w", menteeID, ErrRoleMismatch)
	}

	mentors, err := s.profiles.ListByRole(ctx, matching.RoleMentor, s.poolLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor pool: %w", err)
	}

	if enhanced {
		return s.engine.FindEnhancedMatches(mentee, mentors, limit)
	}
	return s.engine.FindBestMatches(mentee, mentors, limit)
}

// BestMenteesForMentor ranks stored mentees for the given mentor.
func (s *MatchService) BestMenteesForMentor(ctx context.Context, mentorID string, limit int) ([]*matching.MatchScore, error) {
	mentor, err := s.profiles.GetProfile(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, err)
	}
	if mentor.Role != matching.RoleMentor {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, ErrRoleMismatch)
	}

	mentees, err := s.profiles.ListByRole(ctx, matching.RoleMentee, s.poolLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentee pool: %w", err)
	}

	return s.engine.FindBestMentees(mentor, mentees, limit)
}

// InstantMatches computes quick first-impression suggestions for an inline
// profile that may not be stored yet.
func (s *MatchService) InstantMatches(ctx context.Context, preferences *matching.UserPreferences) ([]*matching.MatchScore, error) {
	wantRole := matching.RoleMentor
	if preferences != nil && preferences.Role == matching.RoleMentor {
		wantRole = matching.RoleMentee
	}

	pool, err := s.profiles.ListByRole(ctx, wantRole, s.poolLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	return s.engine.GetInstantMatches(preferences, pool)
}

// RecordInteractions replaces a user's interaction history in both the
// persistent store and the in-memory engine state.
func (s *MatchService) RecordInteractions(ctx context.Context, userID string, interactions []matching.Interaction) error {
	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, err)
		}
		return fmt.Errorf("failed to check user %s: %w", userID, err)
	}

	if err := s.history.ReplaceInteractions(ctx, userID, interactions); err != nil {
		return err
	}
	s.engine.UpdateUserInteractions(userID, interactions)
	return nil
}
