// Package handlers contains the HTTP handlers for the match API.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/odumodamilola/careernest-sub000/internal/api"
	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
	"github.com/odumodamilola/careernest-sub000/internal/service"
)

// MatchHandler handles match-related HTTP requests
type MatchHandler struct {
	matchService *service.MatchService
	validator    *validator.Validate
	defaultLimit int
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *service.MatchService, defaultLimit int) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		validator:    validator.New(),
		defaultLimit: defaultLimit,
	}
}

// CalculateMatchRequest asks for a score between one stored mentor and mentee.
type CalculateMatchRequest struct {
	MentorID string                    `json:"mentor_id" validate:"required"`
	MenteeID string                    `json:"mentee_id" validate:"required"`
	Weights  *matching.WeightOverrides `json:"weights,omitempty"`
}

// MatchListQuery holds query parameters for ranking endpoints.
type MatchListQuery struct {
	Limit    int  `form:"limit" validate:"omitempty,min=1,max=100"`
	Enhanced bool `form:"enhanced"`
}

// InteractionRequest is one recorded interaction in an update.
type InteractionRequest struct {
	TargetID  string    `json:"target_id" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=viewed contacted booked reviewed"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// UpdateInteractionsRequest replaces a user's interaction history.
type UpdateInteractionsRequest struct {
	Interactions []InteractionRequest `json:"interactions" validate:"required,dive"`
}

// CalculateMatch scores a stored mentor/mentee pair, with optional weight
// overrides. Overrides are applied as given, without re-normalization.
func (h *MatchHandler) CalculateMatch(c *gin.Context) {
	var req CalculateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	score, err := h.matchService.CalculateMatch(c.Request.Context(), req.MentorID, req.MenteeID, req.Weights)
	if err != nil {
		h.sendMatchError(c, err, "Failed to calculate match")
		return
	}

	api.SendSuccess(c, http.StatusOK, score, nil)
}

// MenteeMatches ranks stored mentors for a mentee.
func (h *MatchHandler) MenteeMatches(c *gin.Context) {
	menteeID := c.Param("id")

	var query MatchListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.SendValidationError(c, "Invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(query); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	scores, err := h.matchService.BestMatchesForMentee(c.Request.Context(), menteeID, limit, query.Enhanced)
	if err != nil {
		h.sendMatchError(c, err, "Failed to find matches")
		return
	}

	api.SendSuccess(c, http.StatusOK, scores, &api.Meta{Count: len(scores), Limit: limit})
}

// MentorMentees ranks stored mentees for a mentor.
func (h *MatchHandler) MentorMentees(c *gin.Context) {
	mentorID := c.Param("id")

	var query MatchListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.SendValidationError(c, "Invalid query parameters", err.Error())
		return
	}
	if err := h.validator.Struct(query); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	scores, err := h.matchService.BestMenteesForMentor(c.Request.Context(), mentorID, limit)
	if err != nil {
		h.sendMatchError(c, err, "Failed to find mentees")
		return
	}

	api.SendSuccess(c, http.StatusOK, scores, &api.Meta{Count: len(scores), Limit: limit})
}

// InstantMatches computes quick suggestions from an inline profile, before
// the profile is necessarily stored.
func (h *MatchHandler) InstantMatches(c *gin.Context) {
	var req matching.UserPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	scores, err := h.matchService.InstantMatches(c.Request.Context(), &req)
	if err != nil {
		h.sendMatchError(c, err, "Failed to compute instant matches")
		return
	}

	api.SendSuccess(c, http.StatusOK, scores, &api.Meta{Count: len(scores)})
}

// UpdateInteractions replaces the interaction history for a user.
func (h *MatchHandler) UpdateInteractions(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateInteractionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	interactions := make([]matching.Interaction, len(req.Interactions))
	for i, in := range req.Interactions {
		interactions[i] = matching.Interaction{
			TargetID:  in.TargetID,
			Type:      in.Type,
			Timestamp: in.Timestamp,
		}
	}

	if err := h.matchService.RecordInteractions(c.Request.Context(), userID, interactions); err != nil {
		h.sendMatchError(c, err, "Failed to record interactions")
		return
	}

	api.SendSuccess(c, http.StatusOK, gin.H{"user_id": userID, "count": len(interactions)}, nil)
}

func (h *MatchHandler) sendMatchError(c *gin.Context, err error, fallback string) {
	var validationErr matching.ValidationError
	switch {
	case errors.Is(err, db.ErrNotFound):
		api.SendNotFound(c, "Profile")
	case errors.Is(err, service.ErrRoleMismatch):
		api.SendBadRequest(c, err.Error())
	case errors.As(err, &validationErr):
		api.SendValidationError(c, "Invalid profile", validationErr.Error())
	default:
		api.SendInternalError(c, fallback)
	}
}
