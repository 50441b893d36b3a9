package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/odumodamilola/careernest-sub000/internal/api"
	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
)

type profileStore interface {
	GetProfile(ctx context.Context, id string) (*matching.UserPreferences, error)
	CreateProfile(ctx context.Context, p *matching.UserPreferences) error
	ListByRole(ctx context.Context, role matching.Role, limit int) ([]*matching.UserPreferences, error)
	DeleteProfile(ctx context.Context, id string) error
}

// ProfileHandler handles profile CRUD requests
type ProfileHandler struct {
	profiles  profileStore
	validator *validator.Validate
	listLimit int
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles profileStore, listLimit int) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		validator: validator.New(),
		listLimit: listLimit,
	}
}

// ListProfilesQuery holds query parameters for listing profiles.
type ListProfilesQuery struct {
	Role  string `form:"role" validate:"required,oneof=mentor mentee"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=500"`
}

// CreateProfile stores a mentor or mentee profile; an existing profile with
// the same ID is replaced.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req matching.UserPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := matching.ValidateProfile(&req); err != nil {
		api.SendValidationError(c, "Invalid profile", err.Error())
		return
	}

	if err := h.profiles.CreateProfile(c.Request.Context(), &req); err != nil {
		api.SendInternalError(c, "Failed to store profile")
		return
	}

	api.SendSuccess(c, http.StatusCreated, req, nil)
}

// GetProfile fetches one profile by ID.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Profile")
			return
		}
		api.SendInternalError(c, "Failed to retrieve profile")
		return
	}

	api.SendSuccess(c, http.StatusOK, profile, nil)
}

// ListProfiles lists profiles for one role.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var query ListProfilesQuery
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
		limit = h.listLimit
	}

	profiles, err := h.profiles.ListByRole(c.Request.Context(), matching.Role(query.Role), limit)
	if err != nil {
		api.SendInternalError(c, "Failed to list profiles")
		return
	}

	api.SendSuccess(c, http.StatusOK, profiles, &api.Meta{Count: len(profiles), Limit: limit})
}

// DeleteProfile removes a profile.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")

	if err := h.profiles.DeleteProfile(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Profile")
			return
		}
		api.SendInternalError(c, "Failed to delete profile")
		return
	}

	api.SendSuccess(c, http.StatusOK, gin.H{"id": id}, nil)
}
