package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odumodamilola/careernest-sub000/internal/api"
	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
	"github.com/odumodamilola/careernest-sub000/internal/service"
)

type stubProfileRepo struct {
	profiles map[string]*matching.UserPreferences
}

func (s *stubProfileRepo) GetProfile(_ context.Context, id string) (*matching.UserPreferences, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (s *stubProfileRepo) CreateProfile(_ context.Context, p *matching.UserPreferences) error {
	s.profiles[p.ID] = p
	return nil
}

func (s *stubProfileRepo) ListByRole(_ context.Context, role matching.Role, limit int) ([]*matching.UserPreferences, error) {
	var out []*matching.UserPreferences
	for _, p := range s.profiles {
		if p.Role == role && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProfileRepo) DeleteProfile(_ context.Context, id string) error {
	if _, ok := s.profiles[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.profiles, id)
	return nil
}

type stubInteractionRepo struct {
	stored map[string][]matching.Interaction
}

func (s *stubInteractionRepo) ReplaceInteractions(_ context.Context, userID string, interactions []matching.Interaction) error {
	if s.stored == nil {
		s.stored = make(map[string][]matching.Interaction)
	}
	s.stored[userID] = interactions
	return nil
}

func (s *stubInteractionRepo) ListAll(_ context.Context) (map[string][]matching.Interaction, error) {
	return s.stored, nil
}

func testProfile(id string, role matching.Role) *matching.UserPreferences {
	p := &matching.UserPreferences{
		ID:                 id,
		Role:               role,
		Skills:             []string{"React", "TypeScript"},
		Interests:          []string{"Web"},
		ExperienceLevel:    matching.ExperienceSenior,
		Timezone:           "America/New_York",
		Availability:       matching.Availability{Days: []string{"Monday"}, Hours: []string{"18:00"}},
		CommunicationStyle: matching.CommunicationFormal,
		PersonalityTraits:  []string{"Patient"},
		Languages:          []string{"English"},
	}
	if role == matching.RoleMentee {
		p.ExperienceLevel = matching.ExperienceEntry
		p.Goals = []string{"Career Transition"}
	}
	return p
}

func newTestRouter() (*gin.Engine, *stubProfileRepo) {
	gin.SetMode(gin.TestMode)

	profiles := &stubProfileRepo{profiles: map[string]*matching.UserPreferences{
		"mentor-1": testProfile("mentor-1", matching.RoleMentor),
		"mentee-1": testProfile("mentee-1", matching.RoleMentee),
	}}
	svc := service.NewMatchService(matching.NewEngine(), profiles, &stubInteractionRepo{}, 100)

	matchHandler := NewMatchHandler(svc, 10)
	profileHandler := NewProfileHandler(profiles, 100)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/matches/calculate", matchHandler.CalculateMatch)
		v1.GET("/mentees/:id/matches", matchHandler.MenteeMatches)
		v1.GET("/mentors/:id/mentees", matchHandler.MentorMentees)
		v1.POST("/matches/instant", matchHandler.InstantMatches)
		v1.PUT("/users/:id/interactions", matchHandler.UpdateInteractions)
		v1.POST("/profiles", profileHandler.CreateProfile)
		v1.GET("/profiles/:id", profileHandler.GetProfile)
	}
	return router, profiles
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) api.APIResponse {
	t.Helper()
	var resp api.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCalculateMatchEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/matches/calculate", gin.H{
		"mentor_id": "mentor-1",
		"mentee_id": "mentee-1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mentor-1", data["mentor_id"])
	assert.Equal(t, "mentee-1", data["mentee_id"])
	assert.Greater(t, data["overall_score"].(float64), 0.0)
}

func TestCalculateMatchEndpointMissingProfile(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/matches/calculate", gin.H{
		"mentor_id": "nobody",
		"mentee_id": "mentee-1",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestCalculateMatchEndpointValidation(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/matches/calculate", gin.H{
		"mentor_id": "mentor-1",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, api.ErrCodeValidation, resp.Error.Code)
}

func TestMenteeMatchesEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentees/mentee-1/matches?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Count)
	assert.Equal(t, 5, resp.Meta.Limit)
}

func TestMenteeMatchesEndpointRoleMismatch(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentees/mentor-1/matches", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, api.ErrCodeBadRequest, resp.Error.Code)
}

func TestMentorMenteesEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentors/mentor-1/mentees", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Count)
}

func TestInstantMatchesEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/matches/instant", testProfile("new-mentee", matching.RoleMentee))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Count)
}

func TestUpdateInteractionsEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/v1/users/mentee-1/interactions", gin.H{
		"interactions": []gin.H{
			{"target_id": "mentor-1", "type": "viewed", "timestamp": "2026-08-01T10:00:00Z"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestUpdateInteractionsEndpointUnknownUser(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/v1/users/ghost/interactions", gin.H{
		"interactions": []gin.H{
			{"target_id": "mentor-1", "type": "viewed", "timestamp": "2026-08-01T10:00:00Z"},
		},
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAndGetProfileEndpoints(t *testing.T) {
	router, profiles := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/profiles", testProfile("mentor-2", matching.RoleMentor))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, profiles.profiles, "mentor-2")

	w = doJSON(t, router, http.MethodGet, "/api/v1/profiles/mentor-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/profiles/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProfileEndpointRejectsInvalid(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/profiles", gin.H{
		"id":   "broken",
		"role": "wizard",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, api.ErrCodeValidation, resp.Error.Code)
}
