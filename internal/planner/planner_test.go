package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/backend/internal/domain"
)

func genRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		Destination: "Kyoto",
		StartDate:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
	}
}

// ---- New -------------------------------------------------------------------

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", c.model)
}

func TestNew_WithModel(t *testing.T) {
	c, err := New("test-key", WithModel("gpt-4"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", c.model)
}

// ---- buildPrompt -----------------------------------------------------------

func TestBuildPrompt_MinimalRequest(t *testing.T) {
	got := buildPrompt(genRequest())

	assert.Contains(t, got, "Plan a 5-day trip to Kyoto.")
	assert.NotContains(t, got, "Traveling as")
	assert.NotContains(t, got, "Budget")
}

func TestBuildPrompt_AllFields(t *testing.T) {
	req := genRequest()
	req.GroupSize = "couple"
	req.TravelingWith = []string{"partner"}
	req.Interests = []string{"temples", "food markets"}
	req.Difficulty = "easy"
	req.BudgetRange = "comfortable"
	req.Description = "we prefer quiet neighborhoods"

	got := buildPrompt(req)

	assert.Contains(t, got, "Traveling as: couple.")
	assert.Contains(t, got, "Traveling with: partner.")
	assert.Contains(t, got, "Interests and activities: temples, food markets.")
	assert.Contains(t, got, "Activity level: easy and relaxed.")
	assert.Contains(t, got, "Budget range: comfortable ($1,500 - $3,000 per person).")
	assert.Contains(t, got, "Additional preferences: we prefer quiet neighborhoods")
}

func TestBuildPrompt_ExactBudgetWinsOverRange(t *testing.T) {
	req := genRequest()
	req.Budget = "2500"
	req.BudgetRange = "luxury"

	got := buildPrompt(req)

	assert.Contains(t, got, "Budget: $2500 total for the trip.")
	assert.NotContains(t, got, "Budget range")
}

func TestBuildPrompt_UnknownDifficultyPassedThrough(t *testing.T) {
	req := genRequest()
	req.Difficulty = "leisurely"

	got := buildPrompt(req)

	assert.Contains(t, got, "Activity level: leisurely.")
}

// ---- GeneratePlan ----------------------------------------------------------

// completionServer serves a minimal chat-completion response whose single
// choice carries the given content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestGeneratePlan_ReturnsCompletionText(t *testing.T) {
	srv := completionServer(t, "Day 1\n- Visit Kinkaku-ji")
	defer srv.Close()

	c, err := New("test-key", WithBaseURL("test-key", srv.URL+"/v1"))
	require.NoError(t, err)

	got, err := c.GeneratePlan(context.Background(), genRequest())

	require.NoError(t, err)
	assert.Equal(t, "Day 1\n- Visit Kinkaku-ji", got)
}

func TestGeneratePlan_EmptyCompletionIsUpstreamError(t *testing.T) {
	srv := completionServer(t, "   ")
	defer srv.Close()

	c, err := New("test-key", WithBaseURL("test-key", srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = c.GeneratePlan(context.Background(), genRequest())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGeneratePlan_ServerErrorIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL("test-key", srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = c.GeneratePlan(context.Background(), genRequest())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
