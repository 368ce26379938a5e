package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripforge/backend/internal/domain"
)

// generateItineraryRequest is the body for POST /itineraries/generate.
// Dates are date-only ("2006-01-02").
type generateItineraryRequest struct {
	Destination   string             `json:"destination"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	Interests     []string           `json:"interests,omitempty"`
	Difficulty    string             `json:"difficulty,omitempty"`
	Budget        string             `json:"budget,omitempty"`
	BudgetRange   string             `json:"budget_range,omitempty"`
	GroupSize     string             `json:"group_size,omitempty"`
	TravelingWith []string           `json:"traveling_with,omitempty"`
	Title         string             `json:"title,omitempty"`
	Description   string             `json:"description,omitempty"`
}

// updateBudgetRequest is the body for PUT /itineraries/{id}/budget.
// A null budget clears it.
type updateBudgetRequest struct {
	Budget   *float64 `json:"budget"`
	Currency string   `json:"currency,omitempty"`
}

// itineraryResponse mirrors domain.Itinerary with date-only JSON fields.
type itineraryResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Destination    string              `json:"destination"`
	Description    string              `json:"description,omitempty"`
	StartDate      openapi_types.Date  `json:"start_date"`
	EndDate        openapi_types.Date  `json:"end_date"`
	Budget         *float64            `json:"budget,omitempty"`
	BudgetCurrency string              `json:"budget_currency"`
	IsPublic       bool                `json:"is_public"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
	Activities     []activityResponse  `json:"activities,omitempty"`
}

// activityResponse mirrors domain.Activity. Date is null for unscheduled
// activities.
type activityResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Date        *openapi_types.Date `json:"date,omitempty"`
	Category    string              `json:"category"`
	Order       int                 `json:"order"`
}

// paginationResponse echoes the applied paging values plus the total count.
type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// listItinerariesResponse is the body for GET /itineraries.
type listItinerariesResponse struct {
	Data       []itineraryResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}

// GenerateItinerary handles POST /itineraries/generate.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var body generateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := domain.GenerateRequest{
		Destination:   body.Destination,
		StartDate:     body.StartDate.Time,
		EndDate:       body.EndDate.Time,
		Interests:     body.Interests,
		Difficulty:    body.Difficulty,
		Budget:        body.Budget,
		BudgetRange:   body.BudgetRange,
		GroupSize:     body.GroupSize,
		TravelingWith: body.TravelingWith,
		Title:         body.Title,
		Description:   body.Description,
	}

	created, err := s.itineraries.Generate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itineraryToResponse(created))
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	items, total, err := s.itineraries.List(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]itineraryResponse, len(items))
	for i, it := range items {
		data[i] = itineraryToResponse(it)
	}
	writeJSON(w, http.StatusOK, listItinerariesResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := s.itineraries.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.itineraries.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateItineraryBudget handles PUT /itineraries/{id}/budget.
func (s *Server) UpdateItineraryBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	it, err := s.itineraries.UpdateBudget(r.Context(), id, body.Budget, body.Currency)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// --- mapping helpers --------------------------------------------------------

// itineraryToResponse converts a domain.Itinerary into its JSON shape.
func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	resp := itineraryResponse{
		ID:             it.ID,
		Title:          it.Title,
		Destination:    it.Destination,
		Description:    it.Description,
		StartDate:      openapi_types.Date{Time: it.StartDate},
		EndDate:        openapi_types.Date{Time: it.EndDate},
		Budget:         it.Budget,
		BudgetCurrency: it.BudgetCurrency,
		IsPublic:       it.IsPublic,
		CreatedAt:      it.CreatedAt.Format(timeFormat),
		UpdatedAt:      it.UpdatedAt.Format(timeFormat),
	}
	if it.Activities != nil {
		resp.Activities = make([]activityResponse, len(it.Activities))
		for i, a := range it.Activities {
			resp.Activities[i] = activityToResponse(a)
		}
	}
	return resp
}

// activityToResponse converts a domain.Activity into its JSON shape.
func activityToResponse(a domain.Activity) activityResponse {
	resp := activityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Category:    string(a.Category),
		Order:       a.Order,
	}
	if a.Date != nil {
		d := openapi_types.Date{Time: *a.Date}
		resp.Date = &d
	}
	return resp
}

// timeFormat is RFC 3339 with second precision, the shape clients expect for
// created_at / updated_at.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// pathID parses the {id} path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
