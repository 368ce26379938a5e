package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripforge/backend/internal/domain"
)

// createExpenseRequest is the body for POST /expenses.
type createExpenseRequest struct {
	ItineraryID *uuid.UUID          `json:"itinerary_id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Amount      float64             `json:"amount"`
	Currency    string              `json:"currency,omitempty"`
	Category    string              `json:"category,omitempty"`
	Date        *openapi_types.Date `json:"date,omitempty"`
}

// expenseResponse mirrors domain.Expense with a date-only date field.
type expenseResponse struct {
	ID          uuid.UUID          `json:"id"`
	ItineraryID *uuid.UUID         `json:"itinerary_id,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	Category    string             `json:"category"`
	Date        openapi_types.Date `json:"date"`
	CreatedAt   string             `json:"created_at"`
}

// listExpensesResponse is the body for GET /expenses.
type listExpensesResponse struct {
	Data []expenseResponse `json:"data"`
}

// CreateExpense handles POST /expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var body createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	e := domain.Expense{
		ItineraryID: body.ItineraryID,
		Title:       body.Title,
		Description: body.Description,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Category:    body.Category,
	}
	if body.Date != nil {
		e.Date = body.Date.Time
	}

	created, err := s.expenses.Create(r.Context(), e)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListExpenses handles GET /expenses.
// An optional ?itinerary_id= query parameter filters to one itinerary.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	var itineraryID *uuid.UUID
	if v := r.URL.Query().Get("itinerary_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeBadRequest(w, "invalid itinerary_id")
			return
		}
		itineraryID = &id
	}

	items, err := s.expenses.List(r.Context(), itineraryID)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]expenseResponse, len(items))
	for i, e := range items {
		data[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, listExpensesResponse{Data: data})
}

// DeleteExpense handles DELETE /expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.expenses.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetItineraryBudget handles GET /itineraries/{id}/budget. It returns the
// itinerary's spend summary: total spent, per-category totals, and what
// remains of the budget if one is set.
func (s *Server) GetItineraryBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	summary, err := s.expenses.Summary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func expenseToResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		ItineraryID: e.ItineraryID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    e.Category,
		Date:        openapi_types.Date{Time: e.Date},
		CreatedAt:   e.CreatedAt.Format(timeFormat),
	}
}
