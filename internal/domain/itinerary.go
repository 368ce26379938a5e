// Package domain contains the core data types for the trip planning backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (parser, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is the top-level aggregate: one generated travel plan for one
// destination. Activities belong to an itinerary and are ordered by date
// and position within the day.
type Itinerary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	// Description holds the free-text summary shown on the dashboard.
	// When the user supplies none, the first 500 characters of the generated
	// plan are used instead.
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`

	// Budget is the total planned spend for the trip; nil when the user has
	// not set one. BudgetCurrency defaults to "USD".
	Budget         *float64 `json:"budget,omitempty"`
	BudgetCurrency string   `json:"budget_currency,omitempty"`

	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Activities is populated on single-itinerary reads, nil on list reads.
	Activities []Activity `json:"activities,omitempty"`
}

// GenerateRequest carries the user's trip preferences to the planner.
// Destination, StartDate, and EndDate are required; everything else refines
// the prompt sent to the completion service.
type GenerateRequest struct {
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Interests     []string
	Difficulty    string
	Budget        string
	BudgetRange   string
	GroupSize     string
	TravelingWith []string
	Title         string
	Description   string
}

// Duration returns the trip length in days, minimum 1.
// A same-day trip counts as one day.
func (r GenerateRequest) Duration() int {
	d := int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	return d
}
