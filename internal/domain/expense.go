package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single recorded spend, optionally attached to an itinerary.
// Unattached expenses (nil ItineraryID) show up only in the global list.
type Expense struct {
	ID          uuid.UUID  `json:"id"`
	ItineraryID *uuid.UUID `json:"itinerary_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount"`
	// Currency is an ISO 4217 code, defaulting to "USD".
	Currency string `json:"currency"`
	// Category is free-form ("food", "lodging", "transport", ...), defaulting
	// to "other". Unlike activity categories it is not a closed set.
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// BudgetSummary reports spend against an itinerary's budget.
// Remaining is nil when the itinerary has no budget set.
type BudgetSummary struct {
	Budget     *float64           `json:"budget,omitempty"`
	Currency   string             `json:"currency"`
	TotalSpent float64            `json:"total_spent"`
	Remaining  *float64           `json:"remaining,omitempty"`
	ByCategory map[string]float64 `json:"by_category"`
}
