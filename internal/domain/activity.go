package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an activity for display grouping and budget breakdowns.
// It is always one of the Category* constants; the parser never emits
// anything outside this set.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryAccommodation  Category = "accommodation"
	CategoryTransportation Category = "transportation"
	CategoryActivity       Category = "activity"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryAccommodation, CategoryTransportation, CategoryActivity:
		return true
	}
	return false
}

// Activity is a single itinerary entry extracted from the generated plan.
// Description and Location are nil when the plan text did not supply them.
// Date is nil for entries that could not be attached to a specific day
// (content that appeared before any day marker).
type Activity struct {
	ID          uuid.UUID  `json:"id"`
	ItineraryID uuid.UUID  `json:"itinerary_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Category    Category   `json:"category"`
	// Order is the zero-based display position within the activity's day.
	// It restarts at 0 for each day block.
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
