package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tripforge/backend/internal/crowd"
	"github.com/tripforge/backend/internal/domain"
)

// CrowdService wraps the crowd predictor with input validation.
// The predictor itself is pure; this layer only guards the boundary.
type CrowdService struct{}

// NewCrowdService constructs a CrowdService.
func NewCrowdService() *CrowdService {
	return &CrowdService{}
}

// Predict returns the crowd forecast for a location on a date.
// Location and date are exactly the fields parsed activities carry, so
// callers can feed activity records straight through.
func (s *CrowdService) Predict(_ context.Context, location string, date time.Time) (crowd.Prediction, error) {
	if strings.TrimSpace(location) == "" {
		return crowd.Prediction{}, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if date.IsZero() {
		return crowd.Prediction{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return crowd.Predict(location, date), nil
}
