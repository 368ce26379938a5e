// Package service contains the business logic for the trip planning API.
// Services validate inputs, enforce business rules, and orchestrate planner,
// parser, and repo calls. No SQL and no HTTP lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tripforge/backend/internal/domain"
	"github.com/tripforge/backend/internal/parser"
	"github.com/tripforge/backend/internal/repo"
)

// Planner produces the free-form plan text for a trip request.
// Defining the interface here (in the consumer package) lets tests inject a
// canned-response planner instead of calling the completion service.
type Planner interface {
	GeneratePlan(ctx context.Context, req domain.GenerateRequest) (string, error)
}

// ItineraryService implements business logic for itinerary operations.
type ItineraryService struct {
	planner Planner
	repo    repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(p Planner, r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{planner: p, repo: r}
}

// Generate runs the full pipeline: validate the request, ask the planner for
// plan text, parse the text into activity records, and persist the result.
//
// A planner failure is an error; a parse "failure" is not — the parser
// guarantees at least one record (its fallback), so a plan the parser cannot
// structure still produces a stored itinerary.
func (s *ItineraryService) Generate(ctx context.Context, req domain.GenerateRequest) (domain.Itinerary, error) {
	if err := validateGenerateRequest(req); err != nil {
		return domain.Itinerary{}, err
	}

	planText, err := s.planner.GeneratePlan(ctx, req)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	activities := parser.Parse(planText, req.StartDate)
	slog.InfoContext(ctx, "plan parsed",
		"destination", req.Destination,
		"plan_chars", len(planText),
		"activities", len(activities),
	)

	it := domain.Itinerary{
		Title:       req.Title,
		Destination: req.Destination,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if it.Title == "" {
		it.Title = "Trip to " + req.Destination
	}
	if it.Description == "" {
		it.Description = firstRunes(planText, 500)
	}

	created, err := s.repo.Create(ctx, it, activities)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}
	return created, nil
}

// GetByID returns a single itinerary with its activities.
func (s *ItineraryService) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return it, nil
}

// List returns one page of itineraries plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	items, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	if items == nil {
		items = []domain.Itinerary{}
	}
	return items, total, nil
}

// UpdateBudget sets or clears an itinerary's budget.
// A negative budget or a malformed currency code fails validation.
func (s *ItineraryService) UpdateBudget(ctx context.Context, id uuid.UUID, budget *float64, currency string) (domain.Itinerary, error) {
	if budget != nil && *budget < 0 {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w: budget must not be negative", domain.ErrValidation)
	}
	if currency != "" && len(currency) != 3 {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w: currency must be a 3-letter code", domain.ErrValidation)
	}

	it, err := s.repo.UpdateBudget(ctx, id, budget, strings.ToUpper(currency))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w", err)
	}
	return it, nil
}

// Delete removes an itinerary and its activities.
func (s *ItineraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// validateGenerateRequest enforces the request preconditions:
//   - destination must be non-empty (whitespace-only is rejected)
//   - both dates must be set, with the end not before the start
func validateGenerateRequest(req domain.GenerateRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
