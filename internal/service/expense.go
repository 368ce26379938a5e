package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripforge/backend/internal/domain"
	"github.com/tripforge/backend/internal/repo"
)

// ExpenseService implements business logic for expense tracking.
// It holds both repos because creating an expense attached to an itinerary
// requires verifying the itinerary exists, and the budget summary needs the
// itinerary's budget fields.
type ExpenseService struct {
	expenses    repo.ExpenseRepo
	itineraries repo.ItineraryRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(expenses repo.ExpenseRepo, itineraries repo.ItineraryRepo) *ExpenseService {
	return &ExpenseService{expenses: expenses, itineraries: itineraries}
}

// Create validates the expense, verifies the parent itinerary when one is
// referenced, and persists. An unset date defaults to today; an unset
// category defaults to "other".
func (s *ExpenseService) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if strings.TrimSpace(e.Title) == "" {
		return domain.Expense{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if e.Amount <= 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	if e.ItineraryID != nil {
		if _, err := s.itineraries.GetByID(ctx, *e.ItineraryID); err != nil {
			return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
		}
	}

	if e.Category == "" {
		e.Category = "other"
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}

	result, err := s.expenses.Create(ctx, e)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// List returns expenses, optionally filtered to one itinerary.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) List(ctx context.Context, itineraryID *uuid.UUID) ([]domain.Expense, error) {
	expenses, err := s.expenses.List(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// Summary totals an itinerary's expenses against its budget.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ExpenseService) Summary(ctx context.Context, itineraryID uuid.UUID) (domain.BudgetSummary, error) {
	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.ExpenseService.Summary: %w", err)
	}

	expenses, err := s.expenses.List(ctx, &itineraryID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.ExpenseService.Summary: %w", err)
	}

	summary := domain.BudgetSummary{
		Budget:     it.Budget,
		Currency:   it.BudgetCurrency,
		ByCategory: map[string]float64{},
	}
	for _, e := range expenses {
		summary.TotalSpent += e.Amount
		summary.ByCategory[e.Category] += e.Amount
	}
	if it.Budget != nil {
		remaining := *it.Budget - summary.TotalSpent
		summary.Remaining = &remaining
	}

	return summary, nil
}
