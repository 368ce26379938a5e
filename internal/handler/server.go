// Package handler implements the HTTP handlers for the trip planning API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (itinerary.go, expense.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripforge/backend/internal/crowd"
	"github.com/tripforge/backend/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service layer.
type ItineraryServicer interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (domain.Itinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, budget *float64, currency string) (domain.Itinerary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseServicer defines the business operations the expense handlers
// depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)
	List(ctx context.Context, itineraryID *uuid.UUID) ([]domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, itineraryID uuid.UUID) (domain.BudgetSummary, error)
}

// CrowdServicer defines the crowd prediction operation the crowd handler
// depends on.
type CrowdServicer interface {
	Predict(ctx context.Context, location string, date time.Time) (crowd.Prediction, error)
}

// Server holds the handlers' dependencies.
type Server struct {
	itineraries ItineraryServicer
	expenses    ExpenseServicer
	crowds      CrowdServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, expenses ExpenseServicer, crowds CrowdServicer) *Server {
	return &Server{itineraries: itineraries, expenses: expenses, crowds: crowds}
}

// Routes returns the chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/generate", s.GenerateItinerary)
		r.Get("/", s.ListItineraries)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetItinerary)
			r.Delete("/", s.DeleteItinerary)
			r.Put("/budget", s.UpdateItineraryBudget)
			r.Get("/budget", s.GetItineraryBudget)
		})
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", s.CreateExpense)
		r.Get("/", s.ListExpenses)
		r.Delete("/{id}", s.DeleteExpense)
	})

	r.Get("/crowd-level/predict", s.PredictCrowdLevel)

	return r
}
