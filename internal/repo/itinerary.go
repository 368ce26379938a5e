// Package repo contains all database access logic for the trip planning API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripforge/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// Begin is included because creating an itinerary writes two tables
// atomically; on a pgx.Tx it opens a savepoint.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ItineraryRepo defines the persistence operations for itineraries and
// their activities. The service layer depends on this interface, not the
// concrete Postgres implementation, which allows the service to be
// unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts an itinerary together with its parsed activities in one
	// transaction and returns the persisted aggregate with DB-generated IDs.
	Create(ctx context.Context, it domain.Itinerary, activities []domain.Activity) (domain.Itinerary, error)

	// GetByID retrieves an itinerary with its activities ordered by date
	// (unscheduled first) and position within the day.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)

	// List returns one page of itineraries, newest first, without
	// activities, plus the total row count for pagination.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error)

	// UpdateBudget sets (or clears, when budget is nil) the itinerary's
	// budget and currency and returns the updated record.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	UpdateBudget(ctx context.Context, id uuid.UUID, budget *float64, currency string) (domain.Itinerary, error)

	// Delete removes an itinerary and, via cascade, its activities and the
	// link from its expenses. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, title, destination, description, start_date, end_date,
		budget, budget_currency, is_public, created_at, updated_at`

// Create inserts the itinerary row and all activity rows in one transaction.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary, activities []domain.Activity) (domain.Itinerary, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	const q = `
		INSERT INTO itineraries (title, destination, description, start_date, end_date, budget, budget_currency, is_public)
		VALUES (@title, @destination, @description, @start_date, @end_date, @budget, @budget_currency, @is_public)
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"title":           it.Title,
		"destination":     it.Destination,
		"description":     it.Description,
		"start_date":      it.StartDate,
		"end_date":        it.EndDate,
		"budget":          it.Budget, // nil becomes NULL
		"budget_currency": currencyOrDefault(it.BudgetCurrency),
		"is_public":       it.IsPublic,
	}

	created, err := scanItinerary(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}

	const aq = `
		INSERT INTO activities (itinerary_id, title, description, location, date, category, position)
		VALUES (@itinerary_id, @title, @description, @location, @date, @category, @position)
		RETURNING id, itinerary_id, title, description, location, date, category, position, created_at`

	created.Activities = make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		aargs := pgx.NamedArgs{
			"itinerary_id": created.ID,
			"title":        a.Title,
			"description":  a.Description,
			"location":     a.Location,
			"date":         a.Date,
			"category":     string(a.Category),
			"position":     a.Order,
		}
		stored, err := scanActivity(tx.QueryRow(ctx, aq, aargs))
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: activity: %w", err)
		}
		created.Activities = append(created.Activities, stored)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves an itinerary and its activities.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = @id`

	it, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}

	const aq = `
		SELECT id, itinerary_id, title, description, location, date, category, position, created_at
		FROM activities
		WHERE itinerary_id = @id
		ORDER BY date ASC NULLS FIRST, position ASC`

	rows, err := r.db.Query(ctx, aq, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: activities: %w", err)
	}
	defer rows.Close()

	it.Activities = []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: scan activity: %w", err)
		}
		it.Activities = append(it.Activities, a)
	}
	if err := rows.Err(); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: rows: %w", err)
	}

	return it, nil
}

// List returns one page of itineraries ordered by creation time descending.
func (r *pgItineraryRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: count: %w", err)
	}

	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
	}
	defer rows.Close()

	var items []domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: rows: %w", err)
	}

	return items, total, nil
}

// UpdateBudget sets or clears the budget fields of an itinerary.
func (r *pgItineraryRepo) UpdateBudget(ctx context.Context, id uuid.UUID, budget *float64, currency string) (domain.Itinerary, error) {
	const q = `
		UPDATE itineraries
		SET budget          = @budget,
		    budget_currency = @currency,
		    updated_at      = now()
		WHERE id = @id
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"id":       id,
		"budget":   budget,
		"currency": currencyOrDefault(currency),
	}

	it, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.UpdateBudget: %w", err)
	}
	return it, nil
}

// Delete removes an itinerary by primary key.
func (r *pgItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM itineraries WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// currencyOrDefault falls back to USD when the caller supplied no currency.
func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanItinerary maps a single database row into a domain.Itinerary.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it        domain.Itinerary
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		budget    *float64
	)

	err := s.Scan(&id, &it.Title, &it.Destination, &it.Description, &startDate, &endDate,
		&budget, &it.BudgetCurrency, &it.IsPublic, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.StartDate = startDate.Time
	it.EndDate = endDate.Time
	it.Budget = budget

	return it, nil
}

// scanActivity maps a single database row into a domain.Activity.
// It handles the nullable description, location, and date columns.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a           domain.Activity
		id          pgtype.UUID
		itineraryID pgtype.UUID
		date        pgtype.Date
		category    string
	)

	err := s.Scan(&id, &itineraryID, &a.Title, &a.Description, &a.Location, &date, &category, &a.Order, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.ItineraryID = uuid.UUID(itineraryID.Bytes)
	a.Category = domain.Category(category)
	if date.Valid {
		d := date.Time
		a.Date = &d
	}

	return a, nil
}
