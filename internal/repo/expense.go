package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripforge/backend/internal/domain"
)

// ExpenseRepo defines the persistence operations for expenses.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// List returns expenses ordered by date descending. When itineraryID is
	// non-nil only expenses attached to that itinerary are returned.
	List(ctx context.Context, itineraryID *uuid.UUID) ([]domain.Expense, error)

	// Delete removes an expense by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

const expenseColumns = `id, itinerary_id, title, description, amount, currency, category, date, created_at`

// Create inserts a new expense row and returns the full persisted record.
func (r *pgExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (itinerary_id, title, description, amount, currency, category, date)
		VALUES (@itinerary_id, @title, @description, @amount, @currency, @category, @date)
		RETURNING ` + expenseColumns

	args := pgx.NamedArgs{
		"itinerary_id": e.ItineraryID, // nil becomes NULL
		"title":        e.Title,
		"description":  e.Description,
		"amount":       e.Amount,
		"currency":     currencyOrDefault(e.Currency),
		"category":     e.Category,
		"date":         e.Date,
	}

	result, err := scanExpense(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

// List returns expenses, optionally filtered by itinerary, newest first.
func (r *pgExpenseRepo) List(ctx context.Context, itineraryID *uuid.UUID) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE @itinerary_id::uuid IS NULL OR itinerary_id = @itinerary_id
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.List: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.List: scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.List: rows: %w", err)
	}

	return expenses, nil
}

// Delete removes an expense by primary key.
func (r *pgExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanExpense maps a single database row into a domain.Expense.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e           domain.Expense
		id          pgtype.UUID
		itineraryID pgtype.UUID
		date        pgtype.Date
	)

	err := s.Scan(&id, &itineraryID, &e.Title, &e.Description, &e.Amount, &e.Currency, &e.Category, &date, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	if itineraryID.Valid {
		iid := uuid.UUID(itineraryID.Bytes)
		e.ItineraryID = &iid
	}
	e.Date = date.Time

	return e, nil
}
