package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/models"
	"github.com/voyago/trip_planner_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for ad-hoc expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, trip_id, description, amount, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.AdhocExpense, error) {
	var e models.AdhocExpense
	err := row.Scan(
		&e.ExpenseID,
		&e.TripID,
		&e.Description,
		&e.Amount,
		&e.CurrencyCode,
		&e.IsActive,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveExpense inserts a new ad-hoc expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.AdhocExpense) error {
	m := mapping.ToModelAdhocExpense(expense)

	query := `
		INSERT INTO adhoc_expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.TripID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an ad-hoc expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.AdhocExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM adhoc_expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	e := mapping.ToDomainAdhocExpense(m)
	return &e, nil
}

// ListExpenses retrieves all ad-hoc expenses of a trip.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM adhoc_expenses WHERE trip_id = $1 ORDER BY created_at, expense_id;`
	return r.list(ctx, query, tripID)
}

// ListActiveExpenses retrieves only the expenses flagged active.
func (r *PgxExpenseRepository) ListActiveExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM adhoc_expenses WHERE trip_id = $1 AND is_active ORDER BY created_at, expense_id;`
	return r.list(ctx, query, tripID)
}

func (r *PgxExpenseRepository) list(ctx context.Context, query string, args ...any) ([]domain.AdhocExpense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdhocExpense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return mapping.ToDomainAdhocExpenseSlice(ms), nil
}

// UpdateExpense updates an existing ad-hoc expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.AdhocExpense) error {
	m := mapping.ToModelAdhocExpense(expense)

	query := `
		UPDATE adhoc_expenses
		SET description = $2, amount = $3, currency_code = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an ad-hoc expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM adhoc_expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
