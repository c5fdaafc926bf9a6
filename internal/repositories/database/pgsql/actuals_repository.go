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

type PgxActualsRepository struct {
	BaseRepository
}

// newPgxActualsRepository creates a new repository for expense actuals.
func newPgxActualsRepository(pool *pgxpool.Pool) portsrepo.ActualsRepositoryFacade {
	return &PgxActualsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ActualsRepositoryFacade = (*PgxActualsRepository)(nil)

const actualColumns = `actual_id, trip_id, expense_id, module, description, traveler_id, paid_by_traveler_id, actual_amount, actual_date, payment_method_key, receipt_url, actual_notes, estimated_amount, expense_currency, created_at, created_by, last_updated_at, last_updated_by`

func scanActual(row pgx.Row) (models.ExpenseActual, error) {
	var a models.ExpenseActual
	err := row.Scan(
		&a.ActualID,
		&a.TripID,
		&a.ExpenseID,
		&a.Module,
		&a.Description,
		&a.TravelerID,
		&a.PaidByTravelerID,
		&a.ActualAmount,
		&a.ActualDate,
		&a.PaymentMethodKey,
		&a.ReceiptURL,
		&a.ActualNotes,
		&a.EstimatedAmount,
		&a.ExpenseCurrency,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// InsertActuals writes all rows in one transaction. An advisory lock on the
// trip ID serializes concurrent transfers, so the emptiness check and the
// inserts are atomic: one of two racing transfers fails with a conflict.
func (r *PgxActualsRepository) InsertActuals(ctx context.Context, tripID string, actuals []domain.ExpenseActual) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, tripID); err != nil {
		return fmt.Errorf("failed to lock trip %s for transfer: %w", tripID, err)
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM expense_actuals WHERE trip_id = $1;`, tripID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count actuals for trip %s: %w", tripID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: trip %s already has actuals", apperrors.ErrConflict, tripID)
	}

	query := `
		INSERT INTO expense_actuals (` + actualColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	for _, actual := range actuals {
		m := mapping.ToModelExpenseActual(actual)
		_, err := tx.Exec(ctx, query,
			m.ActualID,
			m.TripID,
			m.ExpenseID,
			m.Module,
			m.Description,
			m.TravelerID,
			m.PaidByTravelerID,
			m.ActualAmount,
			m.ActualDate,
			m.PaymentMethodKey,
			m.ReceiptURL,
			m.ActualNotes,
			m.EstimatedAmount,
			m.ExpenseCurrency,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert actual %s: %w", m.ActualID, err)
		}
	}
	return r.Commit(ctx, tx)
}

// FindActualByID retrieves a single actual row.
func (r *PgxActualsRepository) FindActualByID(ctx context.Context, actualID string) (*domain.ExpenseActual, error) {
	query := `SELECT ` + actualColumns + ` FROM expense_actuals WHERE actual_id = $1;`

	m, err := scanActual(r.Pool.QueryRow(ctx, query, actualID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find actual %s: %w", actualID, err)
	}

	a := mapping.ToDomainExpenseActual(m)
	return &a, nil
}

// ListActuals retrieves all actual rows of a trip, in module order.
func (r *PgxActualsRepository) ListActuals(ctx context.Context, tripID string) ([]domain.ExpenseActual, error) {
	query := `SELECT ` + actualColumns + ` FROM expense_actuals WHERE trip_id = $1 ORDER BY created_at, actual_id;`

	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actuals for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseActual, error) {
		return scanActual(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan actuals: %w", err)
	}

	return mapping.ToDomainExpenseActualSlice(ms), nil
}

// CountActuals returns the number of actual rows of a trip.
func (r *PgxActualsRepository) CountActuals(ctx context.Context, tripID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expense_actuals WHERE trip_id = $1;`, tripID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count actuals for trip %s: %w", tripID, err)
	}
	return count, nil
}

// UpdateActual updates a single actual row.
func (r *PgxActualsRepository) UpdateActual(ctx context.Context, actual domain.ExpenseActual) error {
	m := mapping.ToModelExpenseActual(actual)

	query := `
		UPDATE expense_actuals
		SET traveler_id = $2, paid_by_traveler_id = $3, actual_amount = $4, actual_date = $5,
			payment_method_key = $6, receipt_url = $7, actual_notes = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE actual_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ActualID,
		m.TravelerID,
		m.PaidByTravelerID,
		m.ActualAmount,
		m.ActualDate,
		m.PaymentMethodKey,
		m.ReceiptURL,
		m.ActualNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update actual %s: %w", m.ActualID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteActuals removes every actual row of a trip.
func (r *PgxActualsRepository) DeleteActuals(ctx context.Context, tripID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expense_actuals WHERE trip_id = $1;`, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete actuals for trip %s: %w", tripID, err)
	}
	return int(tag.RowsAffected()), nil
}
