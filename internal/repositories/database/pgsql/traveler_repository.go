package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/models"
	"github.com/voyago/trip_planner_app/internal/utils/mapping"
)

type PgxTravelerRepository struct {
	BaseRepository
}

// newPgxTravelerRepository creates a new repository for traveler data.
func newPgxTravelerRepository(pool *pgxpool.Pool) portsrepo.TravelerRepositoryFacade {
	return &PgxTravelerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TravelerRepositoryFacade = (*PgxTravelerRepository)(nil)

const travelerColumns = `traveler_id, trip_id, name, currency_code, is_primary, is_cost_sharer, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanTraveler(row pgx.Row) (models.Traveler, error) {
	var t models.Traveler
	err := row.Scan(
		&t.TravelerID,
		&t.TripID,
		&t.Name,
		&t.CurrencyCode,
		&t.IsPrimary,
		&t.IsCostSharer,
		&t.IsActive,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SaveTraveler inserts a new traveler. A unique partial index on
// (trip_id) WHERE is_primary AND is_active backs the one-primary invariant.
func (r *PgxTravelerRepository) SaveTraveler(ctx context.Context, traveler domain.Traveler) error {
	m := mapping.ToModelTraveler(traveler)

	query := `
		INSERT INTO travelers (` + travelerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TravelerID,
		m.TripID,
		m.Name,
		m.CurrencyCode,
		m.IsPrimary,
		m.IsCostSharer,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trip already has a primary traveler", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save traveler %s: %w", m.TravelerID, err)
	}
	return nil
}

// FindTravelerByID retrieves a traveler by its ID.
func (r *PgxTravelerRepository) FindTravelerByID(ctx context.Context, travelerID string) (*domain.Traveler, error) {
	query := `SELECT ` + travelerColumns + ` FROM travelers WHERE traveler_id = $1;`

	m, err := scanTraveler(r.Pool.QueryRow(ctx, query, travelerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find traveler %s: %w", travelerID, err)
	}

	t := mapping.ToDomainTraveler(m)
	return &t, nil
}

// ListTravelers retrieves a trip's travelers, primary first.
func (r *PgxTravelerRepository) ListTravelers(ctx context.Context, tripID string) ([]domain.Traveler, error) {
	query := `
		SELECT ` + travelerColumns + `
		FROM travelers
		WHERE trip_id = $1
		ORDER BY is_primary DESC, traveler_id;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query travelers for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Traveler, error) {
		return scanTraveler(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan travelers: %w", err)
	}

	return mapping.ToDomainTravelerSlice(ms), nil
}

// UpdateTraveler updates an existing traveler.
func (r *PgxTravelerRepository) UpdateTraveler(ctx context.Context, traveler domain.Traveler) error {
	m := mapping.ToModelTraveler(traveler)

	query := `
		UPDATE travelers
		SET name = $2, currency_code = $3, is_primary = $4, is_cost_sharer = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE traveler_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TravelerID,
		m.Name,
		m.CurrencyCode,
		m.IsPrimary,
		m.IsCostSharer,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trip already has a primary traveler", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update traveler %s: %w", m.TravelerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTraveler removes a traveler.
func (r *PgxTravelerRepository) DeleteTraveler(ctx context.Context, travelerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM travelers WHERE traveler_id = $1;`, travelerID)
	if err != nil {
		return fmt.Errorf("failed to delete traveler %s: %w", travelerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
