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

type PgxAccommodationRepository struct {
	BaseRepository
}

// newPgxAccommodationRepository creates a new repository for accommodations.
func newPgxAccommodationRepository(pool *pgxpool.Pool) portsrepo.AccommodationRepositoryFacade {
	return &PgxAccommodationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccommodationRepositoryFacade = (*PgxAccommodationRepository)(nil)

const accommodationColumns = `accommodation_id, trip_id, name, location, check_in, check_out, nights, rooms, total_price, currency_code, status, booking_ref, created_at, created_by, last_updated_at, last_updated_by`

func scanAccommodation(row pgx.Row) (models.Accommodation, error) {
	var a models.Accommodation
	err := row.Scan(
		&a.AccommodationID,
		&a.TripID,
		&a.Name,
		&a.Location,
		&a.CheckIn,
		&a.CheckOut,
		&a.Nights,
		&a.Rooms,
		&a.TotalPrice,
		&a.CurrencyCode,
		&a.Status,
		&a.BookingRef,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveAccommodation inserts a new accommodation.
func (r *PgxAccommodationRepository) SaveAccommodation(ctx context.Context, accommodation domain.Accommodation) error {
	m := mapping.ToModelAccommodation(accommodation)

	query := `
		INSERT INTO accommodations (` + accommodationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccommodationID,
		m.TripID,
		m.Name,
		m.Location,
		m.CheckIn,
		m.CheckOut,
		m.Nights,
		m.Rooms,
		m.TotalPrice,
		m.CurrencyCode,
		m.Status,
		m.BookingRef,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save accommodation %s: %w", m.AccommodationID, err)
	}
	return nil
}

// FindAccommodationByID retrieves an accommodation by its ID.
func (r *PgxAccommodationRepository) FindAccommodationByID(ctx context.Context, accommodationID string) (*domain.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE accommodation_id = $1;`

	m, err := scanAccommodation(r.Pool.QueryRow(ctx, query, accommodationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find accommodation %s: %w", accommodationID, err)
	}

	a := mapping.ToDomainAccommodation(m)
	return &a, nil
}

// ListAccommodations retrieves a trip's accommodations ordered by check-in.
func (r *PgxAccommodationRepository) ListAccommodations(ctx context.Context, tripID string) ([]domain.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE trip_id = $1 ORDER BY check_in, accommodation_id;`
	return r.list(ctx, query, tripID)
}

// ListAccommodationsByStatus retrieves a trip's accommodations whose status is in the set.
func (r *PgxAccommodationRepository) ListAccommodationsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE trip_id = $1 AND status = ANY($2) ORDER BY check_in, accommodation_id;`
	return r.list(ctx, query, tripID, statusStrings(statuses))
}

func (r *PgxAccommodationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Accommodation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accommodations: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Accommodation, error) {
		return scanAccommodation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accommodations: %w", err)
	}

	return mapping.ToDomainAccommodationSlice(ms), nil
}

// UpdateAccommodation updates an existing accommodation.
func (r *PgxAccommodationRepository) UpdateAccommodation(ctx context.Context, accommodation domain.Accommodation) error {
	m := mapping.ToModelAccommodation(accommodation)

	query := `
		UPDATE accommodations
		SET name = $2, location = $3, check_in = $4, check_out = $5, nights = $6, rooms = $7,
			total_price = $8, currency_code = $9, status = $10, booking_ref = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE accommodation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccommodationID,
		m.Name,
		m.Location,
		m.CheckIn,
		m.CheckOut,
		m.Nights,
		m.Rooms,
		m.TotalPrice,
		m.CurrencyCode,
		m.Status,
		m.BookingRef,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update accommodation %s: %w", m.AccommodationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccommodation removes an accommodation.
func (r *PgxAccommodationRepository) DeleteAccommodation(ctx context.Context, accommodationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accommodations WHERE accommodation_id = $1;`, accommodationID)
	if err != nil {
		return fmt.Errorf("failed to delete accommodation %s: %w", accommodationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
