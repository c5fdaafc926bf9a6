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

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip data.
func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepositoryFacade {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

const tripColumns = `trip_id, name, destination, start_date, end_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTrip(row pgx.Row) (models.Trip, error) {
	var trip models.Trip
	err := row.Scan(
		&trip.TripID,
		&trip.Name,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Notes,
		&trip.CreatedAt,
		&trip.CreatedBy,
		&trip.LastUpdatedAt,
		&trip.LastUpdatedBy,
	)
	return trip, err
}

// SaveTrip inserts a new trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip := mapping.ToModelTrip(trip)

	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTrip.TripID,
		modelTrip.Name,
		modelTrip.Destination,
		modelTrip.StartDate,
		modelTrip.EndDate,
		modelTrip.Notes,
		modelTrip.CreatedAt,
		modelTrip.CreatedBy,
		modelTrip.LastUpdatedAt,
		modelTrip.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save trip %s: %w", modelTrip.TripID, err)
	}
	return nil
}

// FindTripByID retrieves a trip by its ID.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`

	modelTrip, err := scanTrip(r.Pool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}

	domainTrip := mapping.ToDomainTrip(modelTrip)
	return &domainTrip, nil
}

// ListTrips retrieves all trips ordered by start date.
func (r *PgxTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date, trip_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	modelTrips, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Trip, error) {
		return scanTrip(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan trips: %w", err)
	}

	return mapping.ToDomainTripSlice(modelTrips), nil
}

// UpdateTrip updates an existing trip.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip := mapping.ToModelTrip(trip)

	query := `
		UPDATE trips
		SET name = $2, destination = $3, start_date = $4, end_date = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE trip_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTrip.TripID,
		modelTrip.Name,
		modelTrip.Destination,
		modelTrip.StartDate,
		modelTrip.EndDate,
		modelTrip.Notes,
		modelTrip.LastUpdatedAt,
		modelTrip.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", modelTrip.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTrip removes a trip; child rows go with it via ON DELETE CASCADE.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
