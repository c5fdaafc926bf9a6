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

type PgxFlightRepository struct {
	BaseRepository
}

// newPgxFlightRepository creates a new repository for flight options.
func newPgxFlightRepository(pool *pgxpool.Pool) portsrepo.FlightRepositoryFacade {
	return &PgxFlightRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FlightRepositoryFacade = (*PgxFlightRepository)(nil)

const flightColumns = `flight_id, trip_id, airline, description, fare_kind, fare_per_traveler, currency_code, traveler_count, status, booking_ref, created_at, created_by, last_updated_at, last_updated_by`

const segmentColumns = `segment_id, flight_id, origin, destination, departure_time, arrival_time, flight_number, sort_order`

func scanFlight(row pgx.Row) (models.FlightOption, error) {
	var f models.FlightOption
	err := row.Scan(
		&f.FlightID,
		&f.TripID,
		&f.Airline,
		&f.Description,
		&f.FareKind,
		&f.FarePerTraveler,
		&f.CurrencyCode,
		&f.TravelerCount,
		&f.Status,
		&f.BookingRef,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	return f, err
}

func scanSegment(row pgx.CollectableRow) (models.FlightSegment, error) {
	var s models.FlightSegment
	err := row.Scan(
		&s.SegmentID,
		&s.FlightID,
		&s.Origin,
		&s.Destination,
		&s.DepartureTime,
		&s.ArrivalTime,
		&s.FlightNumber,
		&s.SortOrder,
	)
	return s, err
}

// SaveFlight inserts a flight option and its segments in one transaction.
func (r *PgxFlightRepository) SaveFlight(ctx context.Context, flight domain.FlightOption) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertFlight(ctx, tx, flight); err != nil {
		return err
	}
	if err := insertSegments(ctx, tx, flight); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateFlight replaces a flight option and its segments in one transaction.
// Segments are deleted and re-inserted; their identity is not stable across
// updates.
func (r *PgxFlightRepository) UpdateFlight(ctx context.Context, flight domain.FlightOption) error {
	m := mapping.ToModelFlightOption(flight)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE flight_options
		SET airline = $2, description = $3, fare_kind = $4, fare_per_traveler = $5,
			currency_code = $6, traveler_count = $7, status = $8, booking_ref = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE flight_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.FlightID,
		m.Airline,
		m.Description,
		m.FareKind,
		m.FarePerTraveler,
		m.CurrencyCode,
		m.TravelerCount,
		m.Status,
		m.BookingRef,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight %s: %w", m.FlightID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_segments WHERE flight_id = $1;`, m.FlightID); err != nil {
		return fmt.Errorf("failed to clear segments for flight %s: %w", m.FlightID, err)
	}
	if err := insertSegments(ctx, tx, flight); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindFlightByID retrieves a flight option with its segments.
func (r *PgxFlightRepository) FindFlightByID(ctx context.Context, flightID string) (*domain.FlightOption, error) {
	query := `SELECT ` + flightColumns + ` FROM flight_options WHERE flight_id = $1;`

	m, err := scanFlight(r.Pool.QueryRow(ctx, query, flightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find flight %s: %w", flightID, err)
	}

	segments, err := r.segmentsByFlight(ctx, []string{flightID})
	if err != nil {
		return nil, err
	}

	f := mapping.ToDomainFlightOption(m, segments[flightID])
	return &f, nil
}

// ListFlights retrieves a trip's flight options, segments included.
func (r *PgxFlightRepository) ListFlights(ctx context.Context, tripID string) ([]domain.FlightOption, error) {
	query := `SELECT ` + flightColumns + ` FROM flight_options WHERE trip_id = $1 ORDER BY created_at, flight_id;`
	return r.listFlights(ctx, query, tripID)
}

// ListFlightsByStatus retrieves a trip's flight options whose status is in the set.
func (r *PgxFlightRepository) ListFlightsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.FlightOption, error) {
	query := `SELECT ` + flightColumns + ` FROM flight_options WHERE trip_id = $1 AND status = ANY($2) ORDER BY created_at, flight_id;`
	return r.listFlights(ctx, query, tripID, statusStrings(statuses))
}

func (r *PgxFlightRepository) listFlights(ctx context.Context, query string, args ...any) ([]domain.FlightOption, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FlightOption, error) {
		return scanFlight(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan flights: %w", err)
	}
	if len(ms) == 0 {
		return []domain.FlightOption{}, nil
	}

	flightIDs := make([]string, len(ms))
	for i, m := range ms {
		flightIDs[i] = m.FlightID
	}
	segments, err := r.segmentsByFlight(ctx, flightIDs)
	if err != nil {
		return nil, err
	}

	flights := make([]domain.FlightOption, len(ms))
	for i, m := range ms {
		flights[i] = mapping.ToDomainFlightOption(m, segments[m.FlightID])
	}
	return flights, nil
}

// DeleteFlight removes a flight option; segments cascade.
func (r *PgxFlightRepository) DeleteFlight(ctx context.Context, flightID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM flight_options WHERE flight_id = $1;`, flightID)
	if err != nil {
		return fmt.Errorf("failed to delete flight %s: %w", flightID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFlightRepository) segmentsByFlight(ctx context.Context, flightIDs []string) (map[string][]models.FlightSegment, error) {
	query := `SELECT ` + segmentColumns + ` FROM flight_segments WHERE flight_id = ANY($1) ORDER BY flight_id, sort_order;`

	rows, err := r.Pool.Query(ctx, query, flightIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight segments: %w", err)
	}
	defer rows.Close()

	segments, err := pgx.CollectRows(rows, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan flight segments: %w", err)
	}

	grouped := make(map[string][]models.FlightSegment, len(flightIDs))
	for _, s := range segments {
		grouped[s.FlightID] = append(grouped[s.FlightID], s)
	}
	return grouped, nil
}

func insertFlight(ctx context.Context, tx pgx.Tx, flight domain.FlightOption) error {
	m := mapping.ToModelFlightOption(flight)

	query := `
		INSERT INTO flight_options (` + flightColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.FlightID,
		m.TripID,
		m.Airline,
		m.Description,
		m.FareKind,
		m.FarePerTraveler,
		m.CurrencyCode,
		m.TravelerCount,
		m.Status,
		m.BookingRef,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert flight %s: %w", m.FlightID, err)
	}
	return nil
}

func insertSegments(ctx context.Context, tx pgx.Tx, flight domain.FlightOption) error {
	query := `
		INSERT INTO flight_segments (` + segmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, seg := range flight.Segments {
		m := mapping.ToModelFlightSegment(seg)
		_, err := tx.Exec(ctx, query,
			m.SegmentID,
			m.FlightID,
			m.Origin,
			m.Destination,
			m.DepartureTime,
			m.ArrivalTime,
			m.FlightNumber,
			m.SortOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to insert segment %s: %w", m.SegmentID, err)
		}
	}
	return nil
}

func statusStrings(statuses []domain.ItemStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
