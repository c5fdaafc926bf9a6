package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/models"
)

type PgxForecastRepository struct {
	BaseRepository
}

// newPgxForecastRepository creates a new repository for forecast snapshots.
// The report is stored whole as a JSONB document: it is written and read as a
// unit and never queried field by field.
func newPgxForecastRepository(pool *pgxpool.Pool) portsrepo.ForecastRepositoryFacade {
	return &PgxForecastRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ForecastRepositoryFacade = (*PgxForecastRepository)(nil)

// SaveForecast upserts the single snapshot row of a trip.
func (r *PgxForecastRepository) SaveForecast(ctx context.Context, report domain.ForecastReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for trip %s: %w", report.TripID, err)
	}

	query := `
		INSERT INTO trip_forecasts (trip_id, report, collected_at, collected_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (trip_id) DO UPDATE SET
			report = EXCLUDED.report,
			collected_at = EXCLUDED.collected_at,
			collected_by = EXCLUDED.collected_by;
	`
	_, err = r.Pool.Exec(ctx, query, report.TripID, payload, report.CollectedAt, report.CollectedBy)
	if err != nil {
		return fmt.Errorf("failed to save forecast for trip %s: %w", report.TripID, err)
	}
	return nil
}

// FindForecast retrieves the last collected report for a trip.
func (r *PgxForecastRepository) FindForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error) {
	query := `SELECT trip_id, report, collected_at, collected_by FROM trip_forecasts WHERE trip_id = $1;`

	var snapshot models.ForecastSnapshot
	err := r.Pool.QueryRow(ctx, query, tripID).Scan(
		&snapshot.TripID,
		&snapshot.Report,
		&snapshot.CollectedAt,
		&snapshot.CollectedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find forecast for trip %s: %w", tripID, err)
	}

	var report domain.ForecastReport
	if err := json.Unmarshal(snapshot.Report, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast for trip %s: %w", tripID, err)
	}
	return &report, nil
}
