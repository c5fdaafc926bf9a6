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

type PgxItineraryRepository struct {
	BaseRepository
}

// newPgxItineraryRepository creates a new repository for itinerary data.
func newPgxItineraryRepository(pool *pgxpool.Pool) portsrepo.ItineraryRepositoryFacade {
	return &PgxItineraryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ItineraryRepositoryFacade = (*PgxItineraryRepository)(nil)

const categoryColumns = `category_id, trip_id, name, sort_order, is_active, cost, cost_kind, currency_code, status, created_at, created_by, last_updated_at, last_updated_by`

const activityColumns = `activity_id, category_id, name, notes, sort_order, cost, cost_kind, currency_code, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.ItineraryCategory, error) {
	var c models.ItineraryCategory
	err := row.Scan(
		&c.CategoryID,
		&c.TripID,
		&c.Name,
		&c.SortOrder,
		&c.IsActive,
		&c.Cost,
		&c.CostKind,
		&c.CurrencyCode,
		&c.Status,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func scanActivity(row pgx.Row) (models.Activity, error) {
	var a models.Activity
	err := row.Scan(
		&a.ActivityID,
		&a.CategoryID,
		&a.Name,
		&a.Notes,
		&a.SortOrder,
		&a.Cost,
		&a.CostKind,
		&a.CurrencyCode,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveCategory inserts a new category.
func (r *PgxItineraryRepository) SaveCategory(ctx context.Context, category domain.ItineraryCategory) error {
	m := mapping.ToModelItineraryCategory(category)

	query := `
		INSERT INTO itinerary_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.TripID,
		m.Name,
		m.SortOrder,
		m.IsActive,
		m.Cost,
		m.CostKind,
		m.CurrencyCode,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category with its activities.
func (r *PgxItineraryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ItineraryCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM itinerary_categories WHERE category_id = $1;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	activities, err := r.activitiesByCategory(ctx, []string{categoryID})
	if err != nil {
		return nil, err
	}

	c := mapping.ToDomainItineraryCategory(m, activities[categoryID])
	return &c, nil
}

// ListCategories retrieves a trip's categories with activities, in sort order.
func (r *PgxItineraryRepository) ListCategories(ctx context.Context, tripID string) ([]domain.ItineraryCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM itinerary_categories WHERE trip_id = $1 ORDER BY sort_order, category_id;`

	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ItineraryCategory, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	if len(ms) == 0 {
		return []domain.ItineraryCategory{}, nil
	}

	categoryIDs := make([]string, len(ms))
	for i, m := range ms {
		categoryIDs[i] = m.CategoryID
	}
	activities, err := r.activitiesByCategory(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.ItineraryCategory, len(ms))
	for i, m := range ms {
		categories[i] = mapping.ToDomainItineraryCategory(m, activities[m.CategoryID])
	}
	return categories, nil
}

// UpdateCategory updates an existing category.
func (r *PgxItineraryRepository) UpdateCategory(ctx context.Context, category domain.ItineraryCategory) error {
	m := mapping.ToModelItineraryCategory(category)

	query := `
		UPDATE itinerary_categories
		SET name = $2, is_active = $3, cost = $4, cost_kind = $5, currency_code = $6, status = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.IsActive,
		m.Cost,
		m.CostKind,
		m.CurrencyCode,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category; its activities cascade.
func (r *PgxItineraryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM itinerary_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveActivity inserts a new activity.
func (r *PgxItineraryRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)

	query := `
		INSERT INTO itinerary_activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActivityID,
		m.CategoryID,
		m.Name,
		m.Notes,
		m.SortOrder,
		m.Cost,
		m.CostKind,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity %s: %w", m.ActivityID, err)
	}
	return nil
}

// FindActivityByID retrieves an activity by its ID.
func (r *PgxItineraryRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM itinerary_activities WHERE activity_id = $1;`

	m, err := scanActivity(r.Pool.QueryRow(ctx, query, activityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find activity %s: %w", activityID, err)
	}

	a := mapping.ToDomainActivity(m)
	return &a, nil
}

// UpdateActivity updates an existing activity.
func (r *PgxItineraryRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)

	query := `
		UPDATE itinerary_activities
		SET name = $2, notes = $3, cost = $4, cost_kind = $5, currency_code = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE activity_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ActivityID,
		m.Name,
		m.Notes,
		m.Cost,
		m.CostKind,
		m.CurrencyCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity %s: %w", m.ActivityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteActivity removes an activity.
func (r *PgxItineraryRepository) DeleteActivity(ctx context.Context, activityID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM itinerary_activities WHERE activity_id = $1;`, activityID)
	if err != nil {
		return fmt.Errorf("failed to delete activity %s: %w", activityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReorderCategories rewrites the sort order of a trip's categories in one
// transaction; ids arrive in the desired order.
func (r *PgxItineraryRepository) ReorderCategories(ctx context.Context, tripID string, orderedIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `UPDATE itinerary_categories SET sort_order = $3 WHERE trip_id = $1 AND category_id = $2;`
	for i, id := range orderedIDs {
		tag, err := tx.Exec(ctx, query, tripID, id, i)
		if err != nil {
			return fmt.Errorf("failed to reorder category %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return r.Commit(ctx, tx)
}

// ReorderActivities rewrites the sort order of a category's activities in one
// transaction; ids arrive in the desired order.
func (r *PgxItineraryRepository) ReorderActivities(ctx context.Context, categoryID string, orderedIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `UPDATE itinerary_activities SET sort_order = $3 WHERE category_id = $1 AND activity_id = $2;`
	for i, id := range orderedIDs {
		tag, err := tx.Exec(ctx, query, categoryID, id, i)
		if err != nil {
			return fmt.Errorf("failed to reorder activity %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxItineraryRepository) activitiesByCategory(ctx context.Context, categoryIDs []string) (map[string][]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM itinerary_activities WHERE category_id = ANY($1) ORDER BY category_id, sort_order;`

	rows, err := r.Pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Activity, error) {
		return scanActivity(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan activities: %w", err)
	}

	grouped := make(map[string][]models.Activity, len(categoryIDs))
	for _, a := range activities {
		grouped[a.CategoryID] = append(grouped[a.CategoryID], a)
	}
	return grouped, nil
}
