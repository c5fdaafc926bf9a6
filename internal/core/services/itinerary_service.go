package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// itineraryService provides business logic for itinerary categories and
// activities.
type itineraryService struct {
	BaseService
	itineraryRepo portsrepo.ItineraryRepositoryFacade
	tripRepo      portsrepo.TripReader
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(itineraryRepo portsrepo.ItineraryRepositoryFacade, tripRepo portsrepo.TripReader) *itineraryService {
	return &itineraryService{itineraryRepo: itineraryRepo, tripRepo: tripRepo}
}

func (s *itineraryService) CreateCategory(ctx context.Context, tripID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.ItineraryCategory, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("failed to verify trip %s: %w", tripID, err)
	}
	if err := validateOptionalCost(req.Cost, req.CostKind, req.CurrencyCode); err != nil {
		return nil, err
	}

	existing, err := s.itineraryRepo.ListCategories(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for trip %s: %w", tripID, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	category := domain.ItineraryCategory{
		CategoryID:   uuid.NewString(),
		TripID:       tripID,
		Name:         req.Name,
		SortOrder:    len(existing), // appended at the end
		IsActive:     isActive,
		Cost:         req.Cost,
		CostKind:     domain.CostKind(req.CostKind),
		CurrencyCode: req.CurrencyCode,
		Status:       domain.ItemStatus(req.Status),
		Activities:   []domain.Activity{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itineraryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category", "trip_id", tripID)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *itineraryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.ItineraryCategory, error) {
	category, err := s.itineraryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *itineraryService) ListCategories(ctx context.Context, tripID string) ([]domain.ItineraryCategory, error) {
	categories, err := s.itineraryRepo.ListCategories(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for trip %s: %w", tripID, err)
	}
	if categories == nil {
		return []domain.ItineraryCategory{}, nil
	}
	return categories, nil
}

func (s *itineraryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.ItineraryCategory, error) {
	existing, err := s.itineraryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s for update: %w", categoryID, err)
	}
	if err := validateOptionalCost(req.Cost, req.CostKind, req.CurrencyCode); err != nil {
		return nil, err
	}

	category := *existing
	category.Name = req.Name
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.Cost = req.Cost
	category.CostKind = domain.CostKind(req.CostKind)
	category.CurrencyCode = req.CurrencyCode
	category.Status = domain.ItemStatus(req.Status)
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.itineraryRepo.UpdateCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to update category", "category_id", categoryID)
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}
	return &category, nil
}

func (s *itineraryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.itineraryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

func (s *itineraryService) ReorderCategories(ctx context.Context, tripID string, req dto.ReorderRequest, updaterUserID string) error {
	categories, err := s.itineraryRepo.ListCategories(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to list categories for trip %s: %w", tripID, err)
	}
	if err := validateReorderIDs(req.OrderedIDs, categoryIDs(categories)); err != nil {
		return err
	}
	if err := s.itineraryRepo.ReorderCategories(ctx, tripID, req.OrderedIDs); err != nil {
		return fmt.Errorf("failed to reorder categories for trip %s: %w", tripID, err)
	}
	s.LogInfo(ctx, "categories reordered", "trip_id", tripID)
	return nil
}

func (s *itineraryService) CreateActivity(ctx context.Context, categoryID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error) {
	category, err := s.itineraryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify category %s: %w", categoryID, err)
	}
	if err := validateOptionalCost(req.Cost, req.CostKind, req.CurrencyCode); err != nil {
		return nil, err
	}

	now := time.Now()
	activity := domain.Activity{
		ActivityID:   uuid.NewString(),
		CategoryID:   categoryID,
		Name:         req.Name,
		Notes:        req.Notes,
		SortOrder:    len(category.Activities),
		Cost:         req.Cost,
		CostKind:     domain.CostKind(req.CostKind),
		CurrencyCode: req.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itineraryRepo.SaveActivity(ctx, activity); err != nil {
		s.LogError(ctx, err, "failed to save activity", "category_id", categoryID)
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return &activity, nil
}

func (s *itineraryService) GetActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	activity, err := s.itineraryRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity %s: %w", activityID, err)
	}
	return activity, nil
}

func (s *itineraryService) UpdateActivity(ctx context.Context, activityID string, req dto.UpdateActivityRequest, updaterUserID string) (*domain.Activity, error) {
	existing, err := s.itineraryRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find activity %s for update: %w", activityID, err)
	}
	if err := validateOptionalCost(req.Cost, req.CostKind, req.CurrencyCode); err != nil {
		return nil, err
	}

	activity := *existing
	activity.Name = req.Name
	activity.Notes = req.Notes
	activity.Cost = req.Cost
	activity.CostKind = domain.CostKind(req.CostKind)
	activity.CurrencyCode = req.CurrencyCode
	activity.LastUpdatedAt = time.Now()
	activity.LastUpdatedBy = updaterUserID

	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		s.LogError(ctx, err, "failed to update activity", "activity_id", activityID)
		return nil, fmt.Errorf("failed to update activity %s: %w", activityID, err)
	}
	return &activity, nil
}

func (s *itineraryService) DeleteActivity(ctx context.Context, activityID string) error {
	if err := s.itineraryRepo.DeleteActivity(ctx, activityID); err != nil {
		return fmt.Errorf("failed to delete activity %s: %w", activityID, err)
	}
	return nil
}

func (s *itineraryService) ReorderActivities(ctx context.Context, categoryID string, req dto.ReorderRequest, updaterUserID string) error {
	category, err := s.itineraryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to verify category %s: %w", categoryID, err)
	}
	current := make([]string, len(category.Activities))
	for i, a := range category.Activities {
		current[i] = a.ActivityID
	}
	if err := validateReorderIDs(req.OrderedIDs, current); err != nil {
		return err
	}
	if err := s.itineraryRepo.ReorderActivities(ctx, categoryID, req.OrderedIDs); err != nil {
		return fmt.Errorf("failed to reorder activities for category %s: %w", categoryID, err)
	}
	return nil
}

// validateOptionalCost enforces that a priced item names a currency and a cost
// kind, and that the amount is not negative.
func validateOptionalCost(cost *decimal.Decimal, costKind, currencyCode string) error {
	if cost == nil {
		return nil
	}
	if cost.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative", apperrors.ErrValidation)
	}
	if currencyCode == "" {
		return fmt.Errorf("%w: a priced item needs a currency code", apperrors.ErrValidation)
	}
	if !domain.CostKind(costKind).IsValid() {
		return fmt.Errorf("%w: a priced item needs a cost kind", apperrors.ErrValidation)
	}
	return nil
}

// validateReorderIDs checks that the requested ordering is a permutation of
// the current IDs.
func validateReorderIDs(ordered, current []string) error {
	if len(ordered) != len(current) {
		return fmt.Errorf("%w: reorder must name every item exactly once", apperrors.ErrValidation)
	}
	seen := make(map[string]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	for _, id := range ordered {
		if !seen[id] {
			return fmt.Errorf("%w: unknown item id %s in reorder", apperrors.ErrValidation, id)
		}
		delete(seen, id)
	}
	return nil
}

func categoryIDs(categories []domain.ItineraryCategory) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.CategoryID
	}
	return ids
}
