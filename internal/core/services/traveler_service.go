package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// travelerService provides business logic for trip travelers. It guards the
// invariant that every trip has at most one active primary traveler, since
// that traveler's currency is the trip's base currency.
type travelerService struct {
	BaseService
	travelerRepo portsrepo.TravelerRepositoryFacade
	tripRepo     portsrepo.TripReader
}

// NewTravelerService creates a new traveler service.
func NewTravelerService(travelerRepo portsrepo.TravelerRepositoryFacade, tripRepo portsrepo.TripReader) *travelerService {
	return &travelerService{travelerRepo: travelerRepo, tripRepo: tripRepo}
}

func (s *travelerService) CreateTraveler(ctx context.Context, tripID string, req dto.CreateTravelerRequest, creatorUserID string) (*domain.Traveler, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("failed to verify trip %s: %w", tripID, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if req.IsPrimary && isActive {
		if err := s.ensureNoOtherPrimary(ctx, tripID, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	traveler := domain.Traveler{
		TravelerID:   uuid.NewString(),
		TripID:       tripID,
		Name:         req.Name,
		CurrencyCode: req.CurrencyCode,
		IsPrimary:    req.IsPrimary,
		IsCostSharer: req.IsCostSharer,
		IsActive:     isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.travelerRepo.SaveTraveler(ctx, traveler); err != nil {
		s.LogError(ctx, err, "failed to save traveler", "trip_id", tripID)
		return nil, fmt.Errorf("failed to create traveler: %w", err)
	}
	return &traveler, nil
}

func (s *travelerService) GetTravelerByID(ctx context.Context, travelerID string) (*domain.Traveler, error) {
	traveler, err := s.travelerRepo.FindTravelerByID(ctx, travelerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get traveler %s: %w", travelerID, err)
	}
	return traveler, nil
}

func (s *travelerService) ListTravelers(ctx context.Context, tripID string) ([]domain.Traveler, error) {
	travelers, err := s.travelerRepo.ListTravelers(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list travelers for trip %s: %w", tripID, err)
	}
	if travelers == nil {
		return []domain.Traveler{}, nil
	}
	return travelers, nil
}

// GetPrimaryTraveler resolves the trip's base currency owner. Missing primary
// is a conflict, not a not-found: the trip exists but is not set up for
// forecasting yet.
func (s *travelerService) GetPrimaryTraveler(ctx context.Context, tripID string) (*domain.Traveler, error) {
	travelers, err := s.travelerRepo.ListTravelers(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list travelers for trip %s: %w", tripID, err)
	}
	for i := range travelers {
		if travelers[i].IsPrimary && travelers[i].IsActive {
			return &travelers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: trip %s has no active primary traveler", apperrors.ErrConflict, tripID)
}

func (s *travelerService) UpdateTraveler(ctx context.Context, travelerID string, req dto.UpdateTravelerRequest, updaterUserID string) (*domain.Traveler, error) {
	traveler, err := s.travelerRepo.FindTravelerByID(ctx, travelerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find traveler %s for update: %w", travelerID, err)
	}

	if req.Name != nil {
		traveler.Name = *req.Name
	}
	if req.CurrencyCode != nil {
		traveler.CurrencyCode = *req.CurrencyCode
	}
	if req.IsPrimary != nil {
		traveler.IsPrimary = *req.IsPrimary
	}
	if req.IsCostSharer != nil {
		traveler.IsCostSharer = *req.IsCostSharer
	}
	if req.IsActive != nil {
		traveler.IsActive = *req.IsActive
	}

	if traveler.IsPrimary && traveler.IsActive {
		if err := s.ensureNoOtherPrimary(ctx, traveler.TripID, traveler.TravelerID); err != nil {
			return nil, err
		}
	}

	traveler.LastUpdatedAt = time.Now()
	traveler.LastUpdatedBy = updaterUserID

	if err := s.travelerRepo.UpdateTraveler(ctx, *traveler); err != nil {
		s.LogError(ctx, err, "failed to update traveler", "traveler_id", travelerID)
		return nil, fmt.Errorf("failed to update traveler %s: %w", travelerID, err)
	}
	return traveler, nil
}

func (s *travelerService) DeleteTraveler(ctx context.Context, travelerID string) error {
	if err := s.travelerRepo.DeleteTraveler(ctx, travelerID); err != nil {
		return fmt.Errorf("failed to delete traveler %s: %w", travelerID, err)
	}
	return nil
}

func (s *travelerService) ensureNoOtherPrimary(ctx context.Context, tripID, excludeTravelerID string) error {
	travelers, err := s.travelerRepo.ListTravelers(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to check primary traveler for trip %s: %w", tripID, err)
	}
	for _, t := range travelers {
		if t.TravelerID == excludeTravelerID {
			continue
		}
		if t.IsPrimary && t.IsActive {
			return fmt.Errorf("%w: trip %s already has a primary traveler", apperrors.ErrConflict, tripID)
		}
	}
	return nil
}
