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

// accommodationService provides business logic for accommodation options.
type accommodationService struct {
	BaseService
	accommodationRepo portsrepo.AccommodationRepositoryFacade
	tripRepo          portsrepo.TripReader
}

// NewAccommodationService creates a new accommodation service.
func NewAccommodationService(accommodationRepo portsrepo.AccommodationRepositoryFacade, tripRepo portsrepo.TripReader) *accommodationService {
	return &accommodationService{accommodationRepo: accommodationRepo, tripRepo: tripRepo}
}

func (s *accommodationService) CreateAccommodation(ctx context.Context, tripID string, req dto.CreateAccommodationRequest, creatorUserID string) (*domain.Accommodation, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("failed to verify trip %s: %w", tripID, err)
	}
	if req.TotalPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: total price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	accommodation := domain.Accommodation{
		AccommodationID: uuid.NewString(),
		TripID:          tripID,
		Name:            req.Name,
		Location:        req.Location,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          req.Nights,
		Rooms:           req.Rooms,
		TotalPrice:      req.TotalPrice,
		CurrencyCode:    req.CurrencyCode,
		Status:          domain.ItemStatus(req.Status),
		BookingRef:      req.BookingRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accommodationRepo.SaveAccommodation(ctx, accommodation); err != nil {
		s.LogError(ctx, err, "failed to save accommodation", "trip_id", tripID)
		return nil, fmt.Errorf("failed to create accommodation: %w", err)
	}
	return &accommodation, nil
}

func (s *accommodationService) GetAccommodationByID(ctx context.Context, accommodationID string) (*domain.Accommodation, error) {
	accommodation, err := s.accommodationRepo.FindAccommodationByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accommodation %s: %w", accommodationID, err)
	}
	return accommodation, nil
}

func (s *accommodationService) ListAccommodations(ctx context.Context, tripID string) ([]domain.Accommodation, error) {
	accommodations, err := s.accommodationRepo.ListAccommodations(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations for trip %s: %w", tripID, err)
	}
	if accommodations == nil {
		return []domain.Accommodation{}, nil
	}
	return accommodations, nil
}

func (s *accommodationService) UpdateAccommodation(ctx context.Context, accommodationID string, req dto.UpdateAccommodationRequest, updaterUserID string) (*domain.Accommodation, error) {
	existing, err := s.accommodationRepo.FindAccommodationByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find accommodation %s for update: %w", accommodationID, err)
	}
	if req.TotalPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: total price must not be negative", apperrors.ErrValidation)
	}

	accommodation := domain.Accommodation{
		AccommodationID: existing.AccommodationID,
		TripID:          existing.TripID,
		Name:            req.Name,
		Location:        req.Location,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          req.Nights,
		Rooms:           req.Rooms,
		TotalPrice:      req.TotalPrice,
		CurrencyCode:    req.CurrencyCode,
		Status:          domain.ItemStatus(req.Status),
		BookingRef:      req.BookingRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.accommodationRepo.UpdateAccommodation(ctx, accommodation); err != nil {
		s.LogError(ctx, err, "failed to update accommodation", "accommodation_id", accommodationID)
		return nil, fmt.Errorf("failed to update accommodation %s: %w", accommodationID, err)
	}
	return &accommodation, nil
}

func (s *accommodationService) DeleteAccommodation(ctx context.Context, accommodationID string) error {
	if err := s.accommodationRepo.DeleteAccommodation(ctx, accommodationID); err != nil {
		return fmt.Errorf("failed to delete accommodation %s: %w", accommodationID, err)
	}
	return nil
}
