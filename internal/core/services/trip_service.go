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

// tripService provides business logic for trips.
type tripService struct {
	BaseService
	tripRepo portsrepo.TripRepositoryFacade
}

// NewTripService creates a new trip service.
func NewTripService(tripRepo portsrepo.TripRepositoryFacade) *tripService {
	return &tripService{tripRepo: tripRepo}
}

func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	now := time.Now()

	trip := domain.Trip{
		TripID:      uuid.NewString(),
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "failed to save trip", "trip_name", req.Name)
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.LogInfo(ctx, "trip created", "trip_id", trip.TripID)
	return &trip, nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip %s: %w", tripID, err)
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, updaterUserID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find trip %s for update: %w", tripID, err)
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}

	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = updaterUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "failed to update trip", "trip_id", tripID)
		return nil, fmt.Errorf("failed to update trip %s: %w", tripID, err)
	}
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}
	s.LogInfo(ctx, "trip deleted", "trip_id", tripID)
	return nil
}
