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

// flightService provides business logic for flight options.
type flightService struct {
	BaseService
	flightRepo portsrepo.FlightRepositoryFacade
	tripRepo   portsrepo.TripReader
}

// NewFlightService creates a new flight service.
func NewFlightService(flightRepo portsrepo.FlightRepositoryFacade, tripRepo portsrepo.TripReader) *flightService {
	return &flightService{flightRepo: flightRepo, tripRepo: tripRepo}
}

func (s *flightService) CreateFlight(ctx context.Context, tripID string, req dto.CreateFlightRequest, creatorUserID string) (*domain.FlightOption, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("failed to verify trip %s: %w", tripID, err)
	}
	if err := validateFlightRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	flightID := uuid.NewString()

	flight := domain.FlightOption{
		FlightID:        flightID,
		TripID:          tripID,
		Airline:         req.Airline,
		Description:     req.Description,
		FareKind:        domain.FareKind(req.FareKind),
		FarePerTraveler: req.FarePerTraveler,
		CurrencyCode:    req.CurrencyCode,
		TravelerCount:   req.TravelerCount,
		Status:          domain.ItemStatus(req.Status),
		BookingRef:      req.BookingRef,
		Segments:        buildSegments(flightID, req.Segments),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.flightRepo.SaveFlight(ctx, flight); err != nil {
		s.LogError(ctx, err, "failed to save flight", "trip_id", tripID)
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}
	return &flight, nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*domain.FlightOption, error) {
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}
	return flight, nil
}

func (s *flightService) ListFlights(ctx context.Context, tripID string) ([]domain.FlightOption, error) {
	flights, err := s.flightRepo.ListFlights(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights for trip %s: %w", tripID, err)
	}
	if flights == nil {
		return []domain.FlightOption{}, nil
	}
	return flights, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, flightID string, req dto.UpdateFlightRequest, updaterUserID string) (*domain.FlightOption, error) {
	existing, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to find flight %s for update: %w", flightID, err)
	}
	if err := validateFlightRequest(req); err != nil {
		return nil, err
	}

	flight := domain.FlightOption{
		FlightID:        existing.FlightID,
		TripID:          existing.TripID,
		Airline:         req.Airline,
		Description:     req.Description,
		FareKind:        domain.FareKind(req.FareKind),
		FarePerTraveler: req.FarePerTraveler,
		CurrencyCode:    req.CurrencyCode,
		TravelerCount:   req.TravelerCount,
		Status:          domain.ItemStatus(req.Status),
		BookingRef:      req.BookingRef,
		Segments:        buildSegments(existing.FlightID, req.Segments),
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.flightRepo.UpdateFlight(ctx, flight); err != nil {
		s.LogError(ctx, err, "failed to update flight", "flight_id", flightID)
		return nil, fmt.Errorf("failed to update flight %s: %w", flightID, err)
	}
	return &flight, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	if err := s.flightRepo.DeleteFlight(ctx, flightID); err != nil {
		return fmt.Errorf("failed to delete flight %s: %w", flightID, err)
	}
	return nil
}

func validateFlightRequest(req dto.CreateFlightRequest) error {
	if req.FarePerTraveler.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: fare per traveler must not be negative", apperrors.ErrValidation)
	}
	if domain.FareKind(req.FareKind) == domain.FareOneWay && len(req.Segments) != 1 {
		return fmt.Errorf("%w: a one-way option carries exactly one segment", apperrors.ErrValidation)
	}
	if domain.FareKind(req.FareKind) == domain.FareRoundTrip && len(req.Segments) != 2 {
		return fmt.Errorf("%w: a round trip carries an outbound and a return segment", apperrors.ErrValidation)
	}
	for i, seg := range req.Segments {
		if !seg.ArrivalTime.After(seg.DepartureTime) {
			return fmt.Errorf("%w: segment %d arrives before it departs", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

func buildSegments(flightID string, reqs []dto.FlightSegmentRequest) []domain.FlightSegment {
	segments := make([]domain.FlightSegment, len(reqs))
	for i, r := range reqs {
		segments[i] = domain.FlightSegment{
			SegmentID:     uuid.NewString(),
			FlightID:      flightID,
			Origin:        r.Origin,
			Destination:   r.Destination,
			DepartureTime: r.DepartureTime,
			ArrivalTime:   r.ArrivalTime,
			FlightNumber:  r.FlightNumber,
			SortOrder:     i,
		}
	}
	return segments
}
