package services

import (
	"context"

	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTripByID retrieves a specific trip by its ID.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip persists a new trip.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// UpdateTrip applies a partial update to a trip.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, updaterUserID string) (*domain.Trip, error)

	// DeleteTrip removes a trip and all its planning data.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
}

// TravelerReaderSvc defines read operations for traveler data
type TravelerReaderSvc interface {
	// GetTravelerByID retrieves a specific traveler by its ID.
	GetTravelerByID(ctx context.Context, travelerID string) (*domain.Traveler, error)

	// ListTravelers retrieves the travelers of a trip.
	ListTravelers(ctx context.Context, tripID string) ([]domain.Traveler, error)

	// GetPrimaryTraveler retrieves the trip's primary traveler, whose currency
	// is the trip's base currency.
	GetPrimaryTraveler(ctx context.Context, tripID string) (*domain.Traveler, error)
}

// TravelerWriterSvc defines write operations for traveler data
type TravelerWriterSvc interface {
	// CreateTraveler adds a traveler to a trip.
	CreateTraveler(ctx context.Context, tripID string, req dto.CreateTravelerRequest, creatorUserID string) (*domain.Traveler, error)

	// UpdateTraveler applies a partial update to a traveler.
	UpdateTraveler(ctx context.Context, travelerID string, req dto.UpdateTravelerRequest, updaterUserID string) (*domain.Traveler, error)

	// DeleteTraveler removes a traveler from its trip.
	DeleteTraveler(ctx context.Context, travelerID string) error
}

// TravelerSvcFacade combines all traveler-related service interfaces
type TravelerSvcFacade interface {
	TravelerReaderSvc
	TravelerWriterSvc
}
