package repositories

import (
	"context"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a specific trip by its ID.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips ordered by start date.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip updates an existing trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip and everything hanging off it.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}

// TravelerReader defines read operations for traveler data
type TravelerReader interface {
	// FindTravelerByID retrieves a specific traveler by its ID.
	FindTravelerByID(ctx context.Context, travelerID string) (*domain.Traveler, error)

	// ListTravelers retrieves the travelers of a trip.
	ListTravelers(ctx context.Context, tripID string) ([]domain.Traveler, error)
}

// TravelerWriter defines write operations for traveler data
type TravelerWriter interface {
	// SaveTraveler persists a new traveler.
	SaveTraveler(ctx context.Context, traveler domain.Traveler) error

	// UpdateTraveler updates an existing traveler.
	UpdateTraveler(ctx context.Context, traveler domain.Traveler) error

	// DeleteTraveler removes a traveler.
	DeleteTraveler(ctx context.Context, travelerID string) error
}

// TravelerRepositoryFacade combines all traveler-related repository interfaces
type TravelerRepositoryFacade interface {
	TravelerReader
	TravelerWriter
}
