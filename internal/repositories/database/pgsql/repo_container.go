package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:          newPgxTripRepository(dbPool),
		TravelerRepo:      newPgxTravelerRepository(dbPool),
		FlightRepo:        newPgxFlightRepository(dbPool),
		AccommodationRepo: newPgxAccommodationRepository(dbPool),
		ItineraryRepo:     newPgxItineraryRepository(dbPool),
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		ForecastRepo:      newPgxForecastRepository(dbPool),
		ActualsRepo:       newPgxActualsRepository(dbPool),
		ExchangeRateRepo:  newPgxExchangeRateRepository(dbPool),
	}
}
