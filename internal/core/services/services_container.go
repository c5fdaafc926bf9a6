package services

import (
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateProvider portssvc.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.TripSvc = NewTripService(repos.TripRepo)
	container.TravelerSvc = NewTravelerService(repos.TravelerRepo, repos.TripRepo)
	container.FlightSvc = NewFlightService(repos.FlightRepo, repos.TripRepo)
	container.AccommodationSvc = NewAccommodationService(repos.AccommodationRepo, repos.TripRepo)
	container.ItinerarySvc = NewItineraryService(repos.ItineraryRepo, repos.TripRepo)
	container.ExpenseSvc = NewExpenseService(repos.ExpenseRepo, repos.TripRepo)

	// FX first since the forecast depends on it.
	container.FxRateSvc = NewFxRateService(repos.ExchangeRateRepo, rateProvider)
	container.ForecastSvc = NewForecastService(
		repos.TravelerRepo,
		repos.FlightRepo,
		repos.AccommodationRepo,
		repos.ItineraryRepo,
		repos.ExpenseRepo,
		repos.ForecastRepo,
		container.FxRateSvc,
	)
	container.ActualsSvc = NewSettlementService(repos.ActualsRepo, repos.ForecastRepo, repos.TravelerRepo)

	return container
}

// Compile-time checks that every implementation satisfies its facade.
var (
	_ portssvc.TripSvcFacade          = (*tripService)(nil)
	_ portssvc.TravelerSvcFacade      = (*travelerService)(nil)
	_ portssvc.FlightSvcFacade        = (*flightService)(nil)
	_ portssvc.AccommodationSvcFacade = (*accommodationService)(nil)
	_ portssvc.ItinerarySvcFacade     = (*itineraryService)(nil)
	_ portssvc.ExpenseSvcFacade       = (*expenseService)(nil)
	_ portssvc.ForecastSvcFacade      = (*forecastService)(nil)
	_ portssvc.ActualsSvcFacade       = (*settlementService)(nil)
	_ portssvc.FxRateSvcFacade        = (*fxRateService)(nil)
)
