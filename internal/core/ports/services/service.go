package services

// ServiceContainer aggregates every service facade for handler wiring.
type ServiceContainer struct {
	TripSvc          TripSvcFacade
	TravelerSvc      TravelerSvcFacade
	FlightSvc        FlightSvcFacade
	AccommodationSvc AccommodationSvcFacade
	ItinerarySvc     ItinerarySvcFacade
	ExpenseSvc       ExpenseSvcFacade
	ForecastSvc      ForecastSvcFacade
	ActualsSvc       ActualsSvcFacade
	FxRateSvc        FxRateSvcFacade
}
