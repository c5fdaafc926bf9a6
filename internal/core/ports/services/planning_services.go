package services

import (
	"context"

	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// FlightSvcFacade defines operations on flight options and their segments.
type FlightSvcFacade interface {
	GetFlightByID(ctx context.Context, flightID string) (*domain.FlightOption, error)
	ListFlights(ctx context.Context, tripID string) ([]domain.FlightOption, error)
	CreateFlight(ctx context.Context, tripID string, req dto.CreateFlightRequest, creatorUserID string) (*domain.FlightOption, error)
	UpdateFlight(ctx context.Context, flightID string, req dto.UpdateFlightRequest, updaterUserID string) (*domain.FlightOption, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

// AccommodationSvcFacade defines operations on accommodation options.
type AccommodationSvcFacade interface {
	GetAccommodationByID(ctx context.Context, accommodationID string) (*domain.Accommodation, error)
	ListAccommodations(ctx context.Context, tripID string) ([]domain.Accommodation, error)
	CreateAccommodation(ctx context.Context, tripID string, req dto.CreateAccommodationRequest, creatorUserID string) (*domain.Accommodation, error)
	UpdateAccommodation(ctx context.Context, accommodationID string, req dto.UpdateAccommodationRequest, updaterUserID string) (*domain.Accommodation, error)
	DeleteAccommodation(ctx context.Context, accommodationID string) error
}

// ItinerarySvcFacade defines operations on itinerary categories and activities.
type ItinerarySvcFacade interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.ItineraryCategory, error)
	ListCategories(ctx context.Context, tripID string) ([]domain.ItineraryCategory, error)
	CreateCategory(ctx context.Context, tripID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.ItineraryCategory, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.ItineraryCategory, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	ReorderCategories(ctx context.Context, tripID string, req dto.ReorderRequest, updaterUserID string) error

	GetActivityByID(ctx context.Context, activityID string) (*domain.Activity, error)
	CreateActivity(ctx context.Context, categoryID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, activityID string, req dto.UpdateActivityRequest, updaterUserID string) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, activityID string) error
	ReorderActivities(ctx context.Context, categoryID string, req dto.ReorderRequest, updaterUserID string) error
}

// ExpenseSvcFacade defines operations on ad-hoc expenses.
type ExpenseSvcFacade interface {
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.AdhocExpense, error)
	ListExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error)
	CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.AdhocExpense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.AdhocExpense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
