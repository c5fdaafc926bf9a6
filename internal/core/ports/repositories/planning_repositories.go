package repositories

import (
	"context"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// FlightReader defines read operations for flight options
type FlightReader interface {
	// FindFlightByID retrieves a flight option with its segments.
	FindFlightByID(ctx context.Context, flightID string) (*domain.FlightOption, error)

	// ListFlights retrieves the flight options of a trip, segments included.
	ListFlights(ctx context.Context, tripID string) ([]domain.FlightOption, error)

	// ListFlightsByStatus retrieves the flight options of a trip whose status
	// is in the given set.
	ListFlightsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.FlightOption, error)
}

// FlightWriter defines write operations for flight options
type FlightWriter interface {
	// SaveFlight persists a flight option and its segments in one transaction.
	SaveFlight(ctx context.Context, flight domain.FlightOption) error

	// UpdateFlight replaces a flight option and its segments in one transaction.
	UpdateFlight(ctx context.Context, flight domain.FlightOption) error

	// DeleteFlight removes a flight option and its segments.
	DeleteFlight(ctx context.Context, flightID string) error
}

// FlightRepositoryFacade combines all flight-related repository interfaces
type FlightRepositoryFacade interface {
	FlightReader
	FlightWriter
}

// AccommodationReader defines read operations for accommodations
type AccommodationReader interface {
	FindAccommodationByID(ctx context.Context, accommodationID string) (*domain.Accommodation, error)
	ListAccommodations(ctx context.Context, tripID string) ([]domain.Accommodation, error)
	ListAccommodationsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.Accommodation, error)
}

// AccommodationWriter defines write operations for accommodations
type AccommodationWriter interface {
	SaveAccommodation(ctx context.Context, accommodation domain.Accommodation) error
	UpdateAccommodation(ctx context.Context, accommodation domain.Accommodation) error
	DeleteAccommodation(ctx context.Context, accommodationID string) error
}

// AccommodationRepositoryFacade combines all accommodation-related repository interfaces
type AccommodationRepositoryFacade interface {
	AccommodationReader
	AccommodationWriter
}

// ItineraryReader defines read operations for itinerary categories and activities
type ItineraryReader interface {
	// FindCategoryByID retrieves a category with its activities.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ItineraryCategory, error)

	// ListCategories retrieves a trip's categories with activities, ordered by
	// sort order.
	ListCategories(ctx context.Context, tripID string) ([]domain.ItineraryCategory, error)

	// FindActivityByID retrieves a single activity.
	FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error)
}

// ItineraryWriter defines write operations for itinerary categories and activities
type ItineraryWriter interface {
	SaveCategory(ctx context.Context, category domain.ItineraryCategory) error
	UpdateCategory(ctx context.Context, category domain.ItineraryCategory) error
	DeleteCategory(ctx context.Context, categoryID string) error

	SaveActivity(ctx context.Context, activity domain.Activity) error
	UpdateActivity(ctx context.Context, activity domain.Activity) error
	DeleteActivity(ctx context.Context, activityID string) error

	// ReorderCategories updates the sort order of a trip's categories in one
	// transaction; ids are in the desired order.
	ReorderCategories(ctx context.Context, tripID string, orderedIDs []string) error

	// ReorderActivities updates the sort order of a category's activities in
	// one transaction; ids are in the desired order.
	ReorderActivities(ctx context.Context, categoryID string, orderedIDs []string) error
}

// ItineraryRepositoryFacade combines all itinerary-related repository interfaces
type ItineraryRepositoryFacade interface {
	ItineraryReader
	ItineraryWriter
}

// ExpenseReader defines read operations for ad-hoc expenses
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.AdhocExpense, error)
	ListExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error)

	// ListActiveExpenses retrieves only the expenses flagged active.
	ListActiveExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error)
}

// ExpenseWriter defines write operations for ad-hoc expenses
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.AdhocExpense) error
	UpdateExpense(ctx context.Context, expense domain.AdhocExpense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all ad-hoc expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
