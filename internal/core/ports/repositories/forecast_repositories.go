package repositories

import (
	"context"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// ForecastReader defines read operations for forecast snapshots
type ForecastReader interface {
	// FindForecast retrieves the last collected report for a trip.
	FindForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error)
}

// ForecastWriter defines write operations for forecast snapshots
type ForecastWriter interface {
	// SaveForecast upserts the single snapshot row of a trip.
	SaveForecast(ctx context.Context, report domain.ForecastReport) error
}

// ForecastRepositoryFacade combines all forecast snapshot repository interfaces
type ForecastRepositoryFacade interface {
	ForecastReader
	ForecastWriter
}

// ActualsReader defines read operations for expense actuals
type ActualsReader interface {
	// FindActualByID retrieves a single actual row.
	FindActualByID(ctx context.Context, actualID string) (*domain.ExpenseActual, error)

	// ListActuals retrieves all actual rows of a trip.
	ListActuals(ctx context.Context, tripID string) ([]domain.ExpenseActual, error)

	// CountActuals returns the number of actual rows of a trip.
	CountActuals(ctx context.Context, tripID string) (int, error)
}

// ActualsWriter defines write operations for expense actuals
type ActualsWriter interface {
	// InsertActuals writes all rows in one transaction, but only when the trip
	// has none yet; otherwise it fails with a conflict and writes nothing.
	InsertActuals(ctx context.Context, tripID string, actuals []domain.ExpenseActual) error

	// UpdateActual updates a single actual row.
	UpdateActual(ctx context.Context, actual domain.ExpenseActual) error

	// DeleteActuals removes every actual row of a trip and reports how many
	// rows were deleted.
	DeleteActuals(ctx context.Context, tripID string) (int, error)
}

// ActualsRepositoryFacade combines all expense actuals repository interfaces
type ActualsRepositoryFacade interface {
	ActualsReader
	ActualsWriter
}

// ExchangeRateReader defines read operations for stored exchange rates
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the most recent stored rate between two
	// currencies, deriving the inverse when only the opposite direction exists.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored rate snapshot, newest first.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for stored exchange rates
type ExchangeRateWriter interface {
	// SaveExchangeRate upserts the rate for a pair and effective date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
