package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// ForecastSvcFacade computes and stores cost forecasts for a trip.
type ForecastSvcFacade interface {
	// CollectForecast gathers cost line items from every planning module,
	// converts them to the trip's base currency, computes per-traveler
	// shares and persists the result as the trip's forecast snapshot.
	CollectForecast(ctx context.Context, tripID string, req dto.CollectForecastRequest, requesterUserID string) (*domain.ForecastReport, error)

	// GetForecast returns the stored forecast snapshot for a trip.
	GetForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error)

	// ConvertShare converts a traveler's base-currency share into that
	// traveler's own currency using current rates.
	ConvertShare(ctx context.Context, tripID string, travelerID string) (*domain.ShareConversion, error)

	// ExportForecast renders the stored forecast as an xlsx workbook.
	ExportForecast(ctx context.Context, tripID string) ([]byte, error)
}

// ActualsSvcFacade manages the actual-expense ledger and settlement math.
type ActualsSvcFacade interface {
	// GetActualsState reports whether a trip is still in forecast mode or
	// has an initialized actuals ledger.
	GetActualsState(ctx context.Context, tripID string) (domain.ActualsState, error)

	// TransferForecast seeds the actuals ledger from the stored forecast
	// snapshot. Fails with a conflict when actual rows already exist.
	TransferForecast(ctx context.Context, tripID string, requesterUserID string) ([]domain.ExpenseActual, error)

	// ListActuals returns the trip's actual-expense rows.
	ListActuals(ctx context.Context, tripID string) ([]domain.ExpenseActual, error)

	// UpdateActual applies a partial update to one actual-expense row.
	UpdateActual(ctx context.Context, actualID string, req dto.UpdateActualRequest, updaterUserID string) (*domain.ExpenseActual, error)

	// ResetActuals deletes every actual row of a trip, returning it to
	// forecast mode.
	ResetActuals(ctx context.Context, tripID string) (int64, error)

	// ComputeSettlement derives per-traveler balances from paid actuals and
	// fair shares, then reduces them to a minimal set of transfers.
	ComputeSettlement(ctx context.Context, tripID string) (*domain.SettlementSummary, error)
}

// RateProvider is the outbound port for fetching live exchange rates.
type RateProvider interface {
	// FetchRate returns the multiplier converting one unit of from into to.
	FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// FxRateSvcFacade resolves currency conversion rates, persisting fetched
// rates so stale snapshots can serve as a fallback.
type FxRateSvcFacade interface {
	// GetRate resolves the conversion rate from one currency to another.
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)

	// Convert applies GetRate to an amount.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, decimal.Decimal, error)

	// ListRates returns the stored rate snapshots.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
