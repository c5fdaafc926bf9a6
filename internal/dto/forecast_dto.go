package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CollectForecastRequest selects which planning statuses enter a collection
// run. At least one status must be picked.
type CollectForecastRequest struct {
	Statuses []string `json:"statuses" binding:"required,min=1,dive,oneof=DRAFT SHORTLISTED CONFIRMED NOT_SELECTED"`
}

// CostLineItemResponse is one collected line item in API responses. Amounts
// are rounded to two fraction digits for display only; sums are computed at
// full precision before rounding.
type CostLineItemResponse struct {
	Module       string          `json:"module"`
	SourceID     string          `json:"sourceID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status,omitempty"`
}

// ModuleBreakdownResponse is one module's slice of the forecast.
type ModuleBreakdownResponse struct {
	Module       string                 `json:"module"`
	Items        []CostLineItemResponse `json:"items"`
	Total        decimal.Decimal        `json:"total"`
	CurrencyCode string                 `json:"currencyCode"`
}

// TravelerShareResponse is one cost sharer's slice of the total.
type TravelerShareResponse struct {
	TravelerID       string          `json:"travelerID"`
	TravelerName     string          `json:"travelerName"`
	TravelerCurrency string          `json:"travelerCurrency"`
	IsPrimary        bool            `json:"isPrimary"`
	ShareAmount      decimal.Decimal `json:"shareAmount"`
}

// FxConversionResponse is one conversion audit entry.
type FxConversionResponse struct {
	Description       string          `json:"description"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	OriginalCurrency  string          `json:"originalCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	ConvertedAmount   decimal.Decimal `json:"convertedAmount"`
	ConvertedCurrency string          `json:"convertedCurrency"`
}

// ForecastReportResponse defines the structure for API responses containing a
// forecast report.
type ForecastReportResponse struct {
	TripID           string                    `json:"tripID"`
	BaseCurrency     string                    `json:"baseCurrency"`
	TotalCost        decimal.Decimal           `json:"totalCost"`
	ModuleBreakdown  []ModuleBreakdownResponse `json:"moduleBreakdown"`
	TravelerShares   []TravelerShareResponse   `json:"travelerShares"`
	FxItems          []FxConversionResponse    `json:"fxItems"`
	CostSharersCount int                       `json:"costSharersCount"`
	Statuses         []string                  `json:"statuses"`
	CollectedAt      time.Time                 `json:"collectedAt"`
}

// ShareConversionResponse is a traveler's share converted to a display
// currency. The stored base-currency share is untouched.
type ShareConversionResponse struct {
	TravelerID      string          `json:"travelerID"`
	BaseCurrency    string          `json:"baseCurrency"`
	ShareAmount     decimal.Decimal `json:"shareAmount"`
	DisplayCurrency string          `json:"displayCurrency"`
	DisplayAmount   decimal.Decimal `json:"displayAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
}

// ToShareConversionResponse converts a domain.ShareConversion to its response DTO.
func ToShareConversionResponse(c *domain.ShareConversion) ShareConversionResponse {
	return ShareConversionResponse{
		TravelerID:      c.TravelerID,
		BaseCurrency:    c.BaseCurrency,
		ShareAmount:     c.ShareAmount.Round(2),
		DisplayCurrency: c.DisplayCurrency,
		DisplayAmount:   c.DisplayAmount.Round(2),
		ExchangeRate:    c.ExchangeRate,
	}
}

// ToForecastReportResponse converts a domain.ForecastReport to its response DTO.
func ToForecastReportResponse(r *domain.ForecastReport) ForecastReportResponse {
	breakdown := make([]ModuleBreakdownResponse, len(r.ModuleBreakdown))
	for i, mb := range r.ModuleBreakdown {
		items := make([]CostLineItemResponse, len(mb.Items))
		for j, item := range mb.Items {
			items[j] = CostLineItemResponse{
				Module:       string(item.Module),
				SourceID:     item.SourceID,
				Description:  item.Description,
				Amount:       item.Amount.Round(2),
				CurrencyCode: item.CurrencyCode,
				Status:       string(item.Status),
			}
		}
		breakdown[i] = ModuleBreakdownResponse{
			Module:       string(mb.Module),
			Items:        items,
			Total:        mb.Total.Round(2),
			CurrencyCode: mb.CurrencyCode,
		}
	}

	shares := make([]TravelerShareResponse, len(r.TravelerShares))
	for i, s := range r.TravelerShares {
		shares[i] = TravelerShareResponse{
			TravelerID:       s.TravelerID,
			TravelerName:     s.TravelerName,
			TravelerCurrency: s.TravelerCurrency,
			IsPrimary:        s.IsPrimary,
			ShareAmount:      s.ShareAmount.Round(2),
		}
	}

	fxItems := make([]FxConversionResponse, len(r.FxItems))
	for i, fx := range r.FxItems {
		fxItems[i] = FxConversionResponse{
			Description:       fx.Description,
			OriginalAmount:    fx.OriginalAmount.Round(2),
			OriginalCurrency:  fx.OriginalCurrency,
			ExchangeRate:      fx.ExchangeRate,
			ConvertedAmount:   fx.ConvertedAmount.Round(2),
			ConvertedCurrency: fx.ConvertedCurrency,
		}
	}

	statuses := make([]string, len(r.Statuses))
	for i, s := range r.Statuses {
		statuses[i] = string(s)
	}

	return ForecastReportResponse{
		TripID:           r.TripID,
		BaseCurrency:     r.BaseCurrency,
		TotalCost:        r.TotalCost.Round(2),
		ModuleBreakdown:  breakdown,
		TravelerShares:   shares,
		FxItems:          fxItems,
		CostSharersCount: r.CostSharersCount,
		Statuses:         statuses,
		CollectedAt:      r.CollectedAt,
	}
}
