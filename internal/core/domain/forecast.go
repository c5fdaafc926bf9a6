package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostLineItem is one billable unit collected from a planning module for a
// forecast run. Line items are ephemeral: they are rebuilt on every collection
// and only persisted as part of the report snapshot.
type CostLineItem struct {
	Module       CostModule      `json:"module"`
	SourceID     string          `json:"sourceID"` // ID of the row in its module
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       ItemStatus      `json:"status,omitempty"` // empty for ad-hoc expenses
}

// FxConversionRecord is the audit entry for a single currency conversion
// performed during aggregation.
type FxConversionRecord struct {
	Description       string          `json:"description"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	OriginalCurrency  string          `json:"originalCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	ConvertedAmount   decimal.Decimal `json:"convertedAmount"`
	ConvertedCurrency string          `json:"convertedCurrency"`
}

// ModuleBreakdown groups a forecast's line items per module with the module
// subtotal in the base currency.
type ModuleBreakdown struct {
	Module       CostModule      `json:"module"`
	Items        []CostLineItem  `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currencyCode"` // base currency
}

// TravelerShare is one cost sharer's slice of the forecast total, always in
// the base currency.
type TravelerShare struct {
	TravelerID       string          `json:"travelerID"`
	TravelerName     string          `json:"travelerName"`
	TravelerCurrency string          `json:"travelerCurrency"`
	IsPrimary        bool            `json:"isPrimary"`
	ShareAmount      decimal.Decimal `json:"shareAmount"`
}

// ForecastReport is the result of one collection run. One snapshot per trip is
// kept; each run overwrites the previous one.
type ForecastReport struct {
	TripID           string               `json:"tripID"`
	BaseCurrency     string               `json:"baseCurrency"`
	TotalCost        decimal.Decimal      `json:"totalCost"`
	ModuleBreakdown  []ModuleBreakdown    `json:"moduleBreakdown"`
	TravelerShares   []TravelerShare      `json:"travelerShares"`
	FxItems          []FxConversionRecord `json:"fxItems"`
	CostSharersCount int                  `json:"costSharersCount"`
	Statuses         []ItemStatus         `json:"statuses"` // status filter of the run
	CollectedAt      time.Time            `json:"collectedAt"`
	CollectedBy      string               `json:"collectedBy"`
}

// ShareConversion is a traveler's share expressed in a display currency. It is
// derived on request and never persisted; the stored share stays in the base
// currency.
type ShareConversion struct {
	TravelerID      string          `json:"travelerID"`
	BaseCurrency    string          `json:"baseCurrency"`
	ShareAmount     decimal.Decimal `json:"shareAmount"`
	DisplayCurrency string          `json:"displayCurrency"`
	DisplayAmount   decimal.Decimal `json:"displayAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
}

// LineItems flattens the module breakdown back into a single list, in module
// order. Used when transferring the forecast to actuals.
func (r ForecastReport) LineItems() []CostLineItem {
	var items []CostLineItem
	for _, mb := range r.ModuleBreakdown {
		items = append(items, mb.Items...)
	}
	return items
}
