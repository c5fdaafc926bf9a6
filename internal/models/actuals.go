package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastSnapshot maps to the trip_forecasts table. The report itself is
// stored as a JSONB document; one row per trip, overwritten on each run.
type ForecastSnapshot struct {
	TripID      string    `json:"tripID"`
	Report      []byte    `json:"report"` // JSONB payload (domain.ForecastReport)
	CollectedAt time.Time `json:"collectedAt"`
	CollectedBy string    `json:"collectedBy"`
}

// ExpenseActual maps to the expense_actuals table.
type ExpenseActual struct {
	ActualID         string          `json:"actualID"`
	TripID           string          `json:"tripID"`
	ExpenseID        string          `json:"expenseID"`
	Module           string          `json:"module"`
	Description      string          `json:"description"`
	TravelerID       *string         `json:"travelerID,omitempty"`
	PaidByTravelerID *string         `json:"paidByTravelerID,omitempty"`
	ActualAmount     decimal.Decimal `json:"actualAmount"`
	ActualDate       *time.Time      `json:"actualDate,omitempty"`
	PaymentMethodKey string          `json:"paymentMethodKey"`
	ReceiptURL       string          `json:"receiptURL"`
	ActualNotes      string          `json:"actualNotes"`
	EstimatedAmount  decimal.Decimal `json:"estimatedAmount"`
	ExpenseCurrency  string          `json:"expenseCurrency"`
	AuditFields
}
