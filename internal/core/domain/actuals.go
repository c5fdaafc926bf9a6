package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActualsState is the lifecycle state of a trip's expense actuals.
//
// The only transitions are transfer (NoActuals -> ActualsInitialized) and
// reset (ActualsInitialized -> NoActuals); edits keep the state as is.
type ActualsState string

const (
	NoActuals          ActualsState = "NO_ACTUALS"
	ActualsInitialized ActualsState = "ACTUALS_INITIALIZED"
)

// ExpenseActual is a real payment recorded against a forecast line item.
// Rows are created in bulk by the transfer operation, edited individually
// afterwards and only deleted en masse by reset.
type ExpenseActual struct {
	ActualID         string           `json:"actualID"` // Primary Key (UUID)
	TripID           string           `json:"tripID"`   // FK -> Trip.tripID
	ExpenseID        string           `json:"expenseID"` // source line item ID
	Module           CostModule       `json:"module"`
	Description      string           `json:"description"`
	TravelerID       *string          `json:"travelerID,omitempty"`       // on whose behalf; nil = whole group
	PaidByTravelerID *string          `json:"paidByTravelerID,omitempty"` // nil until a payer is recorded
	ActualAmount     decimal.Decimal  `json:"actualAmount"`
	ActualDate       *time.Time       `json:"actualDate,omitempty"`
	PaymentMethodKey string           `json:"paymentMethodKey"`
	ReceiptURL       string           `json:"receiptURL"`
	ActualNotes      string           `json:"actualNotes"`
	EstimatedAmount  decimal.Decimal  `json:"estimatedAmount"`
	ExpenseCurrency  string           `json:"expenseCurrency"`
	AuditFields
}

// SettlementTransfer is one payment that settles part of the debt between two
// travelers.
type SettlementTransfer struct {
	FromTravelerID string          `json:"fromTravelerID"`
	FromName       string          `json:"fromName"`
	ToTravelerID   string          `json:"toTravelerID"`
	ToName         string          `json:"toName"`
	Amount         decimal.Decimal `json:"amount"`
}

// SettlementSummary is the derived settlement report for a trip, computed at
// read time from the actuals and the forecast snapshot's traveler shares.
type SettlementSummary struct {
	BaseCurrency   string               `json:"baseCurrency"`
	TotalEstimated decimal.Decimal      `json:"totalEstimated"`
	TotalActual    decimal.Decimal      `json:"totalActual"`
	Variance       decimal.Decimal      `json:"variance"`
	Settlements    []SettlementTransfer `json:"settlements"`
}
