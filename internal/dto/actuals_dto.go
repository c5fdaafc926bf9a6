package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// UpdateActualRequest defines the editable fields of an expense actual.
// Nil fields are left unchanged.
type UpdateActualRequest struct {
	TravelerID       *string          `json:"travelerID,omitempty" binding:"omitempty,uuid"`
	PaidByTravelerID *string          `json:"paidByTravelerID,omitempty" binding:"omitempty,uuid"`
	ActualAmount     *decimal.Decimal `json:"actualAmount,omitempty"`
	ActualDate       *time.Time       `json:"actualDate,omitempty"`
	PaymentMethodKey *string          `json:"paymentMethodKey,omitempty" binding:"omitempty,max=50"`
	ReceiptURL       *string          `json:"receiptURL,omitempty" binding:"omitempty,url"`
	ActualNotes      *string          `json:"actualNotes,omitempty" binding:"omitempty,max=1000"`
}

// ActualResponse defines the structure for API responses containing an expense actual.
type ActualResponse struct {
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
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ActualsStateResponse reports whether a trip is in FORECAST or ACTUALS mode.
type ActualsStateResponse struct {
	State string `json:"state"`
}

// ResetActualsResponse reports how many actual rows a reset removed.
type ResetActualsResponse struct {
	Deleted int64 `json:"deleted"`
}

// SettlementTransferResponse is one debtor-to-creditor payment.
type SettlementTransferResponse struct {
	FromTravelerID string          `json:"fromTravelerID"`
	FromName       string          `json:"fromName"`
	ToTravelerID   string          `json:"toTravelerID"`
	ToName         string          `json:"toName"`
	Amount         decimal.Decimal `json:"amount"`
}

// SettlementSummaryResponse defines the structure for settlement API responses.
type SettlementSummaryResponse struct {
	BaseCurrency   string                       `json:"baseCurrency"`
	TotalEstimated decimal.Decimal              `json:"totalEstimated"`
	TotalActual    decimal.Decimal              `json:"totalActual"`
	Variance       decimal.Decimal              `json:"variance"`
	Settlements    []SettlementTransferResponse `json:"settlements"`
}

// ToActualResponse converts a domain.ExpenseActual to ActualResponse DTO
func ToActualResponse(a *domain.ExpenseActual) ActualResponse {
	return ActualResponse{
		ActualID:         a.ActualID,
		TripID:           a.TripID,
		ExpenseID:        a.ExpenseID,
		Module:           string(a.Module),
		Description:      a.Description,
		TravelerID:       a.TravelerID,
		PaidByTravelerID: a.PaidByTravelerID,
		ActualAmount:     a.ActualAmount.Round(2),
		ActualDate:       a.ActualDate,
		PaymentMethodKey: a.PaymentMethodKey,
		ReceiptURL:       a.ReceiptURL,
		ActualNotes:      a.ActualNotes,
		EstimatedAmount:  a.EstimatedAmount.Round(2),
		ExpenseCurrency:  a.ExpenseCurrency,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.LastUpdatedAt,
	}
}

// ToListActualResponse converts a slice of domain actuals to response DTOs.
func ToListActualResponse(actuals []domain.ExpenseActual) []ActualResponse {
	responses := make([]ActualResponse, len(actuals))
	for i := range actuals {
		responses[i] = ToActualResponse(&actuals[i])
	}
	return responses
}

// ToSettlementSummaryResponse converts a domain.SettlementSummary to its response DTO.
func ToSettlementSummaryResponse(s *domain.SettlementSummary) SettlementSummaryResponse {
	settlements := make([]SettlementTransferResponse, len(s.Settlements))
	for i, t := range s.Settlements {
		settlements[i] = SettlementTransferResponse{
			FromTravelerID: t.FromTravelerID,
			FromName:       t.FromName,
			ToTravelerID:   t.ToTravelerID,
			ToName:         t.ToName,
			Amount:         t.Amount.Round(2),
		}
	}
	return SettlementSummaryResponse{
		BaseCurrency:   s.BaseCurrency,
		TotalEstimated: s.TotalEstimated.Round(2),
		TotalActual:    s.TotalActual.Round(2),
		Variance:       s.Variance.Round(2),
		Settlements:    settlements,
	}
}
