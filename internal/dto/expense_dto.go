package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CreateExpenseRequest defines the structure for creating an ad-hoc expense.
type CreateExpenseRequest struct {
	Description  string          `json:"description" binding:"required,max=500"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	IsActive     *bool           `json:"isActive,omitempty"` // defaults to true
}

// UpdateExpenseRequest mirrors CreateExpenseRequest.
type UpdateExpenseRequest = CreateExpenseRequest

// ExpenseResponse defines the structure for API responses containing an ad-hoc expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	TripID       string          `json:"tripID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToExpenseResponse converts a domain.AdhocExpense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.AdhocExpense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		TripID:       e.TripID,
		Description:  e.Description,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.LastUpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain expenses to response DTOs.
func ToListExpenseResponse(expenses []domain.AdhocExpense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
