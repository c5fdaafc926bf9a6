package domain

import "github.com/shopspring/decimal"

// AdhocExpense is a free-form cost attached to a trip outside the planning
// modules (visa fees, travel insurance, ...). Only active expenses enter the
// forecast; there is no planning status on them.
type AdhocExpense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	TripID       string          `json:"tripID"`    // FK -> Trip.tripID
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
