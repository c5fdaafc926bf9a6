package mapping

import (
	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/models"
)

// ToModelExpenseActual converts a domain ExpenseActual to a model ExpenseActual
func ToModelExpenseActual(d domain.ExpenseActual) models.ExpenseActual {
	return models.ExpenseActual{
		ActualID:         d.ActualID,
		TripID:           d.TripID,
		ExpenseID:        d.ExpenseID,
		Module:           string(d.Module),
		Description:      d.Description,
		TravelerID:       d.TravelerID,
		PaidByTravelerID: d.PaidByTravelerID,
		ActualAmount:     d.ActualAmount,
		ActualDate:       d.ActualDate,
		PaymentMethodKey: d.PaymentMethodKey,
		ReceiptURL:       d.ReceiptURL,
		ActualNotes:      d.ActualNotes,
		EstimatedAmount:  d.EstimatedAmount,
		ExpenseCurrency:  d.ExpenseCurrency,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseActual converts a model ExpenseActual to a domain ExpenseActual
func ToDomainExpenseActual(m models.ExpenseActual) domain.ExpenseActual {
	return domain.ExpenseActual{
		ActualID:         m.ActualID,
		TripID:           m.TripID,
		ExpenseID:        m.ExpenseID,
		Module:           domain.CostModule(m.Module),
		Description:      m.Description,
		TravelerID:       m.TravelerID,
		PaidByTravelerID: m.PaidByTravelerID,
		ActualAmount:     m.ActualAmount,
		ActualDate:       m.ActualDate,
		PaymentMethodKey: m.PaymentMethodKey,
		ReceiptURL:       m.ReceiptURL,
		ActualNotes:      m.ActualNotes,
		EstimatedAmount:  m.EstimatedAmount,
		ExpenseCurrency:  m.ExpenseCurrency,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseActualSlice converts a slice of model ExpenseActuals to domain ones
func ToDomainExpenseActualSlice(ms []models.ExpenseActual) []domain.ExpenseActual {
	out := make([]domain.ExpenseActual, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExpenseActual(m)
	}
	return out
}

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Rate:             d.Rate,
		DateEffective:    d.DateEffective,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		DateEffective:    m.DateEffective,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ones
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExchangeRate(m)
	}
	return out
}
