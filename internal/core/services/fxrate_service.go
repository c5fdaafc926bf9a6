package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
)

// fxRateService resolves conversion rates between currencies. Every rate
// fetched from the provider is persisted, so when the provider is unreachable
// the most recent stored rate (direct or inverted) still serves conversions.
type fxRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	provider portssvc.RateProvider
}

// NewFxRateService creates a new exchange rate service.
func NewFxRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, provider portssvc.RateProvider) *fxRateService {
	return &fxRateService{rateRepo: rateRepo, provider: provider}
}

func (s *fxRateService) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if len(from) != 3 || len(to) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.provider.FetchRate(ctx, from, to)
	if err == nil {
		if saveErr := s.saveSnapshot(ctx, from, to, rate); saveErr != nil {
			// A stale snapshot beats no snapshot; keep serving the live rate.
			s.LogError(ctx, saveErr, "failed to persist fetched exchange rate", "from", from, "to", to)
		}
		return rate, nil
	}
	s.LogDebug(ctx, "rate provider unavailable, falling back to stored rate",
		"from", from, "to", to, "provider_error", err.Error())

	stored, storedErr := s.rateRepo.FindExchangeRate(ctx, from, to)
	if storedErr != nil {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s->%s", apperrors.ErrRateUnavailable, from, to)
	}
	return stored.Rate, nil
}

func (s *fxRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return amount.Mul(rate), rate, nil
}

func (s *fxRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *fxRateService) saveSnapshot(ctx context.Context, from, to string, rate decimal.Decimal) error {
	now := time.Now()
	return s.rateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rate,
		DateEffective:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	})
}
