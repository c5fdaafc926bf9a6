package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/utils/splitting"
)

// settlementService manages the actuals ledger of a trip and the settlement
// math derived from it. The ledger is seeded from the forecast snapshot in one
// shot, edited row by row, and only ever emptied as a whole.
type settlementService struct {
	BaseService
	actualsRepo  portsrepo.ActualsRepositoryFacade
	forecastRepo portsrepo.ForecastReader
	travelerRepo portsrepo.TravelerReader
}

// NewSettlementService creates a new actuals and settlement service.
func NewSettlementService(
	actualsRepo portsrepo.ActualsRepositoryFacade,
	forecastRepo portsrepo.ForecastReader,
	travelerRepo portsrepo.TravelerReader,
) *settlementService {
	return &settlementService{
		actualsRepo:  actualsRepo,
		forecastRepo: forecastRepo,
		travelerRepo: travelerRepo,
	}
}

func (s *settlementService) GetActualsState(ctx context.Context, tripID string) (domain.ActualsState, error) {
	count, err := s.actualsRepo.CountActuals(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("failed to count actuals for trip %s: %w", tripID, err)
	}
	if count > 0 {
		return domain.ActualsInitialized, nil
	}
	return domain.NoActuals, nil
}

// TransferForecast seeds one actual row per forecast line item, carrying the
// estimated base-currency amount as the initial actual amount. The repository
// rejects the insert when the trip already has actuals, so a double transfer
// cannot duplicate rows.
func (s *settlementService) TransferForecast(ctx context.Context, tripID string, requesterUserID string) ([]domain.ExpenseActual, error) {
	report, err := s.forecastRepo.FindForecast(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: collect a forecast before transferring to actuals", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to get forecast for trip %s: %w", tripID, err)
	}

	items := report.LineItems()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: forecast for trip %s has no line items", apperrors.ErrConflict, tripID)
	}

	now := time.Now()
	actuals := make([]domain.ExpenseActual, len(items))
	for i, item := range items {
		actuals[i] = domain.ExpenseActual{
			ActualID:        uuid.NewString(),
			TripID:          tripID,
			ExpenseID:       item.SourceID,
			Module:          item.Module,
			Description:     item.Description,
			ActualAmount:    item.Amount,
			EstimatedAmount: item.Amount,
			ExpenseCurrency: item.CurrencyCode,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     requesterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: requesterUserID,
			},
		}
	}

	if err := s.actualsRepo.InsertActuals(ctx, tripID, actuals); err != nil {
		s.LogError(ctx, err, "failed to insert actuals", "trip_id", tripID)
		return nil, fmt.Errorf("failed to transfer forecast for trip %s: %w", tripID, err)
	}

	s.LogInfo(ctx, "forecast transferred to actuals", "trip_id", tripID, "rows", len(actuals))
	return actuals, nil
}

func (s *settlementService) ListActuals(ctx context.Context, tripID string) ([]domain.ExpenseActual, error) {
	actuals, err := s.actualsRepo.ListActuals(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actuals for trip %s: %w", tripID, err)
	}
	if actuals == nil {
		return []domain.ExpenseActual{}, nil
	}
	return actuals, nil
}

func (s *settlementService) UpdateActual(ctx context.Context, actualID string, req dto.UpdateActualRequest, updaterUserID string) (*domain.ExpenseActual, error) {
	actual, err := s.actualsRepo.FindActualByID(ctx, actualID)
	if err != nil {
		return nil, fmt.Errorf("failed to find actual %s for update: %w", actualID, err)
	}

	if req.ActualAmount != nil {
		if req.ActualAmount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: actual amount must not be negative", apperrors.ErrValidation)
		}
		actual.ActualAmount = *req.ActualAmount
	}
	if req.TravelerID != nil {
		if err := s.verifyTraveler(ctx, actual.TripID, *req.TravelerID); err != nil {
			return nil, err
		}
		actual.TravelerID = req.TravelerID
	}
	if req.PaidByTravelerID != nil {
		if err := s.verifyTraveler(ctx, actual.TripID, *req.PaidByTravelerID); err != nil {
			return nil, err
		}
		actual.PaidByTravelerID = req.PaidByTravelerID
	}
	if req.ActualDate != nil {
		actual.ActualDate = req.ActualDate
	}
	if req.PaymentMethodKey != nil {
		actual.PaymentMethodKey = *req.PaymentMethodKey
	}
	if req.ReceiptURL != nil {
		actual.ReceiptURL = *req.ReceiptURL
	}
	if req.ActualNotes != nil {
		actual.ActualNotes = *req.ActualNotes
	}
	actual.LastUpdatedAt = time.Now()
	actual.LastUpdatedBy = updaterUserID

	if err := s.actualsRepo.UpdateActual(ctx, *actual); err != nil {
		s.LogError(ctx, err, "failed to update actual", "actual_id", actualID)
		return nil, fmt.Errorf("failed to update actual %s: %w", actualID, err)
	}
	return actual, nil
}

func (s *settlementService) ResetActuals(ctx context.Context, tripID string) (int64, error) {
	deleted, err := s.actualsRepo.DeleteActuals(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset actuals for trip %s: %w", tripID, err)
	}
	s.LogInfo(ctx, "actuals reset", "trip_id", tripID, "rows_deleted", deleted)
	return int64(deleted), nil
}

// ComputeSettlement nets each sharer's payments against the fair share stored
// in the forecast snapshot, then reduces the balances to pairwise transfers.
// Only rows with a recorded payer count as paid.
func (s *settlementService) ComputeSettlement(ctx context.Context, tripID string) (*domain.SettlementSummary, error) {
	report, err := s.forecastRepo.FindForecast(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for trip %s: %w", tripID, err)
	}

	actuals, err := s.actualsRepo.ListActuals(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actuals for trip %s: %w", tripID, err)
	}
	if len(actuals) == 0 {
		// Nothing recorded (or the ledger was reset): nobody owes anybody.
		return &domain.SettlementSummary{
			BaseCurrency:   report.BaseCurrency,
			TotalEstimated: report.TotalCost,
			TotalActual:    decimal.Zero,
			Variance:       decimal.Zero,
			Settlements:    []domain.SettlementTransfer{},
		}, nil
	}

	totalActual := decimal.Zero
	paidBy := make(map[string]decimal.Decimal)
	for _, a := range actuals {
		totalActual = totalActual.Add(a.ActualAmount)
		if a.PaidByTravelerID != nil {
			paidBy[*a.PaidByTravelerID] = paidBy[*a.PaidByTravelerID].Add(a.ActualAmount)
		}
	}

	balances := make([]splitting.Balance, len(report.TravelerShares))
	for i, share := range report.TravelerShares {
		balances[i] = splitting.Balance{
			TravelerID: share.TravelerID,
			Name:       share.TravelerName,
			Net:        paidBy[share.TravelerID].Sub(share.ShareAmount),
		}
	}

	transfers := splitting.Settle(balances)
	settlements := make([]domain.SettlementTransfer, len(transfers))
	for i, t := range transfers {
		settlements[i] = domain.SettlementTransfer{
			FromTravelerID: t.FromTravelerID,
			FromName:       t.FromName,
			ToTravelerID:   t.ToTravelerID,
			ToName:         t.ToName,
			Amount:         t.Amount,
		}
	}

	return &domain.SettlementSummary{
		BaseCurrency:   report.BaseCurrency,
		TotalEstimated: report.TotalCost,
		TotalActual:    totalActual,
		Variance:       totalActual.Sub(report.TotalCost),
		Settlements:    settlements,
	}, nil
}

func (s *settlementService) verifyTraveler(ctx context.Context, tripID, travelerID string) error {
	traveler, err := s.travelerRepo.FindTravelerByID(ctx, travelerID)
	if err != nil {
		return fmt.Errorf("failed to verify traveler %s: %w", travelerID, err)
	}
	if traveler.TripID != tripID {
		return fmt.Errorf("%w: traveler %s does not belong to trip %s", apperrors.ErrValidation, travelerID, tripID)
	}
	return nil
}
