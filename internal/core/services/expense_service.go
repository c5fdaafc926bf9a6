package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// expenseService provides business logic for ad-hoc expenses.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tripRepo    portsrepo.TripReader
}

// NewExpenseService creates a new ad-hoc expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, tripRepo portsrepo.TripReader) *expenseService {
	return &expenseService{expenseRepo: expenseRepo, tripRepo: tripRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.AdhocExpense, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("failed to verify trip %s: %w", tripID, err)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must not be negative", apperrors.ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	expense := domain.AdhocExpense{
		ExpenseID:    uuid.NewString(),
		TripID:       tripID,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		IsActive:     isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense", "trip_id", tripID)
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.AdhocExpense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for trip %s: %w", tripID, err)
	}
	if expenses == nil {
		return []domain.AdhocExpense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.AdhocExpense, error) {
	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s for update: %w", expenseID, err)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must not be negative", apperrors.ErrValidation)
	}

	expense := *existing
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.CurrencyCode = req.CurrencyCode
	if req.IsActive != nil {
		expense.IsActive = *req.IsActive
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to update expense", "expense_id", expenseID)
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}
