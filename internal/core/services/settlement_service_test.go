package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/core/services"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// --- Test Suite ---
type SettlementServiceTestSuite struct {
	suite.Suite
	mockActualsRepo  *MockActualsRepository
	mockForecastRepo *MockForecastRepository
	mockTravelerRepo *MockTravelerRepository
	service          portssvc.ActualsSvcFacade

	tripID string
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockActualsRepo = new(MockActualsRepository)
	suite.mockForecastRepo = new(MockForecastRepository)
	suite.mockTravelerRepo = new(MockTravelerRepository)
	suite.service = services.NewSettlementService(suite.mockActualsRepo, suite.mockForecastRepo, suite.mockTravelerRepo)
	suite.tripID = uuid.NewString()
}

func (suite *SettlementServiceTestSuite) forecastWithShares(shares ...domain.TravelerShare) *domain.ForecastReport {
	return &domain.ForecastReport{
		TripID:       suite.tripID,
		BaseCurrency: "USD",
		TotalCost:    decimal.RequireFromString("500.00"),
		ModuleBreakdown: []domain.ModuleBreakdown{{
			Module: domain.ModuleFlights,
			Items: []domain.CostLineItem{{
				Module:       domain.ModuleFlights,
				SourceID:     "flight-1",
				Description:  "Oceanic",
				Amount:       decimal.RequireFromString("500.00"),
				CurrencyCode: "USD",
				Status:       domain.StatusConfirmed,
			}},
			Total:        decimal.RequireFromString("500.00"),
			CurrencyCode: "USD",
		}},
		TravelerShares: shares,
	}
}

// --- Test Cases ---

func (suite *SettlementServiceTestSuite) TestGetActualsState() {
	ctx := context.Background()
	suite.mockActualsRepo.On("CountActuals", ctx, suite.tripID).Return(0, nil).Once()
	state, err := suite.service.GetActualsState(ctx, suite.tripID)
	suite.Require().NoError(err)
	suite.Equal(domain.NoActuals, state)

	suite.mockActualsRepo.On("CountActuals", ctx, suite.tripID).Return(3, nil).Once()
	state, err = suite.service.GetActualsState(ctx, suite.tripID)
	suite.Require().NoError(err)
	suite.Equal(domain.ActualsInitialized, state)
}

func (suite *SettlementServiceTestSuite) TestTransferForecast_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).
		Return(suite.forecastWithShares(), nil).Once()
	suite.mockActualsRepo.On("InsertActuals", ctx, suite.tripID, mock.AnythingOfType("[]domain.ExpenseActual")).
		Return(nil).Once()

	actuals, err := suite.service.TransferForecast(ctx, suite.tripID, userID)

	suite.Require().NoError(err)
	suite.Require().Len(actuals, 1)
	row := actuals[0]
	suite.Equal(suite.tripID, row.TripID)
	suite.Equal("flight-1", row.ExpenseID)
	suite.Equal(domain.ModuleFlights, row.Module)
	suite.True(row.ActualAmount.Equal(decimal.RequireFromString("500.00")))
	suite.True(row.EstimatedAmount.Equal(row.ActualAmount), "actual seeds from the estimate")
	suite.Equal("USD", row.ExpenseCurrency)
	suite.Nil(row.PaidByTravelerID)
	suite.Equal(userID, row.CreatedBy)
	suite.mockActualsRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestTransferForecast_NoForecast() {
	ctx := context.Background()
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TransferForecast(ctx, suite.tripID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict, "a missing forecast surfaces as a conflict, not a 404")
	suite.mockActualsRepo.AssertNotCalled(suite.T(), "InsertActuals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestTransferForecast_EmptyForecast() {
	ctx := context.Background()
	report := suite.forecastWithShares()
	report.ModuleBreakdown = nil
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).Return(report, nil).Once()

	_, err := suite.service.TransferForecast(ctx, suite.tripID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *SettlementServiceTestSuite) TestUpdateActual_NegativeAmount() {
	ctx := context.Background()
	actualID := uuid.NewString()
	suite.mockActualsRepo.On("FindActualByID", ctx, actualID).
		Return(&domain.ExpenseActual{ActualID: actualID, TripID: suite.tripID}, nil).Once()

	negative := decimal.RequireFromString("-5.00")
	_, err := suite.service.UpdateActual(ctx, actualID, dto.UpdateActualRequest{ActualAmount: &negative}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockActualsRepo.AssertNotCalled(suite.T(), "UpdateActual", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestUpdateActual_PayerFromAnotherTrip() {
	ctx := context.Background()
	actualID := uuid.NewString()
	payerID := uuid.NewString()
	suite.mockActualsRepo.On("FindActualByID", ctx, actualID).
		Return(&domain.ExpenseActual{ActualID: actualID, TripID: suite.tripID}, nil).Once()
	suite.mockTravelerRepo.On("FindTravelerByID", ctx, payerID).
		Return(&domain.Traveler{TravelerID: payerID, TripID: uuid.NewString()}, nil).Once()

	_, err := suite.service.UpdateActual(ctx, actualID, dto.UpdateActualRequest{PaidByTravelerID: &payerID}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettlementServiceTestSuite) TestUpdateActual_RecordsPayer() {
	ctx := context.Background()
	actualID := uuid.NewString()
	payerID := uuid.NewString()
	userID := uuid.NewString()
	suite.mockActualsRepo.On("FindActualByID", ctx, actualID).
		Return(&domain.ExpenseActual{ActualID: actualID, TripID: suite.tripID}, nil).Once()
	suite.mockTravelerRepo.On("FindTravelerByID", ctx, payerID).
		Return(&domain.Traveler{TravelerID: payerID, TripID: suite.tripID}, nil).Once()
	suite.mockActualsRepo.On("UpdateActual", ctx, mock.AnythingOfType("domain.ExpenseActual")).
		Return(nil).Once()

	amount := decimal.RequireFromString("123.45")
	updated, err := suite.service.UpdateActual(ctx, actualID, dto.UpdateActualRequest{
		ActualAmount:     &amount,
		PaidByTravelerID: &payerID,
	}, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.PaidByTravelerID)
	suite.Equal(payerID, *updated.PaidByTravelerID)
	suite.True(updated.ActualAmount.Equal(amount))
	suite.Equal(userID, updated.LastUpdatedBy)
}

func (suite *SettlementServiceTestSuite) TestResetActuals() {
	ctx := context.Background()
	suite.mockActualsRepo.On("DeleteActuals", ctx, suite.tripID).Return(4, nil).Once()

	deleted, err := suite.service.ResetActuals(ctx, suite.tripID)

	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)
}

func (suite *SettlementServiceTestSuite) TestComputeSettlement_SinglePayer() {
	ctx := context.Background()
	alice := "aaaaaaaa-0000-0000-0000-000000000001"
	bob := "bbbbbbbb-0000-0000-0000-000000000002"

	report := suite.forecastWithShares(
		domain.TravelerShare{TravelerID: alice, TravelerName: "Alice", ShareAmount: decimal.RequireFromString("250.00")},
		domain.TravelerShare{TravelerID: bob, TravelerName: "Bob", ShareAmount: decimal.RequireFromString("250.00")},
	)
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).Return(report, nil).Once()
	suite.mockActualsRepo.On("ListActuals", ctx, suite.tripID).Return([]domain.ExpenseActual{{
		ActualID:         uuid.NewString(),
		TripID:           suite.tripID,
		ActualAmount:     decimal.RequireFromString("500.00"),
		PaidByTravelerID: &alice,
	}}, nil).Once()

	summary, err := suite.service.ComputeSettlement(ctx, suite.tripID)

	suite.Require().NoError(err)
	suite.Equal("USD", summary.BaseCurrency)
	suite.True(summary.TotalActual.Equal(decimal.RequireFromString("500.00")))
	suite.True(summary.Variance.IsZero(), "actuals match the estimate, variance %s", summary.Variance)
	suite.Require().Len(summary.Settlements, 1)
	suite.Equal(bob, summary.Settlements[0].FromTravelerID)
	suite.Equal(alice, summary.Settlements[0].ToTravelerID)
	suite.True(summary.Settlements[0].Amount.Equal(decimal.RequireFromString("250.00")))
}

func (suite *SettlementServiceTestSuite) TestComputeSettlement_UnassignedRowsCountTowardVariance() {
	ctx := context.Background()
	alice := "aaaaaaaa-0000-0000-0000-000000000001"

	report := suite.forecastWithShares(
		domain.TravelerShare{TravelerID: alice, TravelerName: "Alice", ShareAmount: decimal.RequireFromString("500.00")},
	)
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).Return(report, nil).Once()
	// One row has no recorded payer: it raises the actual total but credits nobody.
	suite.mockActualsRepo.On("ListActuals", ctx, suite.tripID).Return([]domain.ExpenseActual{
		{ActualID: uuid.NewString(), ActualAmount: decimal.RequireFromString("500.00"), PaidByTravelerID: &alice},
		{ActualID: uuid.NewString(), ActualAmount: decimal.RequireFromString("75.00")},
	}, nil).Once()

	summary, err := suite.service.ComputeSettlement(ctx, suite.tripID)

	suite.Require().NoError(err)
	suite.True(summary.TotalActual.Equal(decimal.RequireFromString("575.00")))
	suite.True(summary.Variance.Equal(decimal.RequireFromString("75.00")))
	suite.Empty(summary.Settlements, "alice paid exactly her share")
}

func (suite *SettlementServiceTestSuite) TestComputeSettlement_NoActualsYieldsEmptySettlement() {
	ctx := context.Background()
	// After a reset (or before any transfer) the ledger is empty; the
	// settlement query still answers, with nobody owing anybody.
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).
		Return(suite.forecastWithShares(), nil).Once()
	suite.mockActualsRepo.On("ListActuals", ctx, suite.tripID).
		Return([]domain.ExpenseActual{}, nil).Once()

	summary, err := suite.service.ComputeSettlement(ctx, suite.tripID)

	suite.Require().NoError(err)
	suite.Equal("USD", summary.BaseCurrency)
	suite.True(summary.TotalEstimated.Equal(decimal.RequireFromString("500.00")))
	suite.True(summary.TotalActual.IsZero())
	suite.True(summary.Variance.IsZero())
	suite.NotNil(summary.Settlements)
	suite.Empty(summary.Settlements)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
