package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/core/services"
)

// --- Test Suite ---
type FxRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	mockProvider *MockRateProvider
	service      portssvc.FxRateSvcFacade
}

func (suite *FxRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewFxRateService(suite.mockRateRepo, suite.mockProvider)
}

// --- Test Cases ---

func (suite *FxRateServiceTestSuite) TestGetRate_SameCurrency() {
	ctx := context.Background()

	rate, err := suite.service.GetRate(ctx, "usd", "USD")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FxRateServiceTestSuite) TestGetRate_InvalidCode() {
	ctx := context.Background()

	_, err := suite.service.GetRate(ctx, "US", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FxRateServiceTestSuite) TestGetRate_ProviderRateIsSnapshotted() {
	ctx := context.Background()
	live := decimal.RequireFromString("0.92")
	suite.mockProvider.On("FetchRate", ctx, "USD", "EUR").Return(live, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "EUR" && r.Rate.Equal(live) && r.CreatedBy == "system"
	})).Return(nil).Once()

	rate, err := suite.service.GetRate(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(live))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *FxRateServiceTestSuite) TestGetRate_SnapshotFailureDoesNotBlockRate() {
	ctx := context.Background()
	live := decimal.RequireFromString("0.92")
	suite.mockProvider.On("FetchRate", ctx, "USD", "EUR").Return(live, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.Anything).Return(errors.New("db down")).Once()

	rate, err := suite.service.GetRate(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(live))
}

func (suite *FxRateServiceTestSuite) TestGetRate_FallsBackToStoredRate() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRate", ctx, "USD", "EUR").
		Return(decimal.Zero, errors.New("connection refused")).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "EUR").
		Return(&domain.ExchangeRate{
			FromCurrencyCode: "USD",
			ToCurrencyCode:   "EUR",
			Rate:             decimal.RequireFromString("0.90"),
		}, nil).Once()

	rate, err := suite.service.GetRate(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.90")))
}

func (suite *FxRateServiceTestSuite) TestGetRate_Unavailable() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRate", ctx, "USD", "EUR").
		Return(decimal.Zero, errors.New("connection refused")).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "EUR").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetRate(ctx, "USD", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *FxRateServiceTestSuite) TestConvert_MultipliesByRate() {
	ctx := context.Background()
	live := decimal.RequireFromString("1.10")
	suite.mockProvider.On("FetchRate", ctx, "EUR", "USD").Return(live, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.Anything).Return(nil).Once()

	converted, rate, err := suite.service.Convert(ctx, decimal.RequireFromString("200.00"), "EUR", "USD")

	suite.Require().NoError(err)
	suite.True(rate.Equal(live))
	suite.True(converted.Equal(decimal.RequireFromString("220.00")))
}

func (suite *FxRateServiceTestSuite) TestConvert_RoundTripWithinTolerance() {
	ctx := context.Background()
	provider := errors.New("connection refused")
	direct := decimal.RequireFromString("0.9132")
	// The repository derives the reverse direction as 1/rate when only the
	// direct row is stored; the stub returns the same derivation.
	inverse := decimal.NewFromInt(1).Div(direct)

	suite.mockProvider.On("FetchRate", ctx, "USD", "EUR").Return(decimal.Zero, provider).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "EUR").
		Return(&domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: direct}, nil).Once()
	suite.mockProvider.On("FetchRate", ctx, "EUR", "USD").Return(decimal.Zero, provider).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "EUR", "USD").
		Return(&domain.ExchangeRate{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: inverse}, nil).Once()

	original := decimal.RequireFromString("200.00")
	there, _, err := suite.service.Convert(ctx, original, "USD", "EUR")
	suite.Require().NoError(err)
	back, _, err := suite.service.Convert(ctx, there, "EUR", "USD")
	suite.Require().NoError(err)

	drift := back.Sub(original).Abs()
	suite.True(drift.LessThan(decimal.RequireFromString("0.01")),
		"round trip drifted by %s", drift)
}

func (suite *FxRateServiceTestSuite) TestListRates_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListExchangeRates", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func TestFxRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FxRateServiceTestSuite))
}
