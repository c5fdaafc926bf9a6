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
type ForecastServiceTestSuite struct {
	suite.Suite
	mockTravelerRepo      *MockTravelerRepository
	mockFlightRepo        *MockFlightReader
	mockAccommodationRepo *MockAccommodationReader
	mockItineraryRepo     *MockItineraryReader
	mockExpenseRepo       *MockExpenseReader
	mockForecastRepo      *MockForecastRepository
	mockFxSvc             *MockFxRateService
	service               portssvc.ForecastSvcFacade

	tripID    string
	primary   domain.Traveler
	companion domain.Traveler
}

func (suite *ForecastServiceTestSuite) SetupTest() {
	suite.mockTravelerRepo = new(MockTravelerRepository)
	suite.mockFlightRepo = new(MockFlightReader)
	suite.mockAccommodationRepo = new(MockAccommodationReader)
	suite.mockItineraryRepo = new(MockItineraryReader)
	suite.mockExpenseRepo = new(MockExpenseReader)
	suite.mockForecastRepo = new(MockForecastRepository)
	suite.mockFxSvc = new(MockFxRateService)

	suite.service = services.NewForecastService(
		suite.mockTravelerRepo,
		suite.mockFlightRepo,
		suite.mockAccommodationRepo,
		suite.mockItineraryRepo,
		suite.mockExpenseRepo,
		suite.mockForecastRepo,
		suite.mockFxSvc,
	)

	suite.tripID = uuid.NewString()
	suite.primary = domain.Traveler{
		TravelerID:   "aaaaaaaa-0000-0000-0000-000000000001",
		TripID:       suite.tripID,
		Name:         "Alice",
		CurrencyCode: "USD",
		IsPrimary:    true,
		IsCostSharer: true,
		IsActive:     true,
	}
	suite.companion = domain.Traveler{
		TravelerID:   "bbbbbbbb-0000-0000-0000-000000000002",
		TripID:       suite.tripID,
		Name:         "Bob",
		CurrencyCode: "EUR",
		IsPrimary:    false,
		IsCostSharer: true,
		IsActive:     true,
	}
}

func (suite *ForecastServiceTestSuite) expectEmptyModules(except ...string) {
	has := func(name string) bool {
		for _, e := range except {
			if e == name {
				return true
			}
		}
		return false
	}
	if !has("flights") {
		suite.mockFlightRepo.On("ListFlightsByStatus", mock.Anything, suite.tripID, mock.Anything).
			Return([]domain.FlightOption{}, nil).Once()
	}
	if !has("accommodations") {
		suite.mockAccommodationRepo.On("ListAccommodationsByStatus", mock.Anything, suite.tripID, mock.Anything).
			Return([]domain.Accommodation{}, nil).Once()
	}
	if !has("itinerary") {
		suite.mockItineraryRepo.On("ListCategories", mock.Anything, suite.tripID).
			Return([]domain.ItineraryCategory{}, nil).Once()
	}
	if !has("expenses") {
		suite.mockExpenseRepo.On("ListActiveExpenses", mock.Anything, suite.tripID).
			Return([]domain.AdhocExpense{}, nil).Once()
	}
}

// --- Test Cases ---

func (suite *ForecastServiceTestSuite) TestCollectForecast_SingleCurrency() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion}, nil).Once()

	suite.mockFlightRepo.On("ListFlightsByStatus", ctx, suite.tripID, []domain.ItemStatus{domain.StatusConfirmed}).
		Return([]domain.FlightOption{{
			FlightID:        uuid.NewString(),
			TripID:          suite.tripID,
			Airline:         "Oceanic",
			FarePerTraveler: decimal.RequireFromString("500.00"),
			CurrencyCode:    "USD",
			TravelerCount:   2,
			Status:          domain.StatusConfirmed,
		}}, nil).Once()
	suite.mockAccommodationRepo.On("ListAccommodationsByStatus", ctx, suite.tripID, []domain.ItemStatus{domain.StatusConfirmed}).
		Return([]domain.Accommodation{{
			AccommodationID: uuid.NewString(),
			TripID:          suite.tripID,
			Name:            "Harbor Hotel",
			TotalPrice:      decimal.RequireFromString("500.00"),
			CurrencyCode:    "USD",
			Status:          domain.StatusConfirmed,
		}}, nil).Once()
	suite.expectEmptyModules("flights", "accommodations")

	suite.mockForecastRepo.On("SaveForecast", ctx, mock.AnythingOfType("domain.ForecastReport")).Return(nil).Once()

	report, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal("USD", report.BaseCurrency)
	suite.True(report.TotalCost.Equal(decimal.RequireFromString("1500.00")), "total %s", report.TotalCost)
	suite.Empty(report.FxItems)
	suite.Equal(2, report.CostSharersCount)

	suite.Require().Len(report.TravelerShares, 2)
	// The primary traveler is first and absorbs any rounding remainder.
	suite.Equal(suite.primary.TravelerID, report.TravelerShares[0].TravelerID)
	suite.True(report.TravelerShares[0].ShareAmount.Equal(decimal.RequireFromString("750.00")))
	suite.True(report.TravelerShares[1].ShareAmount.Equal(decimal.RequireFromString("750.00")))

	suite.Require().Len(report.ModuleBreakdown, 2)
	suite.Equal(domain.ModuleFlights, report.ModuleBreakdown[0].Module)
	suite.True(report.ModuleBreakdown[0].Total.Equal(decimal.RequireFromString("1000.00")))
	suite.Equal(domain.ModuleAccommodations, report.ModuleBreakdown[1].Module)

	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_ConvertsForeignCurrency() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion}, nil).Once()

	suite.mockAccommodationRepo.On("ListAccommodationsByStatus", ctx, suite.tripID, mock.Anything).
		Return([]domain.Accommodation{{
			AccommodationID: uuid.NewString(),
			Name:            "Pension Mozart",
			TotalPrice:      decimal.RequireFromString("100.00"),
			CurrencyCode:    "EUR",
			Status:          domain.StatusConfirmed,
		}}, nil).Once()
	suite.expectEmptyModules("accommodations")

	rate := decimal.RequireFromString("1.10")
	suite.mockFxSvc.On("Convert", ctx, decimal.RequireFromString("100.00"), "EUR", "USD").
		Return(decimal.RequireFromString("110.00"), rate, nil).Once()

	suite.mockForecastRepo.On("SaveForecast", ctx, mock.AnythingOfType("domain.ForecastReport")).Return(nil).Once()

	report, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(report.TotalCost.Equal(decimal.RequireFromString("110.00")))

	// Line items are stored converted; the original amount survives as audit.
	suite.Require().Len(report.ModuleBreakdown, 1)
	item := report.ModuleBreakdown[0].Items[0]
	suite.Equal("USD", item.CurrencyCode)
	suite.True(item.Amount.Equal(decimal.RequireFromString("110.00")))

	suite.Require().Len(report.FxItems, 1)
	suite.Equal("EUR", report.FxItems[0].OriginalCurrency)
	suite.True(report.FxItems[0].OriginalAmount.Equal(decimal.RequireFromString("100.00")))
	suite.True(report.FxItems[0].ExchangeRate.Equal(rate))
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_PerHeadCostExpands() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"DRAFT"}}

	inactive := suite.companion
	inactive.TravelerID = uuid.NewString()
	inactive.IsActive = false

	// Head count is active travelers (2), not cost sharers.
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion, inactive}, nil).Once()

	cost := decimal.RequireFromString("50.00")
	suite.mockItineraryRepo.On("ListCategories", ctx, suite.tripID).
		Return([]domain.ItineraryCategory{{
			CategoryID: uuid.NewString(),
			Name:       "Museums",
			IsActive:   true,
			Status:     domain.StatusDraft,
			Activities: []domain.Activity{{
				ActivityID:   uuid.NewString(),
				Name:         "Louvre",
				Cost:         &cost,
				CostKind:     domain.CostPerHead,
				CurrencyCode: "USD",
			}},
		}}, nil).Once()
	suite.expectEmptyModules("itinerary")

	suite.mockForecastRepo.On("SaveForecast", ctx, mock.Anything).Return(nil).Once()

	report, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(report.TotalCost.Equal(decimal.RequireFromString("100.00")), "50 per head x 2 active, got %s", report.TotalCost)
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_CategoryCostOverridesActivities() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion}, nil).Once()

	categoryCost := decimal.RequireFromString("300.00")
	activityCost := decimal.RequireFromString("999.00")
	suite.mockItineraryRepo.On("ListCategories", ctx, suite.tripID).
		Return([]domain.ItineraryCategory{{
			CategoryID:   uuid.NewString(),
			Name:         "Day Tours",
			IsActive:     true,
			Cost:         &categoryCost,
			CostKind:     domain.CostTotal,
			CurrencyCode: "USD",
			Status:       domain.StatusConfirmed,
			Activities: []domain.Activity{{
				ActivityID:   uuid.NewString(),
				Name:         "Ignored",
				Cost:         &activityCost,
				CostKind:     domain.CostTotal,
				CurrencyCode: "USD",
			}},
		}}, nil).Once()
	suite.expectEmptyModules("itinerary")

	suite.mockForecastRepo.On("SaveForecast", ctx, mock.Anything).Return(nil).Once()

	report, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(report.TotalCost.Equal(categoryCost), "category cost must win, got %s", report.TotalCost)
	suite.Require().Len(report.ModuleBreakdown, 1)
	suite.Len(report.ModuleBreakdown[0].Items, 1)
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_NoPrimaryTraveler() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.companion}, nil).Once()

	_, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "SaveForecast", mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_UnknownStatus() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"BOGUS"}}

	_, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_MissingCurrencyAborts() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion}, nil).Once()

	// An old row priced before the currency column was enforced.
	expenseID := uuid.NewString()
	suite.mockExpenseRepo.On("ListActiveExpenses", ctx, suite.tripID).
		Return([]domain.AdhocExpense{{
			ExpenseID:   expenseID,
			Description: "Airport transfer",
			Amount:      decimal.RequireFromString("80.00"),
			IsActive:    true,
		}}, nil).Once()
	suite.expectEmptyModules("expenses")

	_, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "data integrity")
	suite.Contains(err.Error(), string(domain.ModuleAdhoc))
	suite.Contains(err.Error(), expenseID)
	// The broken row must be rejected before any conversion is attempted.
	suite.mockFxSvc.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "SaveForecast", mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestCollectForecast_FxFailureAborts() {
	ctx := context.Background()
	req := dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}}

	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{suite.primary, suite.companion}, nil).Once()

	suite.mockExpenseRepo.On("ListActiveExpenses", ctx, suite.tripID).
		Return([]domain.AdhocExpense{{
			ExpenseID:    uuid.NewString(),
			Description:  "Visa fees",
			Amount:       decimal.RequireFromString("80.00"),
			CurrencyCode: "JPY",
			IsActive:     true,
		}}, nil).Once()
	suite.expectEmptyModules("expenses")

	suite.mockFxSvc.On("Convert", ctx, mock.Anything, "JPY", "USD").
		Return(decimal.Zero, decimal.Zero, apperrors.ErrRateUnavailable).Once()

	_, err := suite.service.CollectForecast(ctx, suite.tripID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "SaveForecast", mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestConvertShare_Success() {
	ctx := context.Background()
	report := &domain.ForecastReport{
		TripID:       suite.tripID,
		BaseCurrency: "USD",
		TravelerShares: []domain.TravelerShare{{
			TravelerID:       suite.companion.TravelerID,
			TravelerName:     "Bob",
			TravelerCurrency: "EUR",
			ShareAmount:      decimal.RequireFromString("750.00"),
		}},
	}
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).Return(report, nil).Once()
	suite.mockFxSvc.On("Convert", ctx, decimal.RequireFromString("750.00"), "USD", "EUR").
		Return(decimal.RequireFromString("690.00"), decimal.RequireFromString("0.92"), nil).Once()

	conversion, err := suite.service.ConvertShare(ctx, suite.tripID, suite.companion.TravelerID)

	suite.Require().NoError(err)
	suite.Equal("EUR", conversion.DisplayCurrency)
	suite.True(conversion.DisplayAmount.Equal(decimal.RequireFromString("690.00")))
	suite.True(conversion.ShareAmount.Equal(decimal.RequireFromString("750.00")), "stored share stays in base currency")
}

func (suite *ForecastServiceTestSuite) TestConvertShare_TravelerNotInForecast() {
	ctx := context.Background()
	suite.mockForecastRepo.On("FindForecast", ctx, suite.tripID).
		Return(&domain.ForecastReport{TripID: suite.tripID, BaseCurrency: "USD"}, nil).Once()

	_, err := suite.service.ConvertShare(ctx, suite.tripID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestForecastServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
