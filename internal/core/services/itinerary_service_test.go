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
type ItineraryServiceTestSuite struct {
	suite.Suite
	mockItineraryRepo *MockItineraryRepository
	mockTripRepo      *MockTripRepository
	service           portssvc.ItinerarySvcFacade

	tripID string
}

func (suite *ItineraryServiceTestSuite) SetupTest() {
	suite.mockItineraryRepo = new(MockItineraryRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.service = services.NewItineraryService(suite.mockItineraryRepo, suite.mockTripRepo)
	suite.tripID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ItineraryServiceTestSuite) TestReorderCategories_Success() {
	ctx := context.Background()
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()
	suite.mockItineraryRepo.On("ListCategories", ctx, suite.tripID).
		Return([]domain.ItineraryCategory{
			{CategoryID: a, SortOrder: 0},
			{CategoryID: b, SortOrder: 1},
			{CategoryID: c, SortOrder: 2},
		}, nil).Once()
	newOrder := []string{c, a, b}
	suite.mockItineraryRepo.On("ReorderCategories", ctx, suite.tripID, newOrder).Return(nil).Once()

	err := suite.service.ReorderCategories(ctx, suite.tripID, dto.ReorderRequest{OrderedIDs: newOrder}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockItineraryRepo.AssertExpectations(suite.T())
}

func (suite *ItineraryServiceTestSuite) TestReorderCategories_MissingID() {
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()
	suite.mockItineraryRepo.On("ListCategories", ctx, suite.tripID).
		Return([]domain.ItineraryCategory{
			{CategoryID: a},
			{CategoryID: b},
		}, nil).Once()

	err := suite.service.ReorderCategories(ctx, suite.tripID, dto.ReorderRequest{OrderedIDs: []string{a}}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItineraryRepo.AssertNotCalled(suite.T(), "ReorderCategories", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItineraryServiceTestSuite) TestReorderCategories_ForeignID() {
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()
	suite.mockItineraryRepo.On("ListCategories", ctx, suite.tripID).
		Return([]domain.ItineraryCategory{
			{CategoryID: a},
			{CategoryID: b},
		}, nil).Once()

	err := suite.service.ReorderCategories(ctx, suite.tripID, dto.ReorderRequest{OrderedIDs: []string{a, uuid.NewString()}}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ItineraryServiceTestSuite) TestReorderActivities_DuplicateID() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	x, y := uuid.NewString(), uuid.NewString()
	suite.mockItineraryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.ItineraryCategory{
			CategoryID: categoryID,
			Activities: []domain.Activity{{ActivityID: x}, {ActivityID: y}},
		}, nil).Once()

	err := suite.service.ReorderActivities(ctx, categoryID, dto.ReorderRequest{OrderedIDs: []string{x, x}}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ItineraryServiceTestSuite) TestCreateActivity_AppendsSortOrder() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockItineraryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.ItineraryCategory{
			CategoryID: categoryID,
			Activities: []domain.Activity{{ActivityID: uuid.NewString()}, {ActivityID: uuid.NewString()}},
		}, nil).Once()
	suite.mockItineraryRepo.On("SaveActivity", ctx, mock.AnythingOfType("domain.Activity")).
		Return(nil).Once()

	activity, err := suite.service.CreateActivity(ctx, categoryID, dto.CreateActivityRequest{Name: "Snorkeling"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(2, activity.SortOrder, "new activity goes to the end")
	suite.Nil(activity.Cost)
}

func (suite *ItineraryServiceTestSuite) TestCreateActivity_PricedWithoutCurrency() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockItineraryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.ItineraryCategory{CategoryID: categoryID}, nil).Once()

	cost := decimal.RequireFromString("40.00")
	_, err := suite.service.CreateActivity(ctx, categoryID, dto.CreateActivityRequest{
		Name:     "Snorkeling",
		Cost:     &cost,
		CostKind: "TOTAL",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItineraryRepo.AssertNotCalled(suite.T(), "SaveActivity", mock.Anything, mock.Anything)
}

func (suite *ItineraryServiceTestSuite) TestCreateActivity_NegativeCost() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockItineraryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.ItineraryCategory{CategoryID: categoryID}, nil).Once()

	cost := decimal.RequireFromString("-1.00")
	_, err := suite.service.CreateActivity(ctx, categoryID, dto.CreateActivityRequest{
		Name:         "Snorkeling",
		Cost:         &cost,
		CostKind:     "TOTAL",
		CurrencyCode: "USD",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestItineraryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItineraryServiceTestSuite))
}
