package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/core/services"
	"github.com/voyago/trip_planner_app/internal/dto"
)

// --- Test Suite ---
type TravelerServiceTestSuite struct {
	suite.Suite
	mockTravelerRepo *MockTravelerRepository
	mockTripRepo     *MockTripRepository
	service          portssvc.TravelerSvcFacade

	tripID string
}

func (suite *TravelerServiceTestSuite) SetupTest() {
	suite.mockTravelerRepo = new(MockTravelerRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.service = services.NewTravelerService(suite.mockTravelerRepo, suite.mockTripRepo)
	suite.tripID = uuid.NewString()
}

// --- Test Cases ---

func (suite *TravelerServiceTestSuite) TestCreateTraveler_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockTripRepo.On("FindTripByID", ctx, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID}, nil).Once()
	suite.mockTravelerRepo.On("SaveTraveler", ctx, mock.AnythingOfType("domain.Traveler")).
		Return(nil).Once()

	traveler, err := suite.service.CreateTraveler(ctx, suite.tripID, dto.CreateTravelerRequest{
		Name:         "Alice",
		CurrencyCode: "USD",
		IsCostSharer: true,
	}, userID)

	suite.Require().NoError(err)
	suite.Equal(suite.tripID, traveler.TripID)
	suite.Equal("Alice", traveler.Name)
	suite.True(traveler.IsActive, "travelers default to active")
	suite.False(traveler.IsPrimary)
	suite.Equal(userID, traveler.CreatedBy)
	suite.NotEmpty(traveler.TravelerID)
}

func (suite *TravelerServiceTestSuite) TestCreateTraveler_TripNotFound() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, suite.tripID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTraveler(ctx, suite.tripID, dto.CreateTravelerRequest{
		Name:         "Alice",
		CurrencyCode: "USD",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTravelerRepo.AssertNotCalled(suite.T(), "SaveTraveler", mock.Anything, mock.Anything)
}

func (suite *TravelerServiceTestSuite) TestCreateTraveler_SecondPrimaryRejected() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID}, nil).Once()
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{{
			TravelerID: uuid.NewString(),
			TripID:     suite.tripID,
			IsPrimary:  true,
			IsActive:   true,
		}}, nil).Once()

	_, err := suite.service.CreateTraveler(ctx, suite.tripID, dto.CreateTravelerRequest{
		Name:         "Bob",
		CurrencyCode: "EUR",
		IsPrimary:    true,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTravelerRepo.AssertNotCalled(suite.T(), "SaveTraveler", mock.Anything, mock.Anything)
}

func (suite *TravelerServiceTestSuite) TestCreateTraveler_InactivePrimaryDoesNotBlock() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID}, nil).Once()
	// The old primary was deactivated; a new one may take over.
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{{
			TravelerID: uuid.NewString(),
			TripID:     suite.tripID,
			IsPrimary:  true,
			IsActive:   false,
		}}, nil).Once()
	suite.mockTravelerRepo.On("SaveTraveler", ctx, mock.Anything).Return(nil).Once()

	traveler, err := suite.service.CreateTraveler(ctx, suite.tripID, dto.CreateTravelerRequest{
		Name:         "Bob",
		CurrencyCode: "EUR",
		IsPrimary:    true,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(traveler.IsPrimary)
}

func (suite *TravelerServiceTestSuite) TestUpdateTraveler_PromoteToPrimaryConflicts() {
	ctx := context.Background()
	travelerID := uuid.NewString()
	suite.mockTravelerRepo.On("FindTravelerByID", ctx, travelerID).
		Return(&domain.Traveler{
			TravelerID: travelerID,
			TripID:     suite.tripID,
			IsActive:   true,
		}, nil).Once()
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{{
			TravelerID: uuid.NewString(),
			TripID:     suite.tripID,
			IsPrimary:  true,
			IsActive:   true,
		}}, nil).Once()

	isPrimary := true
	_, err := suite.service.UpdateTraveler(ctx, travelerID, dto.UpdateTravelerRequest{IsPrimary: &isPrimary}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TravelerServiceTestSuite) TestUpdateTraveler_PrimaryKeepsItself() {
	ctx := context.Background()
	travelerID := uuid.NewString()
	existing := domain.Traveler{
		TravelerID: travelerID,
		TripID:     suite.tripID,
		Name:       "Alice",
		IsPrimary:  true,
		IsActive:   true,
	}
	suite.mockTravelerRepo.On("FindTravelerByID", ctx, travelerID).Return(&existing, nil).Once()
	// The exclusivity check must not trip over the traveler's own row.
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{existing}, nil).Once()
	suite.mockTravelerRepo.On("UpdateTraveler", ctx, mock.AnythingOfType("domain.Traveler")).
		Return(nil).Once()

	name := "Alicia"
	updated, err := suite.service.UpdateTraveler(ctx, travelerID, dto.UpdateTravelerRequest{Name: &name}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Alicia", updated.Name)
	suite.True(updated.IsPrimary)
}

func (suite *TravelerServiceTestSuite) TestGetPrimaryTraveler_NoneIsConflict() {
	ctx := context.Background()
	suite.mockTravelerRepo.On("ListTravelers", ctx, suite.tripID).
		Return([]domain.Traveler{{TravelerID: uuid.NewString(), IsPrimary: false, IsActive: true}}, nil).Once()

	_, err := suite.service.GetPrimaryTraveler(ctx, suite.tripID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestTravelerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TravelerServiceTestSuite))
}
