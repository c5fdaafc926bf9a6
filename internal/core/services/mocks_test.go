package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// --- Mock TravelerRepository ---
type MockTravelerRepository struct {
	mock.Mock
}

func (m *MockTravelerRepository) FindTravelerByID(ctx context.Context, travelerID string) (*domain.Traveler, error) {
	args := m.Called(ctx, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Traveler), args.Error(1)
}

func (m *MockTravelerRepository) ListTravelers(ctx context.Context, tripID string) ([]domain.Traveler, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Traveler), args.Error(1)
}

func (m *MockTravelerRepository) SaveTraveler(ctx context.Context, traveler domain.Traveler) error {
	args := m.Called(ctx, traveler)
	return args.Error(0)
}

func (m *MockTravelerRepository) UpdateTraveler(ctx context.Context, traveler domain.Traveler) error {
	args := m.Called(ctx, traveler)
	return args.Error(0)
}

func (m *MockTravelerRepository) DeleteTraveler(ctx context.Context, travelerID string) error {
	args := m.Called(ctx, travelerID)
	return args.Error(0)
}

// --- Mock FlightRepository (reader only) ---
type MockFlightReader struct {
	mock.Mock
}

func (m *MockFlightReader) FindFlightByID(ctx context.Context, flightID string) (*domain.FlightOption, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightOption), args.Error(1)
}

func (m *MockFlightReader) ListFlights(ctx context.Context, tripID string) ([]domain.FlightOption, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOption), args.Error(1)
}

func (m *MockFlightReader) ListFlightsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.FlightOption, error) {
	args := m.Called(ctx, tripID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOption), args.Error(1)
}

// --- Mock AccommodationRepository (reader only) ---
type MockAccommodationReader struct {
	mock.Mock
}

func (m *MockAccommodationReader) FindAccommodationByID(ctx context.Context, accommodationID string) (*domain.Accommodation, error) {
	args := m.Called(ctx, accommodationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationReader) ListAccommodations(ctx context.Context, tripID string) ([]domain.Accommodation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationReader) ListAccommodationsByStatus(ctx context.Context, tripID string, statuses []domain.ItemStatus) ([]domain.Accommodation, error) {
	args := m.Called(ctx, tripID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

// --- Mock ItineraryRepository (reader only) ---
type MockItineraryReader struct {
	mock.Mock
}

func (m *MockItineraryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ItineraryCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItineraryCategory), args.Error(1)
}

func (m *MockItineraryReader) ListCategories(ctx context.Context, tripID string) ([]domain.ItineraryCategory, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItineraryCategory), args.Error(1)
}

func (m *MockItineraryReader) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// --- Mock ExpenseRepository (reader only) ---
type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) FindExpenseByID(ctx context.Context, expenseID string) (*domain.AdhocExpense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdhocExpense), args.Error(1)
}

func (m *MockExpenseReader) ListExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdhocExpense), args.Error(1)
}

func (m *MockExpenseReader) ListActiveExpenses(ctx context.Context, tripID string) ([]domain.AdhocExpense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdhocExpense), args.Error(1)
}

// --- Mock ForecastRepository ---
type MockForecastRepository struct {
	mock.Mock
}

func (m *MockForecastRepository) FindForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastReport), args.Error(1)
}

func (m *MockForecastRepository) SaveForecast(ctx context.Context, report domain.ForecastReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// --- Mock ActualsRepository ---
type MockActualsRepository struct {
	mock.Mock
}

func (m *MockActualsRepository) FindActualByID(ctx context.Context, actualID string) (*domain.ExpenseActual, error) {
	args := m.Called(ctx, actualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseActual), args.Error(1)
}

func (m *MockActualsRepository) ListActuals(ctx context.Context, tripID string) ([]domain.ExpenseActual, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseActual), args.Error(1)
}

func (m *MockActualsRepository) CountActuals(ctx context.Context, tripID string) (int, error) {
	args := m.Called(ctx, tripID)
	return args.Int(0), args.Error(1)
}

func (m *MockActualsRepository) InsertActuals(ctx context.Context, tripID string, actuals []domain.ExpenseActual) error {
	args := m.Called(ctx, tripID, actuals)
	return args.Error(0)
}

func (m *MockActualsRepository) UpdateActual(ctx context.Context, actual domain.ExpenseActual) error {
	args := m.Called(ctx, actual)
	return args.Error(0)
}

func (m *MockActualsRepository) DeleteActuals(ctx context.Context, tripID string) (int, error) {
	args := m.Called(ctx, tripID)
	return args.Int(0), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock FxRateService ---
type MockFxRateService struct {
	mock.Mock
}

func (m *MockFxRateService) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFxRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockFxRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock TripRepository ---
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

// --- Mock ItineraryRepository (reader + writer) ---
type MockItineraryRepository struct {
	MockItineraryReader
}

func (m *MockItineraryRepository) SaveCategory(ctx context.Context, category domain.ItineraryCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockItineraryRepository) UpdateCategory(ctx context.Context, category domain.ItineraryCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockItineraryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockItineraryRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockItineraryRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockItineraryRepository) DeleteActivity(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

func (m *MockItineraryRepository) ReorderCategories(ctx context.Context, tripID string, orderedIDs []string) error {
	args := m.Called(ctx, tripID, orderedIDs)
	return args.Error(0)
}

func (m *MockItineraryRepository) ReorderActivities(ctx context.Context, categoryID string, orderedIDs []string) error {
	args := m.Called(ctx, categoryID, orderedIDs)
	return args.Error(0)
}
