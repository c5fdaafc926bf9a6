package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/handlers"
	"github.com/voyago/trip_planner_app/internal/middleware"
)

// --- Mock ForecastService ---
type MockForecastService struct {
	mock.Mock
}

func (m *MockForecastService) CollectForecast(ctx context.Context, tripID string, req dto.CollectForecastRequest, requesterUserID string) (*domain.ForecastReport, error) {
	args := m.Called(ctx, tripID, req, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastReport), args.Error(1)
}
func (m *MockForecastService) GetForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastReport), args.Error(1)
}
func (m *MockForecastService) ConvertShare(ctx context.Context, tripID string, travelerID string) (*domain.ShareConversion, error) {
	args := m.Called(ctx, tripID, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareConversion), args.Error(1)
}
func (m *MockForecastService) ExportForecast(ctx context.Context, tripID string) ([]byte, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ForecastSvcFacade = (*MockForecastService)(nil)

// --- Test Suite ---
type ForecastHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockForecastService *MockForecastService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ForecastHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tpa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ForecastHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockForecastService = new(MockForecastService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterForecastRoutes(v1, suite.mockForecastService)
}

func (suite *ForecastHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

// --- Test Cases ---

func (suite *ForecastHandlerTestSuite) TestCollectForecast_Success() {
	tripID := uuid.NewString()
	report := &domain.ForecastReport{
		TripID:           tripID,
		BaseCurrency:     "USD",
		TotalCost:        decimal.RequireFromString("1500.00"),
		CostSharersCount: 2,
		Statuses:         []domain.ItemStatus{domain.StatusConfirmed},
		CollectedAt:      time.Now(),
	}

	suite.mockForecastService.On("CollectForecast",
		mock.AnythingOfType("*context.valueCtx"),
		tripID,
		mock.MatchedBy(func(req dto.CollectForecastRequest) bool {
			return len(req.Statuses) == 1 && req.Statuses[0] == "CONFIRMED"
		}),
		mock.AnythingOfType("string"),
	).Return(report, nil).Once()

	body, _ := json.Marshal(dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}})
	url := fmt.Sprintf("/api/v1/trips/%s/forecast", tripID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, url, body))

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ForecastReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(tripID, responseBody.TripID)
	suite.Equal("USD", responseBody.BaseCurrency)
	suite.True(responseBody.TotalCost.Equal(decimal.RequireFromString("1500.00")))

	suite.mockForecastService.AssertExpectations(suite.T())
}

func (suite *ForecastHandlerTestSuite) TestCollectForecast_InvalidStatusRejectedByBinding() {
	tripID := uuid.NewString()
	body := []byte(`{"statuses":["BOGUS"]}`)
	url := fmt.Sprintf("/api/v1/trips/%s/forecast", tripID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, url, body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockForecastService.AssertNotCalled(suite.T(), "CollectForecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForecastHandlerTestSuite) TestCollectForecast_NoPrimaryTraveler() {
	tripID := uuid.NewString()
	suite.mockForecastService.On("CollectForecast",
		mock.AnythingOfType("*context.valueCtx"), tripID, mock.Anything, mock.AnythingOfType("string"),
	).Return(nil, fmt.Errorf("%w: trip has no active primary traveler", apperrors.ErrConflict)).Once()

	body, _ := json.Marshal(dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}})
	url := fmt.Sprintf("/api/v1/trips/%s/forecast", tripID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, url, body))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ForecastHandlerTestSuite) TestGetForecast_NotFound() {
	tripID := uuid.NewString()
	suite.mockForecastService.On("GetForecast",
		mock.AnythingOfType("*context.valueCtx"), tripID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/trips/%s/forecast", tripID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ForecastHandlerTestSuite) TestExportForecast_ReturnsWorkbook() {
	tripID := uuid.NewString()
	workbook := []byte("PK\x03\x04fake-xlsx")
	suite.mockForecastService.On("ExportForecast",
		mock.AnythingOfType("*context.valueCtx"), tripID,
	).Return(workbook, nil).Once()

	url := fmt.Sprintf("/api/v1/trips/%s/forecast/export", tripID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
	suite.Equal(workbook, w.Body.Bytes())
}

func (suite *ForecastHandlerTestSuite) TestCollectForecast_Unauthorized() {
	tripID := uuid.NewString()
	body, _ := json.Marshal(dto.CollectForecastRequest{Statuses: []string{"CONFIRMED"}})
	url := fmt.Sprintf("/api/v1/trips/%s/forecast", tripID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockForecastService.AssertNotCalled(suite.T(), "CollectForecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestForecastHandler(t *testing.T) {
	suite.Run(t, new(ForecastHandlerTestSuite))
}
