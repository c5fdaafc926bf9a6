package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// FlightSegmentRequest is one leg of a flight option in a create/update request.
type FlightSegmentRequest struct {
	Origin        string    `json:"origin" binding:"required,len=3,uppercase"`
	Destination   string    `json:"destination" binding:"required,len=3,uppercase"`
	DepartureTime time.Time `json:"departureTime" binding:"required"`
	ArrivalTime   time.Time `json:"arrivalTime" binding:"required"`
	FlightNumber  string    `json:"flightNumber" binding:"max=10"`
}

// CreateFlightRequest defines the structure for creating a flight option.
// Segments are ordered; a round trip carries its outbound and return legs in
// the same option instead of two linked rows.
type CreateFlightRequest struct {
	Airline         string                 `json:"airline" binding:"required,max=100"`
	Description     string                 `json:"description" binding:"max=500"`
	FareKind        string                 `json:"fareKind" binding:"required,oneof=ONE_WAY ROUND_TRIP MULTI_CITY"`
	FarePerTraveler decimal.Decimal        `json:"farePerTraveler" binding:"required"`
	CurrencyCode    string                 `json:"currencyCode" binding:"required,currencycode"`
	TravelerCount   int                    `json:"travelerCount" binding:"required,min=1"`
	Status          string                 `json:"status" binding:"required,oneof=DRAFT SHORTLISTED CONFIRMED NOT_SELECTED"`
	BookingRef      string                 `json:"bookingRef" binding:"max=50"`
	Segments        []FlightSegmentRequest `json:"segments" binding:"required,min=1,dive"`
}

// UpdateFlightRequest mirrors CreateFlightRequest; the whole option including
// segments is replaced.
type UpdateFlightRequest = CreateFlightRequest

// FlightSegmentResponse is one leg of a flight option in API responses.
type FlightSegmentResponse struct {
	SegmentID     string    `json:"segmentID"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	FlightNumber  string    `json:"flightNumber"`
}

// FlightResponse defines the structure for API responses containing a flight option.
type FlightResponse struct {
	FlightID        string                  `json:"flightID"`
	TripID          string                  `json:"tripID"`
	Airline         string                  `json:"airline"`
	Description     string                  `json:"description"`
	FareKind        string                  `json:"fareKind"`
	FarePerTraveler decimal.Decimal         `json:"farePerTraveler"`
	TotalFare       decimal.Decimal         `json:"totalFare"`
	CurrencyCode    string                  `json:"currencyCode"`
	TravelerCount   int                     `json:"travelerCount"`
	Status          string                  `json:"status"`
	BookingRef      string                  `json:"bookingRef"`
	Segments        []FlightSegmentResponse `json:"segments"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// ToFlightResponse converts a domain.FlightOption to FlightResponse DTO
func ToFlightResponse(f *domain.FlightOption) FlightResponse {
	segments := make([]FlightSegmentResponse, len(f.Segments))
	for i, s := range f.Segments {
		segments[i] = FlightSegmentResponse{
			SegmentID:     s.SegmentID,
			Origin:        s.Origin,
			Destination:   s.Destination,
			DepartureTime: s.DepartureTime,
			ArrivalTime:   s.ArrivalTime,
			FlightNumber:  s.FlightNumber,
		}
	}
	return FlightResponse{
		FlightID:        f.FlightID,
		TripID:          f.TripID,
		Airline:         f.Airline,
		Description:     f.Description,
		FareKind:        string(f.FareKind),
		FarePerTraveler: f.FarePerTraveler,
		TotalFare:       f.TotalFare().Round(2),
		CurrencyCode:    f.CurrencyCode,
		TravelerCount:   f.TravelerCount,
		Status:          string(f.Status),
		BookingRef:      f.BookingRef,
		Segments:        segments,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.LastUpdatedAt,
	}
}

// ToListFlightResponse converts a slice of domain flight options to response DTOs.
func ToListFlightResponse(flights []domain.FlightOption) []FlightResponse {
	responses := make([]FlightResponse, len(flights))
	for i := range flights {
		responses[i] = ToFlightResponse(&flights[i])
	}
	return responses
}
