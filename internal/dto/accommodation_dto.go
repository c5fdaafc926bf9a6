package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CreateAccommodationRequest defines the structure for creating an accommodation.
// TotalPrice is the full stay price (nights times rooms already applied).
type CreateAccommodationRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Location     string          `json:"location" binding:"max=200"`
	CheckIn      time.Time       `json:"checkIn" binding:"required"`
	CheckOut     time.Time       `json:"checkOut" binding:"required,gtfield=CheckIn"`
	Nights       int             `json:"nights" binding:"required,min=1"`
	Rooms        int             `json:"rooms" binding:"required,min=1"`
	TotalPrice   decimal.Decimal `json:"totalPrice" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Status       string          `json:"status" binding:"required,oneof=DRAFT SHORTLISTED CONFIRMED NOT_SELECTED"`
	BookingRef   string          `json:"bookingRef" binding:"max=50"`
}

// UpdateAccommodationRequest mirrors CreateAccommodationRequest.
type UpdateAccommodationRequest = CreateAccommodationRequest

// AccommodationResponse defines the structure for API responses containing an accommodation.
type AccommodationResponse struct {
	AccommodationID string          `json:"accommodationID"`
	TripID          string          `json:"tripID"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	CheckIn         time.Time       `json:"checkIn"`
	CheckOut        time.Time       `json:"checkOut"`
	Nights          int             `json:"nights"`
	Rooms           int             `json:"rooms"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CurrencyCode    string          `json:"currencyCode"`
	Status          string          `json:"status"`
	BookingRef      string          `json:"bookingRef"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToAccommodationResponse converts a domain.Accommodation to AccommodationResponse DTO
func ToAccommodationResponse(a *domain.Accommodation) AccommodationResponse {
	return AccommodationResponse{
		AccommodationID: a.AccommodationID,
		TripID:          a.TripID,
		Name:            a.Name,
		Location:        a.Location,
		CheckIn:         a.CheckIn,
		CheckOut:        a.CheckOut,
		Nights:          a.Nights,
		Rooms:           a.Rooms,
		TotalPrice:      a.TotalPrice,
		CurrencyCode:    a.CurrencyCode,
		Status:          string(a.Status),
		BookingRef:      a.BookingRef,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.LastUpdatedAt,
	}
}

// ToListAccommodationResponse converts a slice of domain accommodations to response DTOs.
func ToListAccommodationResponse(accommodations []domain.Accommodation) []AccommodationResponse {
	responses := make([]AccommodationResponse, len(accommodations))
	for i := range accommodations {
		responses[i] = ToAccommodationResponse(&accommodations[i])
	}
	return responses
}
