package dto

import (
	"time"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CreateTripRequest defines the structure for creating a new trip.
type CreateTripRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Destination string    `json:"destination" binding:"max=200"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	Notes       string    `json:"notes"`
}

// UpdateTripRequest defines the structure for updating a trip. Nil fields are
// left unchanged.
type UpdateTripRequest struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,max=200"`
	Destination *string    `json:"destination,omitempty" binding:"omitempty,max=200"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// TripResponse defines the structure for API responses containing trip details.
type TripResponse struct {
	TripID      string    `json:"tripID"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		TripID:      trip.TripID,
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Notes:       trip.Notes,
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.LastUpdatedAt,
	}
}

// ToListTripResponse converts a slice of domain trips to response DTOs.
func ToListTripResponse(trips []domain.Trip) []TripResponse {
	responses := make([]TripResponse, len(trips))
	for i := range trips {
		responses[i] = ToTripResponse(&trips[i])
	}
	return responses
}
