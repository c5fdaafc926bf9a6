package dto

import (
	"time"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CreateTravelerRequest defines the structure for adding a traveler to a trip.
type CreateTravelerRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	IsPrimary    bool   `json:"isPrimary"`
	IsCostSharer bool   `json:"isCostSharer"`
	IsActive     *bool  `json:"isActive,omitempty"` // defaults to true
}

// UpdateTravelerRequest defines the structure for updating a traveler. Nil
// fields are left unchanged.
type UpdateTravelerRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=200"`
	CurrencyCode *string `json:"currencyCode,omitempty" binding:"omitempty,currencycode"`
	IsPrimary    *bool   `json:"isPrimary,omitempty"`
	IsCostSharer *bool   `json:"isCostSharer,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// TravelerResponse defines the structure for API responses containing traveler details.
type TravelerResponse struct {
	TravelerID   string    `json:"travelerID"`
	TripID       string    `json:"tripID"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`
	IsPrimary    bool      `json:"isPrimary"`
	IsCostSharer bool      `json:"isCostSharer"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToTravelerResponse converts a domain.Traveler to TravelerResponse DTO
func ToTravelerResponse(t *domain.Traveler) TravelerResponse {
	return TravelerResponse{
		TravelerID:   t.TravelerID,
		TripID:       t.TripID,
		Name:         t.Name,
		CurrencyCode: t.CurrencyCode,
		IsPrimary:    t.IsPrimary,
		IsCostSharer: t.IsCostSharer,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.LastUpdatedAt,
	}
}

// ToListTravelerResponse converts a slice of domain travelers to response DTOs.
func ToListTravelerResponse(travelers []domain.Traveler) []TravelerResponse {
	responses := make([]TravelerResponse, len(travelers))
	for i := range travelers {
		responses[i] = ToTravelerResponse(&travelers[i])
	}
	return responses
}
