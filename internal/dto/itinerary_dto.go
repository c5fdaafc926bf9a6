package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyago/trip_planner_app/internal/core/domain"
)

// CreateCategoryRequest defines the structure for creating an itinerary category.
// Cost is optional; when present CostKind and CurrencyCode are required.
type CreateCategoryRequest struct {
	Name         string           `json:"name" binding:"required,max=200"`
	IsActive     *bool            `json:"isActive,omitempty"` // defaults to true
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     string           `json:"costKind" binding:"omitempty,oneof=TOTAL PER_HEAD"`
	CurrencyCode string           `json:"currencyCode" binding:"omitempty,currencycode"`
	Status       string           `json:"status" binding:"required,oneof=DRAFT SHORTLISTED CONFIRMED NOT_SELECTED"`
}

// UpdateCategoryRequest mirrors CreateCategoryRequest.
type UpdateCategoryRequest = CreateCategoryRequest

// CreateActivityRequest defines the structure for creating an activity.
type CreateActivityRequest struct {
	Name         string           `json:"name" binding:"required,max=200"`
	Notes        string           `json:"notes" binding:"max=1000"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     string           `json:"costKind" binding:"omitempty,oneof=TOTAL PER_HEAD"`
	CurrencyCode string           `json:"currencyCode" binding:"omitempty,currencycode"`
}

// UpdateActivityRequest mirrors CreateActivityRequest.
type UpdateActivityRequest = CreateActivityRequest

// ReorderRequest carries the desired ordering of category or activity IDs.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIDs" binding:"required,min=1,dive,uuid"`
}

// ActivityResponse defines the structure for API responses containing an activity.
type ActivityResponse struct {
	ActivityID   string           `json:"activityID"`
	CategoryID   string           `json:"categoryID"`
	Name         string           `json:"name"`
	Notes        string           `json:"notes"`
	SortOrder    int              `json:"sortOrder"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     string           `json:"costKind,omitempty"`
	CurrencyCode string           `json:"currencyCode,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// CategoryResponse defines the structure for API responses containing a category.
type CategoryResponse struct {
	CategoryID   string             `json:"categoryID"`
	TripID       string             `json:"tripID"`
	Name         string             `json:"name"`
	SortOrder    int                `json:"sortOrder"`
	IsActive     bool               `json:"isActive"`
	Cost         *decimal.Decimal   `json:"cost,omitempty"`
	CostKind     string             `json:"costKind,omitempty"`
	CurrencyCode string             `json:"currencyCode,omitempty"`
	Status       string             `json:"status"`
	Activities   []ActivityResponse `json:"activities"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// ToActivityResponse converts a domain.Activity to ActivityResponse DTO
func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:   a.ActivityID,
		CategoryID:   a.CategoryID,
		Name:         a.Name,
		Notes:        a.Notes,
		SortOrder:    a.SortOrder,
		Cost:         a.Cost,
		CostKind:     string(a.CostKind),
		CurrencyCode: a.CurrencyCode,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.LastUpdatedAt,
	}
}

// ToCategoryResponse converts a domain.ItineraryCategory to CategoryResponse DTO
func ToCategoryResponse(c *domain.ItineraryCategory) CategoryResponse {
	activities := make([]ActivityResponse, len(c.Activities))
	for i := range c.Activities {
		activities[i] = ToActivityResponse(&c.Activities[i])
	}
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		TripID:       c.TripID,
		Name:         c.Name,
		SortOrder:    c.SortOrder,
		IsActive:     c.IsActive,
		Cost:         c.Cost,
		CostKind:     string(c.CostKind),
		CurrencyCode: c.CurrencyCode,
		Status:       string(c.Status),
		Activities:   activities,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain categories to response DTOs.
func ToListCategoryResponse(categories []domain.ItineraryCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
