package domain

import "github.com/shopspring/decimal"

// ItineraryCategory groups activities on the itinerary (e.g. "Day 1", "Museums").
//
// A category may carry its own cost; when set it overrides the sum of its
// activities' costs in the forecast. Costs are nil when the category or
// activity is free or not yet priced.
type ItineraryCategory struct {
	CategoryID   string           `json:"categoryID"` // Primary Key (UUID)
	TripID       string           `json:"tripID"`     // FK -> Trip.tripID
	Name         string           `json:"name"`
	SortOrder    int              `json:"sortOrder"`
	IsActive     bool             `json:"isActive"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     CostKind         `json:"costKind"`
	CurrencyCode string           `json:"currencyCode"` // empty when Cost is nil
	Status       ItemStatus       `json:"status"`
	Activities   []Activity       `json:"activities"`
	AuditFields
}

// Activity is a single item on the itinerary within a category.
type Activity struct {
	ActivityID   string           `json:"activityID"` // Primary Key (UUID)
	CategoryID   string           `json:"categoryID"` // FK -> ItineraryCategory.categoryID
	Name         string           `json:"name"`
	Notes        string           `json:"notes"`
	SortOrder    int              `json:"sortOrder"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     CostKind         `json:"costKind"`
	CurrencyCode string           `json:"currencyCode"` // empty when Cost is nil
	AuditFields
}
