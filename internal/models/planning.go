package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightOption maps to the flight_options table.
type FlightOption struct {
	FlightID        string          `json:"flightID"`
	TripID          string          `json:"tripID"`
	Airline         string          `json:"airline"`
	Description     string          `json:"description"`
	FareKind        string          `json:"fareKind"`
	FarePerTraveler decimal.Decimal `json:"farePerTraveler"`
	CurrencyCode    string          `json:"currencyCode"`
	TravelerCount   int             `json:"travelerCount"`
	Status          string          `json:"status"`
	BookingRef      string          `json:"bookingRef"`
	AuditFields
}

// FlightSegment maps to the flight_segments table.
type FlightSegment struct {
	SegmentID     string    `json:"segmentID"`
	FlightID      string    `json:"flightID"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	FlightNumber  string    `json:"flightNumber"`
	SortOrder     int       `json:"sortOrder"`
}

// Accommodation maps to the accommodations table.
type Accommodation struct {
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
	AuditFields
}

// ItineraryCategory maps to the itinerary_categories table.
type ItineraryCategory struct {
	CategoryID   string           `json:"categoryID"`
	TripID       string           `json:"tripID"`
	Name         string           `json:"name"`
	SortOrder    int              `json:"sortOrder"`
	IsActive     bool             `json:"isActive"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     string           `json:"costKind"`
	CurrencyCode string           `json:"currencyCode"`
	Status       string           `json:"status"`
	AuditFields
}

// Activity maps to the itinerary_activities table.
type Activity struct {
	ActivityID   string           `json:"activityID"`
	CategoryID   string           `json:"categoryID"`
	Name         string           `json:"name"`
	Notes        string           `json:"notes"`
	SortOrder    int              `json:"sortOrder"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CostKind     string           `json:"costKind"`
	CurrencyCode string           `json:"currencyCode"`
	AuditFields
}

// AdhocExpense maps to the adhoc_expenses table.
type AdhocExpense struct {
	ExpenseID    string          `json:"expenseID"`
	TripID       string          `json:"tripID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
