package models

import "time"

// Trip maps to the trips table.
type Trip struct {
	TripID      string    `json:"tripID"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
	AuditFields
}

// Traveler maps to the travelers table.
type Traveler struct {
	TravelerID   string `json:"travelerID"`
	TripID       string `json:"tripID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	IsPrimary    bool   `json:"isPrimary"`
	IsCostSharer bool   `json:"isCostSharer"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
