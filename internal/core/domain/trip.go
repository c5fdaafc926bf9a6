package domain

import "time"

// Trip is the root aggregate every planning module hangs off.
// The base currency of a trip is the primary traveler's currency and is not
// stored here; it is resolved through the traveler list.
type Trip struct {
	TripID      string    `json:"tripID"` // Primary Key (UUID)
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
	AuditFields
}
