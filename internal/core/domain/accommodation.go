package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accommodation is a lodging option for a trip. TotalPrice already reflects
// nights times rooms; the forecast takes it as stored.
type Accommodation struct {
	AccommodationID string          `json:"accommodationID"` // Primary Key (UUID)
	TripID          string          `json:"tripID"`          // FK -> Trip.tripID
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	CheckIn         time.Time       `json:"checkIn"`
	CheckOut        time.Time       `json:"checkOut"`
	Nights          int             `json:"nights"`
	Rooms           int             `json:"rooms"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CurrencyCode    string          `json:"currencyCode"`
	Status          ItemStatus      `json:"status"`
	BookingRef      string          `json:"bookingRef"`
	AuditFields
}
