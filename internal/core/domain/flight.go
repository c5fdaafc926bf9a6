package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightSegment is one leg of a flight option.
type FlightSegment struct {
	SegmentID     string    `json:"segmentID"` // Primary Key (UUID)
	FlightID      string    `json:"flightID"`  // FK -> FlightOption.flightID
	Origin        string    `json:"origin"`    // IATA code
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	FlightNumber  string    `json:"flightNumber"`
	SortOrder     int       `json:"sortOrder"`
}

// FlightOption is a candidate flight for a trip, covering the whole routing.
//
// A round trip is a single option with outbound and return segments instead of
// two rows referencing each other; FareKind tags the variant and the segments
// carry the actual legs in order.
type FlightOption struct {
	FlightID        string          `json:"flightID"` // Primary Key (UUID)
	TripID          string          `json:"tripID"`   // FK -> Trip.tripID
	Airline         string          `json:"airline"`
	Description     string          `json:"description"`
	FareKind        FareKind        `json:"fareKind"`
	FarePerTraveler decimal.Decimal `json:"farePerTraveler"` // whole routing, one traveler
	CurrencyCode    string          `json:"currencyCode"`
	TravelerCount   int             `json:"travelerCount"`
	Status          ItemStatus      `json:"status"`
	BookingRef      string          `json:"bookingRef"`
	Segments        []FlightSegment `json:"segments"`
	AuditFields
}

// TotalFare is the billable amount for this option: unit fare times headcount.
func (f FlightOption) TotalFare() decimal.Decimal {
	return f.FarePerTraveler.Mul(decimal.NewFromInt(int64(f.TravelerCount)))
}
