package domain

// Traveler is a participant of a trip.
//
// Exactly one traveler per trip is the primary one; that traveler's currency is
// the base currency all forecast totals are normalized into. Cost sharers take
// part in the even split of the forecast total; inactive travelers are ignored
// by every computation.
type Traveler struct {
	TravelerID   string `json:"travelerID"` // Primary Key (UUID)
	TripID       string `json:"tripID"`     // FK -> Trip.tripID
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"` // ISO 4217, 3 letters
	IsPrimary    bool   `json:"isPrimary"`
	IsCostSharer bool   `json:"isCostSharer"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
