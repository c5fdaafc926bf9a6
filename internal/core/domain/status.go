package domain

import "fmt"

// ItemStatus is the planning status of a cost-bearing trip item.
type ItemStatus string

const (
	StatusDraft       ItemStatus = "DRAFT"
	StatusShortlisted ItemStatus = "SHORTLISTED"
	StatusConfirmed   ItemStatus = "CONFIRMED"
	StatusNotSelected ItemStatus = "NOT_SELECTED"
)

// IsValid reports whether the status is one of the known planning statuses.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusShortlisted, StatusConfirmed, StatusNotSelected:
		return true
	}
	return false
}

// ParseItemStatus converts a string into an ItemStatus or fails.
func ParseItemStatus(s string) (ItemStatus, error) {
	status := ItemStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown item status %q", s)
	}
	return status, nil
}

// CostKind distinguishes a flat cost from a per-head cost.
type CostKind string

const (
	CostTotal   CostKind = "TOTAL"
	CostPerHead CostKind = "PER_HEAD"
)

// IsValid reports whether the cost kind is known.
func (k CostKind) IsValid() bool {
	return k == CostTotal || k == CostPerHead
}

// FareKind is the shape of a flight option's routing.
type FareKind string

const (
	FareOneWay    FareKind = "ONE_WAY"
	FareRoundTrip FareKind = "ROUND_TRIP"
	FareMultiCity FareKind = "MULTI_CITY"
)

// IsValid reports whether the fare kind is known.
func (k FareKind) IsValid() bool {
	switch k {
	case FareOneWay, FareRoundTrip, FareMultiCity:
		return true
	}
	return false
}

// CostModule identifies which planning module a cost line item came from.
type CostModule string

const (
	ModuleFlights        CostModule = "FLIGHTS"
	ModuleAccommodations CostModule = "ACCOMMODATIONS"
	ModuleItinerary      CostModule = "ITINERARY"
	ModuleAdhoc          CostModule = "ADHOC"
)

// CostModules lists the modules in the order they appear in reports.
func CostModules() []CostModule {
	return []CostModule{ModuleFlights, ModuleAccommodations, ModuleItinerary, ModuleAdhoc}
}
