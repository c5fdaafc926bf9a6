package mapping

import (
	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/models"
)

// ToModelFlightOption converts a domain FlightOption to a model FlightOption.
// Segments are mapped separately since they live in their own table.
func ToModelFlightOption(d domain.FlightOption) models.FlightOption {
	return models.FlightOption{
		FlightID:        d.FlightID,
		TripID:          d.TripID,
		Airline:         d.Airline,
		Description:     d.Description,
		FareKind:        string(d.FareKind),
		FarePerTraveler: d.FarePerTraveler,
		CurrencyCode:    d.CurrencyCode,
		TravelerCount:   d.TravelerCount,
		Status:          string(d.Status),
		BookingRef:      d.BookingRef,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFlightOption converts a model FlightOption plus its segments to a
// domain FlightOption
func ToDomainFlightOption(m models.FlightOption, segments []models.FlightSegment) domain.FlightOption {
	domainSegments := make([]domain.FlightSegment, len(segments))
	for i, s := range segments {
		domainSegments[i] = ToDomainFlightSegment(s)
	}
	return domain.FlightOption{
		FlightID:        m.FlightID,
		TripID:          m.TripID,
		Airline:         m.Airline,
		Description:     m.Description,
		FareKind:        domain.FareKind(m.FareKind),
		FarePerTraveler: m.FarePerTraveler,
		CurrencyCode:    m.CurrencyCode,
		TravelerCount:   m.TravelerCount,
		Status:          domain.ItemStatus(m.Status),
		BookingRef:      m.BookingRef,
		Segments:        domainSegments,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFlightSegment converts a domain FlightSegment to a model FlightSegment
func ToModelFlightSegment(d domain.FlightSegment) models.FlightSegment {
	return models.FlightSegment{
		SegmentID:     d.SegmentID,
		FlightID:      d.FlightID,
		Origin:        d.Origin,
		Destination:   d.Destination,
		DepartureTime: d.DepartureTime,
		ArrivalTime:   d.ArrivalTime,
		FlightNumber:  d.FlightNumber,
		SortOrder:     d.SortOrder,
	}
}

// ToDomainFlightSegment converts a model FlightSegment to a domain FlightSegment
func ToDomainFlightSegment(m models.FlightSegment) domain.FlightSegment {
	return domain.FlightSegment{
		SegmentID:     m.SegmentID,
		FlightID:      m.FlightID,
		Origin:        m.Origin,
		Destination:   m.Destination,
		DepartureTime: m.DepartureTime,
		ArrivalTime:   m.ArrivalTime,
		FlightNumber:  m.FlightNumber,
		SortOrder:     m.SortOrder,
	}
}

// ToModelAccommodation converts a domain Accommodation to a model Accommodation
func ToModelAccommodation(d domain.Accommodation) models.Accommodation {
	return models.Accommodation{
		AccommodationID: d.AccommodationID,
		TripID:          d.TripID,
		Name:            d.Name,
		Location:        d.Location,
		CheckIn:         d.CheckIn,
		CheckOut:        d.CheckOut,
		Nights:          d.Nights,
		Rooms:           d.Rooms,
		TotalPrice:      d.TotalPrice,
		CurrencyCode:    d.CurrencyCode,
		Status:          string(d.Status),
		BookingRef:      d.BookingRef,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccommodation converts a model Accommodation to a domain Accommodation
func ToDomainAccommodation(m models.Accommodation) domain.Accommodation {
	return domain.Accommodation{
		AccommodationID: m.AccommodationID,
		TripID:          m.TripID,
		Name:            m.Name,
		Location:        m.Location,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Nights:          m.Nights,
		Rooms:           m.Rooms,
		TotalPrice:      m.TotalPrice,
		CurrencyCode:    m.CurrencyCode,
		Status:          domain.ItemStatus(m.Status),
		BookingRef:      m.BookingRef,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccommodationSlice converts a slice of model Accommodations to domain Accommodations
func ToDomainAccommodationSlice(ms []models.Accommodation) []domain.Accommodation {
	out := make([]domain.Accommodation, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccommodation(m)
	}
	return out
}

// ToModelItineraryCategory converts a domain ItineraryCategory to a model one.
// Activities are mapped separately.
func ToModelItineraryCategory(d domain.ItineraryCategory) models.ItineraryCategory {
	return models.ItineraryCategory{
		CategoryID:   d.CategoryID,
		TripID:       d.TripID,
		Name:         d.Name,
		SortOrder:    d.SortOrder,
		IsActive:     d.IsActive,
		Cost:         d.Cost,
		CostKind:     string(d.CostKind),
		CurrencyCode: d.CurrencyCode,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItineraryCategory converts a model ItineraryCategory plus its
// activities to a domain ItineraryCategory
func ToDomainItineraryCategory(m models.ItineraryCategory, activities []models.Activity) domain.ItineraryCategory {
	domainActivities := make([]domain.Activity, len(activities))
	for i, a := range activities {
		domainActivities[i] = ToDomainActivity(a)
	}
	return domain.ItineraryCategory{
		CategoryID:   m.CategoryID,
		TripID:       m.TripID,
		Name:         m.Name,
		SortOrder:    m.SortOrder,
		IsActive:     m.IsActive,
		Cost:         m.Cost,
		CostKind:     domain.CostKind(m.CostKind),
		CurrencyCode: m.CurrencyCode,
		Status:       domain.ItemStatus(m.Status),
		Activities:   domainActivities,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelActivity converts a domain Activity to a model Activity
func ToModelActivity(d domain.Activity) models.Activity {
	return models.Activity{
		ActivityID:   d.ActivityID,
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Notes:        d.Notes,
		SortOrder:    d.SortOrder,
		Cost:         d.Cost,
		CostKind:     string(d.CostKind),
		CurrencyCode: d.CurrencyCode,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainActivity converts a model Activity to a domain Activity
func ToDomainActivity(m models.Activity) domain.Activity {
	return domain.Activity{
		ActivityID:   m.ActivityID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Notes:        m.Notes,
		SortOrder:    m.SortOrder,
		Cost:         m.Cost,
		CostKind:     domain.CostKind(m.CostKind),
		CurrencyCode: m.CurrencyCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAdhocExpense converts a domain AdhocExpense to a model AdhocExpense
func ToModelAdhocExpense(d domain.AdhocExpense) models.AdhocExpense {
	return models.AdhocExpense{
		ExpenseID:    d.ExpenseID,
		TripID:       d.TripID,
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdhocExpense converts a model AdhocExpense to a domain AdhocExpense
func ToDomainAdhocExpense(m models.AdhocExpense) domain.AdhocExpense {
	return domain.AdhocExpense{
		ExpenseID:    m.ExpenseID,
		TripID:       m.TripID,
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAdhocExpenseSlice converts a slice of model AdhocExpenses to domain ones
func ToDomainAdhocExpenseSlice(ms []models.AdhocExpense) []domain.AdhocExpense {
	out := make([]domain.AdhocExpense, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAdhocExpense(m)
	}
	return out
}
