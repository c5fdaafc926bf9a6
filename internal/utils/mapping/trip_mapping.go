package mapping

import (
	"github.com/voyago/trip_planner_app/internal/core/domain"
	"github.com/voyago/trip_planner_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:      d.TripID,
		Name:        d.Name,
		Destination: d.Destination,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:      m.TripID,
		Name:        m.Name,
		Destination: m.Destination,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTripSlice converts a slice of model Trips to domain Trips
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	out := make([]domain.Trip, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTrip(m)
	}
	return out
}

// ToModelTraveler converts a domain Traveler to a model Traveler
func ToModelTraveler(d domain.Traveler) models.Traveler {
	return models.Traveler{
		TravelerID:   d.TravelerID,
		TripID:       d.TripID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		IsPrimary:    d.IsPrimary,
		IsCostSharer: d.IsCostSharer,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTraveler converts a model Traveler to a domain Traveler
func ToDomainTraveler(m models.Traveler) domain.Traveler {
	return domain.Traveler{
		TravelerID:   m.TravelerID,
		TripID:       m.TripID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		IsPrimary:    m.IsPrimary,
		IsCostSharer: m.IsCostSharer,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTravelerSlice converts a slice of model Travelers to domain Travelers
func ToDomainTravelerSlice(ms []models.Traveler) []domain.Traveler {
	out := make([]domain.Traveler, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTraveler(m)
	}
	return out
}
