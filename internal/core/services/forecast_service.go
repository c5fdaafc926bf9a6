package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	"github.com/voyago/trip_planner_app/internal/core/domain"
	portsrepo "github.com/voyago/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/utils/export"
	"github.com/voyago/trip_planner_app/internal/utils/splitting"
)

// forecastService collects cost line items from every planning module,
// normalizes them into the trip's base currency and splits the total across
// the cost sharers. Each collection run replaces the trip's stored snapshot.
type forecastService struct {
	BaseService
	travelerRepo      portsrepo.TravelerReader
	flightRepo        portsrepo.FlightReader
	accommodationRepo portsrepo.AccommodationReader
	itineraryRepo     portsrepo.ItineraryReader
	expenseRepo       portsrepo.ExpenseReader
	forecastRepo      portsrepo.ForecastRepositoryFacade
	fxSvc             portssvc.FxRateSvcFacade
}

// NewForecastService creates a new forecast service.
func NewForecastService(
	travelerRepo portsrepo.TravelerReader,
	flightRepo portsrepo.FlightReader,
	accommodationRepo portsrepo.AccommodationReader,
	itineraryRepo portsrepo.ItineraryReader,
	expenseRepo portsrepo.ExpenseReader,
	forecastRepo portsrepo.ForecastRepositoryFacade,
	fxSvc portssvc.FxRateSvcFacade,
) *forecastService {
	return &forecastService{
		travelerRepo:      travelerRepo,
		flightRepo:        flightRepo,
		accommodationRepo: accommodationRepo,
		itineraryRepo:     itineraryRepo,
		expenseRepo:       expenseRepo,
		forecastRepo:      forecastRepo,
		fxSvc:             fxSvc,
	}
}

func (s *forecastService) CollectForecast(ctx context.Context, tripID string, req dto.CollectForecastRequest, requesterUserID string) (*domain.ForecastReport, error) {
	statuses, err := parseStatuses(req.Statuses)
	if err != nil {
		return nil, err
	}

	travelers, err := s.travelerRepo.ListTravelers(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list travelers for trip %s: %w", tripID, err)
	}
	primary := findPrimary(travelers)
	if primary == nil {
		return nil, fmt.Errorf("%w: trip %s has no active primary traveler", apperrors.ErrConflict, tripID)
	}
	baseCurrency := primary.CurrencyCode
	sharers := costSharers(travelers, primary.TravelerID)
	if len(sharers) == 0 {
		return nil, fmt.Errorf("%w: trip %s has no active cost sharers", apperrors.ErrConflict, tripID)
	}
	headCount := activeCount(travelers)

	items, err := s.collectLineItems(ctx, tripID, statuses, headCount)
	if err != nil {
		return nil, err
	}

	breakdown, fxItems, total, err := s.aggregate(ctx, items, baseCurrency)
	if err != nil {
		return nil, err
	}

	shares, err := splitting.SplitEven(total, len(sharers))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	travelerShares := make([]domain.TravelerShare, len(sharers))
	for i, t := range sharers {
		travelerShares[i] = domain.TravelerShare{
			TravelerID:       t.TravelerID,
			TravelerName:     t.Name,
			TravelerCurrency: t.CurrencyCode,
			IsPrimary:        t.IsPrimary,
			ShareAmount:      shares[i],
		}
	}

	report := domain.ForecastReport{
		TripID:           tripID,
		BaseCurrency:     baseCurrency,
		TotalCost:        total,
		ModuleBreakdown:  breakdown,
		TravelerShares:   travelerShares,
		FxItems:          fxItems,
		CostSharersCount: len(sharers),
		Statuses:         statuses,
		CollectedAt:      time.Now(),
		CollectedBy:      requesterUserID,
	}

	if err := s.forecastRepo.SaveForecast(ctx, report); err != nil {
		s.LogError(ctx, err, "failed to save forecast snapshot", "trip_id", tripID)
		return nil, fmt.Errorf("failed to save forecast for trip %s: %w", tripID, err)
	}

	s.LogInfo(ctx, "forecast collected",
		"trip_id", tripID,
		"total", total.Round(2).String(),
		"base_currency", baseCurrency,
		"line_items", len(items),
	)
	return &report, nil
}

func (s *forecastService) GetForecast(ctx context.Context, tripID string) (*domain.ForecastReport, error) {
	report, err := s.forecastRepo.FindForecast(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for trip %s: %w", tripID, err)
	}
	return report, nil
}

// ConvertShare expresses a traveler's stored base-currency share in that
// traveler's own currency. The stored snapshot is not modified.
func (s *forecastService) ConvertShare(ctx context.Context, tripID string, travelerID string) (*domain.ShareConversion, error) {
	report, err := s.forecastRepo.FindForecast(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for trip %s: %w", tripID, err)
	}

	var share *domain.TravelerShare
	for i := range report.TravelerShares {
		if report.TravelerShares[i].TravelerID == travelerID {
			share = &report.TravelerShares[i]
			break
		}
	}
	if share == nil {
		return nil, fmt.Errorf("%w: traveler %s has no share in the forecast", apperrors.ErrNotFound, travelerID)
	}

	converted, rate, err := s.fxSvc.Convert(ctx, share.ShareAmount, report.BaseCurrency, share.TravelerCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to convert share for traveler %s: %w", travelerID, err)
	}

	return &domain.ShareConversion{
		TravelerID:      travelerID,
		BaseCurrency:    report.BaseCurrency,
		ShareAmount:     share.ShareAmount,
		DisplayCurrency: share.TravelerCurrency,
		DisplayAmount:   converted,
		ExchangeRate:    rate,
	}, nil
}

func (s *forecastService) ExportForecast(ctx context.Context, tripID string) ([]byte, error) {
	report, err := s.forecastRepo.FindForecast(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for trip %s: %w", tripID, err)
	}
	data, err := export.ForecastWorkbook(report)
	if err != nil {
		s.LogError(ctx, err, "failed to render forecast workbook", "trip_id", tripID)
		return nil, fmt.Errorf("failed to export forecast for trip %s: %w", tripID, err)
	}
	return data, nil
}

// collectLineItems walks every planning module and turns the matching rows
// into line items in their original currencies. headCount expands per-head
// itinerary costs.
func (s *forecastService) collectLineItems(ctx context.Context, tripID string, statuses []domain.ItemStatus, headCount int) ([]domain.CostLineItem, error) {
	var items []domain.CostLineItem

	flights, err := s.flightRepo.ListFlightsByStatus(ctx, tripID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to collect flights for trip %s: %w", tripID, err)
	}
	for _, f := range flights {
		items = append(items, domain.CostLineItem{
			Module:       domain.ModuleFlights,
			SourceID:     f.FlightID,
			Description:  f.Airline,
			Amount:       f.TotalFare(),
			CurrencyCode: f.CurrencyCode,
			Status:       f.Status,
		})
	}

	accommodations, err := s.accommodationRepo.ListAccommodationsByStatus(ctx, tripID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to collect accommodations for trip %s: %w", tripID, err)
	}
	for _, a := range accommodations {
		items = append(items, domain.CostLineItem{
			Module:       domain.ModuleAccommodations,
			SourceID:     a.AccommodationID,
			Description:  a.Name,
			Amount:       a.TotalPrice,
			CurrencyCode: a.CurrencyCode,
			Status:       a.Status,
		})
	}

	categories, err := s.itineraryRepo.ListCategories(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect itinerary for trip %s: %w", tripID, err)
	}
	statusSet := make(map[domain.ItemStatus]bool, len(statuses))
	for _, st := range statuses {
		statusSet[st] = true
	}
	for _, c := range categories {
		if !c.IsActive || !statusSet[c.Status] {
			continue
		}
		// A category cost overrides the sum of its activities.
		if c.Cost != nil {
			items = append(items, domain.CostLineItem{
				Module:       domain.ModuleItinerary,
				SourceID:     c.CategoryID,
				Description:  c.Name,
				Amount:       expandPerHead(*c.Cost, c.CostKind, headCount),
				CurrencyCode: c.CurrencyCode,
				Status:       c.Status,
			})
			continue
		}
		for _, a := range c.Activities {
			if a.Cost == nil {
				continue
			}
			items = append(items, domain.CostLineItem{
				Module:       domain.ModuleItinerary,
				SourceID:     a.ActivityID,
				Description:  c.Name + ": " + a.Name,
				Amount:       expandPerHead(*a.Cost, a.CostKind, headCount),
				CurrencyCode: a.CurrencyCode,
				Status:       c.Status,
			})
		}
	}

	expenses, err := s.expenseRepo.ListActiveExpenses(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect expenses for trip %s: %w", tripID, err)
	}
	for _, e := range expenses {
		items = append(items, domain.CostLineItem{
			Module:       domain.ModuleAdhoc,
			SourceID:     e.ExpenseID,
			Description:  e.Description,
			Amount:       e.Amount,
			CurrencyCode: e.CurrencyCode,
		})
	}

	if err := validateLineItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// validateLineItems rejects collected rows whose stored data cannot be priced.
// The schema allows priced itinerary rows with an empty currency_code, so this
// is a data fault in an existing row, not bad caller input; the error names
// the module and row so the row can be repaired.
func validateLineItems(items []domain.CostLineItem) error {
	for _, item := range items {
		if len(item.CurrencyCode) != 3 {
			return fmt.Errorf("%w: data integrity: %s item %s has no currency code",
				apperrors.ErrValidation, item.Module, item.SourceID)
		}
		if item.Amount.IsNegative() {
			return fmt.Errorf("%w: data integrity: %s item %s has a negative amount",
				apperrors.ErrValidation, item.Module, item.SourceID)
		}
	}
	return nil
}

// aggregate converts every line item into the base currency, records each
// cross-currency conversion and groups the converted items per module. Sums
// run at full precision; rounding happens at the presentation layer.
func (s *forecastService) aggregate(ctx context.Context, items []domain.CostLineItem, baseCurrency string) ([]domain.ModuleBreakdown, []domain.FxConversionRecord, decimal.Decimal, error) {
	grouped := make(map[domain.CostModule][]domain.CostLineItem)
	var fxItems []domain.FxConversionRecord
	total := decimal.Zero

	for _, item := range items {
		converted := item
		if item.CurrencyCode != baseCurrency {
			amount, rate, err := s.fxSvc.Convert(ctx, item.Amount, item.CurrencyCode, baseCurrency)
			if err != nil {
				return nil, nil, decimal.Zero, fmt.Errorf("failed to convert %s %s for %q: %w",
					item.Amount.Round(2), item.CurrencyCode, item.Description, err)
			}
			fxItems = append(fxItems, domain.FxConversionRecord{
				Description:       item.Description,
				OriginalAmount:    item.Amount,
				OriginalCurrency:  item.CurrencyCode,
				ExchangeRate:      rate,
				ConvertedAmount:   amount,
				ConvertedCurrency: baseCurrency,
			})
			converted.Amount = amount
			converted.CurrencyCode = baseCurrency
		}
		grouped[converted.Module] = append(grouped[converted.Module], converted)
		total = total.Add(converted.Amount)
	}

	var breakdown []domain.ModuleBreakdown
	for _, module := range domain.CostModules() {
		moduleItems := grouped[module]
		if len(moduleItems) == 0 {
			continue
		}
		subtotal := decimal.Zero
		for _, item := range moduleItems {
			subtotal = subtotal.Add(item.Amount)
		}
		breakdown = append(breakdown, domain.ModuleBreakdown{
			Module:       module,
			Items:        moduleItems,
			Total:        subtotal,
			CurrencyCode: baseCurrency,
		})
	}
	return breakdown, fxItems, total, nil
}

func parseStatuses(raw []string) ([]domain.ItemStatus, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one status must be selected", apperrors.ErrValidation)
	}
	statuses := make([]domain.ItemStatus, 0, len(raw))
	seen := make(map[domain.ItemStatus]bool, len(raw))
	for _, r := range raw {
		status, err := domain.ParseItemStatus(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		if !seen[status] {
			seen[status] = true
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func findPrimary(travelers []domain.Traveler) *domain.Traveler {
	for i := range travelers {
		if travelers[i].IsPrimary && travelers[i].IsActive {
			return &travelers[i]
		}
	}
	return nil
}

// costSharers returns the active sharers with the primary traveler first and
// the rest ordered by ID, so the first share (which absorbs any rounding
// remainder) always belongs to the primary traveler.
func costSharers(travelers []domain.Traveler, primaryID string) []domain.Traveler {
	var sharers []domain.Traveler
	for _, t := range travelers {
		if t.IsActive && t.IsCostSharer {
			sharers = append(sharers, t)
		}
	}
	sort.Slice(sharers, func(i, j int) bool {
		if sharers[i].TravelerID == primaryID {
			return true
		}
		if sharers[j].TravelerID == primaryID {
			return false
		}
		return sharers[i].TravelerID < sharers[j].TravelerID
	})
	return sharers
}

func activeCount(travelers []domain.Traveler) int {
	count := 0
	for _, t := range travelers {
		if t.IsActive {
			count++
		}
	}
	return count
}

func expandPerHead(cost decimal.Decimal, kind domain.CostKind, headCount int) decimal.Decimal {
	if kind == domain.CostPerHead {
		return cost.Mul(decimal.NewFromInt(int64(headCount)))
	}
	return cost
}
