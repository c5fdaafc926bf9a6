package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/voyago/trip_planner_app/internal/core/domain"
)

const (
	breakdownSheet = "Cost Breakdown"
	sharesSheet    = "Traveler Shares"
	fxSheet        = "Conversions"
)

// ForecastWorkbook renders a forecast report as an xlsx workbook with one
// sheet per concern: the per-module breakdown, the traveler shares and the
// currency conversion audit. Amounts are written rounded to two fraction
// digits, matching the API responses.
func ForecastWorkbook(report *domain.ForecastReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeBreakdownSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeSharesSheet(f, report); err != nil {
		return nil, err
	}
	if len(report.FxItems) > 0 {
		if err := writeFxSheet(f, report); err != nil {
			return nil, err
		}
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeBreakdownSheet(f *excelize.File, report *domain.ForecastReport) error {
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Module", "Description", "Status", "Amount", "Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(breakdownSheet, cell, h)
	}

	row := 2
	for _, mb := range report.ModuleBreakdown {
		for _, item := range mb.Items {
			setRow(f, breakdownSheet, row,
				string(item.Module),
				item.Description,
				string(item.Status),
				item.Amount.Round(2).InexactFloat64(),
				item.CurrencyCode,
			)
			row++
		}
		setRow(f, breakdownSheet, row,
			string(mb.Module),
			"Subtotal",
			"",
			mb.Total.Round(2).InexactFloat64(),
			mb.CurrencyCode,
		)
		row++
	}

	row++
	setRow(f, breakdownSheet, row, "", "Grand Total", "",
		report.TotalCost.Round(2).InexactFloat64(), report.BaseCurrency)
	return nil
}

func writeSharesSheet(f *excelize.File, report *domain.ForecastReport) error {
	if _, err := f.NewSheet(sharesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Traveler", "Currency", "Primary", "Share", "Share Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sharesSheet, cell, h)
	}

	for i, share := range report.TravelerShares {
		setRow(f, sharesSheet, i+2,
			share.TravelerName,
			share.TravelerCurrency,
			share.IsPrimary,
			share.ShareAmount.Round(2).InexactFloat64(),
			report.BaseCurrency,
		)
	}
	return nil
}

func writeFxSheet(f *excelize.File, report *domain.ForecastReport) error {
	if _, err := f.NewSheet(fxSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Description", "Original", "Original Currency", "Rate", "Converted", "Converted Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(fxSheet, cell, h)
	}

	for i, fx := range report.FxItems {
		setRow(f, fxSheet, i+2,
			fx.Description,
			fx.OriginalAmount.Round(2).InexactFloat64(),
			fx.OriginalCurrency,
			fx.ExchangeRate.InexactFloat64(),
			fx.ConvertedAmount.Round(2).InexactFloat64(),
			fx.ConvertedCurrency,
		)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
