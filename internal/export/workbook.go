// Package export writes saved products and dashboard aggregates to an xlsx
// workbook.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
)

// Sheet names, in workbook order.
const (
	SheetProducts   = "Products"
	SheetCategories = "Categories"
	SheetTrend      = "Trend"
)

// defaultSheet is the sheet excelize creates with a new file.
const defaultSheet = "Sheet1"

// ErrEmptyPath is returned by WriteFile for an empty destination.
var ErrEmptyPath = errors.New("export path is required")

// productHeader is the header row of the Products sheet.
//
//nolint:gochecknoglobals // Read-only header row.
var productHeader = []any{
	"Name", "ID", "Date", "Total (kg CO2e)", "Materials", "Manufacturing",
	"Distribution", "Use & End-of-Life", "Rating", "Total Weight (kg)",
}

// WriteWorkbook writes products, in stored order, plus the category share and
// monthly trend series to w as an xlsx workbook.
func WriteWorkbook(w io.Writer, products []footprint.Product) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, SheetProducts); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetCategories, SheetTrend} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err = writeProducts(f, products); err != nil {
		return err
	}
	if err = writeCategories(f, dashboard.CategoryShare(products)); err != nil {
		return err
	}
	if err = writeTrend(f, dashboard.Trend(products)); err != nil {
		return err
	}

	for _, name := range []string{SheetProducts, SheetCategories, SheetTrend} {
		if err = f.SetRowStyle(name, 1, 1, bold); err != nil {
			return fmt.Errorf("styling %s header: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile writes the workbook to path, creating parent directories.
func WriteFile(path string, products []footprint.Product) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err = WriteWorkbook(out, products); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

func writeProducts(f *excelize.File, products []footprint.Product) error {
	if err := setRow(f, SheetProducts, 1, productHeader); err != nil {
		return err
	}
	for i, p := range products {
		row := []any{
			p.Name,
			p.ID,
			p.Timestamp.UTC().Format(time.RFC3339),
			p.Footprint.Total,
			p.Footprint.Materials,
			p.Footprint.Manufacturing,
			p.Footprint.Distribution,
			p.Footprint.UseEOL,
			p.Rating().Label,
			p.Details.TotalWeightKg,
		}
		if err := setRow(f, SheetProducts, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCategories(f *excelize.File, slices []dashboard.CategorySlice) error {
	if err := setRow(f, SheetCategories, 1, []any{"Category", "Total (kg CO2e)", "Share (%)"}); err != nil {
		return err
	}
	for i, s := range slices {
		if err := setRow(f, SheetCategories, i+2, []any{s.Label, s.Value, s.Percent}); err != nil {
			return err
		}
	}
	return nil
}

func writeTrend(f *excelize.File, months []footprint.MonthlyAverage) error {
	if err := setRow(f, SheetTrend, 1, []any{"Month", "Products", "Average (kg CO2e)"}); err != nil {
		return err
	}
	for i, m := range months {
		if err := setRow(f, SheetTrend, i+2, []any{m.Label(), m.Count, m.Average}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing %s row %d: %w", sheet, row, err)
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
