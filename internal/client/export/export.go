// Package export writes the subscription list to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/client/services"
)

const (
	SheetSubscriptions = "Subscriptions"
	SheetSummary       = "Summary"
)

var headers = []string{"ID", "Name", "Amount", "Billing Cycle", "Next Billing Date", "Category", "Monthly Equivalent"}

// Workbook builds a workbook with one row per subscription and a summary
// sheet holding the totals. The caller closes the returned file.
func Workbook(items []models.Subscription) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSubscriptions); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetSubscriptions, cell, h)
	}

	for i, s := range items {
		row := i + 2
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("A%d", row), s.ID.String())
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("B%d", row), s.Name)
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("C%d", row), s.Amount)
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("D%d", row), string(s.BillingCycle))
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("E%d", row), s.NextBillingDate.String())
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("F%d", row), string(s.Category))
		f.SetCellValue(SheetSubscriptions, fmt.Sprintf("G%d", row), services.MonthlyEquivalent(s))
	}

	f.SetColWidth(SheetSubscriptions, "A", "A", 10)
	f.SetColWidth(SheetSubscriptions, "B", "B", 25)
	f.SetColWidth(SheetSubscriptions, "C", "D", 14)
	f.SetColWidth(SheetSubscriptions, "E", "F", 18)
	f.SetColWidth(SheetSubscriptions, "G", "G", 20)

	if _, err := f.NewSheet(SheetSummary); err != nil {
		_ = f.Close()
		return nil, err
	}
	writeSummary(f, services.Calculate(items))

	return f, nil
}

func writeSummary(f *excelize.File, t services.Totals) {
	f.SetCellValue(SheetSummary, "A1", "Active Services")
	f.SetCellValue(SheetSummary, "B1", t.Count)
	f.SetCellValue(SheetSummary, "A2", "Monthly Total")
	f.SetCellValue(SheetSummary, "B2", t.Monthly)
	f.SetCellValue(SheetSummary, "A3", "Annual Total")
	f.SetCellValue(SheetSummary, "B3", t.Annual)

	cats := make([]string, 0, len(t.ByCategory))
	for c := range t.ByCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	f.SetCellValue(SheetSummary, "A5", "Category")
	f.SetCellValue(SheetSummary, "B5", "Monthly")
	for i, c := range cats {
		row := i + 6
		f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), c)
		f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), t.ByCategory[models.Category(c)])
	}
	f.SetColWidth(SheetSummary, "A", "A", 20)
}

// Write streams the workbook for items to w.
func Write(w io.Writer, items []models.Subscription) error {
	f, err := Workbook(items)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// Save writes the workbook for items to path, replacing any existing file.
func Save(path string, items []models.Subscription) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := Write(out, items); err != nil {
		_ = out.Close()
		return fmt.Errorf("export: %w", err)
	}
	return out.Close()
}
