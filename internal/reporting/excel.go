package reporting

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"scarti/internal/core"
)

const (
	entriesSheet = "Entries"
	statsSheet   = "Statistics"
	gapsSheet    = "Opportunities"
)

// WriteWorkbook writes the raw entries, the per-type statistics and the gap
// analysis as one Excel workbook.
func WriteWorkbook(path string, entries []core.WasteEntry, stats core.Statistics, opps []core.Opportunity) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return fmt.Errorf("rename entries sheet: %w", err)
	}
	if err := writeEntries(f, entries); err != nil {
		return err
	}

	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("create statistics sheet: %w", err)
	}
	if err := writeStatistics(f, stats); err != nil {
		return err
	}

	if _, err := f.NewSheet(gapsSheet); err != nil {
		return fmt.Errorf("create opportunities sheet: %w", err)
	}
	if err := writeOpportunities(f, opps); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeEntries(f *excelize.File, entries []core.WasteEntry) error {
	header := []interface{}{"project_id", "date", "waste_type", "total_kg", "recycled_kg", "recycling_rate", "location", "project_type"}
	if err := f.SetSheetRow(entriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write entries header: %w", err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("entries cell name: %w", err)
		}
		row := []interface{}{
			e.ProjectID,
			e.LoggedAt.Format(time.RFC3339),
			e.WasteType.String(),
			e.TotalKg,
			e.RecycledKg,
			e.Rate(),
			string(e.Location),
			string(e.ProjectType),
		}
		if err := f.SetSheetRow(entriesSheet, cell, &row); err != nil {
			return fmt.Errorf("write entry row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeStatistics(f *excelize.File, stats core.Statistics) error {
	header := []interface{}{"waste_type", "total_kg", "recycled_kg", "mean_rate"}
	if err := f.SetSheetRow(statsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write statistics header: %w", err)
	}
	rowNum := 2
	for _, wt := range core.WasteTypes() {
		tt, ok := stats.ByWasteType[wt]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("statistics cell name: %w", err)
		}
		row := []interface{}{wt.String(), tt.TotalKg, tt.RecycledKg, tt.MeanRate}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return fmt.Errorf("write statistics row %d: %w", rowNum, err)
		}
		rowNum++
	}

	// Summary block below the table.
	summaryStart := rowNum + 1
	summary := [][]interface{}{
		{"overall_recycling_rate", stats.OverallRate},
		{"total_waste_kg", stats.TotalWasteKg},
		{"total_recycled_kg", stats.TotalRecycledKg},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, summaryStart+i)
		if err != nil {
			return fmt.Errorf("summary cell name: %w", err)
		}
		r := row
		if err := f.SetSheetRow(statsSheet, cell, &r); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}

func writeOpportunities(f *excelize.File, opps []core.Opportunity) error {
	header := []interface{}{"waste_type", "current_rate", "target_rate", "gap", "potential_additional_recycling_kg"}
	if err := f.SetSheetRow(gapsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write opportunities header: %w", err)
	}
	for i, o := range opps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("opportunities cell name: %w", err)
		}
		row := []interface{}{o.WasteType.String(), o.CurrentRate, o.TargetRate, o.Gap, o.PotentialKg}
		if err := f.SetSheetRow(gapsSheet, cell, &row); err != nil {
			return fmt.Errorf("write opportunity row %d: %w", i+2, err)
		}
	}
	return nil
}
