package reporting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelReporter writes a report as an Excel workbook with a summary sheet
// and the full annotated series.
type ExcelReporter struct {
	path string
}

// NewExcelReporter creates an Excel reporter writing to the given path
func NewExcelReporter(path string) *ExcelReporter {
	return &ExcelReporter{path: path}
}

// GetName returns the reporter name
func (r *ExcelReporter) GetName() string {
	return "Excel Reporter"
}

// Write renders the report to the configured workbook
func (r *ExcelReporter) Write(report *Report) error {
	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const signalsSheet = "Signals"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(signalsSheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, report, headerStyle); err != nil {
		return err
	}
	if err := r.writeSignalsSheet(fx, signalsSheet, report, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(r.path)
}

// writeSummarySheet writes the aggregate counts
func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, report *Report, headerStyle int) error {
	summary := report.Summarize()

	rows := [][]interface{}{
		{"Series", report.SeriesID},
		{"Generated", report.Generated.Format("2006-01-02 15:04:05")},
		{"Points", summary.Points},
		{"Buy Signals", summary.BuySignals},
		{"Sell Signals", summary.SellSignals},
		{"Strong Signals", summary.StrongSignals},
		{"Crisis Tagged", summary.CrisisTagged},
		{"Last Signal", string(summary.LastSignal)},
		{"Last Signal Value", summary.LastValue},
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := fx.SetCellStyle(sheet, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle); err != nil {
		return err
	}
	return fx.SetColWidth(sheet, "A", "B", 22)
}

// writeSignalsSheet writes the full annotated series
func (r *ExcelReporter) writeSignalsSheet(fx *excelize.File, sheet string, report *Report, headerStyle int) error {
	header := []interface{}{"Date", "Value", "Change", "Percent Change", "Signal Value", "Signal Type", "Crisis"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for i, point := range report.Points {
		crisisLabel := ""
		if point.Crisis != nil {
			crisisLabel = point.Crisis.Label
		}
		row := []interface{}{
			point.Date.Format("2006-01-02"),
			cellValue(point.Value),
			nullableCell(point.Change),
			nullableCell(point.PercentChange),
			point.SignalValue,
			string(point.SignalType),
			crisisLabel,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "G", 16)
}

// cellValue maps non-numeric raw values to empty cells
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}

// nullableCell maps nil to an empty cell
func nullableCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
