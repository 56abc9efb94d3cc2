package reporting

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// CSVReporter writes a report as a flat CSV file for spreadsheet import.
type CSVReporter struct {
	path string
}

// NewCSVReporter creates a CSV reporter writing to the given path
func NewCSVReporter(path string) *CSVReporter {
	return &CSVReporter{path: path}
}

// GetName returns the reporter name
func (r *CSVReporter) GetName() string {
	return "CSV Reporter"
}

// Write renders the report to the configured file. Missing values are left
// as empty cells.
func (r *CSVReporter) Write(report *Report) error {
	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "value", "change", "percent_change", "signal_value", "signal_type", "crisis"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, point := range report.Points {
		crisisLabel := ""
		if point.Crisis != nil {
			crisisLabel = point.Crisis.Label
		}
		record := []string{
			point.Date.Format("2006-01-02"),
			formatFloat(point.Value),
			formatNullable(point.Change),
			formatNullable(point.PercentChange),
			strconv.FormatFloat(point.SignalValue, 'f', 2, 64),
			string(point.SignalType),
			crisisLabel,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// formatFloat renders a raw value, leaving non-numeric values empty
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatNullable renders an optional value, leaving nil empty
func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
