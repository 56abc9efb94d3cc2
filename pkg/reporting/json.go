package reporting

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// JSONReporter writes a report as an indented JSON document.
type JSONReporter struct {
	path string
}

// jsonPoint is the wire shape of one annotated point. Dates are ISO days and
// non-numeric raw values become null, since JSON has no NaN.
type jsonPoint struct {
	Date          string                 `json:"date"`
	Value         *float64               `json:"value"`
	Change        *float64               `json:"change"`
	PercentChange *float64               `json:"percentChange"`
	SignalValue   float64                `json:"signalValue"`
	SignalType    types.SignalType       `json:"signalType"`
	Detailed      []types.DetailedSignal `json:"detailedSignals,omitempty"`
	Crisis        *jsonCrisis            `json:"crisis,omitempty"`
}

type jsonCrisis struct {
	Label       string `json:"label"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type jsonReport struct {
	SeriesID  string      `json:"series_id"`
	Generated time.Time   `json:"generated"`
	Count     int         `json:"count"`
	Points    []jsonPoint `json:"points"`
}

// NewJSONReporter creates a JSON reporter writing to the given path
func NewJSONReporter(path string) *JSONReporter {
	return &JSONReporter{path: path}
}

// GetName returns the reporter name
func (r *JSONReporter) GetName() string {
	return "JSON Reporter"
}

// Write renders the report to the configured file
func (r *JSONReporter) Write(report *Report) error {
	data, err := MarshalReport(report)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return os.WriteFile(r.path, data, 0644)
}

// MarshalReport renders the report as indented JSON bytes
func MarshalReport(report *Report) ([]byte, error) {
	out := jsonReport{
		SeriesID:  report.SeriesID,
		Generated: report.Generated,
		Count:     len(report.Points),
		Points:    make([]jsonPoint, len(report.Points)),
	}

	for i, point := range report.Points {
		row := jsonPoint{
			Date:          point.Date.Format("2006-01-02"),
			Change:        point.Change,
			PercentChange: point.PercentChange,
			SignalValue:   point.SignalValue,
			SignalType:    point.SignalType,
			Detailed:      point.Detailed,
		}
		if !math.IsNaN(point.Value) && !math.IsInf(point.Value, 0) {
			v := point.Value
			row.Value = &v
		}
		if point.Crisis != nil {
			row.Crisis = &jsonCrisis{
				Label:       point.Crisis.Label,
				Date:        point.Crisis.Date.Format("2006-01-02"),
				Description: point.Crisis.Description,
			}
		}
		out.Points[i] = row
	}

	return json.MarshalIndent(out, "", "  ")
}
