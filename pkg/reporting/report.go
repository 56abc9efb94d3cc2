package reporting

import (
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// Report is one pipeline run packaged for output.
type Report struct {
	SeriesID  string                 `json:"series_id"`
	Generated time.Time              `json:"generated"`
	Points    []types.AnnotatedPoint `json:"points"`
}

// Summary aggregates a report for console display.
type Summary struct {
	Points        int
	BuySignals    int
	SellSignals   int
	StrongSignals int
	CrisisTagged  int
	LastSignal    types.SignalType
	LastValue     float64
}

// NewReport packages an annotated series under a series identifier
func NewReport(seriesID string, points []types.AnnotatedPoint) *Report {
	return &Report{
		SeriesID:  seriesID,
		Generated: time.Now().UTC(),
		Points:    points,
	}
}

// Summarize counts the signal activity across the report's points
func (r *Report) Summarize() Summary {
	summary := Summary{
		Points:     len(r.Points),
		LastSignal: types.SignalNeutral,
	}

	for _, point := range r.Points {
		switch point.SignalType {
		case types.SignalBuy:
			summary.BuySignals++
		case types.SignalStrongBuy:
			summary.BuySignals++
			summary.StrongSignals++
		case types.SignalSell:
			summary.SellSignals++
		case types.SignalStrongSell:
			summary.SellSignals++
			summary.StrongSignals++
		}
		if point.Crisis != nil {
			summary.CrisisTagged++
		}
	}

	if len(r.Points) > 0 {
		last := r.Points[len(r.Points)-1]
		summary.LastSignal = last.SignalType
		summary.LastValue = last.SignalValue
	}

	return summary
}

// Reporter writes a report to some destination.
type Reporter interface {
	// Write renders the report
	Write(report *Report) error

	// GetName returns the reporter name
	GetName() string
}
