package types

import (
	"fmt"
	"sort"
	"time"
)

// Observation is a single point of an economic time series.
// Upstream values that could not be parsed are carried as NaN so that
// positional alignment with derived series is never broken.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ChangePoint is an Observation enriched with period-over-period deltas.
// Change and PercentChange are nil for the first point and for points where
// either side of the delta is non-numeric.
type ChangePoint struct {
	Observation
	Change        *float64 `json:"change"`
	PercentChange *float64 `json:"percentChange"`
}

// FormatPercentChange renders the percent change the way the dashboard
// displays it, e.g. "10.00%". Returns an empty string when not computable.
func (c ChangePoint) FormatPercentChange() string {
	if c.PercentChange == nil {
		return ""
	}
	return fmt.Sprintf("%.2f%%", *c.PercentChange)
}

// SignalType classifies the aggregated signal value of a point.
type SignalType string

const (
	SignalStrongBuy  SignalType = "strong_buy"
	SignalBuy        SignalType = "buy"
	SignalNeutral    SignalType = "neutral"
	SignalSell       SignalType = "sell"
	SignalStrongSell SignalType = "strong_sell"
)

// DetailedSignal explains which indicator fired and with what reading.
type DetailedSignal struct {
	Metric string  `json:"metric"`
	Signal string  `json:"signal"`
	Value  float64 `json:"value"`
}

// SignalPoint is an Observation enriched with the aggregated buy/sell signal
// and, when one falls close enough, a reference to a known crisis event.
type SignalPoint struct {
	Observation
	SignalValue float64          `json:"signalValue"`
	SignalType  SignalType       `json:"signalType"`
	Detailed    []DetailedSignal `json:"detailedSignals,omitempty"`
	Crisis      *CrisisEvent     `json:"crisis,omitempty"`
}

// AnnotatedPoint is the fully enriched output shape handed to presentation
// collaborators: the raw observation plus deltas, aggregated signal and the
// optional crisis tag.
type AnnotatedPoint struct {
	Observation
	Change        *float64         `json:"change"`
	PercentChange *float64         `json:"percentChange"`
	SignalValue   float64          `json:"signalValue"`
	SignalType    SignalType       `json:"signalType"`
	Detailed      []DetailedSignal `json:"detailedSignals,omitempty"`
	Crisis        *CrisisEvent     `json:"crisis,omitempty"`
}

// CrisisEvent is a known market event sourced from static configuration.
type CrisisEvent struct {
	Label       string    `json:"label"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Values extracts the raw value column of a series.
func Values(series []Observation) []float64 {
	values := make([]float64, len(series))
	for i, obs := range series {
		values[i] = obs.Value
	}
	return values
}

// SortedByDate returns a copy of the series sorted ascending by date.
// The input slice is never reordered in place.
func SortedByDate(series []Observation) []Observation {
	sorted := make([]Observation, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Float returns a pointer to v, for building nullable indicator series.
func Float(v float64) *float64 {
	return &v
}
