package transform

import (
	"math"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// ChangeCalculator computes period-over-period deltas for an ordered series.
type ChangeCalculator struct{}

// NewChangeCalculator creates a new change calculator
func NewChangeCalculator() *ChangeCalculator {
	return &ChangeCalculator{}
}

// Series returns a new sequence where each point except the first carries the
// absolute change from the previous value and the percent change relative to
// the previous value's magnitude. The first point's deltas are nil. When
// either side of a delta is non-numeric both outputs are nil, and when the
// previous value is exactly zero the percent change is nil while the absolute
// change is still computed. The input is never mutated and this never panics.
func (c *ChangeCalculator) Series(series []types.Observation) []types.ChangePoint {
	result := make([]types.ChangePoint, len(series))

	for i, obs := range series {
		point := types.ChangePoint{Observation: obs}

		if i > 0 {
			prev := series[i-1].Value
			if isFinite(prev) && isFinite(obs.Value) {
				change := obs.Value - prev
				point.Change = types.Float(change)
				if prev != 0 {
					point.PercentChange = types.Float(change / math.Abs(prev) * 100)
				}
			}
		}

		result[i] = point
	}

	return result
}

// isFinite reports whether v is a usable numeric value.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
