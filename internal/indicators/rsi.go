package indicators

import (
	"fmt"
	"math"
)

// rsiEpsilon is substituted for a zero average loss so that a gains-only
// streak yields an RSI just below 100 instead of a division by zero.
const rsiEpsilon = 1e-10

// RSI calculates the Relative Strength Index with Wilder smoothing
type RSI struct {
	period int
}

// NewRSI creates a new RSI instance with the given period
func NewRSI(period int) *RSI {
	return &RSI{
		period: period,
	}
}

// Series calculates the RSI over the whole value sequence. The first period
// indices are nil; index period carries the RSI of the initial average
// gain/loss, and subsequent indices apply Wilder smoothing:
// avg = (avg*(period-1) + delta) / period. A non-numeric value leaves the
// remainder nil since the smoothed averages cannot recover from it.
func (r *RSI) Series(values []float64) []*float64 {
	result := nullSeries(len(values))
	if r.period <= 0 || len(values) < r.period+1 {
		return result
	}

	avgGain := 0.0
	avgLoss := 0.0
	for i := 1; i <= r.period; i++ {
		if !isFinite(values[i-1]) || !isFinite(values[i]) {
			return result
		}
		delta := values[i] - values[i-1]
		avgGain += math.Max(delta, 0)
		avgLoss += math.Max(-delta, 0)
	}
	avgGain /= float64(r.period)
	avgLoss /= float64(r.period)
	result[r.period] = fptr(rsiValue(avgGain, avgLoss))

	for i := r.period + 1; i < len(values); i++ {
		if !isFinite(values[i]) {
			break
		}
		delta := values[i] - values[i-1]
		avgGain = (avgGain*float64(r.period-1) + math.Max(delta, 0)) / float64(r.period)
		avgLoss = (avgLoss*float64(r.period-1) + math.Max(-delta, 0)) / float64(r.period)
		result[i] = fptr(rsiValue(avgGain, avgLoss))
	}

	return result
}

// rsiValue converts smoothed average gain/loss into the 0-100 oscillator
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = rsiEpsilon
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// GetName returns the indicator name
func (r *RSI) GetName() string {
	return fmt.Sprintf("RSI_%d", r.period)
}

// GetRequiredPeriods returns the minimum number of periods needed
func (r *RSI) GetRequiredPeriods() int {
	return r.period + 1
}
