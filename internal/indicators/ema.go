package indicators

import "fmt"

// EMA represents the Exponential Moving Average technical indicator
type EMA struct {
	period int
	alpha  float64
}

// NewEMA creates a new EMA indicator
func NewEMA(period int) *EMA {
	return &EMA{
		period: period,
		alpha:  2.0 / float64(period+1), // Standard EMA smoothing factor
	}
}

// Series calculates the EMA over the whole value sequence. The first non-nil
// entry sits at index period-1 and is seeded with the SMA of the first period
// values; subsequent entries apply ema = (value - prev) * alpha + prev.
// If any seed value is non-numeric the entire output stays nil (no partial
// results). A non-numeric value after the seed leaves the remainder nil,
// since the recursion cannot recover from it.
func (e *EMA) Series(values []float64) []*float64 {
	result := nullSeries(len(values))
	if e.period <= 0 || len(values) < e.period {
		return result
	}

	sum := 0.0
	for _, v := range values[:e.period] {
		if !isFinite(v) {
			return result
		}
		sum += v
	}

	prev := sum / float64(e.period)
	result[e.period-1] = fptr(prev)

	for i := e.period; i < len(values); i++ {
		if !isFinite(values[i]) {
			break
		}
		prev = (values[i]-prev)*e.alpha + prev
		result[i] = fptr(prev)
	}

	return result
}

// SeriesFromNullable calculates the EMA over a series that already carries
// leading nils (e.g. the MACD line). The leading nils are treated as
// not-yet-computable history: the seed window starts at the first non-nil
// entry and the output stays aligned with the input. An interior nil ends
// the recursion, leaving the remainder nil.
func (e *EMA) SeriesFromNullable(values []*float64) []*float64 {
	result := nullSeries(len(values))
	if e.period <= 0 {
		return result
	}

	start := 0
	for start < len(values) && values[start] == nil {
		start++
	}
	if len(values)-start < e.period {
		return result
	}

	sum := 0.0
	for i := start; i < start+e.period; i++ {
		if values[i] == nil || !isFinite(*values[i]) {
			return result
		}
		sum += *values[i]
	}

	prev := sum / float64(e.period)
	result[start+e.period-1] = fptr(prev)

	for i := start + e.period; i < len(values); i++ {
		if values[i] == nil || !isFinite(*values[i]) {
			break
		}
		prev = (*values[i]-prev)*e.alpha + prev
		result[i] = fptr(prev)
	}

	return result
}

// EMASeries is the one-shot form of EMA.Series.
func EMASeries(values []float64, period int) []*float64 {
	return NewEMA(period).Series(values)
}

// GetName returns the indicator name
func (e *EMA) GetName() string {
	return fmt.Sprintf("EMA_%d", e.period)
}

// GetRequiredPeriods returns the minimum number of periods needed
func (e *EMA) GetRequiredPeriods() int {
	return e.period
}
