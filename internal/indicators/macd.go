package indicators

import "fmt"

// MACD calculates the Moving Average Convergence Divergence indicator
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// MACDSeries holds the three MACD output series, each aligned with the input
type MACDSeries struct {
	Line      []*float64
	Signal    []*float64
	Histogram []*float64
}

// NewMACD creates a new MACD instance with specified fast, slow, and signal periods
func NewMACD(fast, slow, signal int) *MACD {
	return &MACD{
		fastPeriod:   fast,
		slowPeriod:   slow,
		signalPeriod: signal,
	}
}

// Series calculates the MACD line, signal line, and histogram over the whole
// value sequence. The line is fast EMA minus slow EMA (nil wherever either
// EMA is nil), the signal is an EMA over the line with its leading nils
// treated as not-yet-computable, and the histogram is line minus signal,
// nil-propagating.
func (m *MACD) Series(values []float64) MACDSeries {
	fast := NewEMA(m.fastPeriod).Series(values)
	slow := NewEMA(m.slowPeriod).Series(values)

	line := nullSeries(len(values))
	for i := range values {
		if fast[i] != nil && slow[i] != nil {
			line[i] = fptr(*fast[i] - *slow[i])
		}
	}

	signal := NewEMA(m.signalPeriod).SeriesFromNullable(line)

	histogram := nullSeries(len(values))
	for i := range values {
		if line[i] != nil && signal[i] != nil {
			histogram[i] = fptr(*line[i] - *signal[i])
		}
	}

	return MACDSeries{
		Line:      line,
		Signal:    signal,
		Histogram: histogram,
	}
}

// GetName returns the indicator name
func (m *MACD) GetName() string {
	return fmt.Sprintf("MACD_%d_%d_%d", m.fastPeriod, m.slowPeriod, m.signalPeriod)
}

// GetRequiredPeriods returns the minimum number of periods needed before the
// histogram produces its first value
func (m *MACD) GetRequiredPeriods() int {
	return m.slowPeriod + m.signalPeriod - 1
}
