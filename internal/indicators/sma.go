package indicators

import "fmt"

// SMA represents the Simple Moving Average technical indicator
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator
func NewSMA(period int) *SMA {
	return &SMA{
		period: period,
	}
}

// Series calculates the SMA over the whole value sequence. The result is
// aligned with the input: index i < period-1 is nil, every other index holds
// the arithmetic mean of the trailing period values. Windows containing a
// non-numeric value yield nil for that index.
func (s *SMA) Series(values []float64) []*float64 {
	result := nullSeries(len(values))
	if s.period <= 0 || len(values) < s.period {
		return result
	}

	for i := s.period - 1; i < len(values); i++ {
		sum := 0.0
		valid := true
		for j := i - s.period + 1; j <= i; j++ {
			if !isFinite(values[j]) {
				valid = false
				break
			}
			sum += values[j]
		}
		if valid {
			result[i] = fptr(sum / float64(s.period))
		}
	}

	return result
}

// SMASeries is the one-shot form of SMA.Series.
func SMASeries(values []float64, period int) []*float64 {
	return NewSMA(period).Series(values)
}

// GetName returns the indicator name
func (s *SMA) GetName() string {
	return fmt.Sprintf("SMA_%d", s.period)
}

// GetRequiredPeriods returns the minimum number of periods needed
func (s *SMA) GetRequiredPeriods() int {
	return s.period
}
