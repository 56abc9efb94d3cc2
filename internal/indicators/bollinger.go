package indicators

import (
	"fmt"
	"math"
)

// BollingerBands represents the Bollinger Bands indicator
type BollingerBands struct {
	period         int
	stdDevMultiple float64
}

// BollingerSeries holds the band series plus %B, each aligned with the input
type BollingerSeries struct {
	Upper    []*float64
	Middle   []*float64
	Lower    []*float64
	PercentB []*float64
}

// NewBollingerBands creates a new BollingerBands instance with the given
// period and standard deviation multiplier
func NewBollingerBands(period int, stdDev float64) *BollingerBands {
	return &BollingerBands{
		period:         period,
		stdDevMultiple: stdDev,
	}
}

// Series calculates the Bollinger Bands over the whole value sequence.
// The middle band is the SMA, the standard deviation is taken over the same
// trailing window, and %B normalizes the current value's position within the
// bands on a 0-1 scale (0.5 when the bands collapse to zero width).
func (bb *BollingerBands) Series(values []float64) BollingerSeries {
	middle := NewSMA(bb.period).Series(values)

	upper := nullSeries(len(values))
	lower := nullSeries(len(values))
	percentB := nullSeries(len(values))

	for i := range values {
		if middle[i] == nil {
			continue
		}

		mean := *middle[i]
		variance := 0.0
		for j := i - bb.period + 1; j <= i; j++ {
			diff := values[j] - mean
			variance += diff * diff
		}
		stdDev := math.Sqrt(variance / float64(bb.period))

		up := mean + bb.stdDevMultiple*stdDev
		low := mean - bb.stdDevMultiple*stdDev
		upper[i] = fptr(up)
		lower[i] = fptr(low)

		if up == low {
			percentB[i] = fptr(0.5)
		} else {
			percentB[i] = fptr((values[i] - low) / (up - low))
		}
	}

	return BollingerSeries{
		Upper:    upper,
		Middle:   middle,
		Lower:    lower,
		PercentB: percentB,
	}
}

// GetName returns the indicator name
func (bb *BollingerBands) GetName() string {
	return fmt.Sprintf("BB_%d", bb.period)
}

// GetRequiredPeriods returns the minimum number of periods needed
func (bb *BollingerBands) GetRequiredPeriods() int {
	return bb.period
}
