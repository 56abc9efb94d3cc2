package indicators

import "math"

// SeriesIndicator computes a derived series aligned index-for-index with its
// input values. Entries before the warm-up period, and entries whose trailing
// window contains a non-numeric value, are nil. Implementations never mutate
// the input and never return a slice of a different length.
type SeriesIndicator interface {
	Series(values []float64) []*float64
	GetName() string
	GetRequiredPeriods() int
}

var (
	_ SeriesIndicator = (*SMA)(nil)
	_ SeriesIndicator = (*EMA)(nil)
	_ SeriesIndicator = (*RSI)(nil)
)

// nullSeries allocates an all-nil series of the given length.
func nullSeries(n int) []*float64 {
	return make([]*float64, n)
}

// fptr returns a pointer to v for building nullable series entries.
func fptr(v float64) *float64 {
	return &v
}

// isFinite reports whether v is a usable numeric value.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
