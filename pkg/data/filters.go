package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// ParseTrailingPeriod parses period strings like "30d", "365days" or raw
// durations such as "168h"
func ParseTrailingPeriod(s string) (time.Duration, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(s, "days") {
		s = strings.TrimSuffix(s, "days") + "d"
	}
	if strings.HasSuffix(s, "d") {
		nStr := strings.TrimSuffix(s, "d")
		if nStr == "" {
			return 0, false
		}
		n, err := strconv.Atoi(nStr)
		if err != nil || n <= 0 {
			return 0, false
		}
		return time.Duration(n) * 24 * time.Hour, true
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	return 0, false
}

// DefaultSeriesFilter implements SeriesFilter for common windowing operations
type DefaultSeriesFilter struct{}

// NewDefaultSeriesFilter creates a new default series filter
func NewDefaultSeriesFilter() *DefaultSeriesFilter {
	return &DefaultSeriesFilter{}
}

// FilterByPeriod keeps the trailing period of the series, measured back from
// the latest observation
func (f *DefaultSeriesFilter) FilterByPeriod(series []types.Observation, period time.Duration) []types.Observation {
	if period <= 0 || len(series) == 0 {
		return series
	}

	latest := series[len(series)-1].Date
	cutoff := latest.Add(-period)

	startIdx := 0
	for i, obs := range series {
		if !obs.Date.Before(cutoff) {
			startIdx = i
			break
		}
	}

	return series[startIdx:]
}

// FilterByDateRange keeps observations inside [start, end]
func (f *DefaultSeriesFilter) FilterByDateRange(series []types.Observation, start, end time.Time) []types.Observation {
	if len(series) == 0 {
		return series
	}

	var filtered []types.Observation
	for _, obs := range series {
		if !obs.Date.Before(start) && !obs.Date.After(end) {
			filtered = append(filtered, obs)
		}
	}

	return filtered
}

// ValidateTimeSequence ensures the series is in chronological order
func (f *DefaultSeriesFilter) ValidateTimeSequence(series []types.Observation) error {
	for i := 1; i < len(series); i++ {
		if series[i].Date.Before(series[i-1].Date) {
			return fmt.Errorf("series out of chronological order at index %d", i)
		}
	}
	return nil
}
