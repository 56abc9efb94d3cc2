package data

import (
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// SeriesProvider loads observation series from a local source. Providers
// never reach the network; fetching from upstream APIs is the responsibility
// of external collaborators.
type SeriesProvider interface {
	// LoadSeries loads the series from the given source
	LoadSeries(source string) ([]types.Observation, error)

	// ValidateSeries validates the integrity of a loaded series
	ValidateSeries(series []types.Observation) error

	// GetName returns the name of the provider
	GetName() string
}

// SeriesCache caches loaded series keyed by source.
type SeriesCache interface {
	// Get retrieves a series from cache if available
	Get(key string) ([]types.Observation, bool)

	// Set stores a series in cache
	Set(key string, series []types.Observation)

	// Clear removes all cached series
	Clear()

	// Size returns the number of cached entries
	Size() int
}

// SeriesFilter narrows a series to a window of interest.
type SeriesFilter interface {
	// FilterByPeriod keeps the trailing period of the series
	FilterByPeriod(series []types.Observation, period time.Duration) []types.Observation

	// FilterByDateRange keeps observations inside [start, end]
	FilterByDateRange(series []types.Observation, start, end time.Time) []types.Observation

	// ValidateTimeSequence ensures the series is in chronological order
	ValidateTimeSequence(series []types.Observation) error
}
