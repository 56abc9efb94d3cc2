package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeriesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVProvider_LoadSeries(t *testing.T) {
	provider := NewCSVProvider()
	path := writeSeriesFile(t, "date,value\n2024-01-01,100.5\n2024-01-02,101.25\n")

	series, err := provider.LoadSeries(path)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 100.5, series[0].Value)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), series[1].Date)
}

func TestCSVProvider_LoadSeries_MissingValueKeptAsNaN(t *testing.T) {
	provider := NewCSVProvider()
	// FRED writes "." for missing observations
	path := writeSeriesFile(t, "date,value\n2024-01-01,100\n2024-01-02,.\n2024-01-03,102\n")

	series, err := provider.LoadSeries(path)

	require.NoError(t, err)
	require.Len(t, series, 3, "missing values must not break positional alignment")
	assert.True(t, math.IsNaN(series[1].Value))
	assert.Equal(t, 102.0, series[2].Value)
}

func TestCSVProvider_LoadSeries_BadDateSkipped(t *testing.T) {
	provider := NewCSVProvider()
	path := writeSeriesFile(t, "date,value\nnot-a-date,100\n2024-01-02,101\n")

	series, err := provider.LoadSeries(path)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 101.0, series[0].Value)
}

func TestCSVProvider_LoadSeries_MissingFile(t *testing.T) {
	provider := NewCSVProvider()

	_, err := provider.LoadSeries(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
}

func TestCSVProvider_ValidateSeries(t *testing.T) {
	provider := NewCSVProvider()
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	assert.Error(t, provider.ValidateSeries(nil))
	assert.NoError(t, provider.ValidateSeries([]types.Observation{{Date: day1}, {Date: day2}}))
	assert.Error(t, provider.ValidateSeries([]types.Observation{{Date: day2}, {Date: day1}}))
}

func TestCachedProvider_LoadSeries_ServesFromCache(t *testing.T) {
	provider := NewCachedProvider(NewCSVProvider())
	path := writeSeriesFile(t, "date,value\n2024-01-01,100\n")

	first, err := provider.LoadSeries(path)
	require.NoError(t, err)

	// Remove the file; a second load must come from cache
	require.NoError(t, os.Remove(path))
	second, err := provider.LoadSeries(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.GetCacheSize())
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	cache := NewMemoryCache()
	original := []types.Observation{{Value: 1}}
	cache.Set("k", original)

	got, ok := cache.Get("k")
	require.True(t, ok)
	got[0].Value = 99

	again, _ := cache.Get("k")
	assert.Equal(t, 1.0, again[0].Value, "cache contents must be isolated from callers")
}

func TestDefaultSeriesFilter_FilterByDateRange(t *testing.T) {
	filter := NewDefaultSeriesFilter()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := []types.Observation{
		{Date: start, Value: 1},
		{Date: start.AddDate(0, 0, 5), Value: 2},
		{Date: start.AddDate(0, 0, 10), Value: 3},
	}

	filtered := filter.FilterByDateRange(series, start.AddDate(0, 0, 1), start.AddDate(0, 0, 9))

	require.Len(t, filtered, 1)
	assert.Equal(t, 2.0, filtered[0].Value)
}

func TestDefaultSeriesFilter_FilterByPeriod(t *testing.T) {
	filter := NewDefaultSeriesFilter()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := []types.Observation{
		{Date: start, Value: 1},
		{Date: start.AddDate(0, 0, 30), Value: 2},
		{Date: start.AddDate(0, 0, 60), Value: 3},
	}

	filtered := filter.FilterByPeriod(series, 35*24*time.Hour)

	require.Len(t, filtered, 2)
	assert.Equal(t, 2.0, filtered[0].Value)
}

func TestDefaultSeriesFilter_ValidateTimeSequence(t *testing.T) {
	filter := NewDefaultSeriesFilter()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ordered := []types.Observation{{Date: start}, {Date: start.AddDate(0, 0, 1)}}
	assert.NoError(t, filter.ValidateTimeSequence(ordered))

	unordered := []types.Observation{{Date: start.AddDate(0, 0, 1)}, {Date: start}}
	assert.Error(t, filter.ValidateTimeSequence(unordered))
}
