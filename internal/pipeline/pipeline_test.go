package pipeline

import (
	"testing"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/internal/signal"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func risingSeries(count int) []types.Observation {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]types.Observation, count)
	for i := range series {
		series[i] = types.Observation{Date: start.AddDate(0, 0, i), Value: 100 + float64(i)}
	}
	return series
}

func TestPipeline_Run_OutputShape(t *testing.T) {
	p := New(signal.DefaultConfig(), nil)
	series := risingSeries(120)

	result := p.Run(series)

	require.Len(t, result, 120)
	assert.Nil(t, result[0].Change)
	assert.Nil(t, result[0].PercentChange)
	require.NotNil(t, result[1].Change)
	assert.Equal(t, 1.0, *result[1].Change)
	assert.InDelta(t, 1.0, *result[1].PercentChange, 1e-9)
	assert.Equal(t, types.SignalNeutral, result[0].SignalType)
}

func TestPipeline_Run_SortsUnorderedInput(t *testing.T) {
	p := New(signal.DefaultConfig(), nil)
	series := risingSeries(60)
	// Shuffle a few points out of order
	series[3], series[40] = series[40], series[3]
	series[10], series[55] = series[55], series[10]

	result := p.Run(series)

	require.Len(t, result, 60)
	for i := 1; i < len(result); i++ {
		assert.True(t, result[i].Date.After(result[i-1].Date), "index %d out of order", i)
		require.NotNil(t, result[i].Change)
		assert.Equal(t, 1.0, *result[i].Change)
	}
}

func TestPipeline_Run_CrisisAttached(t *testing.T) {
	series := risingSeries(80)
	events := []types.CrisisEvent{
		{Label: "shock", Date: series[70].Date.AddDate(0, 0, -3), Description: "synthetic shock"},
	}
	p := New(signal.DefaultConfig(), events)

	result := p.Run(series)

	require.NotNil(t, result[70].Crisis)
	assert.Equal(t, "shock", result[70].Crisis.Label)
	assert.Nil(t, result[0].Crisis)
}

func TestPipeline_Run_EmptyInput(t *testing.T) {
	p := New(signal.DefaultConfig(), nil)

	result := p.Run(nil)

	assert.Empty(t, result)
}

func TestPipeline_Run_DoesNotMutateInput(t *testing.T) {
	p := New(signal.DefaultConfig(), nil)
	series := risingSeries(10)
	series[0], series[9] = series[9], series[0]
	first := series[0]

	p.Run(series)

	assert.Equal(t, first, series[0], "input order must be preserved")
}
