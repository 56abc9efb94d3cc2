package signal

import (
	"testing"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func observations(values []float64) []types.Observation {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]types.Observation, len(values))
	for i, v := range values {
		series[i] = types.Observation{Date: start.AddDate(0, 0, i), Value: v}
	}
	return series
}

func risingSeries(count int) []types.Observation {
	values := make([]float64, count)
	for i := range values {
		values[i] = 100.0 + float64(i)
	}
	return observations(values)
}

func TestNewAggregator(t *testing.T) {
	agg := NewAggregator(DefaultConfig())

	assert.NotNil(t, agg)
	assert.Equal(t, 14, agg.config.RSIPeriod)
	assert.Equal(t, 200, agg.config.SlowSMAPeriod)
}

func TestAggregator_Evaluate_OutputAlignment(t *testing.T) {
	agg := NewAggregator(DefaultConfig())
	series := risingSeries(120)

	result := agg.Evaluate(series)

	require.Len(t, result, 120)
	for i, point := range result {
		assert.Equal(t, series[i].Date, point.Date)
		assert.Equal(t, series[i].Value, point.Value)
	}
}

func TestAggregator_Evaluate_NeutralBeforeWarmup(t *testing.T) {
	agg := NewAggregator(DefaultConfig())
	series := risingSeries(120)

	result := agg.Evaluate(series)

	for i := 0; i < minEvaluationIndex; i++ {
		assert.Equal(t, types.SignalNeutral, result[i].SignalType, "index %d", i)
		assert.Equal(t, 0.0, result[i].SignalValue, "index %d", i)
		assert.Empty(t, result[i].Detailed, "index %d", i)
	}
}

func TestAggregator_Evaluate_RisingSeriesTrendsToSell(t *testing.T) {
	agg := NewAggregator(DefaultConfig())
	series := risingSeries(250)

	result := agg.Evaluate(series)

	last := result[len(result)-1]
	assert.Less(t, last.SignalValue, 0.0, "continual gains should read overbought")
	assert.Contains(t, []types.SignalType{types.SignalSell, types.SignalStrongSell}, last.SignalType)

	metrics := make(map[string]string)
	for _, d := range last.Detailed {
		metrics[d.Metric] = d.Signal
	}
	assert.Equal(t, "sell", metrics["RSI"])
}

func TestAggregator_Evaluate_NoIndicatorsSelected(t *testing.T) {
	config := DefaultConfig()
	config.Indicators = nil
	agg := NewAggregator(config)
	series := risingSeries(120)

	result := agg.Evaluate(series)

	for _, point := range result {
		assert.Equal(t, 0.0, point.SignalValue)
		assert.Equal(t, types.SignalNeutral, point.SignalType)
	}
}

func TestAggregator_Evaluate_InsufficientHistoryExcluded(t *testing.T) {
	config := DefaultConfig()
	config.Indicators = []IndicatorID{IndicatorSMA} // slow SMA needs 200 points
	agg := NewAggregator(config)
	series := risingSeries(120)

	result := agg.Evaluate(series)

	last := result[len(result)-1]
	assert.Equal(t, 0.0, last.SignalValue)
	assert.Equal(t, types.SignalNeutral, last.SignalType)
	assert.Empty(t, last.Detailed)
}

func TestAggregator_Evaluate_SignalValueBounds(t *testing.T) {
	agg := NewAggregator(DefaultConfig())
	values := make([]float64, 300)
	for i := range values {
		// A choppy but deterministic series to exercise every vote path
		values[i] = 100 + float64(i%17) - float64(i%5)*2
	}

	result := agg.Evaluate(observations(values))

	for i, point := range result {
		assert.GreaterOrEqual(t, point.SignalValue, -100.0, "index %d", i)
		assert.LessOrEqual(t, point.SignalValue, 100.0, "index %d", i)
	}
}

func TestCrossoverVote_BullishCross(t *testing.T) {
	line := []*float64{fptr(-1), fptr(1)}
	reference := []*float64{fptr(0), fptr(0)}

	vote, ok := crossoverVote("MACD", line, reference, 1)

	require.True(t, ok)
	assert.True(t, vote.buy)
	assert.False(t, vote.sell)
}

func TestCrossoverVote_BearishCross(t *testing.T) {
	line := []*float64{fptr(2), fptr(-2)}
	reference := []*float64{fptr(0), fptr(0)}

	vote, ok := crossoverVote("MACD", line, reference, 1)

	require.True(t, ok)
	assert.False(t, vote.buy)
	assert.True(t, vote.sell)
}

func TestCrossoverVote_MissingHistory(t *testing.T) {
	line := []*float64{nil, fptr(1)}
	reference := []*float64{fptr(0), fptr(0)}

	_, ok := crossoverVote("MACD", line, reference, 1)

	assert.False(t, ok)
}

func TestTally_MixedVotes(t *testing.T) {
	votes := []indicatorVote{
		{metric: "RSI", buy: true, value: 25},
		{metric: "MACD", sell: true, value: -0.5},
		{metric: "BB", value: 0.5},  // evaluated, no vote
		{metric: "SMA", value: 1.2}, // evaluated, no vote
	}

	value, detailed := tally(votes)

	assert.Equal(t, 0.0, value) // (1-1)/4 * 100
	require.Len(t, detailed, 2)
	assert.Equal(t, "RSI", detailed[0].Metric)
	assert.Equal(t, "buy", detailed[0].Signal)
	assert.Equal(t, "MACD", detailed[1].Metric)
	assert.Equal(t, "sell", detailed[1].Signal)
}

func TestTally_AllBuys(t *testing.T) {
	votes := []indicatorVote{
		{metric: "RSI", buy: true},
		{metric: "BB", buy: true},
	}

	value, detailed := tally(votes)

	assert.Equal(t, 100.0, value)
	assert.Len(t, detailed, 2)
}

func TestClassify_Bands(t *testing.T) {
	assert.Equal(t, types.SignalStrongBuy, classify(50))
	assert.Equal(t, types.SignalStrongBuy, classify(75))
	assert.Equal(t, types.SignalBuy, classify(25))
	assert.Equal(t, types.SignalNeutral, classify(0))
	assert.Equal(t, types.SignalSell, classify(-25))
	assert.Equal(t, types.SignalStrongSell, classify(-50))
	assert.Equal(t, types.SignalStrongSell, classify(-100))
}

func fptr(v float64) *float64 {
	return &v
}
