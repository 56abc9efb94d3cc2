package signal

import (
	"github.com/ducminhle1904/econ-signal-pipeline/internal/indicators"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// minEvaluationIndex is the first index at which votes are collected, so a
// short SMA crossover history never dominates the aggregate.
const minEvaluationIndex = 50

// Classification bands for the aggregated signal value. Fixed by contract
// with the dashboard, not configurable.
const (
	strongBuyLevel  = 50.0
	strongSellLevel = -50.0
)

// Aggregator combines indicator outputs into one normalized buy/sell signal
// per data point.
type Aggregator struct {
	config Config
}

// NewAggregator creates a new aggregator for the given configuration
func NewAggregator(config Config) *Aggregator {
	return &Aggregator{config: config}
}

// indicatorVote is one indicator's verdict at a single index.
type indicatorVote struct {
	metric string
	buy    bool
	sell   bool
	value  float64
}

// Evaluate produces one SignalPoint per input point. Indicators still inside
// their warm-up at an index are excluded from that point's vote count rather
// than treated as neutral votes. Points with no evaluated indicator come out
// as signalValue 0 / neutral, so the output is always well shaped.
func (a *Aggregator) Evaluate(series []types.Observation) []types.SignalPoint {
	values := types.Values(series)

	var rsi []*float64
	if a.config.selected(IndicatorRSI) {
		rsi = indicators.NewRSI(a.config.RSIPeriod).Series(values)
	}

	var histogram []*float64
	if a.config.selected(IndicatorMACD) {
		histogram = indicators.NewMACD(a.config.MACDFast, a.config.MACDSlow, a.config.MACDSignal).Series(values).Histogram
	}

	var fastSMA, slowSMA []*float64
	if a.config.selected(IndicatorSMA) {
		fastSMA = indicators.NewSMA(a.config.FastSMAPeriod).Series(values)
		slowSMA = indicators.NewSMA(a.config.SlowSMAPeriod).Series(values)
	}

	var percentB []*float64
	if a.config.selected(IndicatorBB) {
		percentB = indicators.NewBollingerBands(a.config.BBPeriod, a.config.BBStdDev).Series(values).PercentB
	}

	result := make([]types.SignalPoint, len(series))
	for i, obs := range series {
		point := types.SignalPoint{
			Observation: obs,
			SignalType:  types.SignalNeutral,
		}

		if i >= minEvaluationIndex {
			var votes []indicatorVote
			if rsi != nil {
				if vote, ok := a.rsiVote(rsi, i); ok {
					votes = append(votes, vote)
				}
			}
			if histogram != nil {
				if vote, ok := crossoverVote("MACD", histogram, zeroLine(len(histogram)), i); ok {
					votes = append(votes, vote)
				}
			}
			if fastSMA != nil {
				if vote, ok := crossoverVote("SMA", fastSMA, slowSMA, i); ok {
					votes = append(votes, vote)
				}
			}
			if percentB != nil {
				if vote, ok := a.bollingerVote(percentB, i); ok {
					votes = append(votes, vote)
				}
			}
			point.SignalValue, point.Detailed = tally(votes)
			point.SignalType = classify(point.SignalValue)
		}

		result[i] = point
	}

	return result
}

// rsiVote flags oversold/overbought readings against the configured levels.
func (a *Aggregator) rsiVote(rsi []*float64, i int) (indicatorVote, bool) {
	if rsi[i] == nil {
		return indicatorVote{}, false
	}
	levels := a.config.Thresholds[IndicatorRSI]
	return indicatorVote{
		metric: "RSI",
		buy:    *rsi[i] <= levels.Buy,
		sell:   *rsi[i] >= levels.Sell,
		value:  *rsi[i],
	}, true
}

// bollingerVote flags %B readings near the lower or upper band.
func (a *Aggregator) bollingerVote(percentB []*float64, i int) (indicatorVote, bool) {
	if percentB[i] == nil {
		return indicatorVote{}, false
	}
	levels := a.config.Thresholds[IndicatorBB]
	return indicatorVote{
		metric: "BB",
		buy:    *percentB[i] <= levels.Buy,
		sell:   *percentB[i] >= levels.Sell,
		value:  *percentB[i],
	}, true
}

// crossoverVote flags the line crossing above or below the reference between
// i-1 and i. Both series must have history at both indices, otherwise the
// indicator is excluded from the vote count at this point.
func crossoverVote(metric string, line, reference []*float64, i int) (indicatorVote, bool) {
	if i == 0 || line[i] == nil || line[i-1] == nil || reference[i] == nil || reference[i-1] == nil {
		return indicatorVote{}, false
	}
	return indicatorVote{
		metric: metric,
		buy:    *line[i-1] <= *reference[i-1] && *line[i] > *reference[i],
		sell:   *line[i-1] >= *reference[i-1] && *line[i] < *reference[i],
		value:  *line[i] - *reference[i],
	}, true
}

// zeroLine builds the constant reference the MACD histogram crosses.
func zeroLine(n int) []*float64 {
	zero := 0.0
	line := make([]*float64, n)
	for i := range line {
		line[i] = &zero
	}
	return line
}

// tally folds the votes into the -100..100 signal value and the detailed
// per-indicator breakdown. Only indicators that fired appear in the detail.
func tally(votes []indicatorVote) (float64, []types.DetailedSignal) {
	if len(votes) == 0 {
		return 0, nil
	}

	buys := 0
	sells := 0
	var detailed []types.DetailedSignal
	for _, vote := range votes {
		switch {
		case vote.buy:
			buys++
			detailed = append(detailed, types.DetailedSignal{Metric: vote.metric, Signal: "buy", Value: vote.value})
		case vote.sell:
			sells++
			detailed = append(detailed, types.DetailedSignal{Metric: vote.metric, Signal: "sell", Value: vote.value})
		}
	}

	return float64(buys-sells) / float64(len(votes)) * 100, detailed
}

// classify maps a signal value onto the fixed signal type bands.
func classify(value float64) types.SignalType {
	switch {
	case value >= strongBuyLevel:
		return types.SignalStrongBuy
	case value <= strongSellLevel:
		return types.SignalStrongSell
	case value > 0:
		return types.SignalBuy
	case value < 0:
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}
