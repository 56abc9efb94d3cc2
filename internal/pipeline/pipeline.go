package pipeline

import (
	"github.com/ducminhle1904/econ-signal-pipeline/internal/crisis"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/signal"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/transform"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/config"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// Pipeline runs the full signal-generation flow over a raw series:
// change calculation, indicator aggregation and crisis annotation. Every run
// recomputes from scratch; the pipeline keeps no cross-call state, so one
// instance is safe for concurrent use.
type Pipeline struct {
	changes    *transform.ChangeCalculator
	aggregator *signal.Aggregator
	annotator  *crisis.Annotator
}

// New creates a pipeline for the given aggregation config and crisis list
func New(config signal.Config, events []types.CrisisEvent) *Pipeline {
	return &Pipeline{
		changes:    transform.NewChangeCalculator(),
		aggregator: signal.NewAggregator(config),
		annotator:  crisis.NewAnnotator(events),
	}
}

// FromConfig builds a pipeline from a file-backed configuration
func FromConfig(cfg *config.PipelineConfig) *Pipeline {
	signalConfig := signal.Config{
		Thresholds:    map[signal.IndicatorID]signal.Levels{},
		RSIPeriod:     cfg.Periods.RSI,
		MACDFast:      cfg.Periods.MACDFast,
		MACDSlow:      cfg.Periods.MACDSlow,
		MACDSignal:    cfg.Periods.MACDSignal,
		BBPeriod:      cfg.Periods.Bollinger,
		BBStdDev:      cfg.Periods.BollingerStdDev,
		FastSMAPeriod: cfg.Periods.FastSMA,
		SlowSMAPeriod: cfg.Periods.SlowSMA,
	}
	for _, id := range cfg.Indicators {
		signalConfig.Indicators = append(signalConfig.Indicators, signal.IndicatorID(id))
	}
	for id, levels := range cfg.Thresholds {
		signalConfig.Thresholds[signal.IndicatorID(id)] = signal.Levels{Buy: levels.Buy, Sell: levels.Sell}
	}

	return New(signalConfig, cfg.CrisisEvents())
}

// Run computes the enriched series for the given observations. The input is
// sorted ascending by date defensively before any computation and is never
// modified. The output is always the same length as the input.
func (p *Pipeline) Run(series []types.Observation) []types.AnnotatedPoint {
	sorted := types.SortedByDate(series)

	changes := p.changes.Series(sorted)
	signals := p.annotator.Annotate(p.aggregator.Evaluate(sorted))

	result := make([]types.AnnotatedPoint, len(sorted))
	for i := range sorted {
		result[i] = types.AnnotatedPoint{
			Observation:   sorted[i],
			Change:        changes[i].Change,
			PercentChange: changes[i].PercentChange,
			SignalValue:   signals[i].SignalValue,
			SignalType:    signals[i].SignalType,
			Detailed:      signals[i].Detailed,
			Crisis:        signals[i].Crisis,
		}
	}

	return result
}
