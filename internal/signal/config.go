package signal

// IndicatorID identifies an indicator the aggregator can consult.
type IndicatorID string

const (
	IndicatorRSI  IndicatorID = "RSI"
	IndicatorMACD IndicatorID = "MACD"
	IndicatorSMA  IndicatorID = "SMA"
	IndicatorBB   IndicatorID = "BB"
)

// Levels holds the buy/sell trigger levels for one indicator.
type Levels struct {
	Buy  float64
	Sell float64
}

// Config carries everything one aggregation run needs. It is passed
// explicitly into NewAggregator so that callers with different thresholds can
// run concurrently without sharing state.
type Config struct {
	// Indicators selects the subset consulted per point.
	Indicators []IndicatorID

	// Thresholds maps indicator IDs to trigger levels. RSI levels are on the
	// 0-100 oscillator scale, BB levels on the 0-1 %B scale. MACD and SMA
	// votes are crossover-based and ignore the table.
	Thresholds map[IndicatorID]Levels

	RSIPeriod     int
	MACDFast      int
	MACDSlow      int
	MACDSignal    int
	BBPeriod      int
	BBStdDev      float64
	FastSMAPeriod int
	SlowSMAPeriod int
}

// DefaultConfig returns the thresholds and periods the dashboard ships with.
func DefaultConfig() Config {
	return Config{
		Indicators: []IndicatorID{IndicatorRSI, IndicatorMACD, IndicatorSMA, IndicatorBB},
		Thresholds: map[IndicatorID]Levels{
			IndicatorRSI: {Buy: 30, Sell: 70},
			IndicatorBB:  {Buy: 0.2, Sell: 0.8},
		},
		RSIPeriod:     14,
		MACDFast:      12,
		MACDSlow:      26,
		MACDSignal:    9,
		BBPeriod:      20,
		BBStdDev:      2.0,
		FastSMAPeriod: 50,
		SlowSMAPeriod: 200,
	}
}

// selected reports whether the given indicator is part of this run.
func (c Config) selected(id IndicatorID) bool {
	for _, candidate := range c.Indicators {
		if candidate == id {
			return true
		}
	}
	return false
}
