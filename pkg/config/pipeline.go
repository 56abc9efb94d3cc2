package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
	"gopkg.in/yaml.v3"
)

// Levels holds the buy/sell trigger levels for one indicator.
type Levels struct {
	Buy  float64 `yaml:"buy"`
	Sell float64 `yaml:"sell"`
}

// Periods holds the indicator warm-up lengths.
type Periods struct {
	RSI             int     `yaml:"rsi"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	Bollinger       int     `yaml:"bollinger"`
	BollingerStdDev float64 `yaml:"bollinger_std_dev"`
	FastSMA         int     `yaml:"fast_sma"`
	SlowSMA         int     `yaml:"slow_sma"`
}

// CrisisEntry is one configured crisis event. Dates are ISO YYYY-MM-DD.
type CrisisEntry struct {
	Label       string `yaml:"label"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// PipelineConfig is the file-backed configuration for one pipeline run:
// the indicator subset, trigger levels, warm-up periods and the static
// crisis-event list.
type PipelineConfig struct {
	Indicators []string          `yaml:"indicators"`
	Thresholds map[string]Levels `yaml:"thresholds"`
	Periods    Periods           `yaml:"periods"`
	Crises     []CrisisEntry     `yaml:"crises"`
}

// DefaultPipelineConfig returns the configuration the dashboard ships with
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Indicators: []string{"RSI", "MACD", "SMA", "BB"},
		Thresholds: map[string]Levels{
			"RSI": {Buy: 30, Sell: 70},
			"BB":  {Buy: 0.2, Sell: 0.8},
		},
		Periods: Periods{
			RSI:             14,
			MACDFast:        12,
			MACDSlow:        26,
			MACDSignal:      9,
			Bollinger:       20,
			BollingerStdDev: 2.0,
			FastSMA:         50,
			SlowSMA:         200,
		},
	}
}

// LoadPipelineConfig reads a YAML pipeline configuration. Omitted fields keep
// their defaults, and the merged result is validated before being returned.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline config %s: %w", path, err)
	}

	cfg := DefaultPipelineConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *PipelineConfig) Validate() error {
	known := map[string]bool{"RSI": true, "MACD": true, "SMA": true, "BB": true}
	for _, id := range c.Indicators {
		if !known[id] {
			return fmt.Errorf("unknown indicator %q", id)
		}
	}

	for id, levels := range c.Thresholds {
		if !known[id] {
			return fmt.Errorf("threshold for unknown indicator %q", id)
		}
		if levels.Buy >= levels.Sell {
			return fmt.Errorf("indicator %q: buy level %.2f must be below sell level %.2f", id, levels.Buy, levels.Sell)
		}
	}

	periods := map[string]int{
		"rsi":         c.Periods.RSI,
		"macd_fast":   c.Periods.MACDFast,
		"macd_slow":   c.Periods.MACDSlow,
		"macd_signal": c.Periods.MACDSignal,
		"bollinger":   c.Periods.Bollinger,
		"fast_sma":    c.Periods.FastSMA,
		"slow_sma":    c.Periods.SlowSMA,
	}
	for name, period := range periods {
		if period <= 0 {
			return fmt.Errorf("period %s must be positive, got %d", name, period)
		}
	}
	if c.Periods.MACDFast >= c.Periods.MACDSlow {
		return fmt.Errorf("macd_fast %d must be below macd_slow %d", c.Periods.MACDFast, c.Periods.MACDSlow)
	}
	if c.Periods.FastSMA >= c.Periods.SlowSMA {
		return fmt.Errorf("fast_sma %d must be below slow_sma %d", c.Periods.FastSMA, c.Periods.SlowSMA)
	}
	if c.Periods.BollingerStdDev <= 0 {
		return fmt.Errorf("bollinger_std_dev must be positive, got %.2f", c.Periods.BollingerStdDev)
	}

	for _, entry := range c.Crises {
		if entry.Label == "" {
			return fmt.Errorf("crisis entry with empty label")
		}
		if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
			return fmt.Errorf("crisis %q: invalid date %q (want YYYY-MM-DD)", entry.Label, entry.Date)
		}
	}

	return nil
}

// CrisisEvents converts the configured entries into the domain event list.
// Validate must have accepted the config first.
func (c *PipelineConfig) CrisisEvents() []types.CrisisEvent {
	events := make([]types.CrisisEvent, 0, len(c.Crises))
	for _, entry := range c.Crises {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			continue
		}
		events = append(events, types.CrisisEvent{
			Label:       entry.Label,
			Date:        date,
			Description: entry.Description,
		})
	}
	return events
}
