package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, []string{"RSI", "MACD", "SMA", "BB"}, cfg.Indicators)
	assert.Equal(t, 14, cfg.Periods.RSI)
	assert.Equal(t, 200, cfg.Periods.SlowSMA)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPipelineConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
indicators: [RSI, BB]
thresholds:
  RSI: {buy: 25, sell: 75}
periods:
  rsi: 14
  macd_fast: 12
  macd_slow: 26
  macd_signal: 9
  bollinger: 20
  bollinger_std_dev: 2.0
  fast_sma: 50
  slow_sma: 200
crises:
  - label: covid_crash
    date: "2020-03-09"
    description: COVID-19 market crash
`)

	cfg, err := LoadPipelineConfig(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"RSI", "BB"}, cfg.Indicators)
	assert.Equal(t, 25.0, cfg.Thresholds["RSI"].Buy)
	require.Len(t, cfg.Crises, 1)

	events := cfg.CrisisEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "covid_crash", events[0].Label)
	assert.Equal(t, 2020, events[0].Date.Year())
}

func TestLoadPipelineConfig_MissingFile(t *testing.T) {
	_, err := LoadPipelineConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadPipelineConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "indicators: [RSI\n")

	_, err := LoadPipelineConfig(path)

	assert.Error(t, err)
}

func TestPipelineConfig_Validate_UnknownIndicator(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Indicators = append(cfg.Indicators, "VWAP")

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown indicator")
}

func TestPipelineConfig_Validate_InvertedThresholds(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Thresholds["RSI"] = Levels{Buy: 70, Sell: 30}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "buy level")
}

func TestPipelineConfig_Validate_NonPositivePeriod(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Periods.RSI = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestPipelineConfig_Validate_FastSlowOrdering(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Periods.FastSMA = 200

	assert.Error(t, cfg.Validate())

	cfg = DefaultPipelineConfig()
	cfg.Periods.MACDFast = 26

	assert.Error(t, cfg.Validate())
}

func TestPipelineConfig_Validate_BadCrisisDate(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Crises = []CrisisEntry{{Label: "x", Date: "03/09/2020"}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
