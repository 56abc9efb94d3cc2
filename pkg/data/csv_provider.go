package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// DateFormat is the ISO day format upstream fetchers write.
const DateFormat = "2006-01-02"

// CSVProvider implements SeriesProvider for date,value CSV files as written
// by the upstream fetch layer.
type CSVProvider struct{}

// NewCSVProvider creates a new CSV series provider
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadSeries loads an observation series from a CSV file. Rows whose value
// does not parse as a number (FRED writes "." for missing observations) are
// kept as NaN so downstream series stay positionally aligned; rows with an
// unparseable date are skipped since they cannot be placed on the axis.
func (p *CSVProvider) LoadSeries(source string) ([]types.Observation, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var series []types.Observation

	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		if len(record) < 2 {
			log.Printf("⚠️ Insufficient columns at line %d (expected 2, got %d), skipping", lineNum, len(record))
			continue
		}

		date, err := time.Parse(DateFormat, record[0])
		if err != nil {
			log.Printf("⚠️ Invalid date '%s' at line %d, skipping: %v", record[0], lineNum, err)
			continue
		}

		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			value = math.NaN()
		}

		series = append(series, types.Observation{Date: date, Value: value})
	}

	return series, nil
}

// ValidateSeries checks the integrity of a loaded series
func (p *CSVProvider) ValidateSeries(series []types.Observation) error {
	if len(series) == 0 {
		return fmt.Errorf("series is empty")
	}

	for i := 1; i < len(series); i++ {
		if series[i].Date.Before(series[i-1].Date) {
			return fmt.Errorf("series out of order at index %d: %s before %s",
				i, series[i].Date.Format(DateFormat), series[i-1].Date.Format(DateFormat))
		}
	}

	return nil
}
