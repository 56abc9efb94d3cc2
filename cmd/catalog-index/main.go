package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/econ-signal-pipeline/internal/catalog"
	"github.com/joho/godotenv"
)

const (
	AppName    = "Catalog Index"
	AppVersion = "1.0.0"
)

func main() {
	inputFile := flag.String("input", "", "Path to series metadata JSON file")
	outputFile := flag.String("output", "", "Output path for the index JSON (default: stdout)")
	includeAll := flag.Bool("all", false, "Index every series, skip the importance filter")
	minPopularity := flag.Int("min-popularity", 0, "Override the popularity threshold (0 keeps the default)")
	envFile := flag.String("env", ".env", "Environment file path")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *inputFile == "" {
		log.Fatalf("❌ -input is required (series metadata JSON)")
	}

	printHeader()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", *envFile, err)
	}

	series, err := loadMetadata(*inputFile)
	if err != nil {
		log.Fatalf("❌ Metadata error: %v", err)
	}
	fmt.Printf("📚 Loaded %d series from %s\n", len(series), *inputFile)

	if !*includeAll {
		classifier := catalog.NewClassifier()
		if *minPopularity > 0 {
			classifier.PopularityThreshold = *minPopularity
		}
		series = classifier.FilterImportant(series)
		fmt.Printf("⭐ %d series kept after importance filter\n", len(series))
	}

	index := catalog.BuildIndex(series)

	payload, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		log.Fatalf("❌ Encoding error: %v", err)
	}

	if *outputFile == "" {
		fmt.Println(string(payload))
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		log.Fatalf("❌ Output error: %v", err)
	}
	if err := os.WriteFile(*outputFile, payload, 0644); err != nil {
		log.Fatalf("❌ Output error: %v", err)
	}

	fmt.Printf("✅ Index written to %s (%d series)\n", *outputFile, index.Count)
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

// loadMetadata accepts either a bare JSON array of series or an object
// wrapping the array under a "seriess" key, the shape FRED exports use.
func loadMetadata(path string) ([]catalog.SeriesMeta, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var series []catalog.SeriesMeta
	if err := json.Unmarshal(raw, &series); err == nil {
		return series, nil
	}

	var wrapped struct {
		Seriess []catalog.SeriesMeta `json:"seriess"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unrecognized metadata format in %s: %w", path, err)
	}
	return wrapped.Seriess, nil
}
