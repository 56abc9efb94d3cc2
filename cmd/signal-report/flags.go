package main

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// ReportFlags holds all command line flags for the signal report command
type ReportFlags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	Series     *string
	DataRoot   *string

	// Windowing options
	Period    *string
	StartDate *string
	EndDate   *string

	// Indicator selection
	Indicators *string

	// Individual indicator flags
	UseRSI  *bool
	UseMACD *bool
	UseSMA  *bool
	UseBB   *bool

	// Output options
	Format      *string
	OutputDir   *string
	ConsoleOnly *bool
	EnvFile     *string
	NoCache     *bool

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewReportFlags creates and registers all report-specific command line flags
func NewReportFlags() *ReportFlags {
	flags := &ReportFlags{
		// Configuration
		ConfigFile: flag.String("config", "", "Path to pipeline configuration file (YAML)"),
		DataFile:   flag.String("data", "", "Path to observation CSV file"),
		Series:     flag.String("series", DefaultSeries, "Series identifier (e.g. SP500, UNRATE)"),
		DataRoot:   flag.String("data-root", DefaultDataRoot, "Data root directory"),

		// Windowing options
		Period:    flag.String("period", "", "Limit data to trailing period (30d, 365d)"),
		StartDate: flag.String("start", "", "Start date YYYY-MM-DD (inclusive)"),
		EndDate:   flag.String("end", "", "End date YYYY-MM-DD (inclusive)"),

		// Indicator selection
		Indicators: flag.String("indicators", "", "Comma-separated list of indicators (e.g. rsi,macd,sma,bb)"),

		// Individual indicator flags
		UseRSI:  flag.Bool("rsi", false, "Include RSI indicator"),
		UseMACD: flag.Bool("macd", false, "Include MACD indicator"),
		UseSMA:  flag.Bool("sma", false, "Include SMA crossover indicator"),
		UseBB:   flag.Bool("bb", false, "Include Bollinger %B indicator"),

		// Output options
		Format:      flag.String("format", "console", "Output format (console, json, csv, excel, all)"),
		OutputDir:   flag.String("output", DefaultOutputDir, "Output directory for report files"),
		ConsoleOnly: flag.Bool("console-only", false, "Console output only (no files)"),
		EnvFile:     flag.String("env", ".env", "Environment file path"),
		NoCache:     flag.Bool("no-cache", false, "Disable the in-memory series cache"),

		// Help and version
		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}

	return flags
}

// ResolveIndicators merges the -indicators list with the individual flags
func ResolveIndicators(flags *ReportFlags) ([]string, error) {
	selected := make([]string, 0, 4)
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			selected = append(selected, id)
		}
	}

	if *flags.Indicators != "" {
		for _, raw := range strings.Split(*flags.Indicators, ",") {
			name := strings.ToUpper(strings.TrimSpace(raw))
			switch name {
			case "RSI", "MACD", "SMA", "BB":
				add(name)
			case "":
				continue
			default:
				return nil, fmt.Errorf("unknown indicator: %s (valid: rsi, macd, sma, bb)", raw)
			}
		}
	}

	if *flags.UseRSI {
		add("RSI")
	}
	if *flags.UseMACD {
		add("MACD")
	}
	if *flags.UseSMA {
		add("SMA")
	}
	if *flags.UseBB {
		add("BB")
	}

	return selected, nil
}

// PrintReportUsageExamples prints usage examples for the report command
func PrintReportUsageExamples() {
	examples := []struct {
		command     string
		description string
	}{
		{
			"signal-report -series SP500",
			"Console report for SP500 using data/SP500.csv",
		},
		{
			"signal-report -series UNRATE -config configs/pipeline.yaml",
			"Load indicator thresholds and crisis events from file",
		},
		{
			"signal-report -series SP500 -format json",
			"Write the annotated series as JSON",
		},
		{
			"signal-report -series SP500 -format all -output results",
			"Write console, JSON, CSV and Excel reports",
		},
		{
			"signal-report -series CPIAUCSL -period 365d",
			"Limit the report to the trailing year",
		},
		{
			"signal-report -series SP500 -start 2008-01-01 -end 2009-12-31",
			"Report on a fixed date range",
		},
		{
			"signal-report -series SP500 -indicators rsi,bb",
			"Aggregate only RSI and Bollinger %B votes",
		},
	}

	fmt.Printf("\n📚 USAGE EXAMPLES:\n")
	fmt.Printf("%s\n", strings.Repeat("-", 60))

	for _, example := range examples {
		fmt.Printf("\n• %s\n", example.description)
		fmt.Printf("  %s\n", example.command)
	}
}

// PrintReportFlagGroups prints flags organized by category for better readability
func PrintReportFlagGroups() {
	fmt.Printf(`
📊 CONFIGURATION FLAGS:
  -config FILE          Load pipeline configuration from YAML file
  -series ID            Series identifier (default: %s)
  -data FILE            Override observation CSV path
  -data-root DIR        Data root directory (default: %s)

📅 WINDOWING FLAGS:
  -period PERIOD        Limit data to trailing period (30d, 365d)
  -start DATE           Start date YYYY-MM-DD (inclusive)
  -end DATE             End date YYYY-MM-DD (inclusive)

📈 INDICATOR FLAGS:
  -indicators LIST      Comma-separated indicators (rsi, macd, sma, bb)
  -rsi                  Include RSI indicator
  -macd                 Include MACD indicator
  -sma                  Include SMA crossover indicator
  -bb                   Include Bollinger %%B indicator

📁 OUTPUT FLAGS:
  -format FORMAT        Output format: console, json, csv, excel, all (default: console)
  -output DIR           Output directory for report files (default: %s)
  -console-only         Console output only, no file output
  -no-cache             Disable the in-memory series cache
  -env FILE             Environment file path (default: .env)

❓ HELP FLAGS:
  -version              Show version information
  -help                 Show this help message
`, DefaultSeries, DefaultDataRoot, DefaultOutputDir)
}

// ValidateReportFlags performs validation on report-specific flag combinations
func ValidateReportFlags(flags *ReportFlags) error {
	if *flags.Series == "" && *flags.DataFile == "" {
		return fmt.Errorf("either -series or -data must be specified")
	}

	switch *flags.Format {
	case "console", "json", "csv", "excel", "all":
	default:
		return fmt.Errorf("invalid format %q (valid: console, json, csv, excel, all)", *flags.Format)
	}

	var start, end time.Time
	var err error
	if *flags.StartDate != "" {
		if start, err = time.Parse("2006-01-02", *flags.StartDate); err != nil {
			return fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", *flags.StartDate)
		}
	}
	if *flags.EndDate != "" {
		if end, err = time.Parse("2006-01-02", *flags.EndDate); err != nil {
			return fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", *flags.EndDate)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", *flags.EndDate, *flags.StartDate)
	}

	if *flags.Period != "" && (*flags.StartDate != "" || *flags.EndDate != "") {
		return fmt.Errorf("-period cannot be combined with -start/-end")
	}

	return nil
}
