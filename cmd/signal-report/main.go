package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	appconfig "github.com/ducminhle1904/econ-signal-pipeline/internal/config"
	pipeerrors "github.com/ducminhle1904/econ-signal-pipeline/internal/errors"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/logger"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/monitoring"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/notifications"
	"github.com/ducminhle1904/econ-signal-pipeline/internal/pipeline"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/config"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/data"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/reporting"
	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
	"github.com/joho/godotenv"
)

const (
	AppName    = "Signal Report"
	AppVersion = "1.0.0"

	// Default values
	DefaultSeries    = "SP500"
	DefaultDataRoot  = "data"
	DefaultOutputDir = "results"
)

func main() {
	// Create and parse command line flags
	flags := NewReportFlags()
	flag.Parse()

	// Version and help
	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	// Validate flags before proceeding
	if err := ValidateReportFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Header
	printHeader()

	// Load environment
	loadEnvironment(*flags.EnvFile)
	appCfg := appconfig.Load()

	// Load pipeline configuration
	cfg, err := loadPipelineConfiguration(*flags.ConfigFile, flags)
	if err != nil {
		fatal(pipeerrors.WrapError(err, pipeerrors.ErrorCategoryConfiguration, "signal-report", "load config"))
	}

	// Load the observation series
	seriesID := resolveSeriesID(*flags.Series, *flags.DataFile)
	series, err := loadSeries(flags, appCfg, seriesID)
	if err != nil {
		fatal(pipeerrors.CategorizeError(err, "signal-report", "load series"))
	}

	series, err = applyWindowing(series, flags)
	if err != nil {
		log.Fatalf("❌ Window error: %v", err)
	}

	if len(series) == 0 {
		log.Fatalf("❌ No observations left after windowing for %s", seriesID)
	}

	fmt.Printf("📈 Series: %s (%d observations, %s to %s)\n\n",
		seriesID, len(series),
		series[0].Date.Format("2006-01-02"),
		series[len(series)-1].Date.Format("2006-01-02"))

	// Run the pipeline
	pipe := pipeline.FromConfig(cfg)
	points := pipe.Run(series)

	// Package and write the report
	report := reporting.NewReport(seriesID, points)
	summary := report.Summarize()

	recordRun(seriesID, summary)
	logRun(seriesID, report, summary)

	outputDir := *flags.OutputDir
	if outputDir == DefaultOutputDir && appCfg.Report.OutputDir != "" {
		outputDir = appCfg.Report.OutputDir
	}

	if err := writeReports(report, *flags.Format, outputDir, *flags.ConsoleOnly); err != nil {
		fatal(pipeerrors.NewReportError("signal-report", "write reports", err))
	}

	notifyStrongSignal(seriesID, summary)

	// Keep the metrics endpoints up for scraping when monitoring is on
	if appCfg.Monitoring.Enabled {
		serveMonitoring(appCfg, summary)
	}
}

func fatal(err *pipeerrors.PipelineError) {
	monitoring.RecordError(string(err.Category))
	log.Fatalf("❌ %v", err)
}

func notifyStrongSignal(seriesID string, summary reporting.Summary) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		return
	}
	if summary.LastSignal != types.SignalStrongBuy && summary.LastSignal != types.SignalStrongSell {
		return
	}

	var notifier notifications.Notifier = notifications.NewTelegramNotifier(token, chatID)
	message := fmt.Sprintf("%s closed at signal *%s* (%.1f)", seriesID, summary.LastSignal, summary.LastValue)
	if err := notifier.SendAlert("warning", message); err != nil {
		log.Printf("⚠️  Could not send alert (%v)", err)
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Time Series Signal Reporting\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintReportUsageExamples()
	PrintReportFlagGroups()

	fmt.Printf("\nFor more information, see the README or documentation.\n")
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

func loadPipelineConfiguration(configFile string, flags *ReportFlags) (*config.PipelineConfig, error) {
	// Resolve config file path
	if configFile != "" && !strings.ContainsAny(configFile, "/\\") {
		configFile = filepath.Join("configs", configFile+".yaml")
	}

	var cfg *config.PipelineConfig
	if configFile != "" {
		loaded, err := config.LoadPipelineConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		fmt.Printf("📋 Loaded pipeline config: %s\n", configFile)
	} else {
		cfg = config.DefaultPipelineConfig()
	}

	// Command line indicators override the configured subset
	indicators, err := ResolveIndicators(flags)
	if err != nil {
		return nil, err
	}
	if len(indicators) > 0 {
		cfg.Indicators = indicators
		fmt.Printf("📋 Using indicators from command line: %s\n", strings.Join(indicators, ", "))
	}

	return cfg, nil
}

func resolveSeriesID(series, dataFile string) string {
	if series != "" {
		return series
	}
	base := filepath.Base(dataFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadSeries(flags *ReportFlags, appCfg *appconfig.Config, seriesID string) ([]types.Observation, error) {
	dataPath := *flags.DataFile
	if dataPath == "" {
		root := *flags.DataRoot
		if root == DefaultDataRoot && appCfg.Data.Dir != "" {
			root = appCfg.Data.Dir
		}
		dataPath = filepath.Join(root, seriesID+".csv")
	}

	var provider data.SeriesProvider = data.NewCSVProvider()
	if !*flags.NoCache {
		provider = data.NewCachedProvider(provider)
	}

	series, err := provider.LoadSeries(dataPath)
	if err != nil {
		return nil, err
	}
	if err := provider.ValidateSeries(series); err != nil {
		return nil, fmt.Errorf("%s: %w", dataPath, err)
	}

	return series, nil
}

func applyWindowing(series []types.Observation, flags *ReportFlags) ([]types.Observation, error) {
	filter := data.NewDefaultSeriesFilter()

	if *flags.Period != "" {
		d, ok := data.ParseTrailingPeriod(*flags.Period)
		if !ok {
			return nil, fmt.Errorf("invalid period format: %s (use 30d, 365d)", *flags.Period)
		}
		return filter.FilterByPeriod(series, d), nil
	}

	if *flags.StartDate != "" || *flags.EndDate != "" {
		start := time.Time{}
		end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		if *flags.StartDate != "" {
			start, _ = time.Parse("2006-01-02", *flags.StartDate)
		}
		if *flags.EndDate != "" {
			end, _ = time.Parse("2006-01-02", *flags.EndDate)
		}
		return filter.FilterByDateRange(series, start, end), nil
	}

	return series, nil
}

func recordRun(seriesID string, summary reporting.Summary) {
	monitoring.RecordPipelineRun(seriesID, summary.Points)
	monitoring.UpdateSignal(seriesID, summary.LastValue)
	monitoring.UpdateCrisisTagged(seriesID, summary.CrisisTagged)
}

func logRun(seriesID string, report *reporting.Report, summary reporting.Summary) {
	fileLog, err := logger.NewLogger(seriesID)
	if err != nil {
		log.Printf("⚠️  Could not open run log (%v)", err)
		return
	}
	defer fileLog.Close()

	lastValue := 0.0
	if len(report.Points) > 0 {
		lastValue = report.Points[len(report.Points)-1].Value
	}
	fileLog.LogRunStatus(summary.Points, lastValue, string(summary.LastSignal), summary.LastValue, summary.CrisisTagged)
}

func writeReports(report *reporting.Report, format, outputDir string, consoleOnly bool) error {
	console := reporting.NewConsoleReporter()
	if err := console.Write(report); err != nil {
		return err
	}

	if consoleOnly || format == "console" {
		return nil
	}

	dir := filepath.Join(outputDir, report.SeriesID)
	stamp := report.Generated.Format("20060102_150405")

	reporters := make([]reporting.Reporter, 0, 3)
	if format == "json" || format == "all" {
		reporters = append(reporters, reporting.NewJSONReporter(filepath.Join(dir, fmt.Sprintf("signals_%s.json", stamp))))
	}
	if format == "csv" || format == "all" {
		reporters = append(reporters, reporting.NewCSVReporter(filepath.Join(dir, fmt.Sprintf("signals_%s.csv", stamp))))
	}
	if format == "excel" || format == "all" {
		reporters = append(reporters, reporting.NewExcelReporter(filepath.Join(dir, fmt.Sprintf("signals_%s.xlsx", stamp))))
	}

	for _, reporter := range reporters {
		if err := reporter.Write(report); err != nil {
			return fmt.Errorf("%s: %w", reporter.GetName(), err)
		}
	}

	fmt.Printf("\n📁 Reports written to %s\n", dir)
	return nil
}

func serveMonitoring(appCfg *appconfig.Config, summary reporting.Summary) {
	health := monitoring.NewHealthChecker()
	health.RecordRun(string(summary.LastSignal), 1)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", monitoring.NewMetricsHandler())
		addr := fmt.Sprintf(":%d", appCfg.Monitoring.PrometheusPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("⚠️  Metrics server stopped (%v)", err)
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/health", health)
		addr := fmt.Sprintf(":%d", appCfg.Monitoring.HealthPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("⚠️  Health server stopped (%v)", err)
		}
	}()

	fmt.Printf("\n📡 Monitoring endpoints up on :%d (metrics) and :%d (health), Ctrl-C to exit\n",
		appCfg.Monitoring.PrometheusPort, appCfg.Monitoring.HealthPort)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
