package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// defaultTailRows is how many trailing points the console report shows.
const defaultTailRows = 15

// ConsoleReporter renders a report as tables on stdout.
type ConsoleReporter struct {
	tailRows int
}

// NewConsoleReporter creates a console reporter showing the default tail
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{tailRows: defaultTailRows}
}

// GetName returns the reporter name
func (r *ConsoleReporter) GetName() string {
	return "Console Reporter"
}

// Write renders the summary table and the trailing points table
func (r *ConsoleReporter) Write(report *Report) error {
	summary := report.Summarize()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("SIGNAL SUMMARY — %s", report.SeriesID))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📈 Points", summary.Points},
		{"✅ Buy Signals", summary.BuySignals},
		{"❌ Sell Signals", summary.SellSignals},
		{"💥 Strong Signals", summary.StrongSignals},
		{"🚨 Crisis Tagged", summary.CrisisTagged},
		{"🎯 Last Signal", fmt.Sprintf("%s (%.1f)", summary.LastSignal, summary.LastValue)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()

	r.writeTail(report)
	return nil
}

// writeTail renders the most recent points
func (r *ConsoleReporter) writeTail(report *Report) {
	start := len(report.Points) - r.tailRows
	if start < 0 {
		start = 0
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("LATEST POINTS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Date", "Value", "Change", "Signal", "Type", "Crisis"})

	for _, point := range report.Points[start:] {
		change := "—"
		if point.PercentChange != nil {
			change = fmt.Sprintf("%.2f%%", *point.PercentChange)
		}
		crisisLabel := ""
		if point.Crisis != nil {
			crisisLabel = point.Crisis.Label
		}
		t.AppendRow(table.Row{
			point.Date.Format("2006-01-02"),
			fmt.Sprintf("%.4f", point.Value),
			change,
			fmt.Sprintf("%.1f", point.SignalValue),
			string(point.SignalType),
			crisisLabel,
		})
	}

	t.Render()
	fmt.Println()
}
