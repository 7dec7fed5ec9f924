package formatter

import (
	"fmt"
	"io"
	"os"
)

// SummaryFormatter renders a compact text summary of the report.
type SummaryFormatter struct {
	writer io.Writer
}

// NewSummaryFormatter creates a summary formatter writing to stdout.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{writer: os.Stdout}
}

// Format implements Formatter.
func (f *SummaryFormatter) Format(report Report) error {
	var todayTotal float64
	blocked := 0
	for _, app := range report.Today {
		todayTotal += app.Minutes
		if app.Blocked {
			blocked++
		}
	}

	var weekTotal, weekSaved float64
	for _, day := range report.Week {
		weekTotal += day.TotalMinutes
		weekSaved += day.SavedMinutes
	}

	fmt.Fprintf(f.writer, "Screen time today: %s across %d app(s)\n", formatMinutes(todayTotal), len(report.Today))
	if blocked > 0 {
		fmt.Fprintf(f.writer, "Apps at their limit: %d\n", blocked)
	}
	fmt.Fprintf(f.writer, "Last %d day(s): %s used, %s saved\n", len(report.Week), formatMinutes(weekTotal), formatMinutes(weekSaved))
	fmt.Fprintf(f.writer, "Total time saved: %s", formatMinutes(report.TotalSaved))
	if report.Streak > 0 {
		fmt.Fprintf(f.writer, " (streak: %d day(s))", report.Streak)
	}
	fmt.Fprintln(f.writer)
	return nil
}

// New returns the formatter for an output format name.
func New(format string) (Formatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (want table, json or summary)", format)
	}
}
