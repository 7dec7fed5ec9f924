package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TableFormatter renders the report as bordered tables.
type TableFormatter struct {
	writer   io.Writer
	maxWidth int
}

// NewTableFormatter creates a table formatter writing to stdout, sized to
// the terminal when one is attached.
func NewTableFormatter() *TableFormatter {
	maxWidth := 120
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		maxWidth = w
	}
	return &TableFormatter{writer: os.Stdout, maxWidth: maxWidth}
}

// NewTableFormatterTo creates a table formatter with an explicit writer and
// width, for tests.
func NewTableFormatterTo(w io.Writer, maxWidth int) *TableFormatter {
	return &TableFormatter{writer: w, maxWidth: maxWidth}
}

// Format implements Formatter.
func (f *TableFormatter) Format(report Report) error {
	if len(report.Today) > 0 {
		fmt.Fprintln(f.writer, "Today")
		f.printTable(
			[]string{"App", "Used", "Limit", "Of Limit", "Blocked"},
			todayRows(report.Today),
			[]bool{true, false, false, false, false},
		)
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, "Last 7 Days")
	f.printTable(
		[]string{"Date", "Screen Time", "Time Saved"},
		weekRows(report.Week),
		[]bool{true, false, false},
	)

	fmt.Fprintf(f.writer, "\nTotal time saved: %s", formatMinutes(report.TotalSaved))
	if report.Streak > 0 {
		fmt.Fprintf(f.writer, "   Streak: %d day(s)", report.Streak)
	}
	fmt.Fprintln(f.writer)
	return nil
}

func todayRows(apps []AppRow) [][]string {
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		name := app.App
		if app.Icon != "" {
			name = app.Icon + " " + name
		}

		limit := "-"
		percent := "-"
		if app.Limit != nil {
			limit = formatMinutes(float64(*app.Limit))
			percent = fmt.Sprintf("%d%%", app.Percent)
		}

		blocked := ""
		if app.Blocked {
			blocked = "yes"
		}

		rows = append(rows, []string{name, formatMinutes(app.Minutes), limit, percent, blocked})
	}
	return rows
}

func weekRows(days []DayRow) [][]string {
	rows := make([][]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, []string{
			day.Date,
			formatMinutes(day.TotalMinutes),
			formatMinutes(day.SavedMinutes),
		})
	}
	return rows
}

// printTable renders one bordered table. leftAlign marks the columns that
// hold text rather than numbers.
func (f *TableFormatter) printTable(headers []string, rows [][]string, leftAlign []bool) {
	widths := f.columnWidths(headers, rows)

	f.printBorder(widths, "top")
	f.printRow(headers, widths, leftAlign)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths, leftAlign)
	}
	f.printBorder(widths, "bottom")
}

// columnWidths sizes columns to content, measured in display cells so app
// names carrying emoji icons line up.
func (f *TableFormatter) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Shrink the first (text) column if the table would overflow the
	// terminal; the remaining columns are short and numeric.
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	if total > f.maxWidth && widths[0] > total-f.maxWidth {
		widths[0] -= total - f.maxWidth
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.writer, left)
	for i, width := range widths {
		fmt.Fprint(f.writer, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(f.writer, middle)
		}
	}
	fmt.Fprintln(f.writer, right)
}

func (f *TableFormatter) printRow(values []string, widths []int, leftAlign []bool) {
	fmt.Fprint(f.writer, "│")
	for i, value := range values {
		value = runewidth.Truncate(value, widths[i], "…")
		if leftAlign[i] {
			fmt.Fprintf(f.writer, " %s │", runewidth.FillRight(value, widths[i]))
		} else {
			fmt.Fprintf(f.writer, " %s │", runewidth.FillLeft(value, widths[i]))
		}
	}
	fmt.Fprintln(f.writer)
}

func formatMinutes(minutes float64) string {
	if minutes <= 0 {
		return "0m"
	}
	whole := int(minutes + 0.5)
	if whole < 60 {
		return fmt.Sprintf("%dm", whole)
	}
	return fmt.Sprintf("%dh %02dm", whole/60, whole%60)
}
