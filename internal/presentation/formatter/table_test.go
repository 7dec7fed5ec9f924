package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{59.6, "1h 00m"},
		{60, "1h 00m"},
		{65, "1h 05m"},
		{125, "2h 05m"},
		{0.4, "0m"},
		{0.6, "1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMinutes(tt.minutes), "formatMinutes(%v)", tt.minutes)
	}
}

func TestTableFormat(t *testing.T) {
	limit := 45
	report := Report{
		Today: []AppRow{
			{App: "TikTok", Icon: "🎵", Minutes: 45, Limit: &limit, Percent: 100, Blocked: true},
			{App: "Instagram", Minutes: 12},
		},
		Week: []DayRow{
			{Date: "2025-03-09", TotalMinutes: 80, SavedMinutes: 30},
			{Date: "2025-03-10", TotalMinutes: 57, SavedMinutes: 0},
		},
		TotalSaved: 90,
		Streak:     3,
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatterTo(&buf, 120).Format(report))
	out := buf.String()

	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "🎵 TikTok")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "Last 7 Days")
	assert.Contains(t, out, "2025-03-09")
	assert.Contains(t, out, "1h 20m")
	assert.Contains(t, out, "Total time saved: 1h 30m")
	assert.Contains(t, out, "Streak: 3 day(s)")

	// Apps without a limit show placeholders instead of zero values.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Instagram") {
			assert.Contains(t, line, " - ")
		}
	}
}

func TestTableFormatSkipsEmptyTodaySection(t *testing.T) {
	report := Report{
		Week: []DayRow{{Date: "2025-03-10", TotalMinutes: 10}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatterTo(&buf, 120).Format(report))

	assert.NotContains(t, buf.String(), "Today")
	assert.Contains(t, buf.String(), "Last 7 Days")
}

func TestTableBordersAreAligned(t *testing.T) {
	report := Report{
		Week: []DayRow{{Date: "2025-03-10", TotalMinutes: 10, SavedMinutes: 5}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatterTo(&buf, 120).Format(report))

	var tableLines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "│") ||
			strings.HasPrefix(line, "├") || strings.HasPrefix(line, "└") {
			tableLines = append(tableLines, line)
		}
	}
	require.NotEmpty(t, tableLines)

	want := len([]rune(tableLines[0]))
	for _, line := range tableLines[1:] {
		assert.Equal(t, want, len([]rune(line)), "line %q", line)
	}
}
