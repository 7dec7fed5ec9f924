package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	st, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, st.Dir())
	assert.DirExists(t, dir)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	in := map[string]float64{"Instagram": 12.5, "TikTok": 3}
	require.NoError(t, st.Save("doc", in))

	out := make(map[string]float64)
	require.True(t, st.Load("doc", &out))
	assert.Equal(t, in, out)
}

func TestLoadAbsentDocument(t *testing.T) {
	st := newTestStore(t)

	out := map[string]float64{"untouched": 1}
	assert.False(t, st.Load("missing", &out))
	assert.Equal(t, map[string]float64{"untouched": 1}, out)
}

func TestLoadCorruptDocumentFallsBackToDefault(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), "usage_2025-03-10.json"), []byte("{not json"), 0644))

	usage := st.DayUsage("2025-03-10")
	assert.Empty(t, usage)
}

func TestDayUsageAndFlags(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDayUsage("2025-03-10", map[string]float64{"Reddit": 42}))
	require.NoError(t, st.SaveDayFlags("2025-03-10", map[string]bool{"Reddit_80": true}))

	assert.Equal(t, 42.0, st.DayUsage("2025-03-10")["Reddit"])
	assert.True(t, st.DayFlags("2025-03-10")["Reddit_80"])

	// Different dates are independent buckets.
	assert.Empty(t, st.DayUsage("2025-03-11"))
	assert.Empty(t, st.DayFlags("2025-03-11"))
}

func TestFoldUsageMaintainsTotals(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.FoldUsage("2025-03-10", "Instagram", 10))
	require.NoError(t, st.FoldUsage("2025-03-10", "Instagram", 5))
	require.NoError(t, st.FoldUsage("2025-03-10", "TikTok", 7))

	summary := st.History()["2025-03-10"]
	assert.Equal(t, "2025-03-10", summary.Date)
	assert.Equal(t, 15.0, summary.AppUsage["Instagram"])
	assert.Equal(t, 7.0, summary.AppUsage["TikTok"])
	assert.Equal(t, 22.0, summary.TotalMinutes)
}

func TestFoldUsagePrunesOldEntries(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveHistory(map[string]model.DailyUsageSummary{
		"2025-01-01": {Date: "2025-01-01", TotalMinutes: 30, AppUsage: map[string]float64{"X": 30}},
		"2025-03-01": {Date: "2025-03-01", TotalMinutes: 10, AppUsage: map[string]float64{"X": 10}},
	}))

	require.NoError(t, st.FoldUsage("2025-03-10", "Instagram", 1))

	history := st.History()
	assert.NotContains(t, history, "2025-01-01")
	assert.Contains(t, history, "2025-03-01")
	assert.Contains(t, history, "2025-03-10")
}

func TestAddSavedMinutes(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.FoldUsage("2025-03-10", "Instagram", 10))
	require.NoError(t, st.AddSavedMinutes("2025-03-10", 30))
	require.NoError(t, st.AddSavedMinutes("2025-03-10", 15))

	summary := st.History()["2025-03-10"]
	assert.Equal(t, 45.0, summary.SavedMinutes)
	// Saved minutes do not count as screen time.
	assert.Equal(t, 10.0, summary.TotalMinutes)
}

func TestAddSavedMinutesCreatesSummary(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.AddSavedMinutes("2025-03-10", 20))

	summary, ok := st.History()["2025-03-10"]
	require.True(t, ok)
	assert.Equal(t, 20.0, summary.SavedMinutes)
	assert.Equal(t, 0.0, summary.TotalMinutes)
}

func TestTypedDocuments(t *testing.T) {
	st := newTestStore(t)

	limit := 45
	require.NoError(t, st.SaveLimits([]model.AppLimit{{AppName: "TikTok", DailyLimit: &limit}}))
	limits := st.Limits()
	require.Len(t, limits, 1)
	assert.Equal(t, "TikTok", limits[0].AppName)
	assert.Equal(t, 45, *limits[0].DailyLimit)

	state := model.BlockerState{Active: true, BlockedApps: []string{"Instagram"}, UnlockType: "pin"}
	require.NoError(t, st.SaveBlockerState(state))
	assert.Equal(t, state, st.BlockerState())

	_, ok := st.Onboarding()
	assert.False(t, ok)
}
