package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
)

// stubLimits is a fixed limit configuration for tests.
type stubLimits map[string]int

func (s stubLimits) Limit(app string) (int, bool) {
	limit, ok := s[app]
	return limit, ok
}

// captureNotifier records every notification it receives.
type captureNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (c *captureNotifier) Notify(title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.titles = append(c.titles, title)
}

func (c *captureNotifier) Titles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

type fixture struct {
	tracker  *Tracker
	store    *store.Store
	mock     *clock.Mock
	notifier *captureNotifier
	limits   stubLimits
}

func newFixture(t *testing.T, limits stubLimits) *fixture {
	t.Helper()

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	mock := clock.NewMock()
	mock.Set(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	notifier := &captureNotifier{}
	trk := New(st, limits,
		WithClock(mock),
		WithLocation(time.UTC),
		WithNotifier(notifier),
	)
	t.Cleanup(trk.Close)

	return &fixture{tracker: trk, store: st, mock: mock, notifier: notifier, limits: limits}
}

func TestRecordUsageAccumulates(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 10)
	f.tracker.RecordUsage("Instagram", 5)

	assert.Equal(t, 15.0, f.tracker.AppUsage("Instagram"))
	assert.Equal(t, 0.0, f.tracker.AppUsage("Twitter"))
}

func TestRecordUsageAcceptsFractionsAndNegatives(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 2.5)
	f.tracker.RecordUsage("Instagram", -1)

	assert.InDelta(t, 1.5, f.tracker.AppUsage("Instagram"), 1e-9)
}

func TestAllAppUsageReturnsCopy(t *testing.T) {
	f := newFixture(t, stubLimits{})
	f.tracker.RecordUsage("Instagram", 10)

	snapshot := f.tracker.AllAppUsage()
	snapshot["Instagram"] = 999
	snapshot["Injected"] = 1

	assert.Equal(t, 10.0, f.tracker.AppUsage("Instagram"))
	assert.Equal(t, 0.0, f.tracker.AppUsage("Injected"))
}

func TestShouldBlock(t *testing.T) {
	f := newFixture(t, stubLimits{"TikTok": 45})

	assert.False(t, f.tracker.ShouldBlock("TikTok"))

	f.tracker.RecordUsage("TikTok", 44)
	assert.False(t, f.tracker.ShouldBlock("TikTok"))

	f.tracker.RecordUsage("TikTok", 1)
	assert.True(t, f.tracker.ShouldBlock("TikTok"))
}

func TestShouldBlockWithoutLimit(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 1e9)
	assert.False(t, f.tracker.ShouldBlock("Instagram"))
}

func TestUsagePercentage(t *testing.T) {
	tests := []struct {
		name   string
		limits stubLimits
		usage  float64
		want   int
	}{
		{name: "no limit", limits: stubLimits{}, usage: 500, want: 0},
		{name: "zero limit", limits: stubLimits{"App": 0}, usage: 500, want: 0},
		{name: "below limit", limits: stubLimits{"App": 45}, usage: 36, want: 80},
		{name: "at limit", limits: stubLimits{"App": 45}, usage: 45, want: 100},
		{name: "clamped above limit", limits: stubLimits{"App": 45}, usage: 450, want: 100},
		{name: "rounds", limits: stubLimits{"App": 60}, usage: 20, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.limits)
			f.tracker.RecordUsage("App", tt.usage)
			assert.Equal(t, tt.want, f.tracker.UsagePercentage("App"))
		})
	}
}

func TestThresholdNotificationsFireOncePerDay(t *testing.T) {
	f := newFixture(t, stubLimits{"TikTok": 45})

	f.tracker.RecordUsage("TikTok", 36) // exactly 80%
	assert.Equal(t, []string{"TikTok Time Limit Warning"}, f.notifier.Titles())

	f.tracker.RecordUsage("TikTok", 1) // still in the warning band
	assert.Equal(t, []string{"TikTok Time Limit Warning"}, f.notifier.Titles())

	f.tracker.RecordUsage("TikTok", 8) // usage 45, 100%
	assert.Equal(t, []string{"TikTok Time Limit Warning", "TikTok Time Limit Reached"}, f.notifier.Titles())
	assert.True(t, f.tracker.ShouldBlock("TikTok"))

	f.tracker.RecordUsage("TikTok", 10)
	assert.Len(t, f.notifier.Titles(), 2)
}

func TestSingleJumpFiresBothThresholds(t *testing.T) {
	f := newFixture(t, stubLimits{"Reddit": 45})

	f.tracker.RecordUsage("Reddit", 100)

	assert.Equal(t, []string{"Reddit Time Limit Warning", "Reddit Time Limit Reached"}, f.notifier.Titles())
}

func TestNoThresholdsWithoutLimit(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 10000)
	assert.Empty(t, f.notifier.Titles())
}

func TestResetDailyUsage(t *testing.T) {
	f := newFixture(t, stubLimits{"TikTok": 45})

	f.tracker.RecordUsage("TikTok", 40)
	require.NotEmpty(t, f.notifier.Titles())

	var resetSeen bool
	f.tracker.OnReset(func() { resetSeen = true })

	f.tracker.ResetDailyUsage()

	assert.True(t, resetSeen)
	assert.Equal(t, 0.0, f.tracker.AppUsage("TikTok"))
	assert.Empty(t, f.tracker.AllAppUsage())

	// Flags were cleared too: crossing the threshold again re-fires.
	f.tracker.RecordUsage("TikTok", 40)
	assert.Len(t, f.notifier.Titles(), 2)
}

func TestStartStopTracking(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.StartTracking("Instagram")
	f.mock.Add(30 * time.Minute)
	f.tracker.StopTracking("Instagram")

	assert.InDelta(t, 30.0, f.tracker.AppUsage("Instagram"), 1e-9)
}

func TestStartTrackingIdempotent(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.StartTracking("Instagram")
	f.mock.Add(10 * time.Minute)
	// A second start while the session is open must not move the start time.
	f.tracker.StartTracking("Instagram")
	f.mock.Add(5 * time.Minute)
	f.tracker.StopTracking("Instagram")

	assert.InDelta(t, 15.0, f.tracker.AppUsage("Instagram"), 1e-9)
}

func TestStopTrackingWithoutSession(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.StopTracking("Instagram")
	assert.Equal(t, 0.0, f.tracker.AppUsage("Instagram"))
}

func TestStopTrackingRecordsOncePerSession(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.StartTracking("Instagram")
	f.mock.Add(10 * time.Minute)
	f.tracker.StopTracking("Instagram")
	f.tracker.StopTracking("Instagram")

	assert.InDelta(t, 10.0, f.tracker.AppUsage("Instagram"), 1e-9)
}

func TestUsageSurvivesRestart(t *testing.T) {
	f := newFixture(t, stubLimits{})
	f.tracker.RecordUsage("Instagram", 25)
	f.tracker.Close()

	reloaded := New(f.store, f.limits, WithClock(f.mock), WithLocation(time.UTC))
	defer reloaded.Close()

	assert.Equal(t, 25.0, reloaded.AppUsage("Instagram"))
}

func TestWeeklyUsage(t *testing.T) {
	f := newFixture(t, stubLimits{})

	// Ten days of history, recorded day by day.
	for day := 1; day <= 10; day++ {
		f.mock.Set(time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC))
		f.tracker.ResetDailyUsage() // rolls the tracker onto the new date
		f.tracker.RecordUsage("Instagram", float64(day))
	}

	week := f.tracker.WeeklyUsage()
	require.Len(t, week, 7)
	assert.Equal(t, "2025-03-04", week[0].Date)
	assert.Equal(t, "2025-03-10", week[6].Date)
	for i := 1; i < len(week); i++ {
		assert.Less(t, week[i-1].Date, week[i].Date)
	}
	assert.Equal(t, 10.0, week[6].TotalMinutes)
}

func TestWeeklyUsageShortHistory(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 5)

	week := f.tracker.WeeklyUsage()
	require.Len(t, week, 1)
	assert.Equal(t, "2025-03-10", week[0].Date)
}

func TestDailyUsage(t *testing.T) {
	f := newFixture(t, stubLimits{})

	f.tracker.RecordUsage("Instagram", 12)

	summary := f.tracker.DailyUsage("2025-03-10")
	require.NotNil(t, summary)
	assert.Equal(t, 12.0, summary.TotalMinutes)

	assert.Nil(t, f.tracker.DailyUsage("1999-01-01"))
}
