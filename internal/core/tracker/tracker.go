// Package tracker implements the usage-tracking and limit-enforcement core:
// per-app minutes accumulated for the current day, persisted daily and
// historical summaries, threshold-crossing notifications, and the midnight
// rollover that starts each new day empty.
package tracker

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/core/constants"
	"github.com/mindcleanse/go-mindcleanse/internal/core/limits"
	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Tracker is the authoritative record of how much time has been spent on
// each tracked app today and historically, and the decision point for
// limit-based blocking. Construct exactly one per process and inject it
// into consumers.
//
// The contract is deliberately permissive: no operation returns an error,
// minutes may be fractional, and negative minutes decrement counters.
// Corrupt persisted state degrades to empty maps on load.
type Tracker struct {
	mu       sync.Mutex
	clk      clock.Clock
	loc      *time.Location
	store    *store.Store
	limits   limits.Provider
	notifier Notifier

	today    string
	usage    map[string]float64
	flags    map[string]bool
	sessions map[string]time.Time
	resetFns []func()

	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock substitutes the wall clock, mainly so the midnight scheduler is
// testable without waiting on real time.
func WithClock(c clock.Clock) Option {
	return func(t *Tracker) { t.clk = c }
}

// WithLocation sets the timezone whose midnight triggers the daily rollover.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// WithNotifier sets the threshold-notification sink.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifier = n }
}

// New loads today's snapshot from the store, schedules the first midnight
// rollover and returns the ready tracker. Call Close to stop the scheduler.
func New(st *store.Store, lp limits.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		clk:      clock.New(),
		loc:      time.Local,
		store:    st,
		limits:   lp,
		notifier: noopNotifier{},
		sessions: make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.today = util.DateString(t.now())
	t.usage = st.DayUsage(t.today)
	t.flags = st.DayFlags(t.today)

	go t.runRolloverLoop()
	return t
}

// Close stops the midnight scheduler. The tracker remains usable for
// synchronous operations afterwards.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

func (t *Tracker) now() time.Time {
	return t.clk.Now().In(t.loc)
}

// StartTracking opens a usage session for an app. A second call while a
// session is already open is a no-op.
func (t *Tracker) StartTracking(app string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, open := t.sessions[app]; open {
		return
	}
	t.sessions[app] = t.clk.Now()
	util.LogDebugf("Started tracking session for %s", app)
}

// StopTracking closes an open session for an app, converting the elapsed
// wall-clock time to minutes and recording it. A call without an open
// session is a no-op.
func (t *Tracker) StopTracking(app string) {
	t.mu.Lock()
	start, open := t.sessions[app]
	var notes []notification
	if open {
		delete(t.sessions, app)
		elapsed := t.clk.Now().Sub(start).Minutes()
		notes = t.recordLocked(app, elapsed)
	}
	t.mu.Unlock()

	t.dispatch(notes)
}

// RecordUsage adds minutes to today's running total for an app, persists the
// updated snapshot, folds the same amount into the historical summary, and
// evaluates threshold notifications.
func (t *Tracker) RecordUsage(app string, minutes float64) {
	t.mu.Lock()
	notes := t.recordLocked(app, minutes)
	t.mu.Unlock()

	t.dispatch(notes)
}

func (t *Tracker) recordLocked(app string, minutes float64) []notification {
	t.usage[app] += minutes

	if err := t.store.SaveDayUsage(t.today, t.usage); err != nil {
		util.LogWarnf("Failed to persist today's usage: %v", err)
	}
	if err := t.store.FoldUsage(t.today, app, minutes); err != nil {
		util.LogWarnf("Failed to update usage history: %v", err)
	}

	return t.checkThresholdsLocked(app)
}

// AppUsage returns today's accumulated minutes for an app, 0 if untracked.
func (t *Tracker) AppUsage(app string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage[app]
}

// AllAppUsage returns a copy of the full today's-usage mapping.
func (t *Tracker) AllAppUsage() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make(map[string]float64, len(t.usage))
	for app, minutes := range t.usage {
		snapshot[app] = minutes
	}
	return snapshot
}

// ShouldBlock reports whether an app has a configured limit and today's
// usage has reached it. Apps without a limit are never blocked.
func (t *Tracker) ShouldBlock(app string) bool {
	limit, ok := t.limits.Limit(app)
	if !ok {
		return false
	}
	return t.AppUsage(app) >= float64(limit)
}

// UsagePercentage returns today's usage as a rounded percentage of the app's
// limit, clamped to [0, 100]. It returns 0 when no limit is configured.
// The threshold engine uses the unclamped value internally; only this
// display-facing read clamps.
func (t *Tracker) UsagePercentage(app string) int {
	limit, ok := t.limits.Limit(app)
	if !ok || limit == 0 {
		return 0
	}

	pct := t.AppUsage(app) / float64(limit) * 100
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// WeeklyUsage returns the most recent summaries in history, oldest first,
// at most one week's worth. Days without history are not zero-padded.
func (t *Tracker) WeeklyUsage() []model.DailyUsageSummary {
	history := t.store.History()

	dates := make([]string, 0, len(history))
	for date := range history {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > constants.WeeklyReportDays {
		dates = dates[len(dates)-constants.WeeklyReportDays:]
	}

	summaries := make([]model.DailyUsageSummary, 0, len(dates))
	for _, date := range dates {
		summaries = append(summaries, history[date])
	}
	return summaries
}

// DailyUsage returns the summary for an exact date, or nil if absent.
func (t *Tracker) DailyUsage(date string) *model.DailyUsageSummary {
	history := t.store.History()
	if summary, ok := history[date]; ok {
		return &summary
	}
	return nil
}

// OnReset registers a callback invoked after each daily reset, whether
// triggered by the midnight scheduler or called manually.
func (t *Tracker) OnReset(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetFns = append(t.resetFns, fn)
}

// ResetDailyUsage clears today's usage and notification flags, persists the
// cleared state and notifies reset observers.
func (t *Tracker) ResetDailyUsage() {
	t.mu.Lock()
	t.today = util.DateString(t.now())
	t.usage = make(map[string]float64)
	t.flags = make(map[string]bool)

	if err := t.store.SaveDayUsage(t.today, t.usage); err != nil {
		util.LogWarnf("Failed to persist reset usage: %v", err)
	}
	if err := t.store.SaveDayFlags(t.today, t.flags); err != nil {
		util.LogWarnf("Failed to persist reset notification flags: %v", err)
	}

	observers := make([]func(), len(t.resetFns))
	copy(observers, t.resetFns)
	t.mu.Unlock()

	util.LogInfo("Daily usage reset")
	for _, fn := range observers {
		fn()
	}
}

type notification struct {
	title   string
	message string
}

// checkThresholdsLocked evaluates the 80% and 100% thresholds for an app.
// The two checks are independent: a single large recording can cross both
// and fire both notifications. Each (app, threshold) flag is set at most
// once per calendar day. The percentage here is deliberately unclamped,
// unlike UsagePercentage.
func (t *Tracker) checkThresholdsLocked(app string) []notification {
	limit, ok := t.limits.Limit(app)
	if !ok || limit == 0 {
		return nil
	}

	pct := t.usage[app] / float64(limit) * 100
	var notes []notification

	warnKey := fmt.Sprintf("%s_%d", app, constants.WarnThresholdPercent)
	if pct >= constants.WarnThresholdPercent && !t.flags[warnKey] {
		notes = append(notes, notification{
			title:   fmt.Sprintf("%s Time Limit Warning", app),
			message: fmt.Sprintf("You've reached %d%% of your daily limit for %s.", constants.WarnThresholdPercent, app),
		})
		t.flags[warnKey] = true
	}

	limitKey := fmt.Sprintf("%s_%d", app, constants.LimitThresholdPercent)
	if pct >= constants.LimitThresholdPercent && !t.flags[limitKey] {
		notes = append(notes, notification{
			title:   fmt.Sprintf("%s Time Limit Reached", app),
			message: fmt.Sprintf("You've used all your allowed time on %s today.", app),
		})
		t.flags[limitKey] = true
	}

	// Flags are persisted on every evaluation so storage stays consistent
	// with memory even when nothing fired.
	if err := t.store.SaveDayFlags(t.today, t.flags); err != nil {
		util.LogWarnf("Failed to persist notification flags: %v", err)
	}

	return notes
}

func (t *Tracker) dispatch(notes []notification) {
	for _, n := range notes {
		t.notifier.Notify(n.title, n.message)
	}
}
