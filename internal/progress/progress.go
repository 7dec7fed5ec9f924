// Package progress keeps the "time saved" ledger: minutes the user chose
// not to spend on tracked apps, logged manually and folded into the same
// per-date summaries the tracker maintains.
package progress

import (
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Ledger records and reports saved minutes.
type Ledger struct {
	st  *store.Store
	clk clock.Clock
	loc *time.Location
}

// NewLedger returns a ledger over the given store.
func NewLedger(st *store.Store, clk clock.Clock, loc *time.Location) *Ledger {
	if clk == nil {
		clk = clock.New()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{st: st, clk: clk, loc: loc}
}

func (l *Ledger) today() string {
	return util.DateString(l.clk.Now().In(l.loc))
}

// LogSaved adds minutes to today's savedMinutes and the running total.
func (l *Ledger) LogSaved(minutes float64) {
	if err := l.st.AddSavedMinutes(l.today(), minutes); err != nil {
		util.LogWarnf("Failed to record saved minutes in history: %v", err)
	}

	state := l.st.ProgressState()
	state.TotalSavedMinutes += minutes
	if err := l.st.SaveProgressState(state); err != nil {
		util.LogWarnf("Failed to persist saved-minutes total: %v", err)
	}
}

// TotalSaved returns the running total of saved minutes.
func (l *Ledger) TotalSaved() float64 {
	return l.st.ProgressState().TotalSavedMinutes
}

// Streak returns the number of consecutive days, ending today or yesterday,
// with savedMinutes logged. A day without a log breaks the streak.
func (l *Ledger) Streak() int {
	history := l.st.History()
	if len(history) == 0 {
		return 0
	}

	saved := make(map[string]bool, len(history))
	for date, summary := range history {
		if summary.SavedMinutes > 0 {
			saved[date] = true
		}
	}

	day := l.clk.Now().In(l.loc)
	// A streak may still be alive if today simply has no log yet.
	if !saved[util.DateString(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for saved[util.DateString(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// SavedByDate returns per-date saved minutes, oldest first.
func (l *Ledger) SavedByDate() []store.DatedMinutes {
	history := l.st.History()

	out := make([]store.DatedMinutes, 0, len(history))
	for date, summary := range history {
		if summary.SavedMinutes > 0 {
			out = append(out, store.DatedMinutes{Date: date, Minutes: summary.SavedMinutes})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
