// Package journal stores free-form reflections and the lightweight daily
// mood check-in.
package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Moods accepted for journal entries and check-ins.
const (
	MoodGood = "good"
	MoodBad  = "bad"
)

// Book is the journal over a store.
type Book struct {
	st  *store.Store
	clk clock.Clock
	loc *time.Location
}

// NewBook returns a journal over the given store.
func NewBook(st *store.Store, clk clock.Clock, loc *time.Location) *Book {
	if clk == nil {
		clk = clock.New()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Book{st: st, clk: clk, loc: loc}
}

func (b *Book) now() time.Time {
	return b.clk.Now().In(b.loc)
}

// Add appends a journal entry dated today.
func (b *Book) Add(text, mood string) error {
	if text == "" {
		return fmt.Errorf("journal entry must not be empty")
	}
	if mood != "" && mood != MoodGood && mood != MoodBad {
		return fmt.Errorf("unknown mood %q (want %q or %q)", mood, MoodGood, MoodBad)
	}

	now := b.now()
	entries := b.st.Journal()
	entries = append(entries, model.JournalEntry{
		Date:      util.DateString(now),
		Mood:      mood,
		Text:      text,
		CreatedAt: now.Unix(),
	})
	return b.st.SaveJournal(entries)
}

// Entries returns all journal entries, oldest first.
func (b *Book) Entries() []model.JournalEntry {
	entries := b.st.Journal()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt < entries[j].CreatedAt
	})
	return entries
}

// CheckIn records today's mood. A second check-in the same day replaces the
// first (last write wins).
func (b *Book) CheckIn(mood string) error {
	if mood == "" {
		return fmt.Errorf("mood must not be empty")
	}

	today := util.DateString(b.now())
	checkins := b.st.CheckIns()
	checkins[today] = model.CheckIn{Date: today, Mood: mood}
	return b.st.SaveCheckIns(checkins)
}

// CheckIns returns all check-ins, oldest first.
func (b *Book) CheckIns() []model.CheckIn {
	byDate := b.st.CheckIns()

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]model.CheckIn, 0, len(dates))
	for _, date := range dates {
		out = append(out, byDate[date])
	}
	return out
}
