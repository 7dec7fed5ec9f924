package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/mindcleanse/go-mindcleanse/internal/core/constants"
	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Document names mirror the storage keys of the original web client so a
// sync layer could map them one-to-one later.
const (
	historyDoc    = "history"
	limitsDoc     = "limits"
	blockerDoc    = "blocker"
	journalDoc    = "journal"
	checkinsDoc   = "checkins"
	onboardingDoc = "onboarding"
	progressDoc   = "progress"
)

// Store is a JSON-document store on the local filesystem. Every document is
// a single file under the data directory, written atomically. Absent or
// unparsable documents degrade to their zero value; the store never makes a
// read fail.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open creates the data directory if needed and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) docPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a named document into v. It returns false when the document is
// absent or unparsable; v is left untouched in that case.
func (s *Store) Load(name string, v interface{}) bool {
	data, err := os.ReadFile(s.docPath(name))
	if err != nil {
		if !os.IsNotExist(err) {
			util.LogWarnf("Failed to read %s: %v", name, err)
		}
		return false
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		util.LogWarnf("Discarding unparsable document %s: %v", name, err)
		return false
	}
	return true
}

// Save writes a named document atomically (temp file, then rename).
func (s *Store) Save(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := s.docPath(name)
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

func usageDoc(date string) string {
	return "usage_" + date
}

func notificationsDoc(date string) string {
	return "notifications_" + date
}

// DayUsage returns the persisted per-app minutes for a calendar day.
func (s *Store) DayUsage(date string) map[string]float64 {
	usage := make(map[string]float64)
	s.Load(usageDoc(date), &usage)
	return usage
}

// SaveDayUsage persists the per-app minutes for a calendar day.
func (s *Store) SaveDayUsage(date string, usage map[string]float64) error {
	return s.Save(usageDoc(date), usage)
}

// DayFlags returns the threshold-notification flags for a calendar day.
func (s *Store) DayFlags(date string) map[string]bool {
	flags := make(map[string]bool)
	s.Load(notificationsDoc(date), &flags)
	return flags
}

// SaveDayFlags persists the threshold-notification flags for a calendar day.
func (s *Store) SaveDayFlags(date string, flags map[string]bool) error {
	return s.Save(notificationsDoc(date), flags)
}

// History returns the full date-keyed summary history.
func (s *Store) History() map[string]model.DailyUsageSummary {
	history := make(map[string]model.DailyUsageSummary)
	s.Load(historyDoc, &history)
	return history
}

// SaveHistory persists the full summary history.
func (s *Store) SaveHistory(history map[string]model.DailyUsageSummary) error {
	return s.Save(historyDoc, history)
}

// FoldUsage accumulates minutes for an app into the summary of the given
// date, creating the summary if absent, then prunes entries older than the
// retention window relative to that date and persists the result.
func (s *Store) FoldUsage(date, app string, minutes float64) error {
	history := s.History()

	summary, ok := history[date]
	if !ok {
		summary = model.DailyUsageSummary{
			Date:     date,
			AppUsage: make(map[string]float64),
		}
	}
	if summary.AppUsage == nil {
		summary.AppUsage = make(map[string]float64)
	}
	summary.AppUsage[app] += minutes
	summary.TotalMinutes += minutes
	history[date] = summary

	pruneHistory(history, date)

	return s.SaveHistory(history)
}

// AddSavedMinutes adds manually logged "time saved" to a date's summary.
func (s *Store) AddSavedMinutes(date string, minutes float64) error {
	history := s.History()

	summary, ok := history[date]
	if !ok {
		summary = model.DailyUsageSummary{
			Date:     date,
			AppUsage: make(map[string]float64),
		}
	}
	summary.SavedMinutes += minutes
	history[date] = summary

	pruneHistory(history, date)

	return s.SaveHistory(history)
}

// pruneHistory drops summaries older than the retention window, measured
// from the day being written. Eviction is lazy: it runs on every write, not
// on a background clock.
func pruneHistory(history map[string]model.DailyUsageSummary, asOf string) {
	ref, err := time.Parse(util.DateLayout, asOf)
	if err != nil {
		return
	}
	cutoff := ref.AddDate(0, 0, -constants.HistoryRetentionDays).Format(util.DateLayout)

	for date := range history {
		if date < cutoff {
			util.LogDebugf("Pruning usage history entry %s (cutoff %s)", date, cutoff)
			delete(history, date)
		}
	}
}
