package model

import "time"

// AppLimit is one row of the per-app limit configuration. The settings
// surface owns the record; the tracker only reads it. A nil DailyLimit means
// no limit is configured for the app.
type AppLimit struct {
	AppName    string `json:"appName"`
	DailyLimit *int   `json:"dailyLimit"`
	Icon       string `json:"icon,omitempty"`
}

// Limited reports whether the row carries a usable limit.
func (a AppLimit) Limited() bool {
	return a.DailyLimit != nil && *a.DailyLimit > 0
}

// DailyUsageSummary is the persisted per-date aggregate. TotalMinutes is
// maintained incrementally and always equals the sum of AppUsage values.
// SavedMinutes is written by the progress ledger and only carried through
// by the tracker.
type DailyUsageSummary struct {
	Date         string             `json:"date"` // YYYY-MM-DD
	TotalMinutes float64            `json:"totalMinutes"`
	SavedMinutes float64            `json:"savedMinutes"`
	AppUsage     map[string]float64 `json:"appUsage"`
}

// OnboardingProfile captures the one-time detox setup.
type OnboardingProfile struct {
	UserName     string    `json:"userName"`
	DurationDays int       `json:"durationDays"`
	Goal         string    `json:"goal,omitempty"`
	Reasons      []string  `json:"reasons,omitempty"`
	StartedAt    time.Time `json:"startedAt"`
}

// JournalEntry is a free-form reflection with an optional mood tag.
type JournalEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Mood      string `json:"mood,omitempty"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // Unix timestamp
}

// CheckIn is the lightweight daily mood record. One per date, last write wins.
type CheckIn struct {
	Date string `json:"date"` // YYYY-MM-DD
	Mood string `json:"mood"`
}

// ProgressState is the running total of manually logged "time saved".
type ProgressState struct {
	TotalSavedMinutes float64 `json:"totalSavedMinutes"`
}

// BlockerState is the persisted manual-blocking configuration. Unlocks maps
// app name to the Unix timestamp when a temporary unlock expires.
type BlockerState struct {
	Active      bool             `json:"active"`
	BlockedApps []string         `json:"blockedApps"`
	PIN         string           `json:"pin,omitempty"`
	UnlockType  string           `json:"unlockType"` // "pin" or "timer"
	Unlocks     map[string]int64 `json:"unlocks,omitempty"`
}
