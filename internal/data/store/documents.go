package store

import (
	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
)

// DatedMinutes pairs a calendar day with a minute quantity.
type DatedMinutes struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

// Limits reads the app-limit configuration. The read goes to disk on every
// call: the settings surface owns the document and may rewrite it at any
// time, so nothing here is cached.
func (s *Store) Limits() []model.AppLimit {
	var limits []model.AppLimit
	s.Load(limitsDoc, &limits)
	return limits
}

// SaveLimits persists the app-limit configuration.
func (s *Store) SaveLimits(limits []model.AppLimit) error {
	return s.Save(limitsDoc, limits)
}

// LimitsPath returns the on-disk path of the limit configuration, for
// change watchers.
func (s *Store) LimitsPath() string {
	return s.docPath(limitsDoc)
}

// BlockerState reads the manual-blocking state.
func (s *Store) BlockerState() model.BlockerState {
	var state model.BlockerState
	s.Load(blockerDoc, &state)
	return state
}

// SaveBlockerState persists the manual-blocking state.
func (s *Store) SaveBlockerState(state model.BlockerState) error {
	return s.Save(blockerDoc, state)
}

// Journal reads all journal entries, oldest first.
func (s *Store) Journal() []model.JournalEntry {
	var entries []model.JournalEntry
	s.Load(journalDoc, &entries)
	return entries
}

// SaveJournal persists the journal entries.
func (s *Store) SaveJournal(entries []model.JournalEntry) error {
	return s.Save(journalDoc, entries)
}

// CheckIns reads the date-keyed mood check-ins.
func (s *Store) CheckIns() map[string]model.CheckIn {
	checkins := make(map[string]model.CheckIn)
	s.Load(checkinsDoc, &checkins)
	return checkins
}

// SaveCheckIns persists the mood check-ins.
func (s *Store) SaveCheckIns(checkins map[string]model.CheckIn) error {
	return s.Save(checkinsDoc, checkins)
}

// Onboarding reads the detox profile. The second return reports whether a
// profile has been saved.
func (s *Store) Onboarding() (model.OnboardingProfile, bool) {
	var profile model.OnboardingProfile
	ok := s.Load(onboardingDoc, &profile)
	return profile, ok
}

// SaveOnboarding persists the detox profile.
func (s *Store) SaveOnboarding(profile model.OnboardingProfile) error {
	return s.Save(onboardingDoc, profile)
}

// ProgressState reads the running time-saved total.
func (s *Store) ProgressState() model.ProgressState {
	var state model.ProgressState
	s.Load(progressDoc, &state)
	return state
}

// SaveProgressState persists the running time-saved total.
func (s *Store) SaveProgressState(state model.ProgressState) error {
	return s.Save(progressDoc, state)
}
