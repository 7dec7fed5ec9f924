// Package limits exposes the per-app daily limit configuration. The tracker
// only ever reads it; the settings commands write it.
package limits

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Provider is the read capability the tracker depends on.
type Provider interface {
	// Limit returns the configured daily limit in minutes for an app.
	// The second return is false when no usable limit is configured.
	Limit(app string) (int, bool)
}

// Store reads and writes the limit configuration document. Reads hit the
// backing store on every call so edits from another process are observed
// immediately.
type Store struct {
	st *store.Store
}

// NewStore returns a limit store over the given document store.
func NewStore(st *store.Store) *Store {
	return &Store{st: st}
}

// All returns every configured limit row, sorted by app name.
func (s *Store) All() []model.AppLimit {
	limits := s.st.Limits()
	sort.Slice(limits, func(i, j int) bool {
		return limits[i].AppName < limits[j].AppName
	})
	return limits
}

// Limit implements Provider.
func (s *Store) Limit(app string) (int, bool) {
	for _, l := range s.st.Limits() {
		if strings.EqualFold(l.AppName, app) {
			if !l.Limited() {
				return 0, false
			}
			return *l.DailyLimit, true
		}
	}
	return 0, false
}

// Set adds or replaces the limit row for an app.
func (s *Store) Set(limit model.AppLimit) error {
	if limit.AppName == "" {
		return fmt.Errorf("app name must not be empty")
	}

	limits := s.st.Limits()
	replaced := false
	for i, l := range limits {
		if strings.EqualFold(l.AppName, limit.AppName) {
			limits[i] = limit
			replaced = true
			break
		}
	}
	if !replaced {
		limits = append(limits, limit)
	}

	if err := s.st.SaveLimits(limits); err != nil {
		return err
	}
	util.LogDebugf("Saved limit for %s", limit.AppName)
	return nil
}

// Remove deletes the limit row for an app. Removing an unknown app is a no-op.
func (s *Store) Remove(app string) error {
	limits := s.st.Limits()
	kept := limits[:0]
	for _, l := range limits {
		if !strings.EqualFold(l.AppName, app) {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(limits) {
		return nil
	}
	return s.st.SaveLimits(kept)
}

// Path returns the on-disk location of the configuration document.
func (s *Store) Path() string {
	return s.st.LimitsPath()
}
