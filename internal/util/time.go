package util

import (
	"fmt"
	"sync"
	"time"
)

// DateLayout is the canonical calendar-day key used across persistence.
const DateLayout = "2006-01-02"

// TimeProvider is a global time utility that handles timezone-aware time operations
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	timeProviderMu     sync.Mutex
)

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	timeProviderMu.Lock()
	defer timeProviderMu.Unlock()

	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}

	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global time provider instance.
// If not initialized, it defaults to Local timezone.
func GetTimeProvider() *TimeProvider {
	if globalTimeProvider == nil {
		InitializeTimeProvider("Local")
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai", timezone, err)
		}
		loc = l
	}
	tp.location = loc
	return nil
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return time.Now().In(tp.location)
}

// Location returns the configured timezone location
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

// Format formats a time according to the layout in the configured timezone
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location).Format(layout)
}

// DateString renders a time as a YYYY-MM-DD calendar-day key.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// NextMidnight returns the first instant of the calendar day following t,
// in t's location.
func NextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}
