// Package detox manages the one-time onboarding profile and the countdown
// toward the end of the chosen detox period.
package detox

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Remaining is the time left in a detox period, broken down for display.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Done    bool
}

// Plan wraps the persisted onboarding profile.
type Plan struct {
	st  *store.Store
	clk clock.Clock
}

// NewPlan returns a plan over the given store.
func NewPlan(st *store.Store, clk clock.Clock) *Plan {
	if clk == nil {
		clk = clock.New()
	}
	return &Plan{st: st, clk: clk}
}

// Start saves a new detox profile. Starting over an existing profile
// replaces it (last write wins).
func (p *Plan) Start(profile model.OnboardingProfile) error {
	if profile.DurationDays <= 0 {
		return fmt.Errorf("detox duration must be positive, got %d", profile.DurationDays)
	}
	if profile.StartedAt.IsZero() {
		profile.StartedAt = p.clk.Now()
	}
	if err := p.st.SaveOnboarding(profile); err != nil {
		return err
	}
	util.LogInfof("Detox started: %d days", profile.DurationDays)
	return nil
}

// Profile returns the saved profile, if any.
func (p *Plan) Profile() (model.OnboardingProfile, bool) {
	return p.st.Onboarding()
}

// EndsAt returns the end of the detox period.
func EndsAt(profile model.OnboardingProfile) time.Time {
	return profile.StartedAt.AddDate(0, 0, profile.DurationDays)
}

// Countdown computes the remaining time of the detox period as of now.
func (p *Plan) Countdown() (Remaining, bool) {
	profile, ok := p.st.Onboarding()
	if !ok {
		return Remaining{}, false
	}
	return CountdownAt(profile, p.clk.Now()), true
}

// CountdownAt computes the remaining time of a profile at a given instant.
func CountdownAt(profile model.OnboardingProfile, now time.Time) Remaining {
	left := EndsAt(profile).Sub(now)
	if left <= 0 {
		return Remaining{Done: true}
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	return Remaining{Days: days, Hours: hours, Minutes: minutes}
}
