// Package blocker decides whether an app open should be intercepted. The
// enforcement itself is simulated; only the decision logic lives here. An
// app is intercepted either because the user blocked it manually or because
// its daily limit is spent.
package blocker

import (
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/core/constants"
	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Reason explains why an attempt was blocked.
type Reason string

const (
	ReasonNone   Reason = ""
	ReasonManual Reason = "manual"
	ReasonLimit  Reason = "limit"
)

// Decision is the outcome of an open attempt.
type Decision struct {
	Blocked bool
	Reason  Reason
}

// LimitDecider is the tracker capability the blocker depends on.
type LimitDecider interface {
	ShouldBlock(app string) bool
}

// Service evaluates open attempts against the persisted manual block list
// and the tracker's limit decision.
type Service struct {
	st      *store.Store
	tracker LimitDecider
	clk     clock.Clock
}

// New returns a blocker service over the given store and tracker.
func New(st *store.Store, tracker LimitDecider, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.New()
	}
	return &Service{st: st, tracker: tracker, clk: clk}
}

// State returns the persisted blocking configuration.
func (s *Service) State() model.BlockerState {
	return s.st.BlockerState()
}

// Configure replaces the blocking configuration.
func (s *Service) Configure(state model.BlockerState) error {
	return s.st.SaveBlockerState(state)
}

// Attempt evaluates an app open. Manual blocks take precedence over limit
// blocks; a still-valid temporary unlock suppresses a manual block.
func (s *Service) Attempt(app string) Decision {
	state := s.st.BlockerState()

	if state.Active && containsFold(state.BlockedApps, app) {
		if deadline, ok := state.Unlocks[app]; ok && s.clk.Now().Unix() < deadline {
			util.LogDebugf("Temporary unlock active for %s", app)
		} else {
			return Decision{Blocked: true, Reason: ReasonManual}
		}
	}

	if s.tracker != nil && s.tracker.ShouldBlock(app) {
		return Decision{Blocked: true, Reason: ReasonLimit}
	}

	return Decision{}
}

// UnlockWithPIN grants a temporary unlock window for an app when the
// supplied PIN matches. The app stays on the block list; only the window
// suppresses the block. It reports whether the unlock succeeded.
func (s *Service) UnlockWithPIN(app, pin string) (time.Time, bool) {
	state := s.st.BlockerState()
	if state.PIN == "" || pin != state.PIN {
		return time.Time{}, false
	}

	expiry := s.grantUnlock(app)
	util.LogInfof("PIN unlock for %s until %s", app, expiry.Format("15:04:05"))
	return expiry, true
}

// UnlockWithTimer grants a temporary unlock window for an app after the
// waiting period and returns the expiry time.
func (s *Service) UnlockWithTimer(app string) time.Time {
	expiry := s.grantUnlock(app)
	util.LogInfof("Timer unlock for %s until %s", app, expiry.Format("15:04:05"))
	return expiry
}

func (s *Service) grantUnlock(app string) time.Time {
	state := s.st.BlockerState()
	if state.Unlocks == nil {
		state.Unlocks = make(map[string]int64)
	}

	expiry := s.clk.Now().Add(constants.TempUnlockDuration)
	state.Unlocks[app] = expiry.Unix()

	if err := s.st.SaveBlockerState(state); err != nil {
		util.LogWarnf("Failed to persist blocker state: %v", err)
	}
	return expiry
}

func containsFold(apps []string, app string) bool {
	for _, a := range apps {
		if strings.EqualFold(a, app) {
			return true
		}
	}
	return false
}
