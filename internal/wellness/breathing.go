package wellness

import (
	"time"

	"github.com/mindcleanse/go-mindcleanse/internal/core/constants"
)

// Phase is a step of the guided breathing cycle.
type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold   Phase = "hold"
	PhaseExhale Phase = "exhale"
)

var breathingOrder = []Phase{PhaseInhale, PhaseHold, PhaseExhale}

// BreathingPhaseAt returns the phase active after the given elapsed time
// and how long is left in it. The cycle is inhale, hold, exhale, each of
// equal length, repeating indefinitely.
func BreathingPhaseAt(elapsed time.Duration) (Phase, time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := time.Duration(len(breathingOrder)) * constants.BreathPhase
	offset := elapsed % cycle

	idx := int(offset / constants.BreathPhase)
	left := constants.BreathPhase - offset%constants.BreathPhase
	return breathingOrder[idx], left
}

// BreathingPrompt is the instruction text shown for a phase.
func BreathingPrompt(p Phase) string {
	switch p {
	case PhaseInhale:
		return "Breathe in slowly through your nose"
	case PhaseHold:
		return "Hold your breath"
	case PhaseExhale:
		return "Breathe out gently through your mouth"
	default:
		return ""
	}
}
