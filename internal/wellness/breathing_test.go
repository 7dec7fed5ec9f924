package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreathingPhaseAt(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		phase   Phase
		left    time.Duration
	}{
		{name: "start", elapsed: 0, phase: PhaseInhale, left: 4 * time.Second},
		{name: "mid inhale", elapsed: 3 * time.Second, phase: PhaseInhale, left: time.Second},
		{name: "hold", elapsed: 4 * time.Second, phase: PhaseHold, left: 4 * time.Second},
		{name: "exhale", elapsed: 9 * time.Second, phase: PhaseExhale, left: 3 * time.Second},
		{name: "wraps to next cycle", elapsed: 12 * time.Second, phase: PhaseInhale, left: 4 * time.Second},
		{name: "deep into later cycle", elapsed: 65 * time.Second, phase: PhaseHold, left: 3 * time.Second},
		{name: "negative clamps to start", elapsed: -time.Second, phase: PhaseInhale, left: 4 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, left := BreathingPhaseAt(tt.elapsed)
			assert.Equal(t, tt.phase, phase)
			assert.Equal(t, tt.left, left)
		})
	}
}

func TestBreathingPrompt(t *testing.T) {
	assert.NotEmpty(t, BreathingPrompt(PhaseInhale))
	assert.NotEmpty(t, BreathingPrompt(PhaseHold))
	assert.NotEmpty(t, BreathingPrompt(PhaseExhale))
	assert.Empty(t, BreathingPrompt(Phase("rest")))
}
