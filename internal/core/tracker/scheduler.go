package tracker

import (
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// runRolloverLoop is a perpetual self-rescheduling loop: sleep until the
// next local midnight, reset, schedule the following midnight. It has no
// terminal state other than Close.
func (t *Tracker) runRolloverLoop() {
	for {
		now := t.now()
		next := util.NextMidnight(now)
		timer := t.clk.Timer(next.Sub(now))

		select {
		case <-timer.C:
			util.LogInfof("Midnight rollover at %s", util.DateString(t.now()))
			t.ResetDailyUsage()
		case <-t.done:
			timer.Stop()
			return
		}
	}
}
