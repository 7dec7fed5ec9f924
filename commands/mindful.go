package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/core/constants"
	"github.com/mindcleanse/go-mindcleanse/internal/wellness"
)

var (
	mindfulDuration time.Duration
	mindfulBreathe  bool
)

var mindfulCmd = &cobra.Command{
	Use:   "mindful",
	Short: "Run a mindfulness session",
	Long: `Runs a countdown mindfulness session. With --breathe, a guided
breathing prompt (inhale, hold, exhale) is shown while the timer runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		done := make(chan struct{})
		timer := wellness.NewTimer(mindfulDuration, nil, func() { close(done) })
		defer timer.Stop()
		timer.Start()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		started := time.Now()
		for {
			select {
			case <-done:
				fmt.Printf("\rSession complete: %s of mindfulness           \n", mindfulDuration)
				return nil
			case <-sig:
				fmt.Printf("\rSession ended early with %s remaining          \n", timer.Remaining())
				return nil
			case <-ticker.C:
				line := fmt.Sprintf("%s remaining", timer.Remaining())
				if mindfulBreathe {
					phase, _ := wellness.BreathingPhaseAt(time.Since(started))
					line += " · " + wellness.BreathingPrompt(phase)
				}
				fmt.Printf("\r%-70s", line)
			}
		}
	},
}

func init() {
	mindfulCmd.Flags().DurationVarP(&mindfulDuration, "duration", "d",
		constants.DefaultMindfulDuration, "Session length (e.g. 5m, 90s)")
	mindfulCmd.Flags().BoolVar(&mindfulBreathe, "breathe", false,
		"Show the guided breathing prompt")

	rootCmd.AddCommand(mindfulCmd)
}
