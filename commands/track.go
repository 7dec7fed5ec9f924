package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var sessionFor time.Duration

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record app usage",
}

var trackRecordCmd = &cobra.Command{
	Use:   "record <app> <minutes>",
	Short: "Manually log minutes of usage for an app",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid minutes value %q: %w", args[1], err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.tracker.RecordUsage(args[0], minutes)
		fmt.Printf("%s: %.1f minutes used today\n", args[0], a.tracker.AppUsage(args[0]))
		return nil
	},
}

var trackSessionCmd = &cobra.Command{
	Use:   "session <app>",
	Short: "Run a live usage session, recording elapsed time when it ends",
	Long: `Opens a usage session for an app and records the elapsed wall-clock time
when the session ends. Without --for, the session runs until interrupted
(Ctrl-C).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		app := args[0]
		a.tracker.StartTracking(app)
		fmt.Printf("Tracking %s... press Ctrl-C to stop\n", app)

		if sessionFor > 0 {
			time.Sleep(sessionFor)
		} else {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
		}

		a.tracker.StopTracking(app)
		fmt.Printf("\n%s: %.1f minutes used today\n", app, a.tracker.AppUsage(app))
		return nil
	},
}

func init() {
	trackSessionCmd.Flags().DurationVar(&sessionFor, "for", 0,
		"Fixed session length (e.g. 90s, 5m); default runs until Ctrl-C")

	trackCmd.AddCommand(trackRecordCmd, trackSessionCmd)
	rootCmd.AddCommand(trackCmd)
}
