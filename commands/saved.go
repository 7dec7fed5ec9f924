package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/progress"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Track time you chose not to spend on your phone",
}

var savedLogCmd = &cobra.Command{
	Use:   "log <minutes>",
	Short: "Log saved minutes for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid minutes value %q: %w", args[0], err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ledger := progress.NewLedger(a.store, nil, util.GetTimeProvider().Location())
		ledger.LogSaved(minutes)
		fmt.Printf("Logged %.0f saved minutes (total %.0f)\n", minutes, ledger.TotalSaved())
		return nil
	},
}

var savedShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show saved time and the current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ledger := progress.NewLedger(a.store, nil, util.GetTimeProvider().Location())
		fmt.Printf("Total saved: %.0f minutes\n", ledger.TotalSaved())
		if streak := ledger.Streak(); streak > 0 {
			fmt.Printf("Streak: %d day(s)\n", streak)
		}
		for _, day := range ledger.SavedByDate() {
			fmt.Printf("  %s: %.0f min\n", day.Date, day.Minutes)
		}
		return nil
	},
}

func init() {
	savedCmd.AddCommand(savedLogCmd, savedShowCmd)
	rootCmd.AddCommand(savedCmd)
}
