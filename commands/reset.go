package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's usage counters and notification flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.tracker.ResetDailyUsage()
		fmt.Println("Daily usage reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
