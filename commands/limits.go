package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/core/limits"
	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
)

var limitIcon string

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Manage per-app daily limits",
}

var limitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		all := a.limits.All()
		if len(all) == 0 {
			fmt.Println("No limits configured")
			return nil
		}
		for _, l := range all {
			printLimit(l)
		}
		return nil
	},
}

var limitsSetCmd = &cobra.Command{
	Use:   "set <app> <minutes>",
	Short: "Set the daily limit for an app (0 removes the cap but keeps the row)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid limit %q: %w", args[1], err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		limit := model.AppLimit{AppName: args[0], Icon: limitIcon}
		if minutes > 0 {
			limit.DailyLimit = &minutes
		}
		if err := a.limits.Set(limit); err != nil {
			return err
		}
		printLimit(limit)
		return nil
	},
}

var limitsRemoveCmd = &cobra.Command{
	Use:   "remove <app>",
	Short: "Remove an app from the limit configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return a.limits.Remove(args[0])
	},
}

var limitsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the limit configuration for changes until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		watcher, err := limits.NewWatcher(a.limits)
		if err != nil {
			return err
		}
		defer watcher.Close()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Println("Watching limit configuration... press Ctrl-C to stop")
		for {
			select {
			case snapshot, ok := <-watcher.Changes():
				if !ok {
					return nil
				}
				fmt.Printf("Limits changed (%d app(s)):\n", len(snapshot))
				for _, l := range snapshot {
					printLimit(l)
				}
			case <-sig:
				return nil
			}
		}
	},
}

func printLimit(l model.AppLimit) {
	name := l.AppName
	if l.Icon != "" {
		name = l.Icon + " " + name
	}
	if l.Limited() {
		fmt.Printf("  %s: %d min/day\n", name, *l.DailyLimit)
	} else {
		fmt.Printf("  %s: no limit\n", name)
	}
}

func init() {
	limitsSetCmd.Flags().StringVar(&limitIcon, "icon", "", "Icon shown next to the app name")

	limitsCmd.AddCommand(limitsListCmd, limitsSetCmd, limitsRemoveCmd, limitsWatchCmd)
	rootCmd.AddCommand(limitsCmd)
}
