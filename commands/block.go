package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/core/blocker"
)

var (
	blockPIN      string
	blockUseTimer bool
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Manage the simulated app blocker",
}

var blockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the blocker configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		state := blocker.New(a.store, a.tracker, nil).State()
		if !state.Active {
			fmt.Println("Blocking is off")
			return nil
		}
		fmt.Printf("Blocking is on (%d app(s), unlock by %s)\n",
			len(state.BlockedApps), state.UnlockType)
		for _, app := range state.BlockedApps {
			fmt.Printf("  %s\n", app)
		}
		return nil
	},
}

var blockOnCmd = &cobra.Command{
	Use:   "on <app>...",
	Short: "Enable blocking for the listed apps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc := blocker.New(a.store, a.tracker, nil)
		state := svc.State()
		state.Active = true
		state.BlockedApps = args
		state.UnlockType = "timer"
		if blockPIN != "" {
			state.PIN = blockPIN
			state.UnlockType = "pin"
		}
		return svc.Configure(state)
	},
}

var blockOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable manual blocking",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc := blocker.New(a.store, a.tracker, nil)
		state := svc.State()
		state.Active = false
		return svc.Configure(state)
	},
}

var blockTryCmd = &cobra.Command{
	Use:   "try <app>",
	Short: "Simulate opening an app and show the blocking decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		decision := blocker.New(a.store, a.tracker, nil).Attempt(args[0])
		switch decision.Reason {
		case blocker.ReasonManual:
			fmt.Printf("%s is blocked (manually blocked)\n", args[0])
		case blocker.ReasonLimit:
			fmt.Printf("%s is blocked (daily limit reached)\n", args[0])
		default:
			fmt.Printf("%s is allowed\n", args[0])
		}
		return nil
	},
}

var blockUnlockCmd = &cobra.Command{
	Use:   "unlock <app>",
	Short: "Unlock a blocked app with the PIN or a temporary timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc := blocker.New(a.store, a.tracker, nil)
		if blockUseTimer {
			expiry := svc.UnlockWithTimer(args[0])
			fmt.Printf("%s unlocked until %s\n", args[0], expiry.Format("15:04:05"))
			return nil
		}
		if expiry, ok := svc.UnlockWithPIN(args[0], blockPIN); ok {
			fmt.Printf("%s unlocked until %s\n", args[0], expiry.Format("15:04:05"))
			return nil
		}
		return fmt.Errorf("wrong PIN")
	},
}

func init() {
	blockOnCmd.Flags().StringVar(&blockPIN, "pin", "", "PIN required to unblock")
	blockUnlockCmd.Flags().StringVar(&blockPIN, "pin", "", "PIN to unlock with")
	blockUnlockCmd.Flags().BoolVar(&blockUseTimer, "timer", false,
		"Grant a temporary 10-minute unlock instead of using the PIN")

	blockCmd.AddCommand(blockStatusCmd, blockOnCmd, blockOffCmd, blockTryCmd, blockUnlockCmd)
	rootCmd.AddCommand(blockCmd)
}
