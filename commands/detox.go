package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/detox"
)

var (
	detoxName    string
	detoxDays    int
	detoxGoal    string
	detoxReasons []string
)

var detoxCmd = &cobra.Command{
	Use:   "detox",
	Short: "Manage your detox period",
}

var detoxInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Start a detox period",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		plan := detox.NewPlan(a.store, nil)
		profile := model.OnboardingProfile{
			UserName:     detoxName,
			DurationDays: detoxDays,
			Goal:         detoxGoal,
			Reasons:      detoxReasons,
		}
		if err := plan.Start(profile); err != nil {
			return err
		}
		fmt.Printf("Detox started: %d day(s)\n", detoxDays)
		return nil
	},
}

var detoxStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the remaining detox time",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		plan := detox.NewPlan(a.store, nil)
		remaining, ok := plan.Countdown()
		if !ok {
			fmt.Println("No detox period configured; run 'go-mindcleanse detox init'")
			return nil
		}
		if remaining.Done {
			fmt.Println("Detox complete 🎉")
			return nil
		}

		profile, _ := plan.Profile()
		if profile.UserName != "" {
			fmt.Printf("Keep going, %s!\n", profile.UserName)
		}
		fmt.Printf("%dd %dh %dm remaining (of %d day(s))\n",
			remaining.Days, remaining.Hours, remaining.Minutes, profile.DurationDays)
		if profile.Goal != "" {
			fmt.Printf("Goal: %s\n", profile.Goal)
		}
		return nil
	},
}

func init() {
	detoxInitCmd.Flags().StringVar(&detoxName, "name", "", "Your name")
	detoxInitCmd.Flags().IntVar(&detoxDays, "days", 7, "Detox length in days")
	detoxInitCmd.Flags().StringVar(&detoxGoal, "goal", "", "What you want out of the detox")
	detoxInitCmd.Flags().StringSliceVar(&detoxReasons, "reason", nil,
		"Why you are detoxing (repeatable)")

	detoxCmd.AddCommand(detoxInitCmd, detoxStatusCmd)
	rootCmd.AddCommand(detoxCmd)
}
