package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/journal"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

var journalMood string

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Keep a detox journal",
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a journal entry for today",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		book := journal.NewBook(a.store, nil, util.GetTimeProvider().Location())
		return book.Add(strings.Join(args, " "), journalMood)
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		book := journal.NewBook(a.store, nil, util.GetTimeProvider().Location())
		entries := book.Entries()
		if len(entries) == 0 {
			fmt.Println("No journal entries yet")
			return nil
		}
		for _, e := range entries {
			mood := ""
			if e.Mood != "" {
				mood = " [" + e.Mood + "]"
			}
			fmt.Printf("%s%s %s\n", e.Date, mood, e.Text)
		}
		return nil
	},
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <mood>",
	Short: "Record today's mood check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		book := journal.NewBook(a.store, nil, util.GetTimeProvider().Location())
		if err := book.CheckIn(args[0]); err != nil {
			return err
		}
		fmt.Printf("Checked in: %s\n", args[0])
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalMood, "mood", "",
		"Mood tag for the entry (good, bad)")

	journalCmd.AddCommand(journalAddCmd, journalListCmd)
	rootCmd.AddCommand(journalCmd, checkinCmd)
}
