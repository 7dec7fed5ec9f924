package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindcleanse/go-mindcleanse/internal/config"
	"github.com/mindcleanse/go-mindcleanse/internal/core/limits"
	"github.com/mindcleanse/go-mindcleanse/internal/core/tracker"
	"github.com/mindcleanse/go-mindcleanse/internal/data/store"
	"github.com/mindcleanse/go-mindcleanse/internal/presentation/formatter"
	"github.com/mindcleanse/go-mindcleanse/internal/progress"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configPath string
	dataDir    string

	// Output related
	outputFormat string
	timezone     string

	appConfig *config.Config

	rootCmd = &cobra.Command{
		Use:   "go-mindcleanse [flags]",
		Short: "Digital detox companion",
		Long: `go-mindcleanse tracks how much time you spend on distracting apps,
enforces daily limits, and keeps your detox journal.

Running without a subcommand prints the usage report for today and the
last week.

Examples:
  go-mindcleanse                              # Usage report
  go-mindcleanse --output json                # Report as JSON
  go-mindcleanse track record Instagram 15    # Log 15 minutes of usage
  go-mindcleanse limits set TikTok 45         # Cap TikTok at 45 min/day
  go-mindcleanse saved log 30                 # Log 30 minutes of time saved`,
		PersistentPreRunE: setup,
		RunE:              runReport,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath,
		"Config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC; overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, summary)")
}

// setup loads the config, applies flag overrides and initializes the
// ambient logger and time provider. It runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	appConfig = cfg

	logLevel := cfg.LogLevel
	if debug {
		logLevel = "debug"
	}
	logFile := config.ExpandPath(cfg.LogFile)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		logFile = ""
	}
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(cfg.Timezone)
}

// app bundles the wired services a command works with.
type app struct {
	store   *store.Store
	limits  *limits.Store
	tracker *tracker.Tracker
}

func newApp() (*app, error) {
	st, err := store.Open(config.ExpandPath(appConfig.DataDir))
	if err != nil {
		return nil, err
	}

	limitStore := limits.NewStore(st)

	var notifier tracker.Notifier = tracker.LogNotifier{}
	if appConfig.Notifications {
		notifier = consoleNotifier{}
	}

	trk := tracker.New(st, limitStore,
		tracker.WithLocation(util.GetTimeProvider().Location()),
		tracker.WithNotifier(notifier),
	)

	return &app{store: st, limits: limitStore, tracker: trk}, nil
}

func (a *app) close() {
	a.tracker.Close()
}

// consoleNotifier prints threshold notifications to the terminal, standing
// in for the toast surface of a mobile client.
type consoleNotifier struct{}

func (consoleNotifier) Notify(title, message string) {
	fmt.Printf("⚠ %s\n  %s\n", title, message)
	util.LogInfof("Notification: %s - %s", title, message)
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	f, err := formatter.New(outputFormat)
	if err != nil {
		return err
	}
	return f.Format(buildReport(a))
}

// buildReport assembles the today and weekly sections. The today section is
// the union of apps with usage recorded today and apps with a configured
// limit, so capped-but-unused apps still show up.
func buildReport(a *app) formatter.Report {
	usage := a.tracker.AllAppUsage()

	rows := make(map[string]formatter.AppRow)
	for app, minutes := range usage {
		rows[strings.ToLower(app)] = formatter.AppRow{App: app, Minutes: minutes}
	}
	for _, l := range a.limits.All() {
		key := strings.ToLower(l.AppName)
		row, ok := rows[key]
		if !ok {
			row = formatter.AppRow{App: l.AppName}
		}
		row.Icon = l.Icon
		if l.Limited() {
			limit := *l.DailyLimit
			row.Limit = &limit
			row.Percent = a.tracker.UsagePercentage(row.App)
			row.Blocked = a.tracker.ShouldBlock(row.App)
		}
		rows[key] = row
	}

	today := make([]formatter.AppRow, 0, len(rows))
	for _, row := range rows {
		today = append(today, row)
	}
	sort.Slice(today, func(i, j int) bool {
		if today[i].Minutes != today[j].Minutes {
			return today[i].Minutes > today[j].Minutes
		}
		return today[i].App < today[j].App
	})

	week := make([]formatter.DayRow, 0)
	for _, summary := range a.tracker.WeeklyUsage() {
		week = append(week, formatter.DayRow{
			Date:         summary.Date,
			TotalMinutes: summary.TotalMinutes,
			SavedMinutes: summary.SavedMinutes,
			AppUsage:     summary.AppUsage,
		})
	}

	ledger := progress.NewLedger(a.store, nil, util.GetTimeProvider().Location())
	return formatter.Report{
		Today:      today,
		Week:       week,
		TotalSaved: ledger.TotalSaved(),
		Streak:     ledger.Streak(),
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
