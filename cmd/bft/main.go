// Package main is the entry point for the baby feeding tracker.
// The default command runs the Bubble Tea TUI; subcommands expose the
// feeding log, statistics, and settings for scripting.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/config"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
	"github.com/cjjknight/baby-feeding/internal/ui/tabs/feedings"
	"github.com/cjjknight/baby-feeding/internal/ui/tabs/settings"
	"github.com/cjjknight/baby-feeding/internal/ui/tabs/stats"
	"github.com/cjjknight/baby-feeding/internal/ui/tabs/timer"
	"github.com/cjjknight/baby-feeding/internal/version"
)

// timeLayout is the format feeding times are typed and printed in.
const timeLayout = "2006-01-02 15:04"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bft",
		Short:         "Baby feeding tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}

	root.AddCommand(newTUICmd())
	root.AddCommand(newFeedCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newIntervalCmd())
	root.AddCommand(newContactsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadManager wires configuration and services for one-shot commands.
func loadManager() (*services.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return services.NewManager(cfg)
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager, cfg.TickInterval)

	state := model.GetState()
	commands := model.GetCommands()
	model.SetTabs([]app.Tab{
		timer.New(state, svcManager, commands),
		feedings.New(state, svcManager, commands),
		stats.New(state, svcManager, commands),
		settings.New(state, svcManager, commands),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the feeding tracker terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}
}

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Record a feeding right now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.RecordFeedingNow(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "feeding recorded at %s\n", time.Now().Format(timeLayout))
			return nil
		},
	}
}

func newLogCmd() *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Feeding log commands"}

	log.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded feedings, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			sorted := mgr.FeedingLog().Sorted()
			if len(sorted) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no feedings recorded")
				return nil
			}
			for i := len(sorted) - 1; i >= 0; i-- {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), sorted[i].Format(timeLayout))
			}
			return nil
		},
	})

	log.AddCommand(&cobra.Command{
		Use:   "add <time>",
		Short: "Add a missed feeding at the given local time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseTime(args[0])
			if err != nil {
				return err
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			mgr.AddMissedFeeding(value)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added feeding at %s\n", value.Format(timeLayout))
			return nil
		},
	})

	log.AddCommand(&cobra.Command{
		Use:   "rm <time>",
		Short: "Delete the feeding at the given local time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseTime(args[0])
			if err != nil {
				return err
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			mgr.DeleteFeeding(value)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted feeding at %s\n", value.Format(timeLayout))
			return nil
		},
	})

	log.AddCommand(&cobra.Command{
		Use:   "edit <old-time> <new-time>",
		Short: "Replace a recorded feeding time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldValue, err := parseTime(args[0])
			if err != nil {
				return err
			}
			newValue, err := parseTime(args[1])
			if err != nil {
				return err
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.EditFeeding(oldValue, newValue); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "moved feeding %s -> %s\n",
				oldValue.Format(timeLayout), newValue.Format(timeLayout))
			return nil
		},
	})

	return log
}

func newStatsCmd() *cobra.Command {
	var rangeName string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-day feeding statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeRange, err := parseTimeRange(rangeName)
			if err != nil {
				return err
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			series := mgr.DailyStats(timeRange)
			if len(series) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no feedings recorded")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %6s %9s %13s\n", "date", "meals", "daytime", "longest gap")
			for _, s := range series {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %6d %8.0f%% %12.1fh\n",
					s.Date.Format("2006-01-02"), s.NumberOfMeals, s.PercentDaytime, s.LongestGapHours)
			}
			return nil
		},
	}
	statsCmd.Flags().StringVar(&rangeName, "range", "weekly", "time range: weekly|monthly|annual")
	return statsCmd
}

func newIntervalCmd() *cobra.Command {
	interval := &cobra.Command{Use: "interval", Short: "Feeding interval commands"}

	interval.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the configured feeding interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d hours\n", mgr.IntervalHours())
			return nil
		},
	})

	interval.AddCommand(&cobra.Command{
		Use:   "set <hours>",
		Short: "Set the feeding interval in hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[0])
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.SetIntervalHours(hours); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "feeding interval set to %d hours\n", hours)
			return nil
		},
	})

	return interval
}

func newContactsCmd() *cobra.Command {
	contactsCmd := &cobra.Command{Use: "contacts", Short: "Notification contact commands"}

	contactsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notification contacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			list := mgr.Contacts().List()
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no contacts configured")
				return nil
			}
			for _, c := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.ID, c.FullName(), c.PhoneNumber)
			}
			return nil
		},
	})

	var given, family, phone string
	add := &cobra.Command{
		Use:   "add --phone <number>",
		Short: "Add a notification contact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(given) == "" && strings.TrimSpace(family) == "" && strings.TrimSpace(phone) == "" {
				return fmt.Errorf("a name or --phone is required")
			}
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			contact := models.Contact{GivenName: given, FamilyName: family, PhoneNumber: phone}
			if err := mgr.Contacts().Add(contact); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", contact.FullName())
			return nil
		},
	}
	add.Flags().StringVar(&given, "given", "", "given name")
	add.Flags().StringVar(&family, "family", "", "family name")
	add.Flags().StringVar(&phone, "phone", "", "phone number")
	contactsCmd.AddCommand(add)

	contactsCmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a notification contact by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.Contacts().Remove(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	return contactsCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

func parseTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected %q", value, timeLayout)
	}
	return t, nil
}

func parseTimeRange(name string) (models.TimeRange, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weekly", "week", "w":
		return models.TimeRangeWeekly, nil
	case "monthly", "month", "m":
		return models.TimeRangeMonthly, nil
	case "annual", "year", "y":
		return models.TimeRangeAnnual, nil
	default:
		return 0, fmt.Errorf("invalid range %q, expected weekly|monthly|annual", name)
	}
}
