package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mazim-lab/conference-tracker/internal/extract"
	"github.com/mazim-lab/conference-tracker/internal/logger"
	"github.com/mazim-lab/conference-tracker/internal/runner"
	"github.com/mazim-lab/conference-tracker/internal/scraper"
	"github.com/mazim-lab/conference-tracker/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig        string
	flagStore         string
	flagAsOf          string
	flagDeadlinesOnly bool
	flagNewOnly       bool
	flagListOnly      bool
	flagInit          bool
	flagVerbose       bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conference-tracker",
		Short: "Track academic conference announcements, deadlines, and dates",
		Long: `conference-tracker scrapes SSRN professional announcements and folds what
it finds into a persistent JSON store of conferences. Repeated runs only ever
strengthen the store: concrete deadlines are never overwritten, dates never
lose precision, and discipline tags only accumulate.`,
		RunE: runPass,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ./conference-tracker.yaml)")
	cmd.Flags().StringVar(&flagStore, "store", "", "path to the conference store (default: conferences.json)")
	cmd.Flags().StringVar(&flagAsOf, "as-of", "", "as-of date for year inference, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&flagDeadlinesOnly, "deadlines-only", false, "only visit pages for records with TBD deadlines")
	cmd.Flags().BoolVar(&flagNewOnly, "new-only", false, "only visit pages for newly discovered records (fast polling mode)")
	cmd.Flags().BoolVar(&flagListOnly, "list-only", false, "scrape listings and report the diff, no detail visits, no writes")
	cmd.Flags().BoolVar(&flagInit, "init", false, "create an empty store if none exists yet")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("deadlines-only", "new-only", "list-only")

	return cmd
}

func initConfig() {
	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
	} else {
		viper.SetConfigName("conference-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "conference-tracker"))
		}
	}

	viper.SetDefault("store", "conferences.json")
	viper.SetDefault("delay_min", "2s")
	viper.SetDefault("delay_max", "5s")
	viper.SetDefault("timeout", "30s")

	viper.SetEnvPrefix("CONFERENCE_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func selectedMode() runner.Mode {
	switch {
	case flagDeadlinesOnly:
		return runner.ModeDeadlinesOnly
	case flagNewOnly:
		return runner.ModeNewOnly
	case flagListOnly:
		return runner.ModeListOnly
	default:
		return runner.ModeFull
	}
}

func runPass(cmd *cobra.Command, args []string) error {
	initConfig()

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	asOf := time.Now().UTC()
	if flagAsOf != "" {
		parsed, err := time.Parse("2006-01-02", flagAsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", flagAsOf, err)
		}
		asOf = parsed
	}

	storePath := flagStore
	if storePath == "" {
		storePath = viper.GetString("store")
	}
	store, err := storage.New(storePath)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	if flagInit {
		if err := store.Init(); err != nil {
			return fmt.Errorf("creating store: %w", err)
		}
	}

	cfg := runner.Config{
		AsOf:     asOf,
		DelayMin: viper.GetDuration("delay_min"),
		DelayMax: viper.GetDuration("delay_max"),
	}
	if min, max := viper.GetInt("min_year"), viper.GetInt("max_year"); min != 0 && max != 0 {
		cfg.Window = extract.Window{Min: min, Max: max}
	}

	r := runner.New(scraper.NewHTTPFetcher(log, viper.GetDuration("timeout")), store, log, cfg)

	summary, err := r.Run(cmd.Context(), selectedMode())
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s *runner.Summary) {
	fmt.Printf("Mode: %s\n", s.Mode)
	if s.Mode == runner.ModeListOnly {
		fmt.Printf("Scraped %d entries, %d new:\n", s.Scraped, len(s.NewEntries))
		for _, e := range s.NewEntries {
			fmt.Printf("  NEW: %s  (sid %s)\n", e.Name, e.SID)
		}
		return
	}
	fmt.Printf("Added: %d | Deadlines found: %d | Dates found: %d\n", s.Added, s.DeadlinesFound, s.DatesFound)
	fmt.Printf("Records: %d | Deadlines set: %d | TBD: %d | Tiered: %d\n",
		s.TotalRecords, s.DeadlinesSet, s.TBDRemaining, s.Tiered)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
