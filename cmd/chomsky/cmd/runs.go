package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chomsky/internal/chomsky/store"
)

var (
	runsStorePath   string
	runsGrammar     string
	runsAccepted    bool
	runsLimit       int
	runsOffset      int
	runsPruneOlder  time.Duration
	runsPruneVacuum bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded recognition runs",
	Long: `Lists recognition runs recorded by the API server.

Runs are read from the history database (--store, config, default
./data/runs.db).

Examples:
  chomsky runs
  chomsky runs --grammar balanced --limit 10
  chomsky runs --accepted
  chomsky runs stats
  chomsky runs prune --older-than 720h`,
	RunE: runRuns,
}

var runsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history statistics",
	RunE:  runRunsStats,
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old runs from the history",
	RunE:  runRunsPrune,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsStatsCmd)
	runsCmd.AddCommand(runsPruneCmd)

	runsCmd.PersistentFlags().StringVar(&runsStorePath, "store", "", "Run history database path")
	runsCmd.Flags().StringVar(&runsGrammar, "grammar", "", "Only runs for this grammar")
	runsCmd.Flags().BoolVar(&runsAccepted, "accepted", false, "Only accepted runs")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "Maximum number of runs to show")
	runsCmd.Flags().IntVar(&runsOffset, "offset", 0, "Number of runs to skip")

	runsPruneCmd.Flags().DurationVar(&runsPruneOlder, "older-than", 30*24*time.Hour, "Delete runs older than this")
	runsPruneCmd.Flags().BoolVar(&runsPruneVacuum, "vacuum", false, "Compact the database afterwards")
}

// openRunStore opens the history database read-side for CLI commands
func openRunStore() (store.RunStore, error) {
	path := runsStorePath
	if path == "" {
		appCfg, err := loadAppConfig()
		if err != nil {
			return nil, err
		}
		path = appCfg.History.Path
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no run history at %s, start the server with: chomsky serve", path)
	}

	return store.NewSQLiteRunStore(store.SQLiteRunConfig{Path: path})
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	st, err := openRunStore()
	if err != nil {
		return err
	}
	defer st.Close()

	filter := store.RunFilter{
		Grammar:      runsGrammar,
		AcceptedOnly: runsAccepted,
		Limit:        runsLimit,
		Offset:       runsOffset,
	}

	runs, err := st.ListRuns(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list runs: %v", err)
	}

	fmt.Println("Recognition Runs")
	fmt.Println("================")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-38s %-16s %-9s %-7s %-7s %-19s\n", "ID", "GRAMMAR", "RESULT", "TOKENS", "STEPS", "CREATED")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		result := "REJECTED"
		if r.Accepted {
			result = "ACCEPTED"
		}
		fmt.Printf("%-38s %-16s %-9s %-7d %-7d %-19s\n",
			r.ID, r.Grammar, result, r.TokenCount, r.Steps, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	total, err := st.CountRuns(ctx)
	if err == nil {
		fmt.Println()
		fmt.Printf("Showing %d of %d run(s)\n", len(runs), total)
	}

	return nil
}

func runRunsStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	st, err := openRunStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %v", err)
	}

	fmt.Println("Run Statistics")
	fmt.Println("==============")
	fmt.Println()

	if total, ok := stats["total_runs"].(int64); ok {
		fmt.Printf("  Total Runs:      %d\n", total)
	}
	if accepted, ok := stats["accepted_runs"].(int64); ok {
		fmt.Printf("  Accepted:        %d\n", accepted)
	}
	if rate, ok := stats["acceptance_rate"].(float64); ok {
		fmt.Printf("  Acceptance Rate: %.1f%%\n", rate)
	}

	if byGrammar, ok := stats["runs_by_grammar"].(map[string]int64); ok && len(byGrammar) > 0 {
		fmt.Println()
		fmt.Println("  By Grammar:")
		for name, count := range byGrammar {
			fmt.Printf("    %-20s %d\n", name, count)
		}
	}

	if lastRun, ok := stats["last_run"].(time.Time); ok {
		fmt.Println()
		fmt.Printf("  Last Run: %s\n", lastRun.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func runRunsPrune(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	st, err := openRunStore()
	if err != nil {
		return err
	}
	defer st.Close()

	deleted, err := st.Prune(ctx, runsPruneOlder)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %v", err)
	}

	fmt.Printf("Deleted %d run(s) older than %v.\n", deleted, runsPruneOlder)

	if runsPruneVacuum {
		if err := st.Vacuum(ctx); err != nil {
			printError("vacuum failed", err)
		} else {
			fmt.Println("Database compacted.")
		}
	}

	return nil
}
