package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chomsky",
	Short: "chomsky - Grammar Recognition Workbench",
	Long: `chomsky is a grammar recognition workbench built around a
predictive pushdown automaton with structural backtracking.

Commands:
  recognize - Run an input against a grammar
  check     - Validate grammar files
  grammars  - List grammars in a directory
  runs      - Browse recorded recognition runs
  serve     - Start the recognition API server
  trace     - Inspect a recognition trace in the TUI`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./configs/chomsky.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
