// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the chomsky TraceView TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chomsky/internal/tui/traceview"
)

var (
	traceGrammarFiles []string
	traceGrammarDir   string
)

var traceCmd = &cobra.Command{
	Use:     "trace <grammar> [input]",
	Aliases: []string{"traceview"},
	Short:   "Inspect a recognition trace in the TUI",
	Long: `Starts the interactive chomsky TraceView.

TraceView runs the input through the automaton and shows every
event of the run in a scrollable terminal UI:

  - Color coded event kinds
  - Filtering by event kind
  - Run metrics in the status bar

Keys:
  1-7         Toggle event kind (1=push, 2=select, 3=match,
              4=complete, 5=backtrack, 6=abandon, 7=skip)
  0           Show all kinds
  r           Re-run the recognition
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringSliceVarP(&traceGrammarFiles, "grammar-file", "g", nil, "Grammar file(s) to load")
	traceCmd.Flags().StringVarP(&traceGrammarDir, "grammar-dir", "d", "", "Directory to load grammars from")
}

func runTrace(cmd *cobra.Command, args []string) error {
	grammarName := args[0]

	input, err := getInputText(args[1:])
	if err != nil {
		return err
	}

	svc, err := newLocalService(traceGrammarFiles, traceGrammarDir)
	if err != nil {
		return err
	}
	defer svc.Close()

	cfg := traceview.Config{
		Service: svc,
		Grammar: grammarName,
		Input:   input,
	}

	return traceview.Run(cfg)
}
