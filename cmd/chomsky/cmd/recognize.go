package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/internal/chomsky/service"
)

var (
	recognizeGrammarFiles []string
	recognizeGrammarDir   string
	recognizeTrace        bool
	recognizeJSON         bool
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize <grammar> [input]",
	Short: "Run an input against a grammar",
	Long: `Runs an input sentence through the pushdown automaton for the
named grammar and reports whether it was accepted.

Grammars are loaded from --grammar-file, or from the grammar
directory (--grammar-dir, config, default ./grammars).

Examples:
  chomsky recognize balanced "a a b b"
  chomsky recognize -g grammars/expr.toml expr "1 + 2 * 3"
  chomsky recognize balanced input.txt
  chomsky recognize --trace balanced "a b"
  echo "a a b b" | chomsky recognize balanced`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)

	recognizeCmd.Flags().StringSliceVarP(&recognizeGrammarFiles, "grammar-file", "g", nil, "Grammar file(s) to load")
	recognizeCmd.Flags().StringVarP(&recognizeGrammarDir, "grammar-dir", "d", "", "Directory to load grammars from")
	recognizeCmd.Flags().BoolVarP(&recognizeTrace, "trace", "t", false, "Print the automaton event trace")
	recognizeCmd.Flags().BoolVar(&recognizeJSON, "json", false, "Output as JSON")
}

func runRecognize(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	grammarName := args[0]

	input, err := getInputText(args[1:])
	if err != nil {
		return err
	}

	svc, err := newLocalService(recognizeGrammarFiles, recognizeGrammarDir)
	if err != nil {
		return err
	}
	defer svc.Close()

	var rec *service.Recognition
	var events []automaton.Event

	if recognizeTrace {
		rec, events, err = svc.RecognizeWithTrace(ctx, grammarName, input)
	} else {
		rec, err = svc.Recognize(ctx, grammarName, input)
	}
	if err != nil {
		return fmt.Errorf("recognition failed: %v", err)
	}

	if recognizeJSON {
		return printRecognitionJSON(rec, events)
	}

	printRecognition(grammarName, rec, events)
	return nil
}

func printRecognition(grammarName string, rec *service.Recognition, events []automaton.Event) {
	r := rec.Result

	fmt.Printf("Recognition: %s\n", grammarName)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Input: %d token(s)\n", r.TokenCount)
	fmt.Println()

	if len(events) > 0 {
		for _, ev := range events {
			fmt.Printf("  %s\n", ev.String())
		}
		fmt.Println()
	}

	if r.Accepted {
		fmt.Println("Result: ACCEPTED")
	} else {
		fmt.Println("Result: REJECTED")
	}
	fmt.Printf("  Steps:     %d\n", r.Steps)
	fmt.Printf("  Max Depth: %d\n", r.MaxDepth)
	fmt.Printf("  Cursor:    %d/%d\n", r.Cursor, r.TokenCount)
	fmt.Printf("  Duration:  %v\n", r.Duration)
	if r.FailReason != "" {
		fmt.Printf("  Reason:    %s\n", r.FailReason)
	}
}

func printRecognitionJSON(rec *service.Recognition, events []automaton.Event) error {
	out := struct {
		*service.Recognition
		Events []automaton.Event `json:"events,omitempty"`
	}{rec, events}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
