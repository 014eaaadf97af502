package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars [dir]",
	Short: "List grammars in a directory",
	Long: `Loads all grammar files from a directory and lists them.

Without an argument the grammar directory from the configuration
is used (default ./grammars).

Examples:
  chomsky grammars
  chomsky grammars ./testdata/grammars`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrammars,
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
}

func runGrammars(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	svc, err := newLocalService(nil, dir)
	if err != nil {
		return err
	}
	defer svc.Close()

	grammars := svc.Grammars()

	fmt.Println("Registered Grammars")
	fmt.Println("===================")
	fmt.Println()

	if len(grammars) == 0 {
		fmt.Println("No grammars found.")
		fmt.Println()
		fmt.Println("Grammar files are TOML or YAML, for example:")
		fmt.Println("  name = \"balanced\"")
		fmt.Println("  goal = \"S\"")
		fmt.Println("  [[rules]]")
		fmt.Println("  name = \"S\"")
		fmt.Println("  productions = [[\"'a'\", \"S\", \"'b'\"], []]")
		return nil
	}

	fmt.Printf("%-20s %-12s %-14s %-12s %-10s\n", "NAME", "GOAL", "NON-TERMINALS", "PRODUCTIONS", "KEYWORDS")
	fmt.Println(strings.Repeat("-", 70))

	for _, g := range grammars {
		fmt.Printf("%-20s %-12s %-14d %-12d %-10d\n",
			g.Name, g.Goal, g.NonTerminals, g.Productions, g.Keywords)
	}

	fmt.Println()
	fmt.Printf("Total: %d grammar(s)\n", len(grammars))

	return nil
}
