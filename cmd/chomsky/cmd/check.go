package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chomsky/foundation/pda"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate grammar files",
	Long: `Loads and validates grammar files without registering them.

Reports undefined non-terminal references, duplicate rules, goal
problems and element notation errors.

Examples:
  chomsky check grammars/balanced.toml
  chomsky check grammars/*.toml grammars/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine := pda.NewEngine()

	failed := 0
	for _, path := range args {
		g, err := engine.CheckGrammarFile(path)
		if err != nil {
			fmt.Printf("[!] %s\n    %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("[+] %s\n    %s: goal %s, %d non-terminal(s), %d production(s), %d keyword(s)\n",
			path, g.Name(), g.Goal(), len(g.NonTerminals()), g.ProductionCount(), len(g.Keywords()))
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d grammar file(s) failed validation", failed, len(args))
	}

	fmt.Printf("All %d grammar file(s) valid.\n", len(args))
	return nil
}
