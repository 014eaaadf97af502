// File: grammar.go
// Title: Grammar Table
// Description: Defines the read-only grammar table consumed by the
//              parsing automaton. The table answers exactly two
//              questions: which productions a non-terminal has, and
//              whether a non-terminal could start with a given token.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial grammar table

package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/chomsky/foundation/pda/lexer"
)

// Table is the read-only boundary between a grammar definition and the
// parsing automaton. The automaton never mutates the table and treats it
// as stable for the duration of a run.
type Table interface {
	// ProductionsOf returns the ordered production list of the named
	// non-terminal, or nil if the name is not defined. Callers must not
	// modify the returned slice.
	ProductionsOf(nonTerminal string) []Production

	// CouldStartWith reports whether a derivation of the named
	// non-terminal could begin with the given token.
	CouldStartWith(nonTerminal string, tok lexer.Token) bool
}

// Grammar is an immutable grammar table built by a Builder or loaded
// from a grammar file. All methods are safe for concurrent use because
// a built grammar is never mutated.
type Grammar struct {
	name     string
	goal     string
	keywords []string
	rules    map[string][]Production
	order    []string
	nullable map[string]bool
	first    map[string]map[string]bool
}

// Name returns the grammar's display name
func (g *Grammar) Name() string {
	return g.name
}

// Goal returns the default derivation goal symbol
func (g *Grammar) Goal() string {
	return g.goal
}

// Keywords returns the keyword lexemes the grammar declares for the
// lexer
func (g *Grammar) Keywords() []string {
	out := make([]string, len(g.keywords))
	copy(out, g.keywords)
	return out
}

// NonTerminals returns all defined non-terminal names in definition
// order
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Has reports whether the named non-terminal is defined
func (g *Grammar) Has(nonTerminal string) bool {
	_, ok := g.rules[nonTerminal]
	return ok
}

// ProductionsOf returns the ordered production list of the named
// non-terminal. The returned slice is shared; callers must not modify
// it.
func (g *Grammar) ProductionsOf(nonTerminal string) []Production {
	return g.rules[nonTerminal]
}

// CouldStartWith reports whether the named non-terminal could derive a
// sequence beginning with the given token. The test is first-lexeme
// membership over the grammar's computed FIRST sets.
func (g *Grammar) CouldStartWith(nonTerminal string, tok lexer.Token) bool {
	return g.first[nonTerminal][tok.Lexeme]
}

// IsNullable reports whether the named non-terminal can derive the
// empty sequence
func (g *Grammar) IsNullable(nonTerminal string) bool {
	return g.nullable[nonTerminal]
}

// First returns the sorted set of lexemes a derivation of the named
// non-terminal could begin with. Intended for diagnostics and tooling.
func (g *Grammar) First(nonTerminal string) []string {
	set := g.first[nonTerminal]
	if len(set) == 0 {
		return nil
	}

	out := make([]string, 0, len(set))
	for lexeme := range set {
		out = append(out, lexeme)
	}
	sort.Strings(out)
	return out
}

// ProductionCount returns the total number of productions across all
// rules
func (g *Grammar) ProductionCount() int {
	count := 0
	for _, prods := range g.rules {
		count += len(prods)
	}
	return count
}

// String renders the grammar in rule notation, one rule per line with
// alternatives joined by a pipe
func (g *Grammar) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "grammar %s (goal %s)\n", g.name, g.goal)
	for _, name := range g.order {
		alts := make([]string, len(g.rules[name]))
		for i, p := range g.rules[name] {
			alts[i] = p.String()
		}
		fmt.Fprintf(&sb, "  %s -> %s\n", name, strings.Join(alts, " | "))
	}

	return sb.String()
}
