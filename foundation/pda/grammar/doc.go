// File: doc.go
// Title: Package Documentation for pda/grammar
// Description: Documents the grammar table, builder, and file loading
//              along with the authoring contract grammars must follow
//              for the backtracking automaton.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial package documentation

// Package grammar defines the grammar tables consumed by the parsing
// automaton. A table answers exactly two questions: which productions a
// non-terminal has (in order), and whether a non-terminal could derive
// a sequence starting with a given token.
//
// Productions are sequences of tagged elements: terminal literals that
// must match a token's lexeme, non-terminal references, and optional
// non-terminal references that may be skipped. An empty production
// derives the empty sequence.
//
// Grammars are built programmatically:
//
//	g, err := grammar.NewBuilder("balanced").
//	    Rule("S",
//	        grammar.Prod(grammar.Terminal("a"), grammar.NonTerminal("S"), grammar.Terminal("b")),
//	        grammar.Epsilon(),
//	    ).
//	    Build()
//
// or loaded from TOML or YAML files:
//
//	name = "balanced"
//	goal = "S"
//
//	[[rules]]
//	name = "S"
//	productions = [
//	    ["'a'", "S", "'b'"],
//	    [],
//	]
//
// In file notation a quoted element ('a' or "a") is a terminal, a bare
// identifier is a non-terminal reference, and a bracketed identifier
// ([Name]) is an optional reference.
//
// # Authoring contract
//
// The automaton driving these tables backtracks over production
// alternatives but never rolls the input cursor back. Tokens consumed
// by a failed sibling path stay consumed, so all alternatives of a rule
// must remain valid after any prefix already matched by an earlier
// alternative. Two ordering rules follow:
//
//   - Alternatives are tried in definition order, and backtracking only
//     moves forward through the list. Epsilon productions and
//     alternatives starting with a nullable non-terminal belong last.
//   - Left-recursive rules (a rule whose alternative starts with the
//     rule itself) build fine but can never make progress; the
//     automaton rejects such runs through its depth guard.
//
// Build validates rule names and references and precomputes nullability
// and FIRST sets by fixpoint iteration, so CouldStartWith is a constant
// time lookup during a run.
package grammar
