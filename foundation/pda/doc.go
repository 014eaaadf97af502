// File: doc.go
// Title: Recognition Engine Package Documentation
// Description: Documents the high-level recognition API that combines
//              the lexer, grammar registry, and pushdown automaton.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial package documentation

// Package pda provides the high-level entry point for running inputs
// against context-free grammars with a predictive, backtracking
// pushdown automaton.
//
// The package ties three lower layers together: the lexer tokenizes raw
// input (foundation/pda/lexer), the registry keeps built grammars
// addressable by name (foundation/pda/registry), and the automaton
// decides membership (foundation/pda/automaton). An Engine owns one
// registry and a set of run limits; each recognition run constructs a
// fresh automaton, so a single Engine may serve concurrent callers.
//
// Typical usage:
//
//	engine := pda.NewEngine(pda.Options{MaxSteps: 100000})
//
//	if _, err := engine.LoadGrammarFile("grammars/balanced.toml"); err != nil {
//	    return err
//	}
//
//	result, err := engine.Recognize("balanced", "a a b b")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result) // ACCEPTED: 4 token(s) (Grammar: balanced, ...)
//
// Recognition never treats rejection as an error: a run that exhausts
// all alternatives returns a Result with Accepted false and a
// FailReason describing where the automaton gave up. Errors are
// reserved for lookup failures, tokenization failures, and runs that
// hit the stack depth or step limits.
//
// Per-run step events can be observed either engine-wide through
// Options.Trace or for a single run through RecognizeWithTrace:
//
//	result, err := engine.RecognizeWithTrace("balanced", "a b", func(ev automaton.Event) {
//	    fmt.Println(ev)
//	})
package pda
