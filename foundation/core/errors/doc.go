// Package errors provides the standard error handling interface for all
// chomsky foundation modules.
//
// Package: errors
// Title: chomsky Structured Error Handling
// Description: This package implements a structured Error type with codes,
//              severities, details, and stack traces, plus a fluent builder
//              and standard construction functions for consistent errors
//              across all chomsky modules. Error codes distinguish grammar
//              mismatches from resource exhaustion so callers can tell a
//              rejected input apart from an aborted recognition run.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with codes, severities and builder
//
// Usage:
//
//	import ckerrors "github.com/msto63/chomsky/foundation/core/errors"
//
//	// Create a structured error
//	err := ckerrors.New("grammar not registered").
//		WithCode(ckerrors.CodeGrammarUnknown).
//		WithOperation("registry.lookup").
//		WithDetail("grammar", name)
//
//	// Wrap a lower-level error
//	err = ckerrors.Wrap(dbErr, "loading run record").
//		WithCode(ckerrors.CodeDatabaseError)
//
//	// Build with the fluent builder
//	err = ckerrors.NewBuilder(ckerrors.ModuleAutomaton).
//		Operation("run").
//		Messagef("derivation stack exceeded %d frames", maxDepth).
//		WithCode(ckerrors.CodeParseDepth).
//		Detail("non_terminal", nt).
//		Build()
//
//	// Classify at call sites
//	if ckerrors.GetCode(err).IsExhaustion() {
//		// fatal abort, not a plain mismatch
//	}
package errors
