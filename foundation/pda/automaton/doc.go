// File: doc.go
// Title: Package Documentation for pda/automaton
// Description: Documents the predictive backtracking pushdown automaton,
//              its step algorithm, the expansion marker discipline, and
//              the failure model.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial package documentation

// Package automaton implements a predictive, backtracking pushdown
// automaton for grammar-driven recognition of token sequences.
//
// The automaton decides one question: is the given token sequence
// exactly and fully derivable from a goal non-terminal under a grammar
// table? It builds no syntax tree and performs no recovery; it answers
// with a boolean, or aborts with a fatal error when a resource guard
// trips.
//
// # State model
//
// A run owns four pieces of state:
//
//   - The token sequence: finite, random-accessible, installed by
//     Initialize and never extended during a run.
//   - The lookahead cursor: the index of the next unconsumed token. The
//     cursor is monotonically non-decreasing for the whole run; in
//     particular, backtracking never un-consumes a token.
//   - The derivation stack: one Frame per in-flight non-terminal
//     expansion, holding the non-terminal, the index of the selected
//     production (-1 while unselected), and the element position inside
//     it. The stack is capped by Options.MaxStackDepth.
//   - The expansion marker set: keys of the form non-terminal, cursor
//     position, and the identities of the stack frames below, recorded
//     at push time.
//
// # Step algorithm
//
// Run loops over a step function until the stack empties or a guard
// trips. Each step inspects the top frame:
//
//  1. If no production is selected yet and a lookahead token exists,
//     predictive selection scans the non-terminal's productions in
//     table order and fixes the first whose leading element could
//     generate the lookahead: lexeme equality for a terminal, the
//     table's first-token test for a non-terminal reference, and for
//     optional elements the test walks past them to the first
//     mandatory element.
//  2. If the production index is out of range, the frame has nothing
//     left to try here and backtracking takes over.
//  3. If the element position has reached the end of the production,
//     the expansion is complete: the frame is popped together with its
//     marker, and the enclosing frame advances past the element the
//     expansion satisfied.
//  4. Otherwise the current element dispatches: a terminal must equal
//     the lookahead's lexeme (consuming it) or the step fails; a
//     non-terminal reference pushes a fresh frame, unless its marker
//     key is already present, in which case the step fails; an
//     optional reference is pushed only when unmarked and the
//     lookahead fits its first set, and the parent's element index
//     advances at dispatch whether or not a push happens (a frame
//     pushed for an optional therefore does not advance the parent
//     again on completion).
//
// A failed step backtracks: walking down from the top, the first frame
// with an untried next alternative switches to it (element position
// reset), and frames without one are abandoned. If the walk empties the
// stack, the run is rejected.
//
// The run accepts exactly when the stack empties through completion
// with the cursor at the end of the input. Completion with leftover
// input, and exhaustion of all alternatives, are ordinary rejections.
//
// # Expansion markers
//
// Each push records a marker key built from the non-terminal, the
// cursor position, and the identities of every frame below it, and
// each pop, whether completion or abandonment, removes exactly that
// key. A marker therefore exists precisely while its expansion is in
// flight, and pushing onto an existing key is refused: the same
// non-terminal cannot be re-entered in an identical context without
// the cursor having moved. The marker set is cleared when Run returns,
// so no marker outlives a run.
//
// # Failure model
//
// Two failure kinds are strictly separated. A grammar mismatch, meaning
// the input is not derivable along the current path, is handled inside
// the machine by backtracking and surfaces only as a false result once
// every alternative is exhausted. Resource exhaustion, meaning the
// stack would exceed MaxStackDepth or the run would exceed MaxSteps, is
// fatal: it aborts immediately with an error and is never retried,
// because it indicates a non-terminating expansion pattern such as
// unguarded left recursion rather than a dead end.
//
// # Usage
//
//	a := automaton.New(table, automaton.DefaultOptions())
//	a.Initialize(tokens)
//	if err := a.PushGoal("Expr"); err != nil {
//	    return err
//	}
//	accepted, err := a.Run()
//
// An instance may be reused for independent parses by calling
// Initialize again; it must never be driven by more than one goroutine.
// Snapshot exposes the frames left after a rejection for diagnostics,
// and Options.Trace streams every push, selection, match, backtrack,
// and pop as structured events.
package automaton
