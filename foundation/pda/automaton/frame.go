// File: frame.go
// Title: Derivation Stack Frames and Diagnostic State
// Description: Defines the composite frame record tracked per in-flight
//              non-terminal expansion, the diagnostic state snapshot
//              exposed to callers, and the trace events emitted while a
//              run steps.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial frame and event types

package automaton

import "fmt"

// Frame is one in-progress expansion of a non-terminal on the
// derivation stack. Production is the index of the selected alternative
// in the grammar's production list, or -1 while none has been chosen.
// Element is the position within that production.
//
// Keeping the three coordinates in one record makes their lockstep
// structural: a frame cannot have a production index without the
// matching element index.
type Frame struct {
	NonTerminal string `json:"non_terminal"`
	Production  int    `json:"production"`
	Element     int    `json:"element"`

	// marker is the expansion marker key registered when this frame was
	// pushed; push and pop create and destroy it together.
	marker string

	// fromOptional records that the frame fills an optional element
	// whose parent already advanced at dispatch time, so completion
	// must not advance it again.
	fromOptional bool
}

// String returns a compact rendering of the frame for diagnostics
func (f Frame) String() string {
	if f.Production < 0 {
		return fmt.Sprintf("%s(?)", f.NonTerminal)
	}
	return fmt.Sprintf("%s(p%d e%d)", f.NonTerminal, f.Production, f.Element)
}

// State is a diagnostic snapshot of an automaton. The stack is a copy;
// mutating it does not affect the automaton.
type State struct {
	Stack       []Frame `json:"stack"`
	Cursor      int     `json:"cursor"`
	TokenCount  int     `json:"token_count"`
	Steps       int     `json:"steps"`
	MaxDepth    int     `json:"max_depth"`
	MarkerCount int     `json:"marker_count"`
}

// EventKind names the kind of a trace event
type EventKind string

const (
	// EventPush marks a new frame pushed for a non-terminal expansion
	EventPush EventKind = "push"

	// EventSelect marks a predictive production selection on the top frame
	EventSelect EventKind = "select"

	// EventMatch marks a terminal element matching the lookahead token
	EventMatch EventKind = "match"

	// EventComplete marks a frame popped because its production finished
	EventComplete EventKind = "complete"

	// EventBacktrack marks a frame switched to its next alternative
	EventBacktrack EventKind = "backtrack"

	// EventAbandon marks a frame popped with no alternatives left
	EventAbandon EventKind = "abandon"

	// EventSkip marks an optional element skipped without a push
	EventSkip EventKind = "skip"
)

// Event is one trace record emitted while a run steps. Events stream to
// the Options.Trace hook and, at trace level, to the configured logger.
type Event struct {
	Kind        EventKind `json:"kind"`
	Step        int       `json:"step"`
	Cursor      int       `json:"cursor"`
	Depth       int       `json:"depth"`
	NonTerminal string    `json:"non_terminal"`
	Production  int       `json:"production"`
	Element     int       `json:"element"`
	Detail      string    `json:"detail,omitempty"`
}

// String returns a compact single-line rendering of the event
func (e Event) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("step %d: %s %s (prod %d, elem %d, cursor %d, depth %d) %s",
			e.Step, e.Kind, e.NonTerminal, e.Production, e.Element, e.Cursor, e.Depth, e.Detail)
	}
	return fmt.Sprintf("step %d: %s %s (prod %d, elem %d, cursor %d, depth %d)",
		e.Step, e.Kind, e.NonTerminal, e.Production, e.Element, e.Cursor, e.Depth)
}
