// File: automaton.go
// Title: Predictive Backtracking Pushdown Automaton
// Description: Implements the parsing automaton that recognizes token
//              sequences against a grammar table. One frame per
//              in-flight non-terminal expansion, predictive production
//              selection on the lookahead token, forward-only
//              backtracking over alternatives, and expansion markers
//              that guard against re-entrant pushes in an identical
//              context. Completed expansions advance the enclosing
//              frame past the satisfied element.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial automaton implementation

package automaton

import (
	"strconv"
	"strings"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/foundation/pda/lexer"
	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// DefaultMaxStackDepth is the derivation stack cap applied when Options
// does not set one
const DefaultMaxStackDepth = 256

// Options configures an automaton instance
type Options struct {
	// MaxStackDepth caps the number of simultaneously active frames.
	// Exceeding it aborts the run fatally; it is the guard against
	// non-terminating expansion patterns such as left recursion.
	// Values <= 0 select DefaultMaxStackDepth.
	MaxStackDepth int

	// MaxSteps caps the number of step iterations per run; 0 means
	// unbounded. The automaton has no suspension points, so a step
	// bound is the only way to impose a budget on pathological
	// grammar/input pairs.
	MaxSteps int

	// Logger receives run summaries at debug level and per-step events
	// at trace level. Defaults to the package default logger.
	Logger *cklog.Logger

	// Trace, when set, receives every step event. Used by trace
	// streaming and the interactive inspector.
	Trace func(Event)
}

// DefaultOptions returns the default automaton options
func DefaultOptions() Options {
	return Options{MaxStackDepth: DefaultMaxStackDepth}
}

// Automaton recognizes token sequences against a grammar table. It is
// strictly single-threaded: one run owns all state, and an instance may
// be reused sequentially by calling Initialize before each run but must
// never be driven concurrently.
type Automaton struct {
	table  grammar.Table
	opts   Options
	logger *cklog.Logger

	tokens      []lexer.Token
	cursor      int
	stack       []Frame
	markers     map[string]struct{}
	steps       int
	maxDepth    int
	initialized bool
}

// New creates an automaton for the given grammar table
func New(table grammar.Table, opts Options) *Automaton {
	if opts.MaxStackDepth <= 0 {
		opts.MaxStackDepth = DefaultMaxStackDepth
	}
	if opts.MaxSteps < 0 {
		opts.MaxSteps = 0
	}

	logger := opts.Logger
	if logger == nil {
		logger = cklog.GetDefault()
	}

	return &Automaton{
		table:   table,
		opts:    opts,
		logger:  logger.WithName("automaton"),
		markers: make(map[string]struct{}),
	}
}

// Initialize installs the token sequence and resets cursor, stack,
// markers, and counters. It must be called before PushGoal and before
// each run; the token slice must not be mutated while the run is in
// progress.
func (a *Automaton) Initialize(tokens []lexer.Token) {
	a.tokens = tokens
	a.cursor = 0
	a.stack = a.stack[:0]
	a.markers = make(map[string]struct{})
	a.steps = 0
	a.maxDepth = 0
	a.initialized = true
}

// PushGoal pushes the initial frame for the derivation goal. The push
// is a silent no-op when an identical expansion marker already exists;
// the only error is the stack depth guard.
func (a *Automaton) PushGoal(nonTerminal string) error {
	if !a.initialized {
		return ckerrors.NewBuilder(ckerrors.ModuleAutomaton).
			Operation("PushGoal").
			Message("Initialize must be called before pushing a goal").
			WithCode(ckerrors.CodeInvalidInput).
			Build()
	}
	if stringx.IsBlank(nonTerminal) {
		return ckerrors.ValidationFailed(ckerrors.ModuleAutomaton, "nonTerminal", nonTerminal, "must not be blank")
	}

	key := a.markerKey(nonTerminal)
	if _, exists := a.markers[key]; exists {
		return nil
	}
	return a.push(nonTerminal, key, false)
}

// Run drives the automaton to completion. It returns true exactly when
// the stack empties through production completion with the cursor at
// the end of the token sequence. A false result with a nil error is a
// grammar mismatch: backtracking exhausted every alternative, or the
// derivation completed without consuming all input. A non-nil error is
// fatal resource exhaustion (stack depth or step limit) and is never
// resolved by backtracking.
//
// The expansion marker set never outlives a run; a new Initialize is
// required before the instance can run again.
func (a *Automaton) Run() (bool, error) {
	if !a.initialized {
		return false, ckerrors.NewBuilder(ckerrors.ModuleAutomaton).
			Operation("Run").
			Message("Initialize must be called before each run").
			WithCode(ckerrors.CodeInvalidInput).
			Build()
	}

	defer func() {
		a.markers = make(map[string]struct{})
		a.initialized = false
	}()

	for len(a.stack) > 0 {
		if a.opts.MaxSteps > 0 && a.steps >= a.opts.MaxSteps {
			return false, ckerrors.NewBuilder(ckerrors.ModuleAutomaton).
				Operation("Run").
				Messagef("step limit of %d exceeded", a.opts.MaxSteps).
				WithCode(ckerrors.CodeParseSteps).
				WithSeverity(ckerrors.SeverityHigh).
				Detail("cursor", a.cursor).
				Detail("depth", len(a.stack)).
				Build()
		}

		a.steps++

		alive, err := a.step()
		if err != nil {
			return false, err
		}
		if !alive {
			a.logger.Debug("run rejected: alternatives exhausted", cklog.Fields{
				"cursor": a.cursor,
				"tokens": len(a.tokens),
				"steps":  a.steps,
			})
			return false, nil
		}
	}

	accepted := a.cursor == len(a.tokens)
	a.logger.Debug("run finished", cklog.Fields{
		"accepted":  accepted,
		"cursor":    a.cursor,
		"tokens":    len(a.tokens),
		"steps":     a.steps,
		"max_depth": a.maxDepth,
	})
	return accepted, nil
}

// Current returns the non-terminal of the top frame, or false when the
// stack is empty. Read-only introspection for diagnostics.
func (a *Automaton) Current() (string, bool) {
	if len(a.stack) == 0 {
		return "", false
	}
	return a.stack[len(a.stack)-1].NonTerminal, true
}

// Snapshot returns a diagnostic copy of the automaton state. After a
// fatal abort the stack shows the frames that were in flight; after an
// ordinary rejection it is empty, since rejection is reached by
// popping every frame.
func (a *Automaton) Snapshot() State {
	stack := make([]Frame, len(a.stack))
	copy(stack, a.stack)

	return State{
		Stack:       stack,
		Cursor:      a.cursor,
		TokenCount:  len(a.tokens),
		Steps:       a.steps,
		MaxDepth:    a.maxDepth,
		MarkerCount: len(a.markers),
	}
}

// step performs one automaton step on the top frame. It reports false
// when backtracking emptied the stack, which rejects the run. The only
// error is fatal depth exhaustion.
func (a *Automaton) step() (bool, error) {
	top := &a.stack[len(a.stack)-1]

	// Predictive selection: pick the first production that could
	// generate the lookahead. When nothing fits, the index stays
	// unselected and backtracking takes over below.
	if top.Production < 0 && a.cursor < len(a.tokens) {
		if idx, ok := a.selectProduction(top.NonTerminal); ok {
			top.Production = idx
			a.emit(EventSelect, top.NonTerminal, top.Production, top.Element, "")
		}
	}

	prods := a.table.ProductionsOf(top.NonTerminal)
	if top.Production < 0 || top.Production >= len(prods) {
		return a.backtrack(), nil
	}

	prod := prods[top.Production]

	// Production complete: pop the frame and advance the parent past
	// the element this expansion satisfied.
	if top.Element >= prod.Len() {
		a.popComplete()
		return true, nil
	}

	elem := prod.Elements[top.Element]
	switch elem.Kind {
	case grammar.ElementTerminal:
		if a.cursor < len(a.tokens) && a.tokens[a.cursor].Lexeme == elem.Value {
			matched := top.Element
			a.cursor++
			top.Element++
			a.emit(EventMatch, top.NonTerminal, top.Production, matched, elem.Value)
			return true, nil
		}
		return a.backtrack(), nil

	case grammar.ElementNonTerminal:
		key := a.markerKey(elem.Value)
		if _, seen := a.markers[key]; seen {
			// An expansion with this exact context is already in
			// flight; pushing again could not make progress
			return a.backtrack(), nil
		}
		if err := a.push(elem.Value, key, false); err != nil {
			return false, err
		}
		return true, nil

	case grammar.ElementOptional:
		key := a.markerKey(elem.Value)
		_, seen := a.markers[key]
		fits := a.cursor < len(a.tokens) && a.table.CouldStartWith(elem.Value, a.tokens[a.cursor])

		// Optionals never block progress: the element index advances
		// at dispatch whether or not the expansion is pushed, and a
		// pushed expansion must not advance it again on completion.
		skipped := top.Element
		top.Element++

		if !seen && fits {
			// push may grow the stack's backing array; top is not
			// touched after this point
			if err := a.push(elem.Value, key, true); err != nil {
				return false, err
			}
		} else {
			a.emit(EventSkip, top.NonTerminal, top.Production, skipped, elem.Value)
		}
		return true, nil

	default:
		// Unreachable with builder-validated grammars
		return a.backtrack(), nil
	}
}

// selectProduction scans the non-terminal's productions in table order
// and returns the index of the first that could generate the lookahead
// token. Epsilon productions have no leading element to test and are
// reachable only through backtracking.
func (a *Automaton) selectProduction(nonTerminal string) (int, bool) {
	tok := a.tokens[a.cursor]
	for i, prod := range a.table.ProductionsOf(nonTerminal) {
		if a.productionAccepts(prod, tok) {
			return i, true
		}
	}
	return -1, false
}

// productionAccepts tests whether the production's leading elements
// could generate the token. Optional elements may be skipped, so the
// test walks past them to the first mandatory element.
func (a *Automaton) productionAccepts(prod grammar.Production, tok lexer.Token) bool {
	for _, elem := range prod.Elements {
		switch elem.Kind {
		case grammar.ElementTerminal:
			return elem.Value == tok.Lexeme
		case grammar.ElementNonTerminal:
			return a.table.CouldStartWith(elem.Value, tok)
		case grammar.ElementOptional:
			if a.table.CouldStartWith(elem.Value, tok) {
				return true
			}
		}
	}
	return false
}

// push creates a frame for the non-terminal and registers its expansion
// marker. Exceeding the depth limit is fatal: it indicates a
// non-terminating expansion pattern, not an ordinary dead end, so it
// must not be retried by backtracking.
func (a *Automaton) push(nonTerminal, key string, fromOptional bool) error {
	if len(a.stack) >= a.opts.MaxStackDepth {
		return ckerrors.NewBuilder(ckerrors.ModuleAutomaton).
			Operation("push").
			Messagef("derivation stack would exceed the depth limit of %d expanding %q", a.opts.MaxStackDepth, nonTerminal).
			WithCode(ckerrors.CodeParseDepth).
			WithSeverity(ckerrors.SeverityHigh).
			Detail("depth", len(a.stack)).
			Detail("cursor", a.cursor).
			Detail("non_terminal", nonTerminal).
			Build()
	}

	a.stack = append(a.stack, Frame{NonTerminal: nonTerminal, Production: -1, marker: key, fromOptional: fromOptional})
	a.markers[key] = struct{}{}
	if len(a.stack) > a.maxDepth {
		a.maxDepth = len(a.stack)
	}

	a.emit(EventPush, nonTerminal, -1, 0, "")
	return nil
}

// popComplete removes the finished top frame together with its marker
// and advances the enclosing frame past the element the expansion
// satisfied. Frames pushed for optional elements already advanced
// their parent at dispatch.
func (a *Automaton) popComplete() {
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	delete(a.markers, top.marker)

	if !top.fromOptional && len(a.stack) > 0 {
		a.stack[len(a.stack)-1].Element++
	}

	a.emit(EventComplete, top.NonTerminal, top.Production, top.Element, "")
}

// backtrack walks down from the top of the stack looking for a frame
// with an untried next alternative. Frames without one are abandoned:
// popped with their marker removed and without advancing the enclosing
// frame. Reports false when the walk empties the stack, which rejects
// the run.
func (a *Automaton) backtrack() bool {
	for len(a.stack) > 0 {
		top := &a.stack[len(a.stack)-1]
		next := top.Production + 1
		if next < len(a.table.ProductionsOf(top.NonTerminal)) {
			top.Production = next
			top.Element = 0
			a.emit(EventBacktrack, top.NonTerminal, top.Production, 0, "")
			return true
		}

		delete(a.markers, top.marker)
		frame := *top
		a.stack = a.stack[:len(a.stack)-1]
		a.emit(EventAbandon, frame.NonTerminal, frame.Production, frame.Element, "")
	}
	return false
}

// markerKey builds the expansion marker key for pushing the given
// non-terminal now: the non-terminal itself, the cursor position, and
// the identities of every frame currently below it on the stack.
func (a *Automaton) markerKey(nonTerminal string) string {
	var sb strings.Builder
	sb.Grow(len(nonTerminal) + 8 + len(a.stack)*4)

	sb.WriteString(nonTerminal)
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(a.cursor))
	sb.WriteByte('|')
	for i := range a.stack {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.stack[i].NonTerminal)
	}

	return sb.String()
}

// emit delivers a trace event to the trace hook and the trace-level log
func (a *Automaton) emit(kind EventKind, nonTerminal string, production, element int, detail string) {
	traceLog := a.logger.IsLevelEnabled(cklog.LevelTrace)
	if a.opts.Trace == nil && !traceLog {
		return
	}

	ev := Event{
		Kind:        kind,
		Step:        a.steps,
		Cursor:      a.cursor,
		Depth:       len(a.stack),
		NonTerminal: nonTerminal,
		Production:  production,
		Element:     element,
		Detail:      detail,
	}

	if a.opts.Trace != nil {
		a.opts.Trace(ev)
	}
	if traceLog {
		a.logger.Trace(ev.String())
	}
}
