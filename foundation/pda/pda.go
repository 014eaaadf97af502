// File: pda.go
// Title: Recognition Engine and High-Level API
// Description: Provides the main recognition engine that ties lexer,
//              grammar registry, and pushdown automaton together into
//              one entry point for running inputs against grammars.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial recognition engine implementation

package pda

import (
	"fmt"
	"time"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/foundation/pda/lexer"
	"github.com/msto63/chomsky/foundation/pda/registry"
	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// DefaultMaxInputLength bounds the raw input size Recognize accepts.
const DefaultMaxInputLength = 64 * 1024

// Engine coordinates tokenization, grammar lookup, and automaton runs.
// It is safe for concurrent use; every recognition run builds its own
// automaton instance.
type Engine struct {
	registry *registry.Registry
	logger   *cklog.Logger
	options  Options
}

// Options configures the recognition engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *cklog.Logger

	// MaxStackDepth caps automaton stack growth per run; values <= 0
	// select the automaton default
	MaxStackDepth int

	// MaxSteps caps automaton steps per run; 0 means unbounded
	MaxSteps int

	// MaxInputLength limits raw input length in bytes (default: 65536)
	MaxInputLength int

	// Trace receives every automaton step event of every run when set
	Trace func(automaton.Event)
}

// Result represents the outcome of one recognition run
type Result struct {
	// Accepted reports whether the input belongs to the grammar's language
	Accepted bool `json:"accepted"`

	// Grammar is the name of the grammar the input was run against
	Grammar string `json:"grammar"`

	// Goal is the non-terminal the run started from
	Goal string `json:"goal"`

	// Cursor is the final input position in tokens
	Cursor int `json:"cursor"`

	// TokenCount is the total number of input tokens
	TokenCount int `json:"token_count"`

	// Steps is the number of automaton steps the run took
	Steps int `json:"steps"`

	// MaxDepth is the deepest stack the run reached
	MaxDepth int `json:"max_depth"`

	// Duration covers the complete run including tokenization
	Duration time.Duration `json:"duration"`

	// FailReason describes where a rejected run gave up
	FailReason string `json:"fail_reason,omitempty"`
}

// String returns a string representation of the result
func (r *Result) String() string {
	if !r.Accepted {
		return fmt.Sprintf("REJECTED: %s (Grammar: %s, Steps: %d, Duration: %v)",
			r.FailReason, r.Grammar, r.Steps, r.Duration)
	}
	return fmt.Sprintf("ACCEPTED: %d token(s) (Grammar: %s, Steps: %d, Duration: %v)",
		r.TokenCount, r.Grammar, r.Steps, r.Duration)
}

// NewEngine creates a new recognition engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:         cklog.GetDefault(),
		MaxInputLength: DefaultMaxInputLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxStackDepth > 0 {
			options.MaxStackDepth = provided.MaxStackDepth
		}
		if provided.MaxSteps > 0 {
			options.MaxSteps = provided.MaxSteps
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		options.Trace = provided.Trace
	}

	logger := options.Logger.WithField("component", "pda-engine")

	engine := &Engine{
		registry: registry.New(registry.Options{Logger: logger}),
		logger:   logger,
		options:  options,
	}

	logger.Info("recognition engine initialized", cklog.Fields{
		"max_stack_depth":  options.MaxStackDepth,
		"max_steps":        options.MaxSteps,
		"max_input_length": options.MaxInputLength,
	})

	return engine
}

// LoadGrammarFile loads a grammar definition from a TOML or YAML file
// and registers it under its declared name
func (e *Engine) LoadGrammarFile(path string) (*grammar.Grammar, error) {
	g, err := grammar.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := e.registry.Register(g); err != nil {
		return nil, err
	}
	return g, nil
}

// CheckGrammarFile loads and validates a grammar definition without
// registering it
func (e *Engine) CheckGrammarFile(path string) (*grammar.Grammar, error) {
	return grammar.LoadFile(path)
}

// Register adds a built grammar to the engine's registry
func (e *Engine) Register(g *grammar.Grammar) error {
	return e.registry.Register(g)
}

// Registry returns the grammar registry for direct management
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Grammars returns summaries of all registered grammars sorted by name
func (e *Engine) Grammars() []registry.Info {
	return e.registry.List()
}

// Recognize tokenizes the input with the grammar's keywords and runs
// the token sequence against the named grammar
func (e *Engine) Recognize(grammarName, input string) (*Result, error) {
	return e.recognize(grammarName, input, e.options.Trace)
}

// RecognizeWithTrace behaves like Recognize but streams the step events
// of this run to the given callback instead of the engine-wide one
func (e *Engine) RecognizeWithTrace(grammarName, input string, trace func(automaton.Event)) (*Result, error) {
	return e.recognize(grammarName, input, trace)
}

// RecognizeTokens runs an already tokenized input against the named
// grammar, bypassing the lexer
func (e *Engine) RecognizeTokens(grammarName string, tokens []lexer.Token) (*Result, error) {
	timer := e.logger.StartTimer("recognition")

	g, err := e.lookup(grammarName)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	return e.run(g, tokens, e.options.Trace, timer)
}

func (e *Engine) recognize(grammarName, input string, trace func(automaton.Event)) (*Result, error) {
	timer := e.logger.StartTimer("recognition")

	if len(input) > e.options.MaxInputLength {
		err := ckerrors.InvalidInput(ckerrors.ModulePDA, "Recognize", len(input),
			fmt.Sprintf("at most %d bytes of input", e.options.MaxInputLength))
		timer.StopWithError(err)
		return nil, err
	}

	g, err := e.lookup(grammarName)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	e.logger.Debug("recognizing input", cklog.Fields{
		"grammar": g.Name(),
		"bytes":   len(input),
		"preview": stringx.Truncate(input, 64, "..."),
	})

	tokens, err := lexer.NewWithOptions(input, lexer.Options{Keywords: g.Keywords()}).Tokenize()
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("tokenization failed", cklog.Fields{
			"grammar": g.Name(),
			"error":   err.Error(),
		})
		return nil, err
	}
	timer.Checkpoint("tokenized", cklog.Fields{"tokens": len(tokens)})

	return e.run(g, tokens, trace, timer)
}

func (e *Engine) lookup(grammarName string) (*grammar.Grammar, error) {
	if stringx.IsBlank(grammarName) {
		return nil, ckerrors.ValidationFailed(ckerrors.ModulePDA, "grammar", grammarName,
			"grammar name must not be blank")
	}
	return e.registry.Get(grammarName)
}

func (e *Engine) run(g *grammar.Grammar, tokens []lexer.Token, trace func(automaton.Event), timer *cklog.Timer) (*Result, error) {
	auto := automaton.New(g, automaton.Options{
		MaxStackDepth: e.options.MaxStackDepth,
		MaxSteps:      e.options.MaxSteps,
		Logger:        e.logger,
		Trace:         trace,
	})
	auto.Initialize(tokens)
	if err := auto.PushGoal(g.Goal()); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	accepted, err := auto.Run()
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("recognition aborted", cklog.Fields{
			"grammar": g.Name(),
			"error":   err.Error(),
		})
		return nil, err
	}
	timer.Checkpoint("parsed")

	state := auto.Snapshot()
	result := &Result{
		Accepted:   accepted,
		Grammar:    g.Name(),
		Goal:       g.Goal(),
		Cursor:     state.Cursor,
		TokenCount: state.TokenCount,
		Steps:      state.Steps,
		MaxDepth:   state.MaxDepth,
	}
	if !accepted {
		if state.Cursor < state.TokenCount {
			result.FailReason = fmt.Sprintf("stopped at token %d of %d", state.Cursor, state.TokenCount)
		} else {
			result.FailReason = "alternatives exhausted at end of input"
		}
	}
	result.Duration = timer.StopWithResult(accepted,
		fmt.Sprintf("%d/%d tokens", state.Cursor, state.TokenCount))

	e.logger.Info("recognition finished", cklog.Fields{
		"grammar":   g.Name(),
		"accepted":  accepted,
		"tokens":    state.TokenCount,
		"steps":     state.Steps,
		"max_depth": state.MaxDepth,
		"duration":  result.Duration.String(),
	})

	return result, nil
}
