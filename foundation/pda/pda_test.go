// File: pda_test.go
// Title: Recognition Engine Unit Tests
// Description: Tests the high-level recognition API end to end, from
//              grammar loading through tokenization to run results,
//              trace streaming, and limit handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial recognition engine test suite

package pda

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/foundation/pda/lexer"
)

func balancedGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.NewBuilder("balanced").
		Rule("S",
			grammar.Prod(grammar.Terminal("a"), grammar.NonTerminal("S"), grammar.Terminal("b")),
			grammar.Epsilon(),
		).
		Build()
	if err != nil {
		t.Fatalf("build grammar: %v", err)
	}
	return g
}

func pairGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.NewBuilder("pair").
		Rule("S", grammar.Prod(grammar.Terminal("a"), grammar.Terminal("b"))).
		Build()
	if err != nil {
		t.Fatalf("build grammar: %v", err)
	}
	return g
}

func newBalancedEngine(t *testing.T) *Engine {
	t.Helper()
	engine := NewEngine()
	if err := engine.Register(balancedGrammar(t)); err != nil {
		t.Fatalf("register grammar: %v", err)
	}
	return engine
}

func TestNewEngine_Defaults(t *testing.T) {
	engine := NewEngine()

	if engine.registry == nil {
		t.Fatal("NewEngine() registry is nil")
	}
	if engine.options.MaxInputLength != DefaultMaxInputLength {
		t.Errorf("MaxInputLength = %d, want %d", engine.options.MaxInputLength, DefaultMaxInputLength)
	}
	if engine.options.MaxStackDepth != 0 {
		t.Errorf("MaxStackDepth = %d, want 0", engine.options.MaxStackDepth)
	}
}

func TestEngine_Recognize(t *testing.T) {
	engine := newBalancedEngine(t)

	tests := []struct {
		name     string
		input    string
		accepted bool
	}{
		{name: "empty input", input: "", accepted: true},
		{name: "single pair", input: "a b", accepted: true},
		{name: "nested pairs", input: "a a b b", accepted: true},
		{name: "unbalanced", input: "a b b", accepted: false},
		{name: "wrong start", input: "b", accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Recognize("balanced", tt.input)
			if err != nil {
				t.Fatalf("Recognize() error = %v", err)
			}
			if result.Accepted != tt.accepted {
				t.Errorf("Accepted = %v, want %v", result.Accepted, tt.accepted)
			}
		})
	}
}

func TestEngine_RecognizeResultFields(t *testing.T) {
	engine := newBalancedEngine(t)

	t.Run("accepted run", func(t *testing.T) {
		result, err := engine.Recognize("balanced", "a a b b")
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if !result.Accepted {
			t.Fatal("Accepted = false, want true")
		}
		if result.Grammar != "balanced" {
			t.Errorf("Grammar = %q, want %q", result.Grammar, "balanced")
		}
		if result.Goal != "S" {
			t.Errorf("Goal = %q, want %q", result.Goal, "S")
		}
		if result.Cursor != 4 {
			t.Errorf("Cursor = %d, want 4", result.Cursor)
		}
		if result.TokenCount != 4 {
			t.Errorf("TokenCount = %d, want 4", result.TokenCount)
		}
		if result.Steps != 11 {
			t.Errorf("Steps = %d, want 11", result.Steps)
		}
		if result.MaxDepth != 3 {
			t.Errorf("MaxDepth = %d, want 3", result.MaxDepth)
		}
		if result.Duration <= 0 {
			t.Errorf("Duration = %v, want > 0", result.Duration)
		}
		if result.FailReason != "" {
			t.Errorf("FailReason = %q, want empty", result.FailReason)
		}
	})

	t.Run("rejected mid-input", func(t *testing.T) {
		result, err := engine.Recognize("balanced", "a b b")
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if result.Accepted {
			t.Fatal("Accepted = true, want false")
		}
		if result.Cursor != 2 {
			t.Errorf("Cursor = %d, want 2", result.Cursor)
		}
		if result.TokenCount != 3 {
			t.Errorf("TokenCount = %d, want 3", result.TokenCount)
		}
		if result.FailReason != "stopped at token 2 of 3" {
			t.Errorf("FailReason = %q, want %q", result.FailReason, "stopped at token 2 of 3")
		}
	})

	t.Run("rejected at end of input", func(t *testing.T) {
		if err := engine.Register(pairGrammar(t)); err != nil {
			t.Fatalf("register grammar: %v", err)
		}
		result, err := engine.Recognize("pair", "a")
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if result.Accepted {
			t.Fatal("Accepted = true, want false")
		}
		if result.Cursor != 1 || result.TokenCount != 1 {
			t.Errorf("Cursor/TokenCount = %d/%d, want 1/1", result.Cursor, result.TokenCount)
		}
		if result.FailReason != "alternatives exhausted at end of input" {
			t.Errorf("FailReason = %q, want %q", result.FailReason, "alternatives exhausted at end of input")
		}
	})
}

func TestEngine_RecognizeErrors(t *testing.T) {
	t.Run("blank grammar name", func(t *testing.T) {
		engine := newBalancedEngine(t)
		_, err := engine.Recognize("   ", "a b")
		if !ckerrors.HasCode(err, ckerrors.CodeValidationFailed) {
			t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeValidationFailed)
		}
	})

	t.Run("unknown grammar", func(t *testing.T) {
		engine := newBalancedEngine(t)
		_, err := engine.Recognize("missing", "a b")
		if !ckerrors.HasCode(err, ckerrors.CodeNotFound) {
			t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeNotFound)
		}
	})

	t.Run("input too long", func(t *testing.T) {
		engine := NewEngine(Options{MaxInputLength: 4})
		if err := engine.Register(balancedGrammar(t)); err != nil {
			t.Fatalf("register grammar: %v", err)
		}
		_, err := engine.Recognize("balanced", "a a b b")
		if !ckerrors.HasCode(err, ckerrors.CodeInvalidInput) {
			t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeInvalidInput)
		}
	})

	t.Run("illegal input character", func(t *testing.T) {
		engine := newBalancedEngine(t)
		_, err := engine.Recognize("balanced", "a 'oops")
		if !ckerrors.HasCode(err, ckerrors.CodeLexIllegal) {
			t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeLexIllegal)
		}
	})

	t.Run("depth limit hit", func(t *testing.T) {
		g, err := grammar.NewBuilder("loop").
			Rule("X", grammar.Prod(grammar.NonTerminal("X"), grammar.Terminal("a"))).
			Build()
		if err != nil {
			t.Fatalf("build grammar: %v", err)
		}
		engine := NewEngine(Options{MaxStackDepth: 8})
		if err := engine.Register(g); err != nil {
			t.Fatalf("register grammar: %v", err)
		}
		_, err = engine.Recognize("loop", "a")
		if !ckerrors.HasCode(err, ckerrors.CodeParseDepth) {
			t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeParseDepth)
		}
	})
}

func TestEngine_RecognizeTokens(t *testing.T) {
	engine := newBalancedEngine(t)

	tokens, err := lexer.TokenizeInput("a b")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	result, err := engine.RecognizeTokens("balanced", tokens)
	if err != nil {
		t.Fatalf("RecognizeTokens() error = %v", err)
	}
	if !result.Accepted {
		t.Error("Accepted = false, want true")
	}
	if result.TokenCount != 2 {
		t.Errorf("TokenCount = %d, want 2", result.TokenCount)
	}
	if result.Steps != 7 {
		t.Errorf("Steps = %d, want 7", result.Steps)
	}
}

func TestEngine_RecognizeWithTrace(t *testing.T) {
	engine := newBalancedEngine(t)

	var events []automaton.Event
	result, err := engine.RecognizeWithTrace("balanced", "a b", func(ev automaton.Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("RecognizeWithTrace() error = %v", err)
	}
	if !result.Accepted {
		t.Fatal("Accepted = false, want true")
	}

	wantKinds := []automaton.EventKind{
		automaton.EventPush,
		automaton.EventSelect,
		automaton.EventMatch,
		automaton.EventPush,
		automaton.EventBacktrack,
		automaton.EventBacktrack,
		automaton.EventComplete,
		automaton.EventMatch,
		automaton.EventComplete,
	}
	if len(events) != len(wantKinds) {
		t.Fatalf("event count = %d, want %d", len(events), len(wantKinds))
	}
	for i, want := range wantKinds {
		if events[i].Kind != want {
			t.Errorf("events[%d].Kind = %s, want %s", i, events[i].Kind, want)
		}
	}
}

func TestEngine_EngineWideTrace(t *testing.T) {
	var count int
	engine := NewEngine(Options{Trace: func(automaton.Event) { count++ }})
	if err := engine.Register(balancedGrammar(t)); err != nil {
		t.Fatalf("register grammar: %v", err)
	}

	if _, err := engine.Recognize("balanced", "a b"); err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if count != 9 {
		t.Errorf("trace event count = %d, want 9", count)
	}
}

func TestEngine_LoadGrammarFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balanced.toml")
	source := `name = "balanced"
goal = "S"

[[rules]]
name = "S"
productions = [
    ["'a'", "S", "'b'"],
    [],
]
`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write grammar file: %v", err)
	}

	engine := NewEngine()
	g, err := engine.LoadGrammarFile(path)
	if err != nil {
		t.Fatalf("LoadGrammarFile() error = %v", err)
	}
	if g.Name() != "balanced" {
		t.Errorf("Name() = %q, want %q", g.Name(), "balanced")
	}
	if !engine.Registry().Has("balanced") {
		t.Error("grammar not registered after LoadGrammarFile")
	}

	infos := engine.Grammars()
	if len(infos) != 1 || infos[0].Name != "balanced" {
		t.Errorf("Grammars() = %+v, want one entry named balanced", infos)
	}

	// Loading the same file again collides on the registered name.
	_, err = engine.LoadGrammarFile(path)
	if !ckerrors.HasCode(err, ckerrors.CodeGrammarDuplicate) {
		t.Errorf("error code = %s, want %s", ckerrors.GetCode(err), ckerrors.CodeGrammarDuplicate)
	}

	result, err := engine.Recognize("balanced", "a a b b")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if !result.Accepted {
		t.Error("Accepted = false, want true")
	}
}

func TestEngine_CheckGrammarFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.yaml")
	source := `name: pair
goal: S
rules:
  - name: S
    productions:
      - ["'a'", "'b'"]
`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write grammar file: %v", err)
	}

	engine := NewEngine()
	g, err := engine.CheckGrammarFile(path)
	if err != nil {
		t.Fatalf("CheckGrammarFile() error = %v", err)
	}
	if g.Name() != "pair" {
		t.Errorf("Name() = %q, want %q", g.Name(), "pair")
	}
	if engine.Registry().Has("pair") {
		t.Error("CheckGrammarFile must not register the grammar")
	}
}

func TestResult_String(t *testing.T) {
	accepted := &Result{
		Accepted:   true,
		Grammar:    "balanced",
		TokenCount: 4,
		Steps:      11,
		Duration:   2 * time.Millisecond,
	}
	want := "ACCEPTED: 4 token(s) (Grammar: balanced, Steps: 11, Duration: 2ms)"
	if got := accepted.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	rejected := &Result{
		Accepted:   false,
		Grammar:    "balanced",
		Steps:      7,
		Duration:   1500 * time.Microsecond,
		FailReason: "stopped at token 2 of 3",
	}
	want = "REJECTED: stopped at token 2 of 3 (Grammar: balanced, Steps: 7, Duration: 1.5ms)"
	if got := rejected.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkEngine_Recognize(b *testing.B) {
	engine := NewEngine()
	g, err := grammar.NewBuilder("balanced").
		Rule("S",
			grammar.Prod(grammar.Terminal("a"), grammar.NonTerminal("S"), grammar.Terminal("b")),
			grammar.Epsilon(),
		).
		Build()
	if err != nil {
		b.Fatalf("build grammar: %v", err)
	}
	if err := engine.Register(g); err != nil {
		b.Fatalf("register grammar: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Recognize("balanced", "a a a b b b"); err != nil {
			b.Fatalf("Recognize() error = %v", err)
		}
	}
}
