// File: builder_test.go
// Title: Grammar Builder Unit Tests
// Description: Unit tests for grammar building and validation,
//              including the fixpoint computation of nullability and
//              FIRST sets over recursive, optional-bearing, and
//              epsilon-bearing rules.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial test suite

package grammar

import (
	"reflect"
	"testing"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
)

// arithmeticGrammar builds the classic layered expression grammar used
// across the builder tests
func arithmeticGrammar(t *testing.T) *Grammar {
	t.Helper()

	g, err := NewBuilder("arith").
		Goal("Expr").
		Rule("Expr", Prod(NonTerminal("Term"), NonTerminal("ExprTail"))).
		Rule("ExprTail",
			Prod(Terminal("+"), NonTerminal("Term"), NonTerminal("ExprTail")),
			Prod(Terminal("-"), NonTerminal("Term"), NonTerminal("ExprTail")),
			Epsilon(),
		).
		Rule("Term", Prod(NonTerminal("Factor"), NonTerminal("TermTail"))).
		Rule("TermTail",
			Prod(Terminal("*"), NonTerminal("Factor"), NonTerminal("TermTail")),
			Prod(Terminal("/"), NonTerminal("Factor"), NonTerminal("TermTail")),
			Epsilon(),
		).
		Rule("Factor",
			Prod(Terminal("("), NonTerminal("Expr"), Terminal(")")),
			Prod(Terminal("n")),
			Prod(Terminal("x")),
		).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Grammar, error)
		wantCode ckerrors.Code
	}{
		{
			name: "No rules",
			build: func() (*Grammar, error) {
				return NewBuilder("empty").Build()
			},
			wantCode: ckerrors.CodeGrammarInvalid,
		},
		{
			name: "Invalid rule name",
			build: func() (*Grammar, error) {
				return NewBuilder("bad").Rule("2bad", Epsilon()).Build()
			},
			wantCode: ckerrors.CodeGrammarInvalid,
		},
		{
			name: "Rule without productions",
			build: func() (*Grammar, error) {
				return NewBuilder("bare").Rule("S").Build()
			},
			wantCode: ckerrors.CodeGrammarInvalid,
		},
		{
			name: "Empty terminal literal",
			build: func() (*Grammar, error) {
				return NewBuilder("bad").Rule("S", Prod(Terminal(""))).Build()
			},
			wantCode: ckerrors.CodeGrammarInvalid,
		},
		{
			name: "Undefined non-terminal reference",
			build: func() (*Grammar, error) {
				return NewBuilder("bad").Rule("S", Prod(NonTerminal("Missing"))).Build()
			},
			wantCode: ckerrors.CodeGrammarUnknown,
		},
		{
			name: "Undefined optional reference",
			build: func() (*Grammar, error) {
				return NewBuilder("bad").Rule("S", Prod(Terminal("x"), Optional("Missing"))).Build()
			},
			wantCode: ckerrors.CodeGrammarUnknown,
		},
		{
			name: "Undefined goal",
			build: func() (*Grammar, error) {
				return NewBuilder("bad").Goal("Missing").Rule("S", Epsilon()).Build()
			},
			wantCode: ckerrors.CodeGrammarUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !ckerrors.HasCode(err, tt.wantCode) {
				t.Errorf("Expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestBuilder_GoalDefaultsToFirstRule(t *testing.T) {
	g, err := NewBuilder("defaulted").
		Rule("Start", Prod(Terminal("go"))).
		Rule("Other", Prod(Terminal("no"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.Goal() != "Start" {
		t.Errorf("Expected goal Start, got %q", g.Goal())
	}
}

func TestBuilder_RuleAppendsAlternatives(t *testing.T) {
	g, err := NewBuilder("split").
		Rule("S", Prod(Terminal("a"))).
		Rule("S", Prod(Terminal("b"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	prods := g.ProductionsOf("S")
	if len(prods) != 2 {
		t.Fatalf("Expected 2 productions, got %d", len(prods))
	}
	if prods[0].Elements[0].Value != "a" || prods[1].Elements[0].Value != "b" {
		t.Errorf("Expected alternatives in call order, got %v", prods)
	}
}

func TestBuilder_KeywordsDeduplicated(t *testing.T) {
	g, err := NewBuilder("kw").
		Keywords("if", "", "then").
		Keywords("if", "else", "   ").
		Rule("S", Epsilon()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{"if", "then", "else"}
	if !reflect.DeepEqual(g.Keywords(), expected) {
		t.Errorf("Expected keywords %v, got %v", expected, g.Keywords())
	}
}

func TestGrammar_Nullability(t *testing.T) {
	g := arithmeticGrammar(t)

	tests := []struct {
		nonTerminal string
		expected    bool
	}{
		{"ExprTail", true},
		{"TermTail", true},
		{"Expr", false},
		{"Term", false},
		{"Factor", false},
	}

	for _, tt := range tests {
		if got := g.IsNullable(tt.nonTerminal); got != tt.expected {
			t.Errorf("IsNullable(%s): expected %v, got %v", tt.nonTerminal, tt.expected, got)
		}
	}
}

func TestGrammar_NullabilityChains(t *testing.T) {
	g, err := NewBuilder("chain").
		Rule("A", Prod(NonTerminal("B"), NonTerminal("C"))).
		Rule("B", Prod(Terminal("b")), Epsilon()).
		Rule("C", Prod(Terminal("c")), Epsilon()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !g.IsNullable("A") {
		t.Error("Expected A to be nullable through B and C")
	}

	expected := []string{"b", "c"}
	if got := g.First("A"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected FIRST(A) = %v, got %v", expected, got)
	}
}

func TestGrammar_NullabilityThroughOptionals(t *testing.T) {
	g, err := NewBuilder("opt").
		Rule("U", Prod(Optional("T"))).
		Rule("V", Prod(Optional("T"), Terminal("w"))).
		Rule("T", Prod(Terminal("z"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !g.IsNullable("U") {
		t.Error("Expected U to be nullable: its only element is optional")
	}
	if g.IsNullable("V") {
		t.Error("Expected V to not be nullable: the trailing terminal always matches")
	}
}

func TestGrammar_FirstSets(t *testing.T) {
	g := arithmeticGrammar(t)

	tests := []struct {
		nonTerminal string
		expected    []string
	}{
		{"Factor", []string{"(", "n", "x"}},
		{"Term", []string{"(", "n", "x"}},
		{"Expr", []string{"(", "n", "x"}},
		{"ExprTail", []string{"+", "-"}},
		{"TermTail", []string{"*", "/"}},
	}

	for _, tt := range tests {
		if got := g.First(tt.nonTerminal); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("First(%s): expected %v, got %v", tt.nonTerminal, tt.expected, got)
		}
	}
}

func TestGrammar_FirstThroughNullable(t *testing.T) {
	// B is nullable, so FIRST(A) must include what can follow B
	g, err := NewBuilder("through").
		Rule("A", Prod(NonTerminal("B"), Terminal("c"))).
		Rule("B", Prod(Terminal("b")), Epsilon()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{"b", "c"}
	if got := g.First("A"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected FIRST(A) = %v, got %v", expected, got)
	}
}

func TestGrammar_FirstThroughOptional(t *testing.T) {
	// A skipped optional exposes the next element
	g, err := NewBuilder("optfirst").
		Rule("U", Prod(Optional("T"), Terminal("w"))).
		Rule("T", Prod(Terminal("z"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{"w", "z"}
	if got := g.First("U"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected FIRST(U) = %v, got %v", expected, got)
	}
}

func TestBuilder_LeftRecursionBuilds(t *testing.T) {
	// Left-recursive rules build fine; the automaton's depth guard
	// rejects them at run time
	g, err := NewBuilder("leftrec").
		Rule("X", Prod(NonTerminal("X"), Terminal("a"))).
		Build()
	if err != nil {
		t.Fatalf("Expected left-recursive grammar to build, got %v", err)
	}

	if g.IsNullable("X") {
		t.Error("Expected X to not be nullable")
	}
	if first := g.First("X"); first != nil {
		t.Errorf("Expected empty FIRST(X), got %v", first)
	}
}

func TestBuilder_GuardedRecursion(t *testing.T) {
	g, err := NewBuilder("rec").
		Rule("L", Prod(Terminal("b")), Prod(NonTerminal("L"), Terminal("a"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{"b"}
	if got := g.First("L"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected FIRST(L) = %v, got %v", expected, got)
	}
}

func BenchmarkBuilder_Build(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := NewBuilder("arith").
			Goal("Expr").
			Rule("Expr", Prod(NonTerminal("Term"), NonTerminal("ExprTail"))).
			Rule("ExprTail",
				Prod(Terminal("+"), NonTerminal("Term"), NonTerminal("ExprTail")),
				Epsilon(),
			).
			Rule("Term", Prod(NonTerminal("Factor"), NonTerminal("TermTail"))).
			Rule("TermTail",
				Prod(Terminal("*"), NonTerminal("Factor"), NonTerminal("TermTail")),
				Epsilon(),
			).
			Rule("Factor",
				Prod(Terminal("("), NonTerminal("Expr"), Terminal(")")),
				Prod(Terminal("n")),
			).
			Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}
