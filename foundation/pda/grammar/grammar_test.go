// File: grammar_test.go
// Title: Grammar Table Unit Tests
// Description: Unit tests for production elements and the grammar
//              table accessors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial test suite

package grammar

import (
	"strings"
	"testing"

	"github.com/msto63/chomsky/foundation/pda/lexer"
)

func TestElement_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		kind     ElementKind
		value    string
		notation string
	}{
		{
			name:     "Terminal",
			element:  Terminal("a"),
			kind:     ElementTerminal,
			value:    "a",
			notation: "'a'",
		},
		{
			name:     "NonTerminal",
			element:  NonTerminal("Expr"),
			kind:     ElementNonTerminal,
			value:    "Expr",
			notation: "Expr",
		},
		{
			name:     "Optional",
			element:  Optional("Sign"),
			kind:     ElementOptional,
			value:    "Sign",
			notation: "[Sign]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.element.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, tt.element.Kind)
			}
			if tt.element.Value != tt.value {
				t.Errorf("Expected value %q, got %q", tt.value, tt.element.Value)
			}
			if got := tt.element.String(); got != tt.notation {
				t.Errorf("Expected notation %q, got %q", tt.notation, got)
			}
		})
	}
}

func TestElementKind_String(t *testing.T) {
	tests := []struct {
		kind     ElementKind
		expected string
	}{
		{ElementTerminal, "TERMINAL"},
		{ElementNonTerminal, "NON_TERMINAL"},
		{ElementOptional, "OPTIONAL"},
		{ElementKind(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestProduction(t *testing.T) {
	t.Run("Epsilon production", func(t *testing.T) {
		p := Epsilon()
		if !p.IsEpsilon() {
			t.Error("Expected epsilon production")
		}
		if p.Len() != 0 {
			t.Errorf("Expected length 0, got %d", p.Len())
		}
		if got := p.String(); got != "ε" {
			t.Errorf("Expected ε, got %q", got)
		}
	})

	t.Run("Element sequence", func(t *testing.T) {
		p := Prod(Terminal("a"), NonTerminal("S"), Terminal("b"))
		if p.IsEpsilon() {
			t.Error("Expected non-epsilon production")
		}
		if p.Len() != 3 {
			t.Errorf("Expected length 3, got %d", p.Len())
		}
		if got := p.String(); got != "'a' S 'b'" {
			t.Errorf("Expected \"'a' S 'b'\", got %q", got)
		}
	})

	t.Run("Optional in notation", func(t *testing.T) {
		p := Prod(Terminal("x"), Optional("T"), Terminal("y"))
		if got := p.String(); got != "'x' [T] 'y'" {
			t.Errorf("Expected \"'x' [T] 'y'\", got %q", got)
		}
	})
}

func balancedGrammar(t *testing.T) *Grammar {
	t.Helper()

	g, err := NewBuilder("balanced").
		Rule("S",
			Prod(Terminal("a"), NonTerminal("S"), Terminal("b")),
			Epsilon(),
		).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestGrammar_Accessors(t *testing.T) {
	g := balancedGrammar(t)

	if g.Name() != "balanced" {
		t.Errorf("Expected name balanced, got %q", g.Name())
	}

	if g.Goal() != "S" {
		t.Errorf("Expected goal S, got %q", g.Goal())
	}

	if !g.Has("S") {
		t.Error("Expected Has(S) to be true")
	}
	if g.Has("T") {
		t.Error("Expected Has(T) to be false")
	}

	nts := g.NonTerminals()
	if len(nts) != 1 || nts[0] != "S" {
		t.Errorf("Expected non-terminals [S], got %v", nts)
	}

	if g.ProductionCount() != 2 {
		t.Errorf("Expected 2 productions, got %d", g.ProductionCount())
	}
}

func TestGrammar_ProductionsOf(t *testing.T) {
	g := balancedGrammar(t)

	prods := g.ProductionsOf("S")
	if len(prods) != 2 {
		t.Fatalf("Expected 2 productions, got %d", len(prods))
	}
	if prods[0].Len() != 3 {
		t.Errorf("Expected first production length 3, got %d", prods[0].Len())
	}
	if !prods[1].IsEpsilon() {
		t.Error("Expected second production to be epsilon")
	}

	if got := g.ProductionsOf("Undefined"); got != nil {
		t.Errorf("Expected nil for undefined non-terminal, got %v", got)
	}
}

func TestGrammar_CouldStartWith(t *testing.T) {
	g := balancedGrammar(t)

	tests := []struct {
		nonTerminal string
		lexeme      string
		expected    bool
	}{
		{"S", "a", true},
		{"S", "b", false},
		{"S", "c", false},
		{"Undefined", "a", false},
	}

	for _, tt := range tests {
		tok := lexer.Token{Type: lexer.TokenIdentifier, Lexeme: tt.lexeme}
		if got := g.CouldStartWith(tt.nonTerminal, tok); got != tt.expected {
			t.Errorf("CouldStartWith(%s, %q): expected %v, got %v", tt.nonTerminal, tt.lexeme, tt.expected, got)
		}
	}
}

func TestGrammar_String(t *testing.T) {
	g := balancedGrammar(t)

	s := g.String()
	if !strings.Contains(s, "grammar balanced (goal S)") {
		t.Errorf("Expected header in %q", s)
	}
	if !strings.Contains(s, "S -> 'a' S 'b' | ε") {
		t.Errorf("Expected rule notation in %q", s)
	}
}

func TestGrammar_KeywordsCopied(t *testing.T) {
	g, err := NewBuilder("kw").
		Keywords("if", "then").
		Rule("S", Prod(Terminal("if"))).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	kws := g.Keywords()
	if len(kws) != 2 || kws[0] != "if" || kws[1] != "then" {
		t.Fatalf("Expected keywords [if then], got %v", kws)
	}

	// Mutating the returned slice must not affect the grammar
	kws[0] = "changed"
	if g.Keywords()[0] != "if" {
		t.Error("Expected grammar keywords to be isolated from caller mutation")
	}
}
