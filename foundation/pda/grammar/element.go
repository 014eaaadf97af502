// File: element.go
// Title: Production Element Variant
// Description: Defines the tagged element variant used inside grammar
//              productions. An element is a terminal literal, a
//              non-terminal reference, or an optional-wrapped
//              non-terminal, distinguished by an explicit kind tag so
//              dispatch sites can match exhaustively.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial element variant

package grammar

import (
	"strings"

	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// ElementKind tags the variant of a production element
type ElementKind int

const (
	// ElementTerminal is a literal lexeme that must match a token directly
	ElementTerminal ElementKind = iota

	// ElementNonTerminal is a reference to another rule
	ElementNonTerminal

	// ElementOptional is a non-terminal reference that may be absent
	ElementOptional
)

// String returns a string representation of the element kind
func (k ElementKind) String() string {
	switch k {
	case ElementTerminal:
		return "TERMINAL"
	case ElementNonTerminal:
		return "NON_TERMINAL"
	case ElementOptional:
		return "OPTIONAL"
	default:
		return "UNKNOWN"
	}
}

// Element is one position inside a production. Kind selects the variant;
// Value holds the terminal lexeme or the referenced non-terminal name.
type Element struct {
	Kind  ElementKind
	Value string
}

// Terminal creates a terminal element matching the given literal lexeme
func Terminal(lit string) Element {
	return Element{Kind: ElementTerminal, Value: stringx.Intern(lit)}
}

// NonTerminal creates a reference element to the named rule
func NonTerminal(name string) Element {
	return Element{Kind: ElementNonTerminal, Value: stringx.Intern(name)}
}

// Optional creates an optional reference to the named rule. Optional
// elements never block progress through their production: the automaton
// may expand them when the lookahead fits and skips them otherwise.
func Optional(name string) Element {
	return Element{Kind: ElementOptional, Value: stringx.Intern(name)}
}

// String returns the file notation of the element: quoted for terminals,
// bare for non-terminals, bracketed for optionals.
func (e Element) String() string {
	switch e.Kind {
	case ElementTerminal:
		return "'" + e.Value + "'"
	case ElementNonTerminal:
		return e.Value
	case ElementOptional:
		return "[" + e.Value + "]"
	default:
		return "?" + e.Value
	}
}

// Production is an ordered sequence of elements a non-terminal may
// expand into. An empty element list is the epsilon production.
type Production struct {
	Elements []Element
}

// Prod is a convenience constructor for a production
func Prod(elements ...Element) Production {
	return Production{Elements: elements}
}

// Epsilon returns the empty production
func Epsilon() Production {
	return Production{}
}

// IsEpsilon reports whether the production derives the empty sequence
// directly
func (p Production) IsEpsilon() bool {
	return len(p.Elements) == 0
}

// Len returns the number of elements in the production
func (p Production) Len() int {
	return len(p.Elements)
}

// String returns the file notation of the production, or the epsilon
// symbol for an empty one
func (p Production) String() string {
	if p.IsEpsilon() {
		return "ε"
	}

	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
