// File: doc.go
// Title: Package Documentation for pda/lexer
// Description: Documents the lexical analyzer that produces the token
//              sequences consumed by the parsing automaton.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial package documentation

// Package lexer implements lexical analysis for the chomsky parsing
// workbench. It turns a raw input string into a finite sequence of
// tokens, each carrying its lexeme, category, and source position.
//
// Tokens are deliberately small: identifiers, numbers, quoted strings,
// configurable keywords, and single-character symbol tokens. Grammar
// terminals match tokens by lexeme equality, so symbols always tokenize
// one character at a time and a grammar can name "(" or "+" directly.
//
// Basic usage:
//
//	tokens, err := lexer.TokenizeInput("( 12 + 34 ) * count")
//	if err != nil {
//	    return err
//	}
//
// Keyword classification is configured per grammar:
//
//	l := lexer.NewWithOptions(input, lexer.Options{
//	    Keywords: []string{"if", "then", "else"},
//	})
//	tokens, err := l.Tokenize()
//
// Tokenize fails with a positioned error on the first illegal character
// and never silently drops input. The returned slice excludes the
// terminating EOF marker.
package lexer
