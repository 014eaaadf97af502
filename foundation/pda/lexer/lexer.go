// File: lexer.go
// Title: Lexical Analyzer for Grammar Input
// Description: Implements the lexical analysis phase that turns raw input
//              strings into the finite token sequences consumed by the
//              parsing automaton. Tracks byte positions, lines, and columns
//              for error reporting and supports configurable keyword sets.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial lexer implementation

package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // expr, count, field_name
	TokenNumber     // 123, 123.45
	TokenString     // "string literal" or 'string literal'

	// Keywords from the configured keyword set
	TokenKeyword

	// Single-character punctuation and operators
	TokenSymbol // ( ) + - * / , ; = < > ...
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenKeyword:
		return "KEYWORD"
	case TokenSymbol:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information.
// The automaton matches grammar terminals against Lexeme; Type and the
// position fields serve diagnostics and the grammar table's first-token
// test.
type Token struct {
	Type     TokenType // Token category
	Lexeme   string    // Exact matched text (unquoted for strings)
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Lexeme)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Lexeme)
	}
}

// Options configures lexer behavior
type Options struct {
	// Keywords are identifiers classified as TokenKeyword instead of
	// TokenIdentifier. Matching is exact (case-sensitive).
	Keywords []string
}

// Lexer performs lexical analysis of grammar input
type Lexer struct {
	input    string          // Input string
	position int             // Current position in input (points to current char)
	readPos  int             // Current reading position (after current char)
	ch       byte            // Current char under examination
	line     int             // Current line number (1-based)
	column   int             // Current column number (1-based)
	keywords map[string]bool // Configured keyword set
}

// New creates a new lexer for the given input with default options
func New(input string) *Lexer {
	return NewWithOptions(input, Options{})
}

// NewWithOptions creates a new lexer with a configured keyword set
func NewWithOptions(input string, opts Options) *Lexer {
	keywords := make(map[string]bool, len(opts.Keywords))
	for _, kw := range opts.Keywords {
		if stringx.IsNotBlank(kw) {
			keywords[stringx.Intern(kw)] = true
		}
	}

	l := &Lexer{
		input:    input,
		line:     1,
		column:   0,
		keywords: keywords,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch {
	case l.ch == 0:
		tok = Token{Type: TokenEOF, Lexeme: "", Position: pos, Line: line, Column: column}

	case l.ch == '"' || l.ch == '\'':
		content, ok := l.readString(l.ch)
		tok = Token{Type: TokenString, Lexeme: content, Position: pos, Line: line, Column: column}
		if !ok {
			tok.Type = TokenIllegal
		}

	case isLetter(l.ch):
		tok = Token{Position: pos, Line: line, Column: column}
		tok.Lexeme = stringx.Intern(l.readIdentifier())
		tok.Type = l.lookupIdent(tok.Lexeme)
		return tok // Early return to avoid readChar()

	case isDigit(l.ch):
		tok = Token{Type: TokenNumber, Position: pos, Line: line, Column: column}
		tok.Lexeme = l.readNumber()
		return tok // Early return to avoid readChar()

	case isSymbol(l.ch):
		tok = Token{Type: TokenSymbol, Lexeme: string(l.ch), Position: pos, Line: line, Column: column}

	default:
		tok = Token{Type: TokenIllegal, Lexeme: string(l.ch), Position: pos, Line: line, Column: column}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice. The returned
// slice excludes the terminating EOF marker; the automaton treats the end
// of the slice as end of input, and streaming callers can observe EOF
// through NextToken directly.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, ckerrors.NewBuilder(ckerrors.ModuleLexer).
				Operation("Tokenize").
				Messagef("illegal character %q at line %d, column %d", tok.Lexeme, tok.Line, tok.Column).
				WithCode(ckerrors.CodeLexIllegal).
				Detail("line", tok.Line).
				Detail("column", tok.Column).
				Detail("position", tok.Position).
				Build()
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal (integer or float)
func (l *Lexer) readNumber() string {
	start := l.position

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// Check for decimal point
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position]
}

// readString reads a quoted string literal and reports whether the
// closing quote was found. The returned content excludes the quotes.
func (l *Lexer) readString(quote byte) (string, bool) {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == quote {
			return l.input[start:l.position], true
		}
		if l.ch == 0 {
			// Unterminated string literal
			return l.input[start:l.position], false
		}
		// Handle escape sequences
		if l.ch == '\\' {
			l.readChar() // Skip escape character
		}
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// lookupIdent determines if an identifier is a configured keyword
func (l *Lexer) lookupIdent(ident string) TokenType {
	if l.keywords[ident] {
		return TokenKeyword
	}
	return TokenIdentifier
}

// Utility functions

// isLetter checks if the character starts or continues an identifier.
// Bytes above 127 continue multi-byte UTF-8 sequences and are treated as
// identifier characters.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch > 127
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isSymbol checks if the character is a recognized single-character
// punctuation or operator token. Identifiers own '_'; quotes introduce
// string literals.
func isSymbol(ch byte) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%', '^',
		'=', '<', '>', '!', '&', '|',
		',', ';', ':', '.', '?', '@', '#', '$', '~', '`', '\\':
		return true
	default:
		return false
	}
}

// IsValidIdentifier checks if a string is a valid identifier for grammar
// symbols: a letter or underscore followed by letters, digits, or
// underscores.
func IsValidIdentifier(s string) bool {
	if stringx.IsBlank(s) {
		return false
	}

	// Must start with letter or underscore
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) && r != '_' {
		return false
	}

	// Rest can be letters, digits, or underscores
	for _, r := range s[size:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

// TokenizeInput is a convenience function that tokenizes input with
// default options
func TokenizeInput(input string) ([]Token, error) {
	return New(input).Tokenize()
}
