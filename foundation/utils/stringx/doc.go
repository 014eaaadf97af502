// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              chomsky platform, offering Unicode-safe string manipulation
//              and commonly needed utilities that extend Go's standard library.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with core string utilities

/*
Package stringx provides extended string operations for the chomsky platform.

The package extends Go's standard strings package with frequently needed
operations: emptiness and blankness checks, Unicode-safe truncation and
padding, case conversions, validation helpers, string interning for
frequently repeated symbol names, and secure random string generation.

# Emptiness and Blankness

	stringx.IsEmpty("")        // true
	stringx.IsBlank("   ")     // true
	stringx.IsNotBlank(" x ")  // true

IsBlank is the canonical required-value check across chomsky modules;
configuration loading and grammar registration both rely on it.

# Unicode-Safe Manipulation

	stringx.Truncate("input preview for logging", 16, "...") // "input preview..."
	stringx.PadRight("expr", 12, ' ')                        // "expr        "
	stringx.Center("header", 20, '=')

Truncation and padding count runes rather than bytes, so multi-byte
characters are never split.

# Case Conversions

	stringx.ToSnakeCase("MaxStackDepth")  // "max_stack_depth"
	stringx.ToKebabCase("ArithExpr")      // "arith-expr"
	stringx.ToPascalCase("run_store")     // "RunStore"

Conversions recognize camelCase and PascalCase boundaries as well as
underscore, hyphen, and whitespace separators, and keep uppercase runs
together.

# Validation Helpers

	if err := stringx.ValidateNotBlank("grammar_name", name); err != nil {
		return err
	}
	if err := stringx.ValidateLength("grammar_name", name, 1, 64); err != nil {
		return err
	}

Validation helpers return structured errors with CodeValidationFailed.

# String Interning

	sym := stringx.Intern(tokenLexeme)

Interning canonicalizes frequently repeated strings such as grammar symbol
names and token lexemes, bounding memory use during long parse sessions.

# Secure Random Strings

	token, err := stringx.RandomURLSafe(32)

Random generation uses crypto/rand and is suitable for session tokens.
*/
package stringx
