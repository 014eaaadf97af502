// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the chomsky platform. These codes enable
//              structured error handling, API response formatting, and the
//              distinction between grammar mismatches and resource exhaustion
//              during recognition runs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with core error codes

package errors

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the chomsky platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Grammar definition and registry
	CodeGrammarSyntax    Code = "GRAMMAR_SYNTAX"
	CodeGrammarUnknown   Code = "GRAMMAR_UNKNOWN"
	CodeGrammarInvalid   Code = "GRAMMAR_INVALID"
	CodeGrammarDuplicate Code = "GRAMMAR_DUPLICATE"

	// Recognition runs
	CodeParseReject Code = "PARSE_REJECT"
	CodeParseDepth  Code = "PARSE_DEPTH"
	CodeParseSteps  Code = "PARSE_STEPS"

	// Tokenization
	CodeLexIllegal Code = "LEX_ILLEGAL"

	// Database and storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"

	// Service and network
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeGrammarSyntax, CodeGrammarUnknown, CodeGrammarInvalid, CodeGrammarDuplicate,
		CodeParseReject, CodeParseDepth, CodeParseSteps,
		CodeLexIllegal,
		CodeDatabaseError, CodeConnectionFailed, CodeDuplicateEntry,
		CodeServiceUnavailable, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeGrammarSyntax, CodeGrammarUnknown, CodeGrammarInvalid, CodeGrammarDuplicate:
		return "grammar"
	case CodeParseReject, CodeParseDepth, CodeParseSteps:
		return "parse"
	case CodeLexIllegal:
		return "lex"
	case CodeDatabaseError, CodeConnectionFailed, CodeDuplicateEntry:
		return "database"
	case CodeServiceUnavailable, CodeServiceInitialization:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// IsExhaustion reports whether the code marks a resource exhaustion abort.
// Exhaustion aborts are fatal for the run and must not be confused with a
// plain recognition mismatch.
func (c Code) IsExhaustion() bool {
	return c == CodeParseDepth || c == CodeParseSteps
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound, CodeGrammarUnknown:
		return 404
	case CodeInvalidInput, CodeGrammarSyntax, CodeGrammarInvalid,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return 400
	case CodeParseReject, CodeParseDepth, CodeParseSteps, CodeLexIllegal:
		return 422
	case CodeGrammarDuplicate, CodeDuplicateEntry:
		return 409
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeDatabaseError, CodeConnectionFailed:
		return 503
	default:
		return 500
	}
}
