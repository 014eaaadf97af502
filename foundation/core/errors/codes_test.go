// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code classification, categories, and HTTP
//              status mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with comprehensive code tests

package errors

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeGrammarSyntax, "GRAMMAR_SYNTAX"},
		{CodeGrammarUnknown, "GRAMMAR_UNKNOWN"},
		{CodeParseReject, "PARSE_REJECT"},
		{CodeParseDepth, "PARSE_DEPTH"},
		{CodeParseSteps, "PARSE_STEPS"},
		{CodeLexIllegal, "LEX_ILLEGAL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeGrammarSyntax, CodeGrammarUnknown, CodeGrammarInvalid, CodeGrammarDuplicate,
		CodeParseReject, CodeParseDepth, CodeParseSteps,
		CodeLexIllegal,
		CodeDatabaseError, CodeConnectionFailed, CodeDuplicateEntry,
		CodeServiceUnavailable, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange,
	}

	for _, code := range valid {
		t.Run(code.String(), func(t *testing.T) {
			if !code.IsValid() {
				t.Errorf("Code %v should be valid", code)
			}
		})
	}

	if Code("MADE_UP").IsValid() {
		t.Error("Unknown code should not be valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeGrammarSyntax, "grammar"},
		{CodeGrammarUnknown, "grammar"},
		{CodeParseReject, "parse"},
		{CodeParseDepth, "parse"},
		{CodeParseSteps, "parse"},
		{CodeLexIllegal, "lex"},
		{CodeDatabaseError, "database"},
		{CodeServiceUnavailable, "service"},
		{CodeConfigError, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeUnknown, "generic"},
		{CodeTimeout, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsExhaustion(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeParseDepth, true},
		{CodeParseSteps, true},
		{CodeParseReject, false},
		{CodeGrammarSyntax, false},
		{CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsExhaustion(); got != tt.want {
				t.Errorf("Code.IsExhaustion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, 404},
		{CodeGrammarUnknown, 404},
		{CodeInvalidInput, 400},
		{CodeGrammarSyntax, 400},
		{CodeParseReject, 422},
		{CodeParseDepth, 422},
		{CodeParseSteps, 422},
		{CodeLexIllegal, 422},
		{CodeGrammarDuplicate, 409},
		{CodeTimeout, 408},
		{CodeServiceUnavailable, 503},
		{CodeDatabaseError, 503},
		{CodeInternal, 500},
		{CodeUnknown, 500},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("Code.HTTPStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}
