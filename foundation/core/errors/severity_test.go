// File: severity_test.go
// Title: Severity Tests
// Description: Tests for error severity levels and code-to-severity mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with severity tests

package errors

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.ShouldAlert(); got != tt.want {
				t.Errorf("Severity.ShouldAlert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Error("Severity levels should be ordered low < medium < high < critical")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeServiceUnavailable, SeverityCritical},
		{CodeDatabaseError, SeverityHigh},
		{CodeConnectionFailed, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeParseDepth, SeverityMedium},
		{CodeParseSteps, SeverityMedium},
		{CodeGrammarInvalid, SeverityMedium},
		{CodeTimeout, SeverityMedium},
		{CodeParseReject, SeverityLow},
		{CodeGrammarSyntax, SeverityLow},
		{CodeGrammarUnknown, SeverityLow},
		{CodeLexIllegal, SeverityLow},
		{CodeNotFound, SeverityLow},
		{CodeUnknown, SeverityMedium}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
