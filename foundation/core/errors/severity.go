// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization, monitoring, and alerting. Severity levels help
//              operators respond appropriately to different types of errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with severity levels

package errors

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: rejected input, an unknown grammar name in a lookup
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a malformed grammar file, an aborted recognition run
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: database connection issues, failed service initialization
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: data corruption, complete service outage
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical

	case CodeDatabaseError, CodeConnectionFailed, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeParseDepth, CodeParseSteps, CodeGrammarInvalid, CodeGrammarDuplicate,
		CodeDuplicateEntry, CodeTimeout:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeGrammarSyntax, CodeGrammarUnknown,
		CodeParseReject, CodeLexIllegal,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
