// File: builder.go
// Title: Shared Error Construction Utilities
// Description: Provides a fluent error builder and standard construction
//              functions used across the chomsky foundation modules for
//              consistent error patterns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"
)

// Module identifiers for error categorization
const (
	ModuleLexer     = "lexer"
	ModuleGrammar   = "grammar"
	ModuleAutomaton = "automaton"
	ModuleRegistry  = "registry"
	ModulePDA       = "pda"
	ModuleConfig    = "config"
	ModuleStore     = "store"
)

// Builder provides a fluent interface for building standardized errors
type Builder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  Severity
	code      Code
}

// NewBuilder creates a new error builder for the specified module
func NewBuilder(module string) *Builder {
	return &Builder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (b *Builder) Operation(operation string) *Builder {
	b.operation = operation
	return b
}

// Message sets the error message
func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

// Messagef sets the error message with formatting
func (b *Builder) Messagef(format string, args ...interface{}) *Builder {
	b.message = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying cause of the error
func (b *Builder) Cause(cause error) *Builder {
	b.cause = cause
	return b
}

// Detail adds a detail key-value pair to the error
func (b *Builder) Detail(key string, value interface{}) *Builder {
	b.details[key] = value
	return b
}

// Details sets multiple details at once
func (b *Builder) Details(details map[string]interface{}) *Builder {
	for k, v := range details {
		b.details[k] = v
	}
	return b
}

// WithSeverity sets the error severity
func (b *Builder) WithSeverity(severity Severity) *Builder {
	b.severity = severity
	return b
}

// WithCode sets the error code
func (b *Builder) WithCode(code Code) *Builder {
	b.code = code
	return b
}

// Build creates the final error
func (b *Builder) Build() *Error {
	if b.code == "" {
		b.code = CodeInternal
	}

	if b.message == "" {
		if b.operation != "" {
			b.message = fmt.Sprintf("%s.%s failed", b.module, b.operation)
		} else {
			b.message = fmt.Sprintf("%s operation failed", b.module)
		}
	}

	b.details["module"] = b.module

	var err *Error
	if b.cause != nil {
		err = Wrap(b.cause, b.message)
	} else {
		err = New(b.message)
	}

	err = err.WithCode(b.code).WithDetails(b.details).WithSeverity(b.severity)
	if b.operation != "" {
		err = err.WithOperation(b.operation)
	}
	return err
}

// Standard construction functions used across the foundation modules.

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *Error {
	return NewBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		WithCode(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		WithSeverity(SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *Error {
	return NewBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		WithCode(CodeInternal).
		WithSeverity(SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *Error {
	return NewBuilder(module).
		Messagef("validation failed for field %s: %s", field, reason).
		WithCode(CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		WithSeverity(SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *Error {
	return NewBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		WithCode(CodeNotFound).
		Detail("identifier", identifier).
		WithSeverity(SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a chomsky error
func ExtractDetails(err error) map[string]interface{} {
	if ckErr, ok := err.(*Error); ok {
		return ckErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}
