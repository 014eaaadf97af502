// File: errors_test.go
// Title: Core Error Tests
// Description: Tests for error creation, wrapping, context builders, and
//              error chain handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with comprehensive error tests

package errors

import (
	"encoding/json"
	stderr "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New("test error")

	if err == nil {
		t.Fatal("New() should not return nil")
	}

	if err.Error() != "test error" {
		t.Errorf("Error() = %v, want 'test error'", err.Error())
	}

	if err.Code() != CodeUnknown {
		t.Errorf("New() code = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("New() severity = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("New() should set timestamp")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("New() should capture stack trace")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("value %d out of %s", 42, "range")

	want := "value 42 out of range"
	if err.Error() != want {
		t.Errorf("Newf() = %v, want %v", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderr.New("root cause")
	err := Wrap(cause, "operation failed")

	if err == nil {
		t.Fatal("Wrap() should not return nil")
	}

	want := "operation failed: root cause"
	if err.Error() != want {
		t.Errorf("Wrap() error = %v, want %v", err.Error(), want)
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	if !stderr.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	cause := stderr.New("io failure")
	err := Wrapf(cause, "loading grammar %q", "expr")

	want := `loading grammar "expr": io failure`
	if err.Error() != want {
		t.Errorf("Wrapf() = %v, want %v", err.Error(), want)
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("inner").
		WithCode(CodeGrammarSyntax).
		WithDetail("line", 7)

	wrapped := Wrap(inner, "outer")

	if wrapped.Code() != CodeGrammarSyntax {
		t.Errorf("Wrap() should preserve code, got %v", wrapped.Code())
	}

	if wrapped.Details()["line"] != 7 {
		t.Error("Wrap() should copy details from the inner error")
	}
}

func TestWrapTruncatesLongChains(t *testing.T) {
	var err error = New("bottom")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	ckErr, ok := err.(*Error)
	if !ok {
		t.Fatal("Wrap() should return *Error")
	}

	if !strings.Contains(ckErr.Error(), "chain truncated") {
		t.Error("Deep chains should be truncated")
	}

	if ckErr.Details()["truncated"] != true {
		t.Error("Truncated errors should carry a truncated detail")
	}
}

func TestErrorWithCode(t *testing.T) {
	err := New("rejected").WithCode(CodeParseReject)

	if err.Code() != CodeParseReject {
		t.Errorf("WithCode() code = %v, want %v", err.Code(), CodeParseReject)
	}

	// Severity should auto-adjust from the default
	if err.Severity() != SeverityLow {
		t.Errorf("WithCode() should derive severity, got %v", err.Severity())
	}
}

func TestErrorWithSeverityExplicit(t *testing.T) {
	err := New("custom").
		WithSeverity(SeverityCritical).
		WithCode(CodeParseReject)

	// Explicit severity should survive a later WithCode
	if err.Severity() != SeverityCritical {
		t.Errorf("Explicit severity should not be overridden, got %v", err.Severity())
	}
}

func TestErrorWithDetails(t *testing.T) {
	err := New("details").
		WithDetail("cursor", 4).
		WithDetails(map[string]interface{}{"grammar": "balanced", "depth": 3})

	details := err.Details()

	if details["cursor"] != 4 {
		t.Error("WithDetail() should add detail")
	}

	if details["grammar"] != "balanced" || details["depth"] != 3 {
		t.Error("WithDetails() should add all details")
	}

	// Returned map should be a copy
	details["cursor"] = 99
	if err.Details()["cursor"] != 4 {
		t.Error("Details() should return an independent copy")
	}
}

func TestErrorWithOperation(t *testing.T) {
	err := New("failed").WithOperation("automaton.run")

	if err.Operation() != "automaton.run" {
		t.Errorf("Operation() = %v, want automaton.run", err.Operation())
	}
}

func TestRootCause(t *testing.T) {
	root := stderr.New("disk full")
	middle := Wrap(root, "write failed")
	top := Wrap(middle, "save failed")

	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
}

func TestRootCauseNoChain(t *testing.T) {
	err := New("standalone")

	if err.RootCause() != err {
		t.Error("RootCause() of an unchained error should be itself")
	}
}

func TestErrorString(t *testing.T) {
	err := New("boom").
		WithCode(CodeInternal).
		WithOperation("service.recognize").
		WithDetail("run_id", "run-1")

	s := err.String()

	for _, want := range []string{"Error: boom", "Code: INTERNAL", "Operation: service.recognize", "run_id=run-1"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() should contain %q, got:\n%s", want, s)
		}
	}
}

func TestErrorMarshalJSON(t *testing.T) {
	err := New("json test").
		WithCode(CodeParseDepth).
		WithOperation("automaton.push").
		WithDetail("depth", 256)

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("MarshalJSON failed: %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("Failed to parse JSON: %v", jsonErr)
	}

	if result["message"] != "json test" {
		t.Errorf("JSON message = %v, want 'json test'", result["message"])
	}

	if result["code"] != "PARSE_DEPTH" {
		t.Errorf("JSON code = %v, want PARSE_DEPTH", result["code"])
	}

	if result["operation"] != "automaton.push" {
		t.Errorf("JSON operation = %v, want automaton.push", result["operation"])
	}

	if _, exists := result["stack_trace"]; !exists {
		t.Error("JSON should include stack trace")
	}
}

func TestHasCode(t *testing.T) {
	err := New("depth").WithCode(CodeParseDepth)

	if !HasCode(err, CodeParseDepth) {
		t.Error("HasCode() should match the set code")
	}

	if HasCode(err, CodeParseSteps) {
		t.Error("HasCode() should not match a different code")
	}

	if HasCode(stderr.New("plain"), CodeParseDepth) {
		t.Error("HasCode() should be false for foreign errors")
	}
}

func TestGetCode(t *testing.T) {
	err := New("steps").WithCode(CodeParseSteps)

	if GetCode(err) != CodeParseSteps {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeParseSteps)
	}

	if GetCode(stderr.New("plain")) != CodeUnknown {
		t.Error("GetCode() should return CodeUnknown for foreign errors")
	}
}

func TestGetSeverity(t *testing.T) {
	err := New("critical").WithSeverity(SeverityCritical)

	if GetSeverity(err) != SeverityCritical {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityCritical)
	}

	if GetSeverity(stderr.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() should return SeverityMedium for foreign errors")
	}
}

// Benchmark tests
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	cause := stderr.New("cause")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(cause, "wrapped")
	}
}

func BenchmarkWithDetails(b *testing.B) {
	err := New("benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.WithDetail("iteration", i)
	}
}
