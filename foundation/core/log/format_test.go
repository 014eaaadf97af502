// File: format_test.go
// Title: Format Tests
// Description: Tests for log formatting functionality including JSON, text,
//              and console formatters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with comprehensive format tests

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatConsole, "console"},
		{Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{"JSON", FormatJSON, false},     // Case insensitive
		{"  text  ", FormatText, false}, // Trimming
		{"invalid", FormatJSON, true},   // Returns default with error
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelInfo, "test message")
	entry.Logger = "test-logger"
	entry.RunID = "run-123"
	entry.Fields = Fields{"key": "value", "count": 42}
	entry.Error = errors.New("test error")
	entry.Duration = time.Millisecond * 100

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("JSONFormatter.Format() error = %v", err)
	}

	// Parse JSON to verify structure
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	// Check required fields
	expectedFields := map[string]interface{}{
		"level":       "info",
		"message":     "test message",
		"logger":      "test-logger",
		"run_id":      "run-123",
		"key":         "value",
		"count":       float64(42), // JSON numbers are float64
		"error":       "test error",
		"duration_ms": float64(100),
	}

	for key, expected := range expectedFields {
		if actual, exists := result[key]; !exists {
			t.Errorf("JSON output missing field %s", key)
		} else if actual != expected {
			t.Errorf("JSON field %s = %v, want %v", key, actual, expected)
		}
	}

	// Check timestamp is present and valid
	if timestamp, exists := result["timestamp"]; !exists {
		t.Error("JSON output missing timestamp")
	} else if _, ok := timestamp.(string); !ok {
		t.Error("JSON timestamp should be a string")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	formatter := NewTextFormatter()

	entry := NewEntry(LevelInfo, "test message")
	entry.Logger = "test-logger"
	entry.RunID = "run-123"
	entry.Fields = Fields{"key": "value"}
	entry.Error = errors.New("test error")
	entry.Duration = time.Second

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	output := string(data)

	// Check that output contains expected elements
	expectedElements := []string{
		"[INF]",
		"{test-logger}",
		"(run=run-123)",
		"test message",
		"[key=value]",
		"error=\"test error\"",
		"duration=1s",
	}

	for _, element := range expectedElements {
		if !strings.Contains(output, element) {
			t.Errorf("Text output should contain %q, got: %s", element, output)
		}
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	formatter := &TextFormatter{DisableTimestamp: true}

	entry := NewEntry(LevelInfo, "test message")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	output := string(data)

	// Should not contain timestamp patterns
	if strings.Contains(output, ":") && strings.Contains(output, "T") {
		t.Errorf("Output with disabled timestamp should not contain timestamp, got: %s", output)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	formatter := NewConsoleFormatter()

	entry := NewEntry(LevelError, "test error message")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("ConsoleFormatter.Format() error = %v", err)
	}

	output := string(data)

	// Should contain color codes for error level (red)
	if !strings.Contains(output, "\033[31m") {
		t.Error("Console output should contain color codes")
	}

	// Should contain reset code
	if !strings.Contains(output, "\033[0m") {
		t.Error("Console output should contain reset code")
	}
}

func TestConsoleFormatter_DisableColors(t *testing.T) {
	formatter := &ConsoleFormatter{
		DisableColors: true,
		TextFormatter: NewTextFormatter(),
	}

	entry := NewEntry(LevelError, "test error message")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("ConsoleFormatter.Format() error = %v", err)
	}

	output := string(data)

	// Should not contain color codes
	if strings.Contains(output, "\033[") {
		t.Errorf("Output with disabled colors should not contain color codes, got: %s", output)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   Formatter
	}{
		{FormatJSON, &JSONFormatter{}},
		{FormatText, &TextFormatter{}},
		{FormatConsole, &ConsoleFormatter{}},
		{Format(999), &JSONFormatter{}}, // Default fallback
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			formatter := GetFormatter(tt.format)
			if formatter == nil {
				t.Fatal("GetFormatter() should not return nil")
			}

			switch tt.want.(type) {
			case *JSONFormatter:
				if _, ok := formatter.(*JSONFormatter); !ok {
					t.Errorf("GetFormatter(%v) returned %T, want *JSONFormatter", tt.format, formatter)
				}
			case *TextFormatter:
				if _, ok := formatter.(*TextFormatter); !ok {
					t.Errorf("GetFormatter(%v) returned %T, want *TextFormatter", tt.format, formatter)
				}
			case *ConsoleFormatter:
				if _, ok := formatter.(*ConsoleFormatter); !ok {
					t.Errorf("GetFormatter(%v) returned %T, want *ConsoleFormatter", tt.format, formatter)
				}
			}
		})
	}
}

// Benchmark tests
func BenchmarkJSONFormatter_Format(b *testing.B) {
	formatter := NewJSONFormatter()
	entry := NewEntry(LevelInfo, "benchmark message")
	entry.Fields = Fields{"key": "value", "count": 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	formatter := NewTextFormatter()
	entry := NewEntry(LevelInfo, "benchmark message")
	entry.Fields = Fields{"key": "value", "count": 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}

func BenchmarkConsoleFormatter_Format(b *testing.B) {
	formatter := NewConsoleFormatter()
	entry := NewEntry(LevelInfo, "benchmark message")
	entry.Fields = Fields{"key": "value", "count": 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}
