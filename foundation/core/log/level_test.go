// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level functionality including string representation,
//              parsing, and filtering logic.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with comprehensive level tests

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelAudit, "audit"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{LevelAudit, "AUD"},
		{Level(999), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "\033[37m"},
		{LevelDebug, "\033[36m"},
		{LevelInfo, "\033[32m"},
		{LevelWarn, "\033[33m"},
		{LevelError, "\033[31m"},
		{LevelFatal, "\033[35m"},
		{LevelAudit, "\033[34m"},
		{Level(999), "\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Color(); got != tt.want {
				t.Errorf("Level.Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"trace vs info", LevelTrace, LevelInfo, false},
		{"debug vs info", LevelDebug, LevelInfo, false},
		{"info vs info", LevelInfo, LevelInfo, true},
		{"warn vs info", LevelWarn, LevelInfo, true},
		{"error vs info", LevelError, LevelInfo, true},
		{"audit vs error", LevelAudit, LevelError, true}, // Audit always logs
		{"audit vs fatal", LevelAudit, LevelFatal, true}, // Audit always logs
		{"fatal vs trace", LevelFatal, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("Level.ShouldLog() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"TRC", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"DBG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"INF", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"WRN", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERR", LevelError, false},
		{"fatal", LevelFatal, false},
		{"FTL", LevelFatal, false},
		{"audit", LevelAudit, false},
		{"AUD", LevelAudit, false},
		{"  INFO  ", LevelInfo, false}, // Test trimming
		{"INVALID", LevelInfo, true},   // Returns default with error
		{"", LevelInfo, true},          // Empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Input: "invalid",
		Type:  "level",
	}

	want := "invalid level: invalid"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %v, want %v", got, want)
	}
}

func TestDefaultLevel(t *testing.T) {
	if got := DefaultLevel(); got != LevelInfo {
		t.Errorf("DefaultLevel() = %v, want %v", got, LevelInfo)
	}
}

func TestLevelOrdering(t *testing.T) {
	// Levels below audit are ordered by severity
	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("Level %v should order below %v", levels[i], levels[i+1])
		}
	}
}

func TestAuditLevelSpecialBehavior(t *testing.T) {
	// Audit should always log regardless of minimum level
	minLevels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	for _, minLevel := range minLevels {
		if !LevelAudit.ShouldLog(minLevel) {
			t.Errorf("LevelAudit should always log, but ShouldLog(%v) returned false", minLevel)
		}
	}
}

// Benchmark tests
func BenchmarkLevelString(b *testing.B) {
	level := LevelInfo
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = level.String()
	}
}

func BenchmarkLevelShouldLog(b *testing.B) {
	level := LevelError
	minLevel := LevelInfo
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = level.ShouldLog(minLevel)
	}
}

func BenchmarkParseLevel(b *testing.B) {
	input := "info"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ParseLevel(input)
	}
}
