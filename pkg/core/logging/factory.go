// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured foundation loggers
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	cklog "github.com/msto63/chomsky/foundation/core/log"
)

var (
	// Global log file handle (singleton)
	logFileMu sync.Mutex
	logFile   *os.File
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: json)

	// FilePath appends log output to a file when set
	FilePath string

	// Additional outputs (besides stdout and the log file)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new foundation logger from the configuration
func NewLogger(cfg LoggerConfig) *cklog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stdout

	if cfg.FilePath != "" {
		if file := getOrCreateLogFile(cfg.FilePath); file != nil {
			output = io.MultiWriter(os.Stdout, file)
		}
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := cklog.FormatJSON
	if cfg.Format == "text" {
		format = cklog.FormatText
	}

	return cklog.NewWithConfig(cklog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	})
}

// NewServiceLogger creates a logger for a service with standard
// configuration and an optional log file
func NewServiceLogger(serviceName string, filePath string) *cklog.Logger {
	cfg := DefaultLoggerConfig(serviceName)
	cfg.FilePath = filePath
	return NewLogger(cfg)
}

// NewSimpleLogger creates a logger writing to stdout only
func NewSimpleLogger(serviceName string) *cklog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// getOrCreateLogFile opens the log file once; all later loggers share
// the same handle, whatever path they pass
func getOrCreateLogFile(path string) *os.File {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil {
		return logFile
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	logFile = file
	return logFile
}

// CloseLogFile closes the shared log file if one was opened
func CloseLogFile() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// parseLevel converts a string level to cklog.Level
func parseLevel(level string) cklog.Level {
	switch level {
	case "trace":
		return cklog.LevelTrace
	case "debug":
		return cklog.LevelDebug
	case "info":
		return cklog.LevelInfo
	case "warn", "warning":
		return cklog.LevelWarn
	case "error":
		return cklog.LevelError
	case "fatal":
		return cklog.LevelFatal
	default:
		return cklog.LevelInfo
	}
}
