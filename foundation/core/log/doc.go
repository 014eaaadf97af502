// Package log provides structured logging capabilities for the chomsky platform.
//
// Package: log
// Title: chomsky Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and
//              tight integration with the chomsky error handling system. It
//              supports performance timing for recognition runs, per-step
//              automaton tracing at trace level, and audit trails for grammar
//              registry changes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, and console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with run IDs and custom fields
// - Integration with chomsky error system for automatic error logging
// - Performance timers with intermediate checkpoints
// - Audit trail capabilities for grammar registry operations
//
// Usage:
//   import cklog "github.com/msto63/chomsky/foundation/core/log"
//
//   // Create a logger with context
//   logger := cklog.New().
//     WithLevel(cklog.LevelInfo).
//     WithFormat(cklog.FormatJSON).
//     WithField("component", "automaton").
//     WithRunID("run-123")
//
//   // Log messages with different levels
//   logger.Info("grammar registered", cklog.Field("grammar", "balanced"))
//   logger.Error("recognition aborted", cklog.Err(err))
//   logger.Trace("step executed", cklog.Fields{
//     "cursor":      3,
//     "stack_depth": 2,
//     "action":      "expand",
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("recognition_run")
//   // ... run the automaton
//   timer.Stop()
//
//   // Audit logging for registry changes
//   logger.Audit("grammar replaced", cklog.Fields{
//     "grammar": "expr",
//     "source":  "grammars/expr.toml",
//   })
package log
