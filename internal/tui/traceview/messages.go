// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     traceview
// Description: Message types for async operations in TraceView
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package traceview

import (
	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/internal/chomsky/service"
)

// Message types for tea.Cmd async operations

// traceLoadedMsg is sent when a traced recognition run finishes
type traceLoadedMsg struct {
	rec    *service.Recognition
	events []automaton.Event
	err    error
}
