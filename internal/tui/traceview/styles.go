// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     traceview
// Description: Styles for the TraceView TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package traceview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/chomsky/foundation/pda/automaton"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Event line styles
var (
	StepNumberStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	NonTerminalStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Kind-specific styles
	KindPushStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	KindSelectStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	KindMatchStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	KindCompleteStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	KindBacktrackStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	KindAbandonStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	KindSkipStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel/Box styles
var (
	TracePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	AcceptedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	RejectedStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "chomsky TraceView"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders an event kind badge with appropriate styling
func RenderKindBadge(kind automaton.EventKind) string {
	badge := fmt.Sprintf("[%-9s]", kind)
	switch kind {
	case automaton.EventPush:
		return KindPushStyle.Render(badge)
	case automaton.EventSelect:
		return KindSelectStyle.Render(badge)
	case automaton.EventMatch:
		return KindMatchStyle.Render(badge)
	case automaton.EventComplete:
		return KindCompleteStyle.Render(badge)
	case automaton.EventBacktrack:
		return KindBacktrackStyle.Render(badge)
	case automaton.EventAbandon:
		return KindAbandonStyle.Render(badge)
	case automaton.EventSkip:
		return KindSkipStyle.Render(badge)
	default:
		return DetailStyle.Render(badge)
	}
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
