// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package version

// Version constants for all chomsky components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Engine = "0.1.0"
	Server = "0.1.0"
	CLI    = "0.1.0"
	TUI    = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine":
		return Engine
	case "server":
		return Server
	case "cli":
		return CLI
	case "tui":
		return TUI
	default:
		return Platform
	}
}
