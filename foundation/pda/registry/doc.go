// File: doc.go
// Title: Grammar Registry Package Documentation
// Description: Documents the named grammar registry that stores built
//              grammar tables for lookup by recognizers, servers, and
//              tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial registry implementation

/*
Package registry stores built grammars under case-insensitive names.

The registry is the lookup point between grammar loading and
recognition: files are loaded once, built into immutable grammar
tables, registered here, and then resolved by name for each
recognition run. It provides:

  • Registration with duplicate detection
  • Name-based lookup returning the shared immutable table
  • Sorted name and summary listings for CLI and API surfaces
  • Removal, so a grammar can be replaced by re-registering

All operations are safe for concurrent use.
*/
package registry
