// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides comprehensive configuration management
//              for chomsky applications with support for TOML and YAML formats.
//              Features include automatic file discovery, environment variable
//              injection, configuration validation, hot-reloading, and
//              type-safe access.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides comprehensive configuration management for chomsky applications.

Key Features:
  - Multi-format support (TOML, YAML) with automatic detection
  - Environment variable injection and override capabilities
  - Configuration validation with structured rules
  - Hot-reloading with change notification callbacks
  - Struct binding via config/validate tags
  - Thread-safe concurrent access patterns
  - Structured error integration with error codes

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := ckconfig.Load("chomsky.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	grammarDir := cfg.GetString("grammars.dir", "./grammars")
	maxDepth := cfg.GetInt("parser.max_depth", 256)
	timeout := cfg.GetDuration("server.timeout", 30*time.Second)
	formats := cfg.GetStringSlice("grammars.formats", []string{"toml"})

# Advanced Configuration Options

Load with custom options and defaults:

	cfg, err := ckconfig.LoadWithOptions("chomsky.toml", ckconfig.LoadOptions{
		Format:    ckconfig.FormatAuto,
		EnvPrefix: "CHOMSKY",
		Defaults: map[string]interface{}{
			"parser.max_depth": 256,
			"parser.trace":     false,
			"server.port":      8080,
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# chomsky.toml
	[parser]
	max_depth = 256

	[server]
	bind = "0.0.0.0"
	port = 8080

	# Environment variables (with optional prefix)
	export CHOMSKY_PARSER_MAX_DEPTH="512"
	export CHOMSKY_SERVER_BIND="127.0.0.1"

	cfg, _ := ckconfig.LoadWithOptions("chomsky.toml", ckconfig.LoadOptions{
		EnvPrefix: "CHOMSKY",
	})

	// Environment variables take precedence
	depth := cfg.GetInt("parser.max_depth") // Returns 512
	bind := cfg.GetString("server.bind")    // Returns "127.0.0.1"

# Configuration Validation

Validate configuration structure and constraints:

	rules := ckconfig.ValidationRules{
		"parser.max_depth": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      65536,
		},
		"server.port": {
			Type:    "int",
			Min:     1,
			Max:     65535,
			Default: 8080,
		},
		"logging.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error)$`,
			Default: "info",
		},
		"grammars.formats": {
			Type: "[]string",
		},
	}

	if result := cfg.Validate(rules); !result.Valid {
		for _, msg := range result.Errors {
			cklog.Error("config validation", cklog.String("error", msg))
		}
	}

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading:

	cfg, err := ckconfig.LoadWithWatch("chomsky.toml")

	// Register change handlers
	cfg.OnChange(func(oldCfg, newCfg *ckconfig.Config) {
		if oldCfg.GetInt("parser.max_depth") != newCfg.GetInt("parser.max_depth") {
			// Rebuild parser options on the next run
		}
	})

# Struct Binding

Bind configuration sections directly to Go structs:

	type ParserConfig struct {
		MaxDepth int    `config:"max_depth" validate:"required"`
		MaxSteps int    `config:"max_steps"`
		Trace    bool   `config:"trace"`
		LogLevel string `config:"log_level"`
	}

	var pc ParserConfig
	if err := cfg.BindToStruct("parser", &pc); err != nil {
		return err
	}

# Convenience Methods

Quick access patterns for common operations:

	depth := cfg.I("parser.max_depth", 256)            // GetInt
	dir := cfg.S("grammars.dir", "./grammars")         // GetString
	trace := cfg.B("parser.trace", false)              // GetBool
	timeout := cfg.D("server.timeout", 30*time.Second) // GetDuration
	ratio := cfg.F("cache.fill_ratio", 0.8)            // GetFloat
	formats := cfg.SS("grammars.formats", nil)         // GetStringSlice

# Error Handling Patterns

All configuration operations return structured errors with context:

	cfg, err := ckconfig.Load("missing.toml")
	if err != nil {
		switch ckerrors.GetCode(err) {
		case ckerrors.CodeNotFound:
			cfg, _ = ckconfig.LoadFromString(defaultConfig, ckconfig.FormatTOML)
		case ckerrors.CodeInvalidConfig:
			return err
		default:
			return err
		}
	}

# Integration with the chomsky Foundation

The config module integrates with the other foundation modules:

	import (
		ckconfig "github.com/msto63/chomsky/foundation/core/config"
		ckerrors "github.com/msto63/chomsky/foundation/core/errors"
		cklog "github.com/msto63/chomsky/foundation/core/log"
	)

	cfg, err := ckconfig.DiscoverWithDefaults()
	if err != nil {
		cklog.GetDefault().LogError(err)
		os.Exit(1)
	}

	logger := cklog.NewWithConfig(cklog.Config{
		Level:  cklog.LevelInfo,
		Format: cklog.FormatJSON,
	}).WithName(cfg.GetString("logging.name", "chomsky"))

# Thread Safety Guarantees

All Config methods are safe for concurrent use. Reads take a shared lock,
writes and validation take an exclusive lock, and change handlers run in
their own goroutines with deep-copied configuration snapshots.
*/
package config
