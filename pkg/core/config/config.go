package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Server  ServerConfig  `toml:"server"`
	Engine  EngineConfig  `toml:"engine"`
	History HistoryConfig `toml:"history"`
	Cache   CacheConfig   `toml:"cache"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	DataDir     string `toml:"data_dir"`
	LogLevel    string `toml:"log_level"`
}

// ServerConfig holds recognition API server configuration
type ServerConfig struct {
	Port         int      `toml:"port"`
	Host         string   `toml:"host"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// EngineConfig holds recognition engine configuration
type EngineConfig struct {
	GrammarDir     string `toml:"grammar_dir"`
	MaxStackDepth  int    `toml:"max_stack_depth"`
	MaxSteps       int    `toml:"max_steps"`
	MaxInputLength int    `toml:"max_input_length"`
}

// HistoryConfig holds run history persistence configuration
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled"`
	Path          string `toml:"path"`
	RetentionDays int    `toml:"retention_days"`
}

// CacheConfig holds recognition result cache configuration
type CacheConfig struct {
	Enabled bool     `toml:"enabled"`
	TTL     Duration `toml:"ttl"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// History and cache stay on unless the file switches them off
	var cfg Config
	cfg.History.Enabled = true
	cfg.Cache.Enabled = true

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the CHOMSKY_CONFIG environment variable
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("CHOMSKY_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/chomsky.toml",
			"./chomsky.toml",
			filepath.Join(os.Getenv("HOME"), ".config/chomsky/chomsky.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set CHOMSKY_CONFIG or create configs/chomsky.toml")
	}

	return Load(path)
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.History.Enabled = true
	cfg.Cache.Enabled = true
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "chomsky"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	// Server
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 30 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 120 * time.Second
	}

	// Engine
	if c.Engine.GrammarDir == "" {
		c.Engine.GrammarDir = "./grammars"
	}
	if c.Engine.MaxStackDepth == 0 {
		c.Engine.MaxStackDepth = 256
	}
	if c.Engine.MaxInputLength == 0 {
		c.Engine.MaxInputLength = 64 * 1024
	}

	// History
	if c.History.Path == "" {
		c.History.Path = "./data/runs.db"
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 30
	}

	// Cache
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Engine.GrammarDir = os.ExpandEnv(c.Engine.GrammarDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// ServerAddress returns the listen address for the API server
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
