// Package config loads process configuration once at startup. Everything
// downstream receives immutable values; no component reads the environment
// or files at decision time.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names understood by the service.
const (
	// EnvOracleURL is the base URL of the external ranking service.
	// Empty disables the oracle entirely.
	EnvOracleURL = "HOLDEMBRAIN_ORACLE_URL"

	// EnvOracleEnabled can force the oracle off even when a URL is set.
	EnvOracleEnabled = "HOLDEMBRAIN_ORACLE_ENABLED"

	// EnvListen is the listen address for the player service.
	EnvListen = "HOLDEMBRAIN_LISTEN"

	// EnvLogLevel sets the log level (debug, info, warn, error).
	EnvLogLevel = "HOLDEMBRAIN_LOG_LEVEL"

	// EnvSeed fixes the betting random source for deterministic play.
	EnvSeed = "HOLDEMBRAIN_SEED"
)

// Config holds process-level configuration parsed from the environment.
type Config struct {
	// OracleURL is the ranking service base URL; empty means local-only.
	OracleURL string

	// OracleEnabled gates oracle use. False falls back to pure local
	// evaluation regardless of OracleURL.
	OracleEnabled bool

	// Listen is the player service address (defaults to ":8080").
	Listen string

	// LogLevel is the log verbosity (defaults to "info").
	LogLevel string

	// Seed is the betting RNG seed (0 means seed from time).
	Seed int64
}

// FromEnv parses configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Listen:   ":8080",
		LogLevel: "info",
	}

	cfg.OracleURL = os.Getenv(EnvOracleURL)
	cfg.OracleEnabled = cfg.OracleURL != ""

	if v := os.Getenv(EnvOracleEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvOracleEnabled, err)
		}
		cfg.OracleEnabled = enabled && cfg.OracleURL != ""
	}

	if listen := os.Getenv(EnvListen); listen != "" {
		cfg.Listen = listen
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}
