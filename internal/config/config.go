// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Config is the top-level configuration container shared by all workshop
// commands. It is populated by merging environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds command-level settings: log verbosity and the directory
	// the demos write their JSON files into.
	App App `envPrefix:"APP_"`

	// Posts holds connection settings for the posts API client. The demo
	// binaries construct the client but never let it hit the network.
	Posts Posts `envPrefix:"POSTS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that apply to every command.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL. Defaults to "debug".
	LogLevel string `env:"LOG_LEVEL"`

	// DataDir is where the data handling demo writes its JSON files.
	// Env: APP_DATA_DIR. Defaults to "data".
	DataDir string `env:"DATA_DIR"`
}

// Posts holds the posts API client settings.
type Posts struct {
	// BaseURL is the API endpoint the client would call.
	// Env: POSTS_BASE_URL.
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single request (e.g. "10s").
	// Env: POSTS_TIMEOUT.
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after the merge.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills the fields no source provided.
func (cfg *Config) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "debug"
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "data"
	}
}

// validate checks that the final merged Config satisfies the few
// invariants the commands rely on.
func (cfg *Config) validate() error {
	if cfg.Posts.Timeout < 0 {
		return ErrInvalidPostsConfigs
	}

	return nil
}
