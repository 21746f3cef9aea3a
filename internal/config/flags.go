package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-log-level zerolog level name
//	-data-dir directory for the demo output files
//	-posts-base-url posts API endpoint
//	-posts-timeout posts request timeout (e.g., "10s")
//	-c/-config json file path with configs
//
// Every command works with no flags at all; these exist so the workshop
// output location and verbosity can be adjusted without editing code.
func ParseFlags() *Config {
	var logLevel string
	var dataDir string
	var postsBaseURL string
	var postsTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&logLevel, "log-level", "", "Log level name")
	flag.StringVar(&dataDir, "data-dir", "", "Directory for demo output files")
	flag.StringVar(&postsBaseURL, "posts-base-url", "", "Posts API base URL")
	flag.DurationVar(&postsTimeout, "posts-timeout", 0, "Posts request timeout (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		App: App{
			LogLevel: logLevel,
			DataDir:  dataDir,
		},
		Posts: Posts{
			BaseURL: postsBaseURL,
			Timeout: postsTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
