// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("APP_LOG_LEVEL", "info")
	t.Setenv("APP_DATA_DIR", "/tmp/demo-data")
	t.Setenv("POSTS_BASE_URL", "https://posts.example.com")
	t.Setenv("POSTS_TIMEOUT", "15s")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/demo-data", cfg.App.DataDir)
	assert.Equal(t, "https://posts.example.com", cfg.Posts.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Posts.Timeout)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.App.LogLevel)
	assert.Zero(t, cfg.Posts.Timeout)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
  "app": {"log_level": "warn", "data_dir": "out"},
  "posts": {"base_url": "https://posts.example.com", "timeout": "30s"}
}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "out", cfg.App.DataDir)
	assert.Equal(t, "https://posts.example.com", cfg.Posts.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Posts.Timeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h"`)))
	assert.Equal(t, time.Hour, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1500000000`)))
	assert.Equal(t, 1500*time.Millisecond, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}

func TestBuild_MergePrecedence(t *testing.T) {
	// earlier sources win for non-zero fields
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{App: App{LogLevel: "info"}},
		&Config{App: App{LogLevel: "warn", DataDir: "from-second"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "from-second", cfg.App.DataDir)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "data", cfg.App.DataDir)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Posts: Posts{Timeout: -time.Second}})

	_, err := b.build()

	require.ErrorIs(t, err, ErrInvalidPostsConfigs)
}

func TestWithJSON_PathFromEnvConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":{"data_dir":"json-dir"}}`), 0o644))

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "json-dir", cfg.App.DataDir)
}
