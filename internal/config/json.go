package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// JSONConfig is the on-disk shape of the optional configuration file.
type JSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		DataDir  string `json:"data_dir"`
	} `json:"app,omitempty"`

	Posts struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"posts,omitempty"`
}

// parseJSON loads the configuration file at jsonFilePath and converts it
// into a *Config for merging.
func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			DataDir:  jsonCfg.App.DataDir,
		},
		Posts: Posts{
			BaseURL: jsonCfg.Posts.BaseURL,
			Timeout: time.Duration(jsonCfg.Posts.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
