package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional TOML config file. Flags and environment
// variables override anything set here.
type fileConfig struct {
	Endpoint       string   `toml:"endpoint"`
	PollIntervalMS int      `toml:"poll_interval_ms"`
	DarkThemes     []string `toml:"dark_themes"`
}

func (f fileConfig) interval() time.Duration {
	if f.PollIntervalMS <= 0 {
		return 0
	}
	return time.Duration(f.PollIntervalMS) * time.Millisecond
}

// loadFile reads the config file at path. An empty path yields an empty
// config; an explicitly named file that cannot be read or parsed is an error.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
