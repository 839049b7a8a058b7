package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings, optionally loaded from a YAML
// file. Timeouts are whole seconds. Flags override file values.
type Config struct {
	Addr                 string `yaml:"addr"`
	ReadHeaderTimeoutSec int    `yaml:"read_header_timeout_sec"`
	ReadTimeoutSec       int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec      int    `yaml:"write_timeout_sec"`
	IdleTimeoutSec       int    `yaml:"idle_timeout_sec"`
}

func defaultConfig() Config {
	return Config{
		Addr:                 ":8080",
		ReadHeaderTimeoutSec: 5,
		ReadTimeoutSec:       15,
		WriteTimeoutSec:      15,
		IdleTimeoutSec:       60,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
