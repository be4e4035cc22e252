package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is read from the file given with -config. Flags override it.
type Config struct {
	Bus struct {
		// Name is passed to i2creg.Open; empty selects the first bus.
		Name string `toml:"name"`
	} `toml:"bus"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Shell struct {
		HistoryFile string `toml:"history_file"`
	} `toml:"shell"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	return cfg
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
