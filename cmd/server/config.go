/*
config.go - Server configuration file loading

PURPOSE:
  Optional TOML configuration for the server. Flags always win over the
  file; the file wins over defaults. Keeps the flag surface small while
  letting deployments pin database location, content overlays, and the
  challenge rotation interval.

FILE FORMAT (config.toml):
  [server]
  port = 8080

  [database]
  path = "rewards.db"

  [content]
  file = "content.yaml"          # optional challenge/achievement overlay

  [scheduler]
  enabled = true
  check_interval_minutes = 15
*/
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all server configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Content   ContentConfig   `toml:"content"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig controls SQLite storage.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ContentConfig points at the optional YAML content overlay.
type ContentConfig struct {
	File string `toml:"file"`
}

// SchedulerConfig controls background challenge rotation.
type SchedulerConfig struct {
	Enabled              bool `toml:"enabled"`
	CheckIntervalMinutes int  `toml:"check_interval_minutes"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "rewards.db"},
		Scheduler: SchedulerConfig{
			Enabled:              true,
			CheckIntervalMinutes: 15,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file
// is not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
