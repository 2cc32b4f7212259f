// Package config loads the TOML-file + CLI-flag configuration used by
// cmd/lobbyd: listen address, in-memory slab capacities, the lobby
// greeting text, the optional auth DSN, and log settings. No pack
// example ships a config file for a lobby server, so the field set is
// drawn from spec.md §6's "CLI/environment (collaborator)" list.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"golang.org/x/xerrors"

	"redoubt/internal/log"
)

// Config is the top-level file shape, e.g.:
//
//	listen_addr = ":46631"
//	client_capacity = 4096
//	room_capacity = 512
//	lobby_greeting = "Welcome to the lobby."
//
//	[log]
//	level = "info"
//	file_path = "/var/log/lobbyd/lobbyd.log"
//
//	[auth]
//	dsn = "user:pass@tcp(127.0.0.1:3306)/hedgewars"
type Config struct {
	ListenAddr     string `toml:"listen_addr"`
	ClientCapacity int    `toml:"client_capacity"`
	RoomCapacity   int    `toml:"room_capacity"`
	LobbyGreeting  string `toml:"lobby_greeting"`
	AdminAddr      string `toml:"admin_addr"`
	Seed           int64  `toml:"seed"`

	Log  LogConfig  `toml:"log"`
	Auth AuthConfig `toml:"auth"`
}

// LogConfig mirrors log.Config's fields for TOML decoding.
type LogConfig struct {
	Level      string `toml:"level"`
	FilePath   string `toml:"file_path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func (c LogConfig) ToLogConfig() log.Config {
	return log.Config{
		Level:      c.Level,
		FilePath:   c.FilePath,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}

// AuthConfig is empty (no DSN) when account persistence should be
// skipped entirely — accounts are an optional collaborator (spec.md
// §7 "Authentication failure (collaborator)").
type AuthConfig struct {
	DSN             string `toml:"dsn"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime_seconds"`
}

// Default returns the configuration lobbyd falls back to when no file
// is given.
func Default() Config {
	return Config{
		ListenAddr:     ":46631",
		ClientCapacity: 4096,
		RoomCapacity:   512,
		LobbyGreeting:  "Welcome to the lobby.",
		AdminAddr:      ":46632",
		Seed:           0,
		Log:            LogConfig{Level: "info"},
	}
}

// Load reads and decodes path, starting from Default() so a partial
// file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, xerrors.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, xerrors.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
