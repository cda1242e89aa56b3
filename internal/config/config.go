// Package config loads ZoneKeeper configuration from defaults, an optional
// JSON config file, and ZONEKEEPER_* environment variables, in that order of
// precedence (later sources win).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds every runtime setting. Keys are flat on purpose: the same
// key works in the config file and, uppercased with the ZONEKEEPER_ prefix,
// as an environment variable (ZONEKEEPER_PRIMARY_DIR, ZONEKEEPER_PORT, ...).
type AppConfig struct {
	// Host and Port are the HTTP listen address of the management API.
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"required,gte=1,lte=65535"`

	// PrimaryDir is the operator-owned artifact directory tried first on
	// every write. SecondaryDir is the local fallback, created on demand.
	PrimaryDir   string `koanf:"primary_dir" validate:"required"`
	SecondaryDir string `koanf:"secondary_dir" validate:"required"`

	// ChangelogDB is the SQLite file holding the write journal. Empty
	// disables journaling.
	ChangelogDB string `koanf:"changelog_db"`

	// LogLevel is one of debug, info, warn, error; LogFormat is "text"
	// or "json".
	LogLevel  string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"required,oneof=text json"`

	// APIKey, when set, is required in the X-API-Key header of every
	// API request.
	APIKey string `koanf:"api_key"`
}

// Defaults are the settings used when neither the config file nor the
// environment says otherwise.
var Defaults = AppConfig{
	Host:         "127.0.0.1",
	Port:         8053,
	PrimaryDir:   "/etc/zonekeeper/zones",
	SecondaryDir: "zones",
	ChangelogDB:  "zonekeeper.db",
	LogLevel:     "info",
	LogFormat:    "text",
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply; a non-empty path must exist.
func Load(path string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: "ZONEKEEPER_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "ZONEKEEPER_")), strings.TrimSpace(value)
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment config: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
