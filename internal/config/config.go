// Package config loads application settings from config.yaml and POSTMAKER_*
// environment variables via viper, and resolves the data directory layout.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/yousseftechdev/postmaker/internal/common"
	"github.com/yousseftechdev/postmaker/internal/history"
)

const (
	EnvPrefix = "POSTMAKER"

	debugFile = "debug_mode.json"
)

// AuthProvider is one named token provider from the config file.
type AuthProvider struct {
	Name string                 `mapstructure:"name"`
	Type string                 `mapstructure:"type"`
	// Var is the variable name the minted token is stored under; defaults
	// to the provider name.
	Var  string                 `mapstructure:"var"`
	Spec map[string]interface{} `mapstructure:"spec"`
}

// Config is the fully loaded application configuration.
type Config struct {
	DataDir   string         `mapstructure:"data_dir"`
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
	History   history.Config `mapstructure:"history"`
	Auth      []AuthProvider `mapstructure:"auth"`
}

// DefaultDataDir returns ~/.postmaker, falling back to ./.postmaker when the
// home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".postmaker"
	}
	return filepath.Join(home, ".postmaker")
}

// Load reads the configuration. A non-empty path names an explicit config
// file; otherwise config.yaml inside the data dir is used when present.
// Environment variables with the POSTMAKER_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("history.driver", history.DriverSqlite)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("data_dir"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.History.Driver == "" {
		cfg.History.Driver = history.DriverSqlite
	}
	return &cfg, nil
}

// Logger builds the configured logger. Unknown levels fall back to info.
func (c *Config) Logger() *common.Logger {
	level := common.ParseLogLevel(c.LogLevel)
	if c.LogFormat == "json" {
		return common.NewJSONLogger(level)
	}
	return common.NewLogger(level)
}

// Paths inside the data directory.

func (c *Config) VariablesPath() string { return filepath.Join(c.DataDir, "variables.json") }
func (c *Config) ScriptsDir() string    { return filepath.Join(c.DataDir, "scripts") }
func (c *Config) HistoryPath() string   { return filepath.Join(c.DataDir, "history.db") }
func (c *Config) debugPath() string     { return filepath.Join(c.DataDir, debugFile) }

// HistoryConfig returns the history driver config with the default sqlite
// path filled in when the file does not name one.
func (c *Config) HistoryConfig() history.Config {
	hc := c.History
	if hc.Driver == "" || hc.Driver == history.DriverSqlite {
		if hc.Spec == nil {
			hc.Spec = map[string]interface{}{}
		}
		if hc.Spec["path"] == nil || hc.Spec["path"] == "" {
			spec := make(map[string]interface{}, len(hc.Spec)+1)
			for k, val := range hc.Spec {
				spec[k] = val
			}
			spec["path"] = c.HistoryPath()
			hc.Spec = spec
		}
	}
	return hc
}

// DebugMode reads the persisted debug flag. Missing or unreadable state means
// debug is off.
func (c *Config) DebugMode() bool {
	data, err := os.ReadFile(c.debugPath())
	if err != nil {
		return false
	}
	var state struct {
		DebugMode bool `json:"debug_mode"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return false
	}
	return state.DebugMode
}

// SetDebugMode persists the debug flag across invocations.
func (c *Config) SetDebugMode(enabled bool) error {
	if err := os.MkdirAll(c.DataDir, 0o750); err != nil {
		return fmt.Errorf("config: create data dir: %w", err)
	}
	data, err := json.MarshalIndent(struct {
		DebugMode bool `json:"debug_mode"`
	}{enabled}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.debugPath(), data, 0o600); err != nil {
		return fmt.Errorf("config: write debug state: %w", err)
	}
	return nil
}

// Provider looks up a named auth provider.
func (c *Config) Provider(name string) (AuthProvider, bool) {
	for _, p := range c.Auth {
		if p.Name == name {
			return p, true
		}
	}
	return AuthProvider{}, false
}
