package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	State StateConfig
	UI    UIConfig
}

// StateConfig holds persistence settings.
type StateConfig struct {
	Dir             string
	LayoutFile      string `mapstructure:"layout_file"`
	DebounceSeconds int    `mapstructure:"debounce_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string
	Locale string
}

// LayoutPath resolves the layout file; a relative name lives under the
// state dir.
func (c Config) LayoutPath() string {
	if filepath.IsAbs(c.State.LayoutFile) {
		return c.State.LayoutFile
	}
	return filepath.Join(c.State.Dir, c.State.LayoutFile)
}

// LogPath is the log file under the state dir.
func (c Config) LogPath() string {
	return filepath.Join(c.State.Dir, "dockyard.log")
}

// Load reads configuration from file and env. Env var overrides use
// prefix DOCKYARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("state.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "dockyard"))
	v.SetDefault("state.layout_file", "layout.json")
	v.SetDefault("state.debounce_seconds", 10)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.locale", "en")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DOCKYARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dockyard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCKYARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config
// directory if needed. Used by the in-app theme and locale toggles so
// preferences survive restarts.
func Save(cfg Config) error {
	path := os.Getenv("DOCKYARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "dockyard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("state.dir", cfg.State.Dir)
	v.Set("state.layout_file", cfg.State.LayoutFile)
	v.Set("state.debounce_seconds", cfg.State.DebounceSeconds)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.locale", cfg.UI.Locale)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
