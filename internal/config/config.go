package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides (PORTFOLIO_SERVER_ADDR, ...)
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	ServerAddr        string        `koanf:"server_addr" yaml:"server_addr"`
	ContentPath       string        `koanf:"content_path" yaml:"content_path"`
	StaticDir         string        `koanf:"static_dir" yaml:"static_dir"`
	Watch             bool          `koanf:"watch" yaml:"watch"`
	CORSAllowAll      bool          `koanf:"cors_allow_all" yaml:"cors_allow_all"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" yaml:"read_header_timeout"`
	LogFile           string        `koanf:"log_file" yaml:"log_file"`
	View              ViewConfig    `koanf:"view" yaml:"view"`
}

// ViewConfig holds settings shared by the web and terminal renderers
type ViewConfig struct {
	Lookahead    float64 `koanf:"lookahead" yaml:"lookahead"`
	RowUnits     float64 `koanf:"row_units" yaml:"row_units"`
	FPS          int     `koanf:"fps" yaml:"fps"`
	GlamourStyle string  `koanf:"glamour_style" yaml:"glamour_style"`
}

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		ServerAddr:        ":8080",
		StaticDir:         "static",
		Watch:             true,
		ReadHeaderTimeout: 10 * time.Second,
		View: ViewConfig{
			Lookahead:    200,
			RowUnits:     20,
			FPS:          60,
			GlamourStyle: "dark",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access config %s: %w", path, err)
		}
	}

	// PORTFOLIO_VIEW__ROW_UNITS -> view.row_units
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Deployments configured for the original server still set SERVER_ADDR.
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && !k.Exists("server_addr") {
		cfg.ServerAddr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server_addr is required")
	}
	if c.View.Lookahead < 0 {
		return fmt.Errorf("view.lookahead must be non-negative")
	}
	if c.View.RowUnits <= 0 {
		return fmt.Errorf("view.row_units must be positive")
	}
	if c.View.FPS <= 0 || c.View.FPS > 240 {
		return fmt.Errorf("view.fps must be between 1 and 240")
	}
	if c.ReadHeaderTimeout < 0 {
		return fmt.Errorf("read_header_timeout must be non-negative")
	}
	return nil
}
