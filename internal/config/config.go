// Package config loads quark configuration from files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/logging"
	"github.com/opencode-ai/quark/internal/palette"
)

// EnvPrefix prefixes every environment override, e.g. QUARK_PALETTE.
const EnvPrefix = "QUARK"

// Config is the resolved quark configuration.
type Config struct {
	Palette     string            `mapstructure:"palette"`
	ClassPrefix string            `mapstructure:"class_prefix"`
	ProjectDir  string            `mapstructure:"project_dir"`
	Colors      map[string]string `mapstructure:"colors"`
	Logging     LoggingConfig     `mapstructure:"logging"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Palette:     palette.DefaultName,
		ClassPrefix: "text",
		Colors:      map[string]string{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path, or from config.{yaml,toml} in the
// working directory or ~/.config/quark when path is empty. A missing
// discovered file is not an error. QUARK_* environment variables override
// file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "quark"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file. A missing file
// is ignored; variables already set in the environment win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("palette", cfg.Palette)
	v.SetDefault("class_prefix", cfg.ClassPrefix)
	v.SetDefault("project_dir", cfg.ProjectDir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

func (c *Config) normalize() {
	c.Palette = strings.TrimSpace(c.Palette)
	c.ClassPrefix = strings.TrimSpace(c.ClassPrefix)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Colors == nil {
		c.Colors = map[string]string{}
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Palette == "" {
		return errors.New("config: palette is required")
	}
	if c.ClassPrefix == "" {
		return errors.New("config: class_prefix is required")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// NamedColors returns the configured color aliases parsed into Colors.
// A value such as "css:primary" configures a literal spelled like a token.
func (c *Config) NamedColors() map[string]color.Color {
	out := make(map[string]color.Color, len(c.Colors))
	for name, value := range c.Colors {
		out[name] = color.Parse(value)
	}
	return out
}

// ColorNames returns the configured alias names in sorted order.
func (c *Config) ColorNames() []string {
	names := make([]string, 0, len(c.Colors))
	for name := range c.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
