// Package config loads runtime settings for the minifs shell with viper:
// built-in defaults, an optional config file, then MINIFS_* environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/joshuapare/minifs/internal/format"
)

const (
	// AppName is the application name.
	AppName = "minifs"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "minifs"
	// EnvPrefix prefixes every environment override, e.g. MINIFS_ARENA_SIZE.
	EnvPrefix = "MINIFS"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the effective configuration.
type Config struct {
	Arena ArenaConfig `mapstructure:"arena"`
	Shell ShellConfig `mapstructure:"shell"`
	Log   LogConfig   `mapstructure:"log"`
}

// ArenaConfig sizes and places the memory arena behind the page allocator.
type ArenaConfig struct {
	Size         uint64 `mapstructure:"size"`
	LogicalBase  uint64 `mapstructure:"logical_base"`
	PhysicalBase uint64 `mapstructure:"physical_base"`
}

// ShellConfig controls the interactive session.
type ShellConfig struct {
	Banner bool `mapstructure:"banner"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Size:         16 << 20,
			LogicalBase:  0x10000,
			PhysicalBase: 0x10000,
		},
		Shell: ShellConfig{Banner: true},
		Log:   LogConfig{Level: "error"},
	}
}

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only config file consulted and must exist.
	ConfigFilePath string
	// SearchPaths are directories searched for minifs.{yaml,toml,json} when
	// ConfigFilePath is empty. Defaults to the working directory and the
	// user config directory.
	SearchPaths []string
}

// Load builds the effective configuration and reports which file, if any,
// was read.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("arena.size", defaults.Arena.Size)
	v.SetDefault("arena.logical_base", defaults.Arena.LogicalBase)
	v.SetDefault("arena.physical_base", defaults.Arena.PhysicalBase)
	v.SetDefault("shell.banner", defaults.Shell.Banner)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
	} else {
		v.SetConfigName(ConfigFileName)
		paths := opts.SearchPaths
		if paths == nil {
			paths = defaultSearchPaths()
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Validate checks the arena against the page and table geometry.
func (c *Config) Validate() error {
	if c.Arena.Size == 0 {
		return fmt.Errorf("%w: arena.size must be > 0", ErrInvalid)
	}
	if !format.IsPageAligned(c.Arena.LogicalBase) {
		return fmt.Errorf("%w: arena.logical_base 0x%x is not page aligned", ErrInvalid, c.Arena.LogicalBase)
	}
	if !format.IsPageAligned(c.Arena.PhysicalBase) {
		return fmt.Errorf("%w: arena.physical_base 0x%x is not page aligned", ErrInvalid, c.Arena.PhysicalBase)
	}
	if format.AlignPage(c.Arena.Size) < format.AlignPage(format.TableSize) {
		return fmt.Errorf("%w: arena.size %d cannot hold the directory table", ErrInvalid, c.Arena.Size)
	}
	return nil
}

// ArenaBytes is the arena size rounded up to whole pages.
func (c *Config) ArenaBytes() uint64 {
	return format.AlignPage(c.Arena.Size)
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	return paths
}
