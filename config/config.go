// Package config loads loader settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/quantkit/pluginhost/parser"
	"github.com/quantkit/pluginhost/plugin"
)

// DefaultFileName is the conventional config file name.
const DefaultFileName = "plugins.yaml"

// Config describes where descriptors live and how they are read.
type Config struct {
	// BasePath is the directory holding platform/plugins and
	// strategy/plugins. Relative paths are resolved against the config
	// file's directory. Empty means auto-detect.
	BasePath string `yaml:"base_path,omitempty"`

	PlatformDir string `yaml:"platform_dir,omitempty"`
	StrategyDir string `yaml:"strategy_dir,omitempty"`

	// Format selects the descriptor parser: json or yaml.
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`

	dir string
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Format:   "json",
		LogLevel: "info",
	}
}

// Load reads a config file. A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	cfg := DefaultConfig()
	cfg.dir = dir

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	var out Config
	if err := yaml.NewDecoder(file).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config YAML: %w", err)
	}
	cfg.merge(&out)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.OpenFile(filepath.Base(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating config %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validate checks the format and log level.
func (c *Config) Validate() error {
	if _, err := parser.ForFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// LoaderOptions translates the config into plugin loader options.
func (c *Config) LoaderOptions(logger *slog.Logger) ([]plugin.Option, error) {
	p, err := parser.ForFormat(c.Format)
	if err != nil {
		return nil, err
	}

	opts := []plugin.Option{plugin.WithParser(p)}
	if logger != nil {
		opts = append(opts, plugin.WithLogger(logger))
	}
	if c.BasePath != "" {
		opts = append(opts, plugin.WithBasePath(c.resolve(c.BasePath)))
	}
	if c.PlatformDir != "" {
		opts = append(opts, plugin.WithPlatformDir(c.resolve(c.PlatformDir)))
	}
	if c.StrategyDir != "" {
		opts = append(opts, plugin.WithStrategyDir(c.resolve(c.StrategyDir)))
	}
	return opts, nil
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return lvl, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// merge copies the fields set in other onto c.
func (c *Config) merge(other *Config) {
	if other.BasePath != "" {
		c.BasePath = other.BasePath
	}
	if other.PlatformDir != "" {
		c.PlatformDir = other.PlatformDir
	}
	if other.StrategyDir != "" {
		c.StrategyDir = other.StrategyDir
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
