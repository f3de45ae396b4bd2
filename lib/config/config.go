// Package config the domkit command line configuration
package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shiroyk/domkit/fetch"
	"gopkg.in/yaml.v3"
)

// DefaultPath the default configuration file path.
const DefaultPath = "~/.config/domkit/config.yml"

type configKey struct{}

// NewContext returns a context that contains the given Config.
func NewContext(ctx context.Context, config *Config) context.Context {
	return context.WithValue(ctx, configKey{}, config)
}

// FromContext returns the Config stored in ctx by NewContext, or the default
// Config if there is none.
func FromContext(ctx context.Context) *Config {
	if config, ok := ctx.Value(configKey{}).(*Config); ok {
		return config
	}
	return DefaultConfig()
}

// Config The domkit configuration
type Config struct {
	Log    Log           `yaml:"log"`
	Script Script        `yaml:"script"`
	Query  Query         `yaml:"query"`
	Fetch  fetch.Options `yaml:"fetch"`
}

// Log the logging options.
type Log struct {
	// Level one of debug, info, warn, error.
	Level string `yaml:"level"`
	// NoColor disables the colored console output.
	NoColor bool `yaml:"no-color"`
}

// Script the `run` command options.
type Script struct {
	// Timeout interrupts a script running longer, zero is unlimited.
	Timeout time.Duration `yaml:"timeout"`
}

// Query the `query` command options.
type Query struct {
	// Text prints the text content of the matches instead of their HTML.
	Text bool `yaml:"text"`
	// Separator printed between matches.
	Separator string `yaml:"separator"`
}

// DefaultConfig The default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: Log{
			Level:   slog.LevelInfo.String(),
			NoColor: os.Getenv("NO_COLOR") != "",
		},
		Script: Script{
			Timeout: time.Minute,
		},
		Query: Query{
			Separator: "\n",
		},
		Fetch: fetch.Options{
			MaxBodySize: fetch.DefaultMaxBodySize,
			RetryTimes:  fetch.DefaultRetryTimes,
			Timeout:     fetch.DefaultTimeout,
		},
	}
}

// Level returns the parsed log level, info if it is invalid.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ReadConfig read configuration from the file.
// If the configuration file is not existing then create it with default configuration.
func ReadConfig(path string) (*Config, error) {
	file, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return WriteConfig(file, DefaultConfig())
	}
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err = yaml.Unmarshal(bytes, config); err != nil {
		return nil, err
	}
	return config, nil
}

// WriteConfig writes the configuration to the file, creating the directory if needed.
func WriteConfig(path string, config *Config) (*Config, error) {
	file, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return nil, err
	}
	bytes, err := yaml.Marshal(config)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(file, bytes, 0644); err != nil {
		return nil, err
	}
	return config, nil
}

// ExpandPath expands a leading `~` to the home directory and a leading
// `.` to the working directory.
func ExpandPath(path string) (string, error) {
	switch {
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	case path == "." || strings.HasPrefix(path, "./"):
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, path[1:]), nil
	}
	return path, nil
}
