// Package config loads configuration with the following precedence (highest
// first): runtime overrides from flags, PROMPTBOX_* environment variables,
// $XDG_CONFIG_HOME/promptbox/config.yaml, built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage selects and locates the persistence sink.
type Storage struct {
	// Backend is "file" (one JSON file per key in Path) or "sqlite"
	// (a promptbox.db file inside Path).
	Backend string `mapstructure:"backend" validate:"oneof=file sqlite"`
	Path    string `mapstructure:"path" validate:"required"`
}

// Log configures the slog logger.
type Log struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	File  string `mapstructure:"file"`
}

// Sort holds the default listing order.
type Sort struct {
	Type      string `mapstructure:"type" validate:"oneof=name date favorites"`
	Direction string `mapstructure:"direction" validate:"oneof=asc desc"`
}

// Schema is the validated configuration.
type Schema struct {
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
	Sort    Sort    `mapstructure:"sort"`
}

// RuntimeOverrides carries flag values that take precedence over every other
// source; nil fields are ignored.
type RuntimeOverrides struct {
	LogLevel       *string
	LogFile        *string
	StorageBackend *string
	StoragePath    *string
}

// New loads, merges, and validates the configuration.
func New(overrides *RuntimeOverrides) (*Schema, error) {
	v := viper.New()

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", defaultDataDir())
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", "")
	v.SetDefault("sort.type", "name")
	v.SetDefault("sort.direction", "asc")

	v.SetEnvPrefix("PROMPTBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var schema Schema
	if err := v.Unmarshal(&schema); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if overrides != nil {
		if overrides.LogLevel != nil {
			schema.Log.Level = strings.ToUpper(*overrides.LogLevel)
		}
		if overrides.LogFile != nil {
			schema.Log.File = *overrides.LogFile
		}
		if overrides.StorageBackend != nil {
			schema.Storage.Backend = *overrides.StorageBackend
		}
		if overrides.StoragePath != nil {
			schema.Storage.Path = *overrides.StoragePath
		}
	}
	schema.Log.Level = strings.ToUpper(schema.Log.Level)

	validate := validator.New()
	if err := validate.Struct(schema); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &schema, nil
}

func configDir() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "promptbox")
}

func defaultDataDir() string {
	xdgData := os.Getenv("XDG_DATA_HOME")
	if xdgData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		xdgData = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(xdgData, "promptbox")
}
