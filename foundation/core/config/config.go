// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML and YAML configuration files into a nested map and
//              provides typed, dot-notation access with environment variable
//              overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Raw value access for settings, dropped file watching
//                      and typed getters

// Package config loads command configuration from TOML or YAML files.
//
// Keys use dot notation ("display.colors"). When an environment prefix is
// set, CMDKIT_DISPLAY_COLORS overrides display.colors.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	"github.com/msto63/cmdkit/foundation/utils/mapx"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, kiterrors.InputError(kiterrors.ModuleConfig, "load", filePath, "a config file path").
			WithCode(kiterror.CodeValidationFailed)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, kiterrors.NotFoundError(kiterrors.ModuleConfig, "load", "config file", filePath).
			WithCode(kiterror.CodeMissingConfig).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, kiterrors.OperationError(kiterrors.ModuleConfig, "load", kiterror.CodeConfigError, err,
			map[string]interface{}{"filePath": filePath})
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, kiterror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath)
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration without values. Environment overrides
// still apply when prefix is set.
func Empty(prefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: prefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, kiterrors.OperationError(kiterrors.ModuleConfig, "parse", kiterror.CodeInvalidConfig, err,
				map[string]interface{}{"format": format.String()})
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, kiterrors.OperationError(kiterrors.ModuleConfig, "parse", kiterror.CodeInvalidConfig, err,
				map[string]interface{}{"format": format.String()})
		}
	default:
		return nil, kiterror.Newf("unsupported format: %s", format).
			WithCode(kiterror.CodeUnsupported).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	return mapx.Merge(defaults, data)
}

// Raw returns the textual form of key: the environment override when set,
// otherwise the file value formatted with %v.
func (c *Config) Raw(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.lookupEnv(key); ok {
		return envValue, true
	}

	value := c.getValue(key)
	if value == nil {
		return "", false
	}
	if _, nested := value.(map[string]interface{}); nested {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if raw, ok := c.Raw(key); ok {
		return raw
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// getValue retrieves a configuration value by key (supports dot notation)
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// lookupEnv returns the environment override for key. Overrides are only
// consulted when an environment prefix is configured.
func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	return os.LookupEnv(c.EnvKey(key))
}

// EnvKey converts a config key to its environment variable name:
// display.colors with prefix cmdkit becomes CMDKIT_DISPLAY_COLORS.
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Keys returns the sorted top-level keys
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return mapx.SortedKeys(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format.String())}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
