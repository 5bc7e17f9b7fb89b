// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first configuration file across a list of search
//              directories, base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-16 v0.2.0: Home and XDG search paths

package config

import (
	"os"
	"path/filepath"
	"strings"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
)

// DefaultName is the base file name searched by DefaultDiscoveryOptions
const DefaultName = "cmdkit"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, the home
// directory and $XDG_CONFIG_HOME/cmdkit for cmdkit.toml, cmdkit.yaml or
// cmdkit.yml. A missing file is not an error.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, DefaultName))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{DefaultName},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  strings.ToUpper(DefaultName),
		Required:   false,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration, or a NOT_FOUND error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{DefaultName}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			return nil, kiterror.Wrap(loadErr, "found config file but failed to load").
				WithOperation("config.discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		return nil, kiterror.Wrap(err, "no configuration file found").
			WithCode(kiterror.CodeMissingConfig).
			WithDetail("searchPaths", ListPossibleConfigFiles(options))
	}

	return Empty(options.EnvPrefix), nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", kiterrors.NotFoundError(kiterrors.ModuleConfig, "discover", "config file",
		strings.Join(options.Filenames, ","))
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
