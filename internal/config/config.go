// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name.
	AppName = "guppi"
	// HomeEnvVar overrides the home directory location when set.
	HomeEnvVar = "GUPPI_HOME"
	// SourcesDirName is the subdirectory of the home that holds configured sources.
	SourcesDirName = "sources"
)

// homeOverride allows tests to redirect the home directory.
var homeOverride string

// SetHomeOverride redirects Home to dir. Pass "" to restore the default lookup.
func SetHomeOverride(dir string) {
	homeOverride = dir
}

// Home returns the guppi home directory (~/.guppi by default, GUPPI_HOME when
// set), creating it on first access.
func Home() (string, error) {
	dir := homeOverride
	if dir == "" {
		dir = os.Getenv(HomeEnvVar)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "."+AppName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create guppi home %s: %w", dir, err)
	}
	return dir, nil
}

// SourcesDir returns the directory holding configured tool sources
// (<home>/sources), creating it on first access.
func SourcesDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}

	sources := filepath.Join(home, SourcesDirName)
	if err := os.MkdirAll(sources, 0o755); err != nil {
		return "", fmt.Errorf("failed to create sources directory %s: %w", sources, err)
	}
	return sources, nil
}
