// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// SettingsFileName is the name of the optional settings file (without extension).
	SettingsFileName = "config"
	// SettingsFileExt is the settings file extension.
	SettingsFileExt = "toml"
)

// Settings holds user preferences read from <home>/config.toml. A missing
// file yields the zero value; only an unreadable or malformed file is an error.
type Settings struct {
	// DefaultSource is applied as the --source filter when the user gives none.
	DefaultSource string `mapstructure:"default_source"`
	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `mapstructure:"verbose"`
	// NoColor disables styled output.
	NoColor bool `mapstructure:"no_color"`
}

// LoadSettings reads the settings file from the guppi home directory.
func LoadSettings() (*Settings, error) {
	home, err := Home()
	if err != nil {
		return nil, err
	}
	return loadSettingsFrom(home)
}

func loadSettingsFrom(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(SettingsFileName)
	v.SetConfigType(SettingsFileExt)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SettingsPath returns the expected location of the settings file, whether or
// not it exists.
func SettingsPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, SettingsFileName+"."+SettingsFileExt), nil
}
