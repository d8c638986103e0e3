// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads cesar settings with viper from defaults, config
// files, CESAR_* environment variables and command flags, and writes them
// back as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted cesar configuration.
type Config struct {
	Language   string           `mapstructure:"language" yaml:"language"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Cipher     CipherConfig     `mapstructure:"cipher" yaml:"cipher"`
	Files      FilesConfig      `mapstructure:"files" yaml:"files"`
	Dictionary DictionaryConfig `mapstructure:"dictionary" yaml:"dictionary"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type CipherConfig struct {
	// DefaultKey pre-fills the key field of the interactive forms.
	DefaultKey int `mapstructure:"default_key" yaml:"default_key"`
}

type FilesConfig struct {
	Properties string `mapstructure:"properties" yaml:"properties"`
	// AssumeYes creates missing files without asking.
	AssumeYes bool `mapstructure:"assume_yes" yaml:"assume_yes"`
}

type DictionaryConfig struct {
	// ExtraFile is a word list (one word per line) added to the primary
	// dictionary.
	ExtraFile string `mapstructure:"extra_file" yaml:"extra_file"`
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":              "es",
		"log.level":             "info",
		"cipher.default_key":    3,
		"files.properties":      "files/properties.txt",
		"files.assume_yes":      false,
		"dictionary.extra_file": "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Cesar")
		default: // Linux, macOS, etc.
			configDir = "/etc/cesar"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "cesar")
	}

	return filepath.Join(configDir, "cesar.yaml"), nil
}

// LoadConfig builds a T from, in increasing precedence: defaults, the first
// cesar.yaml found (explicit path, user dir, system dir, working dir), a
// local .cesar.yaml, CESAR_* environment variables and changed flags of cmd.
// A missing or zero-length config file yields viper.ConfigFileNotFoundError
// together with a T built from the remaining sources.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("cesar")
	v.SetConfigType("yaml")

	// An explicit --config path wins over every search location.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	} else if used := v.ConfigFileUsed(); isEmptyFile(used) {
		notFound = viper.ConfigFileNotFoundError{}
	}

	mergeLocalConfig(v)

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("cesar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Size() == 0
}

// mergeLocalConfig merges a `.cesar.yaml` from the current directory on top
// of the main configuration, so a project folder can carry its own settings.
func mergeLocalConfig(v *viper.Viper) {
	localConfigFile := ".cesar.yaml"
	if _, err := os.Stat(localConfigFile); err == nil {
		v.SetConfigFile(localConfigFile)
		// a malformed local file is ignored rather than blocking startup
		_ = v.MergeInConfig()
		v.SetConfigFile("")
	}
}

// WriteConfigFile writes c as YAML to the user (or system) config path,
// creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
