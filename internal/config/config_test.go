package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/cesarkit/cesar/internal/config"
)

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfgDir := filepath.Join(tmp, "cesar")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(filepath.Join(cfgDir, "cesar.yaml"))
	if err != nil {
		t.Fatalf("create empty file: %v", err)
	}
	f.Close()

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "es" || got.Cipher.DefaultKey != 3 || got.Files.Properties != "files/properties.txt" {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c := cfg.Config{Language: "en"}
	c.Log.Level = "debug"
	c.Cipher.DefaultKey = 11

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if filepath.Base(path) != "cesar.yaml" {
		t.Fatalf("unexpected config file name %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}

	// the written file loads back
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "en" || got.Log.Level != "debug" || got.Cipher.DefaultKey != 11 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmp := t.TempDir()
	yaml := "language: en\nfiles:\n  assume_yes: true\ndictionary:\n  extra_file: words.txt\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "en" {
		t.Fatalf("expected en, got %q", got.Language)
	}
	if !got.Files.AssumeYes || got.Dictionary.ExtraFile != "words.txt" {
		t.Fatalf("nested keys not read: %+v", got)
	}
	if got.Log.Level != "info" {
		t.Fatalf("expected default log level, got %q", got.Log.Level)
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmp := t.TempDir()
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: en\nlog:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("CESAR_LOG_LEVEL", "error")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "")
	if err := cmd.Flags().Set("language", "es"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "es" {
		t.Fatalf("flag should win over file, got %q", got.Language)
	}
	if got.Log.Level != "error" {
		t.Fatalf("env should win over file, got %q", got.Log.Level)
	}
}
