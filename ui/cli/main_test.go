// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cesarkit/cesar/internal/cipher"
	"github.com/cesarkit/cesar/internal/config"
	"github.com/cesarkit/cesar/internal/files"
	"github.com/cesarkit/cesar/internal/logging"
	"github.com/cesarkit/cesar/internal/tui"
)

// executeCommand runs a fresh root command with the given arguments and
// captures stdout and stderr. Configuration is isolated in a temp dir.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("CESAR_FILES_PROPERTIES", filepath.Join(tmp, "files", "properties.txt"))

	var stdout, stderr bytes.Buffer
	logging.SetOutput(&stderr)
	defer logging.SetOutput(os.Stderr)

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd := NewRootCmd()
	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--language", "en"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEncryptDecrypt_TextAndStdin(t *testing.T) {
	out, _, err := executeCommand(t, nil, "encrypt", "--text", "ABC", "-k", "1")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if out != "BCD\n" {
		t.Fatalf("expected BCD, got %q", out)
	}

	out, _, err = executeCommand(t, strings.NewReader("BCD"), "decrypt", "-k", "1")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if out != "ABC\n" {
		t.Fatalf("expected ABC, got %q", out)
	}
}

func TestEncrypt_Errors(t *testing.T) {
	_, _, err := executeCommand(t, nil, "encrypt", "--text", "hola", "-k", "61")
	if !errors.Is(err, files.ErrKeyOutOfRange) {
		t.Fatalf("expected ErrKeyOutOfRange, got %v", err)
	}

	_, _, err = executeCommand(t, nil, "encrypt", "-k", "3")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}

	_, _, err = executeCommand(t, nil, "encrypt", "--text", "hola")
	if err == nil || !strings.Contains(err.Error(), "key") {
		t.Fatalf("expected missing --key error, got %v", err)
	}
}

func TestCrack_RecoversPlaintextAndTraces(t *testing.T) {
	ciphertext := cipher.Encrypt("el perro y la gata", 5)

	out, errOut, err := executeCommand(t, nil, "crack", "--text", ciphertext)
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if out != "el perro y la gata\n" {
		t.Fatalf("unexpected plaintext %q", out)
	}
	if strings.Count(errOut, "Key: ") != cipher.AlphabetLength() {
		t.Fatalf("expected one trace line per key, got:\n%s", errOut)
	}
	if !strings.Contains(errOut, "Best key found: 5 with score: 37\n") {
		t.Fatalf("missing best line in trace:\n%s", errOut)
	}

	out, errOut, err = executeCommand(t, nil, "crack", "--text", ciphertext, "--trace", "none", "--top", "2")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if out != "el perro y la gata\n" || strings.Contains(errOut, "Best key found") {
		t.Fatalf("trace none still traced: out=%q err=%q", out, errOut)
	}
	if !strings.Contains(errOut, "key 5") {
		t.Fatalf("expected top candidates on stderr, got %q", errOut)
	}

	_, _, err = executeCommand(t, nil, "crack", "--text", ciphertext, "--trace", "xml")
	if !errors.Is(err, ErrUnknownTrace) {
		t.Fatalf("expected ErrUnknownTrace, got %v", err)
	}
}

func TestCrack_OutputFileSendsTraceToStdout(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "plain.txt")
	ciphertext := cipher.Encrypt("la casa azul", 9)

	out, _, err := executeCommand(t, nil, "crack", "-y", "--text", ciphertext, "--output", outFile, "--trace", "json")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if strings.Count(out, "candidate") != cipher.AlphabetLength() {
		t.Fatalf("expected json trace on stdout, got:\n%s", out)
	}
	b, err := os.ReadFile(outFile)
	if err != nil || string(b) != "la casa azul" {
		t.Fatalf("output file = %q, %v", b, err)
	}
}

func TestEncryptFile_WritesProperties(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outFile := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("Hola mundo"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	props := filepath.Join(dir, "props", "properties.txt")
	t.Setenv("CESAR_FILES_PROPERTIES", props)

	// executeCommand overrides CESAR_FILES_PROPERTIES, so build the command here
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--language", "en", "encrypt", "-y", "-f", in, "-o", outFile, "-k", "4"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	b, err := os.ReadFile(outFile)
	if err != nil || string(b) != cipher.Encrypt("Hola mundo", 4) {
		t.Fatalf("ciphertext = %q, %v", b, err)
	}
	p, err := os.ReadFile(props)
	if err != nil {
		t.Fatalf("properties not written: %v", err)
	}
	if !strings.HasSuffix(string(p), "Key: 4") {
		t.Fatalf("unexpected properties %q", p)
	}
}

func TestEncrypt_MissingOutputDeclinedWithoutYes(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.txt")
	_, _, err := executeCommand(t, nil, "encrypt", "--text", "hola", "-k", "2", "-o", outFile)
	if !errors.Is(err, files.ErrNotCreated) {
		t.Fatalf("expected ErrNotCreated, got %v", err)
	}
}

func TestAlphabetAndScore(t *testing.T) {
	out, _, err := executeCommand(t, nil, "alphabet")
	if err != nil {
		t.Fatalf("alphabet failed: %v", err)
	}
	if !strings.Contains(out, "61") || !strings.Contains(out, " 0 'A'\n") || !strings.Contains(out, "52 ' '\n") {
		t.Fatalf("unexpected alphabet output:\n%s", out)
	}

	out, _, err = executeCommand(t, nil, "score", "el perro y la gata")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !strings.Contains(out, "Score: 37") || !strings.Contains(out, "Valid words: 5 of 5 tokens") {
		t.Fatalf("unexpected score output %q", out)
	}
}

func TestConfigFlag_ExtraDictionary(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(words, []byte("# extra\nzorblat\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfgPath := filepath.Join(dir, "cesar.yaml")
	if err := os.WriteFile(cfgPath, []byte("dictionary:\n  extra_file: "+words+"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := executeCommand(t, nil, "--config", cfgPath, "score", "zorblat")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !strings.Contains(out, "Score: 14") {
		t.Fatalf("extra word not scored: %q", out)
	}

	_, _, err = executeCommand(t, nil, "--config", filepath.Join(dir, "missing.yaml"), "alphabet")
	if err == nil {
		t.Fatalf("expected error for a missing --config file")
	}
}

func TestRoot_LaunchesTUI(t *testing.T) {
	orig := runTUI
	defer func() { runTUI = orig }()
	var got tui.Options
	called := false
	runTUI = func(opts tui.Options) error {
		called = true
		got = opts
		return nil
	}
	if _, _, err := executeCommand(t, nil); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !called || got.Service == nil || got.SaveConfig == nil {
		t.Fatalf("TUI not launched with services: %+v", got)
	}
	if got.Config.Language != "en" || got.Config.Cipher.DefaultKey != 3 {
		t.Fatalf("unexpected config passed to TUI: %+v", got.Config)
	}
}

func TestFirstRun_WritesDefaultConfig(t *testing.T) {
	if _, _, err := executeCommand(t, nil, "alphabet"); err != nil {
		t.Fatalf("alphabet failed: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
}
