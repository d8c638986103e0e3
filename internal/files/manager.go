// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package files reads and writes the plain-text files handled by cesar.
// Missing files are only created after a Confirmer agrees.
package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
)

// Confirmer answers yes/no questions such as "create this file?".
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// AutoConfirm answers every question with its own value.
type AutoConfirm bool

func (a AutoConfirm) Confirm(string) (bool, error) { return bool(a), nil }

// PromptConfirmer prints the question to Out and reads one answer line from In.
type PromptConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewPromptConfirmer returns a confirmer reading from in and writing to out.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{In: bufio.NewReader(in), Out: out}
}

// Confirm accepts "s", "si", "sí", "y" and "yes" in any case. End of input
// counts as "no".
func (p *PromptConfirmer) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "%s %s ", question, i18n.T("files.confirm_hint")); err != nil {
		return false, err
	}
	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	}
	return false, nil
}

// Manager reads and writes whole files as UTF-8 text.
type Manager struct {
	confirm Confirmer
	perm    os.FileMode
}

// NewManager returns a Manager asking c before creating files. A nil c never
// creates anything.
func NewManager(c Confirmer) *Manager {
	if c == nil {
		c = AutoConfirm(false)
	}
	return &Manager{confirm: c, perm: defaultPerm()}
}

// WithConfirmer returns a copy of m that asks c instead.
func (m *Manager) WithConfirmer(c Confirmer) *Manager {
	out := *m
	if c == nil {
		c = AutoConfirm(false)
	}
	out.confirm = c
	return &out
}

// defaultPerm is 0644 on Unix-like systems; Windows ignores POSIX bits.
func defaultPerm() os.FileMode {
	if runtime.GOOS == "windows" {
		return 0o666
	}
	return 0o644
}

// Read returns the content of path. When the file is missing the confirmer
// is asked whether to create it; an agreed creation yields an empty file
// and an empty string.
func (m *Manager) Read(path string) (string, error) {
	if !ValidFileName(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, path)
	}
	if !FileExists(path) {
		ok, err := m.confirm.Confirm(i18n.T("files.confirm_create", path))
		if err != nil {
			return "", fmt.Errorf("confirm create %s: %w", path, err)
		}
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotCreated, path)
		}
		if err := m.create(path, ""); err != nil {
			return "", err
		}
		logging.Warnf("%s", i18n.T("files.created_empty", path))
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		logging.Warnf("%s", i18n.T("files.empty", path))
		return "", nil
	}
	return string(data), nil
}

// Write replaces the content of path. A missing file is created only if
// the confirmer agrees; otherwise ErrNotCreated is returned.
func (m *Manager) Write(path, content string) error {
	if !ValidFileName(path) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, path)
	}
	if !FileExists(path) {
		ok, err := m.confirm.Confirm(i18n.T("files.confirm_create", path))
		if err != nil {
			return fmt.Errorf("confirm create %s: %w", path, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotCreated, path)
		}
		if err := m.create(path, content); err != nil {
			return err
		}
		logging.Infof("%s", i18n.T("files.created", path))
		return nil
	}

	if err := os.WriteFile(path, []byte(content), m.perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.Infof("%s", i18n.T("files.overwritten", path))
	return nil
}

func (m *Manager) create(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), m.perm); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}
