// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cesarkit/cesar/internal/i18n"
)

// Properties records how a file was encrypted.
type Properties struct {
	Input  string
	Output string
	Key    int
}

// String renders the properties as localized "label: value" lines.
func (p Properties) String() string {
	return i18n.T("properties.input") + ": " + p.Input + "\n" +
		i18n.T("properties.output") + ": " + p.Output + "\n" +
		i18n.T("properties.key") + ": " + strconv.Itoa(p.Key)
}

// WriteProperties writes p to path, creating parent directories. The file
// is application metadata, so no confirmation is asked.
func WriteProperties(path string, p Properties) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(p.String()), defaultPerm()); err != nil {
		return fmt.Errorf("write properties %s: %w", path, err)
	}
	return nil
}
