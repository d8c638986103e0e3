// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var fileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._\- ]+$`)

// ValidFileName reports whether path is non-empty and its base name only
// uses letters, digits, '.', '_', '-' and spaces. Directories in the path
// are not checked.
func ValidFileName(path string) bool {
	if path == "" {
		return false
	}
	return fileNamePattern.MatchString(filepath.Base(path))
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

// ValidKey reports whether key is a usable shift for an alphabet of size n.
func ValidKey(key, n int) bool {
	return key >= 0 && key < n
}

// CheckKey returns ErrKeyOutOfRange (wrapped with the range) when key is
// not in [0, n).
func CheckKey(key, n int) error {
	if !ValidKey(key, n) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrKeyOutOfRange, key, n)
	}
	return nil
}
