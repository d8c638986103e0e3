// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package files

import (
	"errors"
	"os"
)

var (
	// ErrInvalidFileName: the base name is empty or uses characters outside
	// letters, digits, '.', '_', '-' and space.
	ErrInvalidFileName = errors.New("invalid file name")
	// ErrNotCreated: the file does not exist and the user declined to create it.
	ErrNotCreated = errors.New("file does not exist and was not created")
	// ErrKeyOutOfRange: a shift key outside [0, alphabet length).
	ErrKeyOutOfRange = errors.New("key out of range")
)

// IsNotExist reports whether err means a file is missing, either because
// the OS said so or because creation was declined.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotCreated) || errors.Is(err, os.ErrNotExist)
}
