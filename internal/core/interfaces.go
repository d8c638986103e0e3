// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package core

// FileStore reads and writes whole text files. *files.Manager implements it.
type FileStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// Reporter is used by operations to emit human-readable progress messages.
// Implementations may write to stdout, logs, or test buffers.
type Reporter interface {
	Reportf(format string, args ...any)
}

// nopReporter drops every message.
type nopReporter struct{}

func (nopReporter) Reportf(string, ...any) {}
