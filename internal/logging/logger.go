// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps the charmbracelet logger used across cesar.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below; tests may swap L for a buffer-backed logger.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "cesar"})

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and
// applies it to L. An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutput redirects L.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Formatter returns the charmbracelet formatter for name: "json", "logfmt"
// or anything else for the default text formatter.
func Formatter(name string) clog.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return clog.JSONFormatter
	case "logfmt":
		return clog.LogfmtFormatter
	default:
		return clog.TextFormatter
	}
}

// NewStructured returns a logger writing records with the given formatter at
// debug level, for event streams that must not be filtered by L's level.
func NewStructured(w io.Writer, format string) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Level:     clog.DebugLevel,
		Formatter: Formatter(format),
	})
}

// SetDebug switches L between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}
