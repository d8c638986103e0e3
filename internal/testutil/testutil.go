// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds in-memory doubles shared by package tests.
package testutil

import (
	"fmt"
	"sync"

	"github.com/cesarkit/cesar/internal/files"
)

// MemStore is an in-memory file store. Reading a missing path fails with
// files.ErrNotCreated, like a Manager whose confirmer declines.
type MemStore struct {
	mu       sync.Mutex
	Files    map[string]string
	WriteErr error // returned by every Write when set
}

// NewMemStore returns a store seeded with a copy of seed.
func NewMemStore(seed map[string]string) *MemStore {
	m := &MemStore{Files: map[string]string{}}
	for k, v := range seed {
		m.Files[k] = v
	}
	return m
}

func (m *MemStore) Read(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", files.ErrNotCreated, path)
	}
	return c, nil
}

func (m *MemStore) Write(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = content
	return nil
}

// Reporter collects reported lines.
type Reporter struct{ Lines []string }

func (r *Reporter) Reportf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}
