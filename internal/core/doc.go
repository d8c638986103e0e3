// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core contains the UI-agnostic operations shared by the CLI and the
// TUI: encrypting, decrypting and cracking text or files. The cipher and the
// key search themselves live in internal/cipher and internal/bruteforce; this
// package adds input validation, file handling and the properties record.
// File access is injected through the small FileStore interface so tests can
// run without touching the disk.
package core
