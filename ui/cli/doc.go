// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for cesar using Cobra.
// It wires configuration, logging and i18n, and provides commands that
// delegate to the `core` service. CLI code should remain thin and leave the
// cipher and search logic to the internal packages.
package cli
