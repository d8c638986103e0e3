// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Cesar.
//
// Usage:
//
//	go run . [flags]
//	./cesar [command] [flags]
//
// Without a command this launches the interactive menu. See --help for options.
package main

import (
	"os"

	"github.com/cesarkit/cesar/internal/logging"
	"github.com/cesarkit/cesar/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("cesar: %v", err)
		os.Exit(1)
	}
}
