// Package main exposes the entrypoint helpers used by main().
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"io"

	"github.com/jsdraven/FFI_Tools_GoLang/internal/config"
	"github.com/jsdraven/FFI_Tools_GoLang/internal/entry"
)

// run loads config, executes the command, and maps the outcome to an exit
// status: 0 on success, 1 on parse or sink errors.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	cmd := entry.NewCommand(cfg, stdout)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	cmd.SetOut(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
