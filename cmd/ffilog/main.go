//go:build !cover

// Package main is the entrypoint for the ffilog harness helper.
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
