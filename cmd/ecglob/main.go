// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

// Package main provides the ecglob command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/woozymasta/ecglob/cmd/ecglob/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
