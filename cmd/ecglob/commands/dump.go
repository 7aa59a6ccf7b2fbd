// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package commands

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/ecglob"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print sections and key/value pairs of a declaration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		fc, err := ecglob.NewFileCache(ecglob.FileCacheOptions{Logger: &logger})
		if err != nil {
			return err
		}
		defer func() { _ = fc.Close() }()

		lastSection := ""
		first := true
		return ecglob.ParseFile(fc, args[0], func(section, key, value string) bool {
			if section != lastSection || first {
				if !first {
					cmd.Println()
				}

				cmd.Printf("[%s]\n", section)
				lastSection = section
				first = false
			}

			cmd.Printf("%s=%s\n", key, value)
			return true
		})
	},
}
