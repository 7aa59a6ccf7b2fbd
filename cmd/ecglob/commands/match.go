// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package commands

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/ecglob"
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN PATH",
	Short: "Match one glob pattern against one path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		matched, err := ecglob.Match(args[0], args[1])
		if err != nil {
			return err
		}

		if matched {
			cmd.Println("match")
		} else {
			cmd.Println("no match")
		}

		return nil
	},
}
