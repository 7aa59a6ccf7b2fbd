// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

// Package commands provides the CLI commands for ecglob.
package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "ecglob",
	Short: "ecglob - editorconfig-style glob matching and declaration inspection",
	Long: `ecglob matches editorconfig-style glob patterns against paths and
inspects declaration files through the package's caching layer.

Run 'ecglob match PATTERN PATH' for a one-shot match, 'ecglob dump FILE' to
print a declaration file's sections and pairs, or 'ecglob watch FILE...' to
stream cache invalidations as files change on disk.`,
	Version: Version,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("ecglob %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds a console logger honoring the --log-level flag.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch strings.ToUpper(strings.TrimSpace(logLevel)) {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
