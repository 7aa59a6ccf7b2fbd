// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package commands

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/woozymasta/ecglob"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Stream cache invalidations for files as they change on disk",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		fc, err := ecglob.NewFileCache(ecglob.FileCacheOptions{Logger: &logger})
		if err != nil {
			return err
		}
		defer func() { _ = fc.Close() }()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		msgs, err := fc.Invalidations(ctx)
		if err != nil {
			return err
		}

		for _, path := range args {
			if _, err := fc.Read(path); err != nil {
				return err
			}
		}

		cmd.Printf("watching %d file(s), interrupt to stop\n", len(args))

		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-msgs:
				if !ok {
					return nil
				}

				var ev ecglob.Invalidation
				if err := json.Unmarshal(msg.Payload, &ev); err != nil {
					logger.Error().Err(err).Msg("decode invalidation payload")
					msg.Ack()
					continue
				}

				cmd.Printf("invalidated: %s\n", ev.Path)
				msg.Ack()

				// Re-read to re-arm the watch; the file may be gone by now.
				if _, err := fc.Read(ev.Path); err != nil {
					logger.Warn().Err(err).Str("path", ev.Path).Msg("re-read after invalidation")
				}
			}
		}
	},
}
