// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvalidationBusDirectObservers(t *testing.T) {
	t.Parallel()

	b := newInvalidationBus()
	defer func() { _ = b.close() }()

	var got []string
	unsub := b.subscribe(func(path string) { got = append(got, path) })

	b.publish("/tmp/a")
	require.Equal(t, []string{"/tmp/a"}, got)

	b.publish("/tmp/b")
	require.Equal(t, []string{"/tmp/a", "/tmp/b"}, got)

	unsub()
	b.publish("/tmp/c")
	require.Equal(t, []string{"/tmp/a", "/tmp/b"}, got)
}

func TestInvalidationBusChannelSubscriber(t *testing.T) {
	t.Parallel()

	b := newInvalidationBus()
	defer func() { _ = b.close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := b.channel(ctx)
	require.NoError(t, err)

	b.publish("/tmp/watched")

	select {
	case msg := <-msgs:
		var ev Invalidation
		require.NoError(t, json.Unmarshal(msg.Payload, &ev))
		require.Equal(t, "/tmp/watched", ev.Path)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timeout waiting for message")
	}
}

func TestInvalidationBusClosed(t *testing.T) {
	t.Parallel()

	b := newInvalidationBus()
	require.NoError(t, b.close())

	var called bool
	unsub := b.subscribe(func(string) { called = true })
	unsub()

	b.publish("/tmp/ignored")
	require.False(t, called)

	// close is idempotent.
	require.NoError(t, b.close())
}
