// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// InvalidationTopic is the watermill topic carrying file cache evictions.
const InvalidationTopic = "ecglob.filecache.invalidated"

// Invalidation is one file cache eviction event payload.
type Invalidation struct {
	// Path is the absolute path of the evicted file.
	Path string `json:"path"`
}

// InvalidateFunc observes one file cache eviction.
type InvalidateFunc func(path string)

// observerEntry wraps one callback observer with an ID.
type observerEntry struct {
	id uint64
	fn InvalidateFunc
}

// invalidationBus fans evictions out to direct callback observers and to
// watermill channel subscribers.
//
// Direct observers keep the synchronous notify-before-reread contract;
// the gochannel transport serves consumers that want a message stream.
type invalidationBus struct {
	// mu guards observers and closed.
	mu sync.Mutex
	// pubsub is the watermill transport behind channel subscriptions.
	pubsub *gochannel.GoChannel
	// observers are direct callback subscribers.
	observers []observerEntry
	// nextID is the last issued observer ID.
	nextID uint64
	// closed blocks further publishes and subscriptions.
	closed bool
}

// newInvalidationBus creates a bus with an in-process watermill transport.
func newInvalidationBus() *invalidationBus {
	return &invalidationBus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NopLogger{},
		),
	}
}

// subscribe registers one callback observer and returns its unsubscribe.
func (b *invalidationBus) subscribe(fn InvalidateFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return func() {}
	}

	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, observerEntry{id: id, fn: fn})

	return func() {
		b.unsubscribe(id)
	}
}

// unsubscribe removes one callback observer by ID.
func (b *invalidationBus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, entry := range b.observers {
		if entry.id == id {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			break
		}
	}
}

// channel returns a watermill subscription for eviction messages.
func (b *invalidationBus) channel(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, InvalidationTopic)
}

// publish notifies every observer and channel subscriber about one eviction.
func (b *invalidationBus) publish(path string) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	observers := make([]InvalidateFunc, 0, len(b.observers))
	for _, entry := range b.observers {
		observers = append(observers, entry.fn)
	}
	b.mu.Unlock()

	payload, err := json.Marshal(Invalidation{Path: path})
	if err == nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		_ = b.pubsub.Publish(InvalidationTopic, msg)
	}

	for _, fn := range observers {
		fn(path)
	}
}

// close drops observers and shuts the transport down.
func (b *invalidationBus) close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	b.observers = nil
	b.mu.Unlock()

	return b.pubsub.Close()
}
