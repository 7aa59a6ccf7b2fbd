// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// fileEntry is one cached file.
type fileEntry struct {
	// path is the absolute file path, also the cache key.
	path string
	// data is the full file contents.
	data []byte
}

// FileCache caches whole file contents keyed by absolute path and evicts
// entries when the underlying file changes on disk.
//
// A returned buffer stays valid until the next invalidation notification for
// the same path. There is no negative caching: a failed open is never
// remembered and every call retries it.
type FileCache struct {
	// watcher delivers per-path filesystem change events.
	watcher *fsnotify.Watcher
	// bus fans evictions out to observers and channel subscribers.
	bus *invalidationBus
	// stopCh signals the event loop to exit.
	stopCh chan struct{}
	// doneCh closes when the event loop has exited.
	doneCh chan struct{}
	// log receives watcher diagnostics.
	log zerolog.Logger

	// mu guards entries and closed.
	mu sync.Mutex
	// entries stores live cached files by absolute path.
	entries map[string]*fileEntry
	// closed blocks reads after Close.
	closed bool
}

// NewFileCache creates a file cache and starts its watch event loop.
func NewFileCache(opts FileCacheOptions) (*FileCache, error) {
	opts.applyDefaults()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	fc := &FileCache{
		watcher: w,
		bus:     newInvalidationBus(),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		log:     *opts.Logger,
		entries: make(map[string]*fileEntry),
	}

	go fc.run()
	return fc, nil
}

// run consumes watch events until the cache is closed.
func (fc *FileCache) run() {
	defer close(fc.doneCh)

	for {
		select {
		case <-fc.stopCh:
			return
		case ev, ok := <-fc.watcher.Events:
			if !ok {
				return
			}

			// Write covers content and size changes; Remove, Rename and
			// Chmod cover deletion, relinking and permission revocation.
			if ev.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod) != 0 {
				fc.invalidate(ev.Name)
			}
		case err, ok := <-fc.watcher.Errors:
			if !ok {
				return
			}

			fc.log.Error().Err(err).Msg("file cache watcher error")
		}
	}
}

// invalidate evicts one path and notifies observers when an entry existed.
func (fc *FileCache) invalidate(path string) {
	fc.mu.Lock()
	_, ok := fc.entries[path]
	if ok {
		delete(fc.entries, path)
		// The watch dies with its entry; a later Read re-arms it.
		_ = fc.watcher.Remove(path)
	}
	fc.mu.Unlock()

	if !ok {
		return
	}

	fc.log.Debug().Str("path", path).Msg("file cache entry invalidated")
	fc.bus.publish(path)
}

// Read returns the contents of path, serving from cache when possible.
//
// On a miss the whole file is read, published under the lock, and a watch is
// armed on the path. When arming the watch fails the content is still
// returned but not cached, so the next call retries both.
func (fc *FileCache) Read(path string) ([]byte, error) {
	if fc == nil {
		return nil, ErrNilCache
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %q: %w", path, err)
	}

	fc.mu.Lock()
	if fc.closed {
		fc.mu.Unlock()
		return nil, ErrCacheClosed
	}

	if entry, ok := fc.entries[abs]; ok {
		fc.mu.Unlock()
		return entry.data, nil
	}
	fc.mu.Unlock()

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.closed {
		return data, nil
	}

	if entry, ok := fc.entries[abs]; ok {
		// A concurrent reader published first; its buffer wins.
		return entry.data, nil
	}

	if err := fc.watcher.Add(abs); err != nil {
		fc.log.Debug().Err(err).Str("path", abs).Msg("watch failed, content served uncached")
		return data, nil
	}

	fc.entries[abs] = &fileEntry{path: abs, data: data}
	return data, nil
}

// OnInvalidate registers an eviction observer and returns its unsubscribe.
//
// Observers run on the watch event loop after the entry left the map and
// before its path can be re-read into the cache.
func (fc *FileCache) OnInvalidate(fn InvalidateFunc) func() {
	return fc.bus.subscribe(fn)
}

// Invalidations returns a watermill subscription with one message per
// eviction; payloads are JSON-encoded Invalidation values.
func (fc *FileCache) Invalidations(ctx context.Context) (<-chan *message.Message, error) {
	return fc.bus.channel(ctx)
}

// Len returns the number of live cached files.
func (fc *FileCache) Len() int {
	if fc == nil {
		return 0
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.entries)
}

// Close stops the event loop and releases every watch and buffer.
func (fc *FileCache) Close() error {
	if fc == nil {
		return nil
	}

	fc.mu.Lock()
	if fc.closed {
		fc.mu.Unlock()
		return nil
	}

	fc.closed = true
	fc.entries = make(map[string]*fileEntry)
	fc.mu.Unlock()

	close(fc.stopCh)
	<-fc.doneCh

	err := fc.watcher.Close()
	if busErr := fc.bus.close(); err == nil {
		err = busErr
	}

	return err
}
