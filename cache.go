// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"fmt"
	"regexp"
	"sync"
)

// CompiledPattern is one translated and compiled glob pattern.
//
// Entries are never mutated after publication and are safe for concurrent
// matching.
type CompiledPattern struct {
	// re is the anchored expression compiled from the pattern.
	re *regexp.Regexp
	// ranges are numeric-range bounds in capture-group order.
	ranges []NumericRange
	// source is original pattern text.
	source string
}

// Source returns the original pattern text.
func (p *CompiledPattern) Source() string {
	return p.source
}

// Expression returns the compiled expression source.
func (p *CompiledPattern) Expression() string {
	return p.re.String()
}

// Ranges returns declared numeric-range bounds in capture-group order.
func (p *CompiledPattern) Ranges() []NumericRange {
	out := make([]NumericRange, len(p.ranges))
	copy(out, p.ranges)
	return out
}

// PatternCache maps original pattern text to its compiled form.
//
// Entries are created on first resolution and kept for the cache lifetime;
// there is no eviction. Failed translations and compilations cache nothing.
type PatternCache struct {
	// mu guards entries.
	mu sync.Mutex
	// entries stores published patterns by original text.
	entries map[string]*CompiledPattern
}

// NewPatternCache creates an empty pattern cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{
		entries: make(map[string]*CompiledPattern),
	}
}

// Resolve returns the compiled form of pattern, translating and compiling on
// first use.
//
// Translation and compilation run outside the lock, so two goroutines may
// race to compile the same new pattern; the first published entry wins and
// every caller observes that one.
func (pc *PatternCache) Resolve(pattern string) (*CompiledPattern, error) {
	if pc == nil {
		return nil, ErrNilCache
	}

	pc.mu.Lock()
	entry, ok := pc.entries[pattern]
	pc.mu.Unlock()
	if ok {
		return entry, nil
	}

	src, ranges, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCompilePattern, pattern, err)
	}

	entry = &CompiledPattern{
		re:     re,
		ranges: ranges,
		source: pattern,
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if published, ok := pc.entries[pattern]; ok {
		return published, nil
	}

	pc.entries[pattern] = entry
	return entry, nil
}

// Len returns the number of cached patterns.
func (pc *PatternCache) Len() int {
	if pc == nil {
		return 0
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.entries)
}

// defaultPatternCache backs the package-level pattern helpers.
var defaultPatternCache = NewPatternCache()

// Resolve resolves pattern against the package default cache.
func Resolve(pattern string) (*CompiledPattern, error) {
	return defaultPatternCache.Resolve(pattern)
}
