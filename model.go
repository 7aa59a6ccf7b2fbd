// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import "github.com/rs/zerolog"

// MaxPatternLength is the maximum supported glob pattern length in bytes.
// Longer patterns are rejected, never truncated.
const MaxPatternLength = 4096

// maxExpressionLength is the hard ceiling for translated expression source,
// anchors included. Translation fails once output would grow past it.
const maxExpressionLength = 2 * (MaxPatternLength + 1)

// GlobResult is a sentinel-coded glob match outcome.
//
// Callers must branch on the exact value: a non-match and a failure are both
// non-zero and only distinguishable by code.
type GlobResult int

const (
	// GlobMatch means the candidate satisfies the pattern.
	GlobMatch GlobResult = 0
	// GlobNoMatch means the candidate does not satisfy the pattern.
	GlobNoMatch GlobResult = 1
	// GlobError means pattern translation or compilation failed.
	GlobError GlobResult = -1
	// GlobNoMemory means an auxiliary allocation failed.
	GlobNoMemory GlobResult = -2
)

// NumericRange is one inclusive integer range declared by a "{min..max}"
// group, in source occurrence order.
type NumericRange struct {
	// Min is the inclusive lower bound.
	Min int `json:"min" yaml:"min"`
	// Max is the inclusive upper bound.
	Max int `json:"max" yaml:"max"`
}

// FileCacheOptions controls file cache behavior.
type FileCacheOptions struct {
	// Logger receives watcher diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// applyDefaults fills zero-valued options with defaults.
func (opts *FileCacheOptions) applyDefaults() {
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
}
