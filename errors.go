// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import "errors"

// Sentinel errors for ecglob operations.
var (
	// ErrPatternTooLong indicates pattern input longer than MaxPatternLength bytes.
	ErrPatternTooLong = errors.New("pattern too long")
	// ErrExpressionTooLong indicates translated expression source exceeded its ceiling.
	ErrExpressionTooLong = errors.New("translated expression too long")
	// ErrCompilePattern indicates translated expression failed to compile.
	ErrCompilePattern = errors.New("compile pattern")
	// ErrNilCache indicates a nil cache receiver.
	ErrNilCache = errors.New("cache is nil")
	// ErrCacheClosed indicates an operation on a closed file cache.
	ErrCacheClosed = errors.New("file cache is closed")
	// ErrParse indicates malformed declaration file input.
	ErrParse = errors.New("parse declarations")
)
