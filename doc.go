// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

/*
Package ecglob implements editorconfig-style glob matching with compile-once
pattern caching and a watch-invalidated file content cache.

The glob dialect supports "?", "*", "**", bracket classes, brace alternation
("{a,b}"), and inclusive numeric ranges ("{1..5}"). Patterns are translated
to anchored regular expressions and matched against whole candidate strings.

Basic flow:
  - match one pattern against one path (`Glob` / `Match`)
  - or hold an explicit cache (`NewPatternCache`, `Resolve`)
  - read declaration files through a content cache (`NewFileCache`, `Read`)
  - parse cached content into section/key/value callbacks (`ParseDeclarations` / `ParseFile`)

Compiled patterns are cached by original pattern text for the cache lifetime.
File contents are cached by absolute path and evicted automatically when the
underlying file is written, removed, renamed, or has its metadata changed.
Evictions are observable via `FileCache.OnInvalidate` callbacks or the
`FileCache.Invalidations` event stream.
*/
package ecglob
