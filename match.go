// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import "strconv"

// Match reports whether candidate satisfies the compiled pattern.
//
// After a structural match every numeric-range capture is validated left to
// right; the first out-of-range or zero-padded capture rejects the whole
// match. A range capture left unset by the engine, which happens when the
// range sits in an alternation branch that did not participate, also
// rejects.
func (p *CompiledPattern) Match(candidate string) bool {
	groups := p.re.FindStringSubmatch(candidate)
	if groups == nil {
		return false
	}

	for i, r := range p.ranges {
		captured := groups[i+1]
		if captured == "" {
			return false
		}

		// Zero-padded numerals like "007" never satisfy a range.
		if captured[0] == '0' {
			return false
		}

		value, err := strconv.Atoi(captured)
		if err != nil {
			return false
		}

		if value < r.Min || value > r.Max {
			return false
		}
	}

	return true
}

// Glob resolves pattern through the cache and matches candidate against it.
//
// Callers must branch on the exact sentinel: GlobNoMatch and GlobError are
// both non-zero.
func (pc *PatternCache) Glob(pattern, candidate string) GlobResult {
	entry, err := pc.Resolve(pattern)
	if err != nil {
		return GlobError
	}

	if entry.Match(candidate) {
		return GlobMatch
	}

	return GlobNoMatch
}

// Glob matches candidate against pattern using the package default cache.
func Glob(pattern, candidate string) GlobResult {
	return defaultPatternCache.Glob(pattern, candidate)
}

// Match matches candidate against pattern using the package default cache
// and surfaces translation/compilation failures as errors.
func Match(pattern, candidate string) (bool, error) {
	entry, err := defaultPatternCache.Resolve(pattern)
	if err != nil {
		return false, err
	}

	return entry.Match(candidate), nil
}
