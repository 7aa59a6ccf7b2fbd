// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"errors"
	"strings"
	"testing"
)

func TestGlobStars(t *testing.T) {
	t.Parallel()

	if Glob("*.txt", "foo.txt") != GlobMatch {
		t.Fatalf("*.txt must match foo.txt")
	}

	if Glob("*.txt", "foo.md") != GlobNoMatch {
		t.Fatalf("*.txt must not match foo.md")
	}

	if Glob("*.js", "a/b/c.js") != GlobNoMatch {
		t.Fatalf("single star must not cross /")
	}

	if Glob("**/*.js", "a/b/c.js") != GlobMatch {
		t.Fatalf("double star must cross /")
	}
}

func TestGlobQuestionMark(t *testing.T) {
	t.Parallel()

	if Glob("a?c", "abc") != GlobMatch {
		t.Fatalf("a?c must match abc")
	}

	if Glob("a?c", "a/c") != GlobNoMatch {
		t.Fatalf("? must not match /")
	}

	if Glob("a?c", "abbc") != GlobNoMatch {
		t.Fatalf("? must match exactly one character")
	}
}

func TestGlobBrackets(t *testing.T) {
	t.Parallel()

	if Glob("[abc].txt", "a.txt") != GlobMatch {
		t.Fatalf("[abc].txt must match a.txt")
	}

	if Glob("[abc].txt", "d.txt") != GlobNoMatch {
		t.Fatalf("[abc].txt must not match d.txt")
	}

	if Glob("[!ab]", "c") != GlobMatch {
		t.Fatalf("[!ab] must match c")
	}

	if Glob("[!ab]", "a") != GlobNoMatch {
		t.Fatalf("[!ab] must not match a")
	}

	// A slash demotes the whole class to a literal substring.
	if Glob("[a/b]", "[a/b]") != GlobMatch {
		t.Fatalf("[a/b] must match itself literally")
	}

	if Glob("[a/b]", "a") != GlobNoMatch {
		t.Fatalf("[a/b] must not act as a class")
	}
}

func TestGlobBraceAlternation(t *testing.T) {
	t.Parallel()

	if Glob("a{b,c}d", "abd") != GlobMatch {
		t.Fatalf("a{b,c}d must match abd")
	}

	if Glob("a{b,c}d", "acd") != GlobMatch {
		t.Fatalf("a{b,c}d must match acd")
	}

	if Glob("a{b,c}d", "aed") != GlobNoMatch {
		t.Fatalf("a{b,c}d must not match aed")
	}

	if Glob("*.{js,ts}", "a.ts") != GlobMatch {
		t.Fatalf("*.{js,ts} must match a.ts")
	}
}

func TestGlobUnbalancedBracesDegradeToLiterals(t *testing.T) {
	t.Parallel()

	if Glob("a{b", "a{b") != GlobMatch {
		t.Fatalf("a{b must match itself literally")
	}

	if Glob("a{b", "ab") != GlobNoMatch {
		t.Fatalf("a{b must not match ab")
	}
}

func TestGlobNumericRanges(t *testing.T) {
	t.Parallel()

	if Glob("{1..5}", "3") != GlobMatch {
		t.Fatalf("{1..5} must match 3")
	}

	if Glob("{1..5}", "6") != GlobNoMatch {
		t.Fatalf("{1..5} must not match 6")
	}

	if Glob("{1..5}", "03") != GlobNoMatch {
		t.Fatalf("zero-padded numerals never match a range")
	}

	if Glob("{-5..5}", "-3") != GlobMatch {
		t.Fatalf("{-5..5} must match -3")
	}

	if Glob("{-5..5}", "+4") != GlobMatch {
		t.Fatalf("{-5..5} must match +4")
	}

	// The zero-padding rule fires on any capture starting with '0',
	// including plain zero.
	if Glob("{0..3}", "0") != GlobNoMatch {
		t.Fatalf("leading-zero rejection applies to plain 0")
	}
}

func TestGlobRangeInAlternationBranch(t *testing.T) {
	t.Parallel()

	// A range inside a non-participating alternation branch leaves its
	// capture unset, which rejects the match.
	if Glob("{a,{1..2}}", "a") != GlobNoMatch {
		t.Fatalf("unset range capture must reject")
	}

	if Glob("{a,{1..2}}", "1") != GlobMatch {
		t.Fatalf("participating range branch must match in-range value")
	}

	if Glob("{a,{1..2}}", "3") != GlobNoMatch {
		t.Fatalf("participating range branch must reject out-of-range value")
	}
}

func TestGlobMultipleNumericRanges(t *testing.T) {
	t.Parallel()

	if Glob("{1..3}-{4..6}", "2-5") != GlobMatch {
		t.Fatalf("2-5 must satisfy both ranges")
	}

	if Glob("{1..3}-{4..6}", "2-7") != GlobNoMatch {
		t.Fatalf("second range must reject 7")
	}

	if Glob("{1..3}-{4..6}", "5-2") != GlobNoMatch {
		t.Fatalf("ranges are zipped positionally")
	}
}

func TestGlobSlashHandling(t *testing.T) {
	t.Parallel()

	if Glob("a/**/b", "a/b") != GlobMatch {
		t.Fatalf("/**/ must match a bare separator")
	}

	if Glob("a/**/b", "a/x/y/b") != GlobMatch {
		t.Fatalf("/**/ must match a separator-delimited span")
	}

	if Glob("a/**/b", "ab") != GlobNoMatch {
		t.Fatalf("/**/ requires a separator")
	}

	if Glob("a/b", "a/b") != GlobMatch {
		t.Fatalf("plain separator must match")
	}
}

func TestGlobEscapes(t *testing.T) {
	t.Parallel()

	if Glob(`\*.txt`, "*.txt") != GlobMatch {
		t.Fatalf(`\*.txt must match literal *.txt`)
	}

	if Glob(`\*.txt`, "a.txt") != GlobNoMatch {
		t.Fatalf(`\*.txt must not act as a wildcard`)
	}

	if Glob(`a\`, `a\`) != GlobMatch {
		t.Fatalf("trailing backslash must match itself")
	}
}

func TestGlobErrorSentinels(t *testing.T) {
	t.Parallel()

	if GlobMatch != 0 || GlobNoMatch != 1 || GlobError != -1 || GlobNoMemory != -2 {
		t.Fatalf("sentinel values changed")
	}

	long := strings.Repeat("a", MaxPatternLength+1)
	if Glob(long, "a") != GlobError {
		t.Fatalf("over-long pattern must yield GlobError")
	}

	if _, err := Match(long, "a"); !errors.Is(err, ErrPatternTooLong) {
		t.Fatalf("err=%v, want ErrPatternTooLong", err)
	}
}

func TestGlobDeterministic(t *testing.T) {
	t.Parallel()

	pc := NewPatternCache()
	for i := 0; i < 3; i++ {
		if pc.Glob("{1..100}/*.go", "42/main.go") != GlobMatch {
			t.Fatalf("iteration %d: want match", i)
		}

		if pc.Glob("{1..100}/*.go", "142/main.go") != GlobNoMatch {
			t.Fatalf("iteration %d: want no match", i)
		}
	}
}
