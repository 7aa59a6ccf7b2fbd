// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// numberRangeRE recognizes the exact "{±digits..±digits}" shape of a
// numeric-range brace group. Built once per process.
var numberRangeRE = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\{[\+\-]?\d+\.\.[\+\-]?\d+\}$`)
})

// expressionBuilder accumulates expression source with a hard length ceiling.
//
// Overflow is sticky: once the ceiling is hit every later write is dropped
// and result reports the failure.
type expressionBuilder struct {
	b        strings.Builder
	overflow bool
}

// writeString appends s unless it would grow output past the ceiling.
func (eb *expressionBuilder) writeString(s string) {
	if eb.overflow || eb.b.Len()+len(s) > maxExpressionLength {
		eb.overflow = true
		return
	}

	eb.b.WriteString(s)
}

// writeByte appends one byte unless it would grow output past the ceiling.
func (eb *expressionBuilder) writeByte(c byte) {
	if eb.overflow || eb.b.Len()+1 > maxExpressionLength {
		eb.overflow = true
		return
	}

	eb.b.WriteByte(c)
}

// result returns accumulated expression source or the overflow error.
func (eb *expressionBuilder) result() (string, error) {
	if eb.overflow {
		return "", ErrExpressionTooLong
	}

	return eb.b.String(), nil
}

// translate converts one glob pattern into anchored expression source plus
// the ordered numeric ranges declared by "{min..max}" groups.
//
// Ranges are appended strictly in opening-brace order, which is also the
// order of their capturing groups in the produced expression.
func translate(pattern string) (string, []NumericRange, error) {
	if len(pattern) > MaxPatternLength {
		return "", nil, fmt.Errorf("%w: %d bytes", ErrPatternTooLong, len(pattern))
	}

	var (
		eb         expressionBuilder
		ranges     []NumericRange
		braceLevel int
		inBracket  bool
	)

	// Unbalanced braces demote every brace in the pattern to a literal.
	paired := bracesPaired(pattern)

	// Working copy: the literal-brace fallback inserts an escape in front of
	// the closing brace so the main scan emits it as a literal too.
	p := []byte(pattern)

	eb.writeByte('^')

	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '\\':
			if i+1 < len(p) {
				eb.writeByte('\\')
				i++
				eb.writeByte(p[i])
			} else {
				eb.writeString(`\\`)
			}
		case '?':
			eb.writeString(`[^/]`)
		case '*':
			if i+1 < len(p) && p[i+1] == '*' {
				eb.writeString(`.*`)
				i++
			} else {
				eb.writeString(`[^\/]*`)
			}
		case '[':
			i = translateBracket(&eb, p, i, &inBracket)
		case ']':
			inBracket = false
			eb.writeByte(']')
		case '-':
			if inBracket {
				eb.writeByte('-')
			} else {
				eb.writeString(`\-`)
			}
		case '{':
			if !paired {
				eb.writeString(`\{`)
				break
			}

			i, p = translateBrace(&eb, p, i, &braceLevel, &ranges)
		case '}':
			if !paired {
				eb.writeString(`\}`)
				break
			}

			braceLevel--
			eb.writeByte(')')
		case ',':
			if braceLevel > 0 {
				eb.writeByte('|')
			} else {
				eb.writeString(`\,`)
			}
		case '/':
			// "/**/" matches either a bare separator or a separator-delimited span.
			if i+3 < len(p) && string(p[i:i+4]) == "/**/" {
				eb.writeString(`(\/|\/.*\/)`)
				i += 3
			} else {
				eb.writeString(`\/`)
			}
		default:
			eb.writeLiteral(c)
		}
	}

	eb.writeByte('$')

	src, err := eb.result()
	if err != nil {
		return "", nil, fmt.Errorf("%w: pattern %q", err, pattern)
	}

	return src, ranges, nil
}

// translateBracket handles one "[" and returns the index to resume after.
func translateBracket(eb *expressionBuilder, p []byte, i int, inBracket *bool) int {
	if *inBracket {
		// Inside an open class a bracket means a literal bracket.
		eb.writeString(`\[`)
		return i
	}

	// A path separator cannot be expressed inside a glob character class, so
	// a class containing one degrades to a literal substring.
	hasSlash := false
	for j := i; j < len(p) && p[j] != ']'; j++ {
		if p[j] == '\\' && j+1 < len(p) {
			j++
			continue
		}

		if p[j] == '/' {
			hasSlash = true
			break
		}
	}

	if hasSlash {
		end := slices.Index(p[i:], byte(']'))
		span := p[i:]
		resume := len(p) - 1
		if end >= 0 {
			span = p[i : i+end+1]
			resume = i + end
		}

		for _, b := range span {
			eb.writeLiteral(b)
		}

		return resume
	}

	*inBracket = true
	if i+1 < len(p) && p[i+1] == '!' {
		eb.writeString(`[^`)
		return i + 1
	}

	eb.writeByte('[')
	return i
}

// translateBrace handles one "{" with paired braces and returns the index to
// resume after plus the (possibly rewritten) working pattern.
func translateBrace(eb *expressionBuilder, p []byte, i int, braceLevel *int, ranges *[]NumericRange) (int, []byte) {
	// Single-alternative group: no unescaped "," before the closing brace.
	single := true
	j := i + 1
	for ; j < len(p) && p[j] != '}'; j++ {
		if p[j] == '\\' && j+1 < len(p) {
			j++
			continue
		}

		if p[j] == ',' {
			single = false
			break
		}
	}

	if j >= len(p) {
		single = false
	}

	if single {
		group := string(p[i : j+1])
		if numberRangeRE().MatchString(group) {
			dots := strings.Index(group, "..")
			*ranges = append(*ranges, NumericRange{
				Min: scanInt(group[1:]),
				Max: scanInt(group[dots+2:]),
			})

			eb.writeString(`([\+\-]?\d+)`)
			return j, p
		}

		// Not a numeric range: the brace is a literal, and so is its partner.
		eb.writeString(`\{`)
		return i, slices.Insert(p, j, byte('\\'))
	}

	*braceLevel++
	eb.writeString(`(?:`)
	return i, p
}

// bracesPaired reports whether unescaped braces are balanced with every "}"
// preceded by its "{".
func bracesPaired(pattern string) bool {
	left, right := 0, 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' && i+1 < len(pattern) {
			i++
			continue
		}

		switch pattern[i] {
		case '{':
			left++
		case '}':
			right++
			if right > left {
				return false
			}
		}
	}

	return left == right
}

// writeLiteral appends one pattern byte as literal expression source.
//
// ASCII alphanumerics and bytes of multi-byte sequences pass through
// unescaped; everything else gets a backslash.
func (eb *expressionBuilder) writeLiteral(c byte) {
	if c < 0x80 && !isASCIIAlnum(c) {
		eb.writeByte('\\')
	}

	eb.writeByte(c)
}

// isASCIIAlnum reports whether c is an ASCII letter or digit.
func isASCIIAlnum(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}

// scanInt parses an optionally signed decimal prefix and ignores the rest.
func scanInt(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}

	if neg {
		return -n
	}

	return n
}
