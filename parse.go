// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecglob

package ecglob

import (
	"bytes"
	"fmt"
	"strings"
)

// Declaration-file limits. Over-limit sections and pairs are skipped, not
// truncated.
const (
	// MaxSectionNameLength is the longest accepted section name in bytes.
	MaxSectionNameLength = 4096
	// MaxKeyLength is the longest accepted key name in bytes.
	MaxKeyLength = 50
	// MaxValueLength is the longest accepted value in bytes.
	MaxValueLength = 255

	// maxLineLength is the per-line ceiling; longer lines are cut there.
	maxLineLength = 4999
)

// DeclarationHandler consumes one key/value pair found in a section.
//
// Section is empty before the first section header. Returning false marks
// the current line as failed; parsing still continues.
type DeclarationHandler func(section, key, value string) bool

// ParseDeclarations walks INI-style declaration text line by line and invokes
// handler per discovered key/value pair.
//
// Semantics:
//   - ";" and "#" start a comment at line start, or mid-line after whitespace
//   - "[section]" uses the last "]" before any comment
//   - pairs are "key = value" or "key : value" with surrounding space trimmed
//   - a non-blank line with leading whitespace continues the previous value
//   - a UTF-8 byte order mark on the first line is skipped
//
// The returned error reports the first malformed line; later lines are still
// parsed.
func ParseDeclarations(data []byte, handler DeclarationHandler) error {
	var (
		section string
		prevKey string
		lineno  int
		errLine int
	)

	for start := 0; start <= len(data); {
		var raw string
		if end := bytes.IndexByte(data[start:], '\n'); end < 0 {
			raw = string(data[start:])
			start = len(data) + 1
		} else {
			raw = string(data[start : start+end])
			start += end + 1
		}

		lineno++
		if len(raw) > maxLineLength {
			raw = raw[:maxLineLength]
		}

		if lineno == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}

		rightTrimmed := trimRightSpace(raw)
		line := trimLeftSpace(rightTrimmed)
		indented := len(line) > 0 && len(line) != len(rightTrimmed)

		switch {
		case line == "":
		case line[0] == ';' || line[0] == '#':
		case prevKey != "" && indented:
			// ConfigParser-style continuation of the previous key's value.
			if !handler(section, prevKey, line) && errLine == 0 {
				errLine = lineno
			}
		case line[0] == '[':
			rest := line[1:]
			end := findLastCharOrComment(rest, ']')
			if end < 0 {
				if errLine == 0 {
					errLine = lineno
				}

				break
			}

			name := rest[:end]
			if len(name) > MaxSectionNameLength {
				break
			}

			section = name
			prevKey = ""
		default:
			if !parsePairLine(line, section, &prevKey, handler) && errLine == 0 {
				errLine = lineno
			}
		}
	}

	if errLine != 0 {
		return fmt.Errorf("%w: line %d", ErrParse, errLine)
	}

	return nil
}

// parsePairLine handles one candidate "key[=:]value" line.
//
// Over-limit keys and values are skipped without error; the return value is
// false only for structurally malformed or handler-rejected lines.
func parsePairLine(line, section string, prevKey *string, handler DeclarationHandler) bool {
	pos := findCharOrComment(line, '=')
	if pos >= len(line) || line[pos] != '=' {
		pos = findCharOrComment(line, ':')
		if pos >= len(line) || line[pos] != ':' {
			return false
		}
	}

	key := trimRightSpace(line[:pos])
	value := trimLeftSpace(line[pos+1:])
	if c := findCharOrComment(value, 0); c < len(value) {
		value = value[:c]
	}
	value = trimRightSpace(value)

	if len(key) > MaxKeyLength || len(value) > MaxValueLength {
		return true
	}

	*prevKey = key
	return handler(section, key, value)
}

// ParseFile reads path through the file cache and parses its declarations.
func ParseFile(fc *FileCache, path string, handler DeclarationHandler) error {
	data, err := fc.Read(path)
	if err != nil {
		return err
	}

	return ParseDeclarations(data, handler)
}

// findCharOrComment returns the index of target or of a whitespace-preceded
// comment marker, or len(s) when neither occurs.
func findCharOrComment(s string, target byte) int {
	wasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == target || (wasSpace && (c == ';' || c == '#')) {
			return i
		}

		wasSpace = isSpaceByte(c)
	}

	return len(s)
}

// findLastCharOrComment returns the index of the last target before any
// whitespace-preceded comment marker, or -1.
func findLastCharOrComment(s string, target byte) int {
	last := -1
	wasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if wasSpace && (c == ';' || c == '#') {
			break
		}

		if c == target {
			last = i
		}

		wasSpace = isSpaceByte(c)
	}

	return last
}

// trimLeftSpace removes leading whitespace bytes.
func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}

	return s[i:]
}

// trimRightSpace removes trailing whitespace bytes.
func trimRightSpace(s string) string {
	end := len(s)
	for end > 0 && isSpaceByte(s[end-1]) {
		end--
	}

	return s[:end]
}

// isSpaceByte reports whether c is an ASCII whitespace byte.
func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
