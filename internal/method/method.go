// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package method cleans recipe method-step lines.
package method

import (
	"strings"
	"unicode"
)

// Numbering returns the ordinal prefix at the start of line ("6." or "6)")
// and true, or "" and false when line does not start with one. The prefix
// is one or more digits followed by "." or ")"; a terminator that ends the
// line does not count, so "2019." carries no prefix.
func Numbering(line string) (string, bool) {
	for i, r := range line {
		if (r == '.' || r == ')') && len(line) > i+1 {
			if i == 0 {
				return "", false
			}
			return line[:i+1], true
		}
		if !unicode.IsDigit(r) {
			return "", false
		}
	}
	return "", false
}

// StripNumbering trims line and removes its ordinal prefix, if any.
func StripNumbering(line string) string {
	s := strings.TrimSpace(line)
	prefix, ok := Numbering(s)
	if !ok {
		return s
	}
	return strings.TrimSpace(s[len(prefix):])
}
