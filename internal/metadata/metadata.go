// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata reads the identifier, title, author, and creation date
// from the first line of a recipe document, e.g.
//
//	1. Lemon Cake by Sam Thompson [2018-12-03]
package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

const authorMarker = " by "

var (
	// ErrMissingIdentifier means the line has no "." or the text before it
	// is not an integer.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrMissingTitle means no title rule matched the line.
	ErrMissingTitle = errors.New("missing title")

	// ErrUnparsableDate is reported on Metadata.DateErr when the bracketed
	// text is not YYYY-MM-DD. It never rejects the line.
	ErrUnparsableDate = errors.New("unparsable date")
)

// Metadata is what the first line of a document yields.
type Metadata struct {
	ID      int
	Title   string
	Author  types.Optional[string]
	Created types.Optional[types.Date]

	// DateErr is set when a bracketed date was present but unreadable.
	DateErr error
}

// Locate finds the markers in a trimmed first line.
func Locate(s string) Markers {
	return Markers{
		Period: strings.Index(s, "."),
		By:     strings.LastIndex(s, authorMarker),
		Open:   strings.LastIndex(s, "["),
		Close:  strings.LastIndex(s, "]"),
	}
}

// Extract parses line, which is trimmed first. Errors wrap
// ErrMissingIdentifier or ErrMissingTitle.
func Extract(line string) (Metadata, error) {
	s := strings.TrimSpace(line)
	m := Locate(s)

	if m.Period < 0 {
		return Metadata{}, fmt.Errorf("%w: no \".\" in %q", ErrMissingIdentifier, s)
	}
	id, err := strconv.ParseInt(s[:m.Period], 10, 32)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %q is not an integer", ErrMissingIdentifier, s[:m.Period])
	}

	rule, ok := matchTitle(m)
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %q", ErrMissingTitle, s)
	}

	md := Metadata{
		ID:     int(id),
		Title:  strings.TrimSpace(s[m.Period+1 : rule.End(m, len(s))]),
		Author: author(s, m),
	}

	if m.HasDate() {
		inner := strings.TrimSpace(s[m.Open+1 : m.Close])
		d, err := types.ParseDate(inner)
		if err != nil {
			md.DateErr = fmt.Errorf("%w: %v", ErrUnparsableDate, err)
		} else {
			md.Created = types.Some(d)
		}
	}

	return md, nil
}

// author returns the text after the author marker, stopping at the date
// when the date follows it.
func author(s string, m Markers) types.Optional[string] {
	if !m.HasAuthor() {
		return types.None[string]()
	}
	start := m.By + len(authorMarker)
	if m.HasDate() && m.Open > m.By {
		return types.Some(strings.TrimSpace(s[start:m.Open]))
	}
	return types.Some(strings.TrimSpace(s[start:]))
}
