// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source enumerates plain-text recipe documents and decodes them
// into lines.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultExtension selects recipe documents when none is configured.
const DefaultExtension = "txt"

// maxLineBytes bounds a single line; recipe lines are short.
const maxLineBytes = 1 << 20

// Document is one input file.
type Document struct {
	// Name is the file's base name.
	Name string
	// Path is the full path the document was read from.
	Path string
	// Lines holds the decoded text, one entry per line, without line
	// terminators.
	Lines []string
	// Err is set when the file could not be read; Lines is then empty.
	Err error
}

// Listing is the result of scanning an input directory.
type Listing struct {
	// Documents are the matching files in name order.
	Documents []Document
	// Skipped names entries that were not recipe documents.
	Skipped []string
}

// ReadDir reads every regular file in dir whose extension is ext (without
// the leading dot). Other entries are reported in Listing.Skipped. An
// unreadable file is returned as a Document with Err set so the caller can
// count it as failed; only an unreadable dir is an error.
func ReadDir(ctx context.Context, dir, ext string) (Listing, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	suffix := "." + strings.TrimPrefix(ext, ".")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var listing Listing
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return listing, ctx.Err()
		default:
		}

		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != suffix {
			listing.Skipped = append(listing.Skipped, name)
			continue
		}

		path := filepath.Join(dir, name)
		lines, err := ReadFile(path)
		listing.Documents = append(listing.Documents, Document{
			Name:  name,
			Path:  path,
			Lines: lines,
			Err:   err,
		})
	}
	return listing, nil
}

// ReadFile decodes the file at path into lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines decodes r as UTF-8 text, or UTF-16 when r starts with a UTF-16
// byte-order mark, and splits it into lines. A UTF-8 byte-order mark is
// consumed.
func ReadLines(r io.Reader) ([]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
