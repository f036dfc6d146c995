// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes accepted recipes to disk, one file per recipe named
// by its ID.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// ParseFormat validates a format name. The empty string selects XML.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case "":
		return types.OutputXML, nil
	case types.OutputXML, types.OutputYAML, types.OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use xml, yaml, or json", s)
	}
}

// Encode writes r to w in format f.
func Encode(w io.Writer, f types.OutputFormat, r *types.Recipe) error {
	switch f {
	case types.OutputXML, "":
		enc := xml.NewEncoder(w)
		enc.Indent("", "    ")
		if err := enc.Encode(toXML(r)); err != nil {
			return fmt.Errorf("marshaling XML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// FileName returns the output file name for a recipe: "<id>.<format>".
func FileName(r *types.Recipe, f types.OutputFormat) string {
	if f == "" {
		f = types.OutputXML
	}
	return strconv.Itoa(r.ID) + "." + string(f)
}

// WriteFile encodes r into dir and returns the written path. An existing
// file for the same ID is replaced.
func WriteFile(dir string, f types.OutputFormat, r *types.Recipe) (string, error) {
	path := filepath.Join(dir, FileName(r, f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(file, f, r); err != nil {
		file.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// WriteResult counts the outcome of WriteAll.
type WriteResult struct {
	Written int
	Failed  int
}

// WriteAll writes each recipe into dir, printing one status line per
// recipe to w. A failed write is reported and skipped.
func WriteAll(dir string, f types.OutputFormat, recipes []*types.Recipe, w io.Writer) WriteResult {
	var result WriteResult
	for _, r := range recipes {
		path, err := WriteFile(dir, f, r)
		if err != nil {
			fmt.Fprintf(w, "failed  recipe %d: %v\n", r.ID, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "wrote   %s\n", path)
		result.Written++
	}
	return result
}
