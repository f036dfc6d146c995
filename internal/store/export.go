// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

const exportLimit = 100000

// Export writes the recipes matching q to w as a YAML or JSON list. It
// supports the same filters as Search; q.Limit is ignored.
func (s *Store) Export(ctx context.Context, w io.Writer, format types.OutputFormat, q Query) error {
	q.Limit = exportLimit
	recipes, err := s.Search(ctx, q)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	switch format {
	case types.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recipes); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recipes); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", format)
	}
}
