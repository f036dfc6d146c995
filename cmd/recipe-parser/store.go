// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-parser/internal/batch"
	"github.com/pdiddy/recipe-parser/internal/output"
	"github.com/pdiddy/recipe-parser/internal/source"
	"github.com/pdiddy/recipe-parser/internal/store"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the recipe database (ingest, get, search, export)",
	Long: `Store manages a local SQLite database of accepted recipes. Use
subcommands to ingest a directory of documents, look recipes up by ID,
search them, or export them.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest <input-dir>",
	Short: "Parse a directory of documents into the database",
	Long: `Ingest parses every document in input-dir and stores the accepted
recipes. A recipe whose ID is already stored is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ext := viper.GetString("parse.extension")
	if cmd.Flags().Changed("ext") {
		ext, _ = cmd.Flags().GetString("ext")
	}

	listing, err := source.ReadDir(cmd.Context(), args[0], ext)
	if err != nil {
		return err
	}

	var accepted []*types.Recipe
	for _, res := range batch.ParseDocuments(cmd.Context(), listing.Documents, viper.GetInt("parse.workers")) {
		if res.Err != nil {
			fmt.Fprintf(out, "failed  %s: %v\n", res.Document.Name, res.Err)
			continue
		}
		accepted = append(accepted, res.Recipe)
	}

	s, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(cmd.Context(), accepted, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\ninserted: %d, updated: %d, failed: %d (import %s)\n",
		summary.Inserted, summary.Updated, summary.Failed, summary.ImportID)
	if summary.Failed > 0 {
		return fmt.Errorf("%d recipe(s) failed to store", summary.Failed)
	}
	return nil
}

// --- get subcommand ---

var storeGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one stored recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid recipe id %q", args[0])
		}
		format, _ := cmd.Flags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return output.Encode(cmd.OutOrStdout(), f, r)
	},
}

// --- search subcommand ---

var storeSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search stored recipes by title, author, or ingredient",
	Long: `Search matches stored recipes by a case-insensitive substring of the
title or lead (positional text), the author, or any ingredient. Filters
combine with AND.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := queryFromFlags(cmd, args)
		if q.IsEmpty() {
			return fmt.Errorf("query or filter required: provide text, --author, or --ingredient")
		}

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.Search(cmd.Context(), q)
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
	},
}

func formatSearchOutput(w io.Writer, results []*types.Recipe, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-40s  %-20s  %-10s  %s\n", "ID", "Title", "Author", "Created", "Ingredients")
	fmt.Fprintln(w, strings.Repeat("-", 92))
	for _, r := range results {
		created := ""
		if d, ok := r.Created.Get(); ok {
			created = d.String()
		}
		fmt.Fprintf(w, "%-6d  %-40s  %-20s  %-10s  %d\n",
			r.ID, truncate(r.Title, 40), truncate(r.Author.OrZero(), 20), created, len(r.Ingredients))
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored recipes to YAML or JSON",
	Long: `Export writes every stored recipe (or a filtered subset) as a single
YAML or JSON list, to stdout or to --output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		path, _ := cmd.Flags().GetString("output")

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		w := cmd.OutOrStdout()
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}

		if err := s.Export(cmd.Context(), w, types.OutputFormat(format), queryFromFlags(cmd, args)); err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		}
		return nil
	},
}

// --- imports subcommand ---

var storeImportsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List recorded ingest runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		imports, err := s.Imports(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, imp := range imports {
			fmt.Fprintf(w, "%s  %s  inserted: %d, updated: %d, failed: %d  %s\n",
				imp.ID, imp.StartedAt.Format("2006-01-02 15:04:05"), imp.Inserted, imp.Updated, imp.Failed, imp.Source)
		}
		return nil
	},
}

// --- shared helpers ---

func queryFromFlags(cmd *cobra.Command, args []string) store.Query {
	author, _ := cmd.Flags().GetString("author")
	ingredient, _ := cmd.Flags().GetString("ingredient")
	limit, _ := cmd.Flags().GetInt("limit")
	return store.Query{
		Text:       strings.Join(args, " "),
		Author:     author,
		Ingredient: ingredient,
		Limit:      limit,
	}
}

func init() {
	storeIngestCmd.Flags().String("ext", "txt", "extension of the recipe documents to read")

	storeGetCmd.Flags().String("format", "json", "output format: xml, yaml, or json")

	storeSearchCmd.Flags().String("author", "", "filter by author")
	storeSearchCmd.Flags().String("ingredient", "", "filter by ingredient")
	storeSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeSearchCmd.Flags().Bool("json", false, "output results as JSON")

	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("output", "", "write to this file instead of stdout")
	storeExportCmd.Flags().String("author", "", "filter by author for partial export")
	storeExportCmd.Flags().String("ingredient", "", "filter by ingredient for partial export")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeImportsCmd)

	rootCmd.AddCommand(storeCmd)
}
