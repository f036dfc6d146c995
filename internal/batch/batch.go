// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the recipe classifier over a directory of documents,
// writes the accepted recipes, and tallies the rejected ones.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/pdiddy/recipe-parser/internal/classify"
	"github.com/pdiddy/recipe-parser/internal/output"
	"github.com/pdiddy/recipe-parser/internal/source"
	"github.com/pdiddy/recipe-parser/internal/store"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

// Ingester receives accepted recipes, e.g. the SQLite store.
type Ingester interface {
	Ingest(ctx context.Context, recipes []*types.Recipe, source string) (store.IngestSummary, error)
}

// Options carries the collaborators of a run.
type Options struct {
	// Out receives one progress line per document. Nil discards.
	Out io.Writer
	// Logger receives structured records. Nil uses slog.Default().
	Logger *slog.Logger
	// Store, when set, also receives every accepted recipe.
	Store Ingester
}

// Result is the outcome of classifying one document.
type Result struct {
	Document source.Document
	Recipe   *types.Recipe
	// Warnings are non-fatal problems in an accepted document.
	Warnings []error
	Err      error
}

// Summary holds the counts from a run.
type Summary struct {
	Read        int
	Parsed      int
	Rejected    int
	Skipped     int
	Written     int
	WriteFailed int
	Stored      int
}

// HasFailures reports whether any document was rejected or not written.
func (s Summary) HasFailures() bool {
	return s.Rejected > 0 || s.WriteFailed > 0
}

// ParseDocuments classifies docs concurrently, at most workers at a time.
// Results are in the same order as docs. Documents are independent, so no
// state is shared between tasks.
func ParseDocuments(ctx context.Context, docs []source.Document, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(docs))
	p := pool.New().WithMaxGoroutines(workers)
	for i, doc := range docs {
		i, doc := i, doc
		p.Go(func() {
			results[i] = parseOne(ctx, doc)
		})
	}
	p.Wait()
	return results
}

func parseOne(ctx context.Context, doc source.Document) Result {
	if err := ctx.Err(); err != nil {
		return Result{Document: doc, Err: err}
	}
	if doc.Err != nil {
		return Result{Document: doc, Err: doc.Err}
	}
	r, warnings, err := classify.ClassifyWithWarnings(doc.Lines)
	return Result{Document: doc, Recipe: r, Warnings: warnings, Err: err}
}

// Run parses every document in cfg.InputDir and writes the accepted
// recipes into cfg.OutputDir. A rejected document is reported and counted;
// it never stops the run. Only an unreadable input directory, a bad
// format, or cancellation return an error.
func Run(ctx context.Context, cfg types.ParseConfig, opts Options) (Summary, error) {
	w := opts.Out
	if w == nil {
		w = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	format, err := output.ParseFormat(string(cfg.Format))
	if err != nil {
		return Summary{}, err
	}

	listing, err := source.ReadDir(ctx, cfg.InputDir, cfg.Extension)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, name := range listing.Skipped {
		fmt.Fprintf(w, "skipped %s\n", name)
		summary.Skipped++
	}

	results := ParseDocuments(ctx, listing.Documents, cfg.Workers)
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	accepted := make([]*types.Recipe, 0, len(results))
	for _, res := range results {
		summary.Read++
		if res.Err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", res.Document.Name, res.Err)
			logger.Warn("recipe rejected",
				"file", res.Document.Name,
				"kind", classify.Kind(res.Err),
				"error", res.Err)
			summary.Rejected++
			continue
		}
		fmt.Fprintf(w, "parsed  %s (recipe %d, %d ingredients, %d steps)\n",
			res.Document.Name, res.Recipe.ID, len(res.Recipe.Ingredients), len(res.Recipe.Steps))
		for _, warning := range res.Warnings {
			logger.Warn("recipe field dropped", "file", res.Document.Name, "id", res.Recipe.ID, "error", warning)
		}
		logger.Debug("recipe parsed", "file", res.Document.Name, "id", res.Recipe.ID, "title", res.Recipe.Title)
		summary.Parsed++
		accepted = append(accepted, res.Recipe)
	}

	written := output.WriteAll(cfg.OutputDir, format, accepted, w)
	summary.Written = written.Written
	summary.WriteFailed = written.Failed

	if opts.Store != nil && len(accepted) > 0 {
		ingested, err := opts.Store.Ingest(ctx, accepted, cfg.InputDir)
		if err != nil {
			fmt.Fprintf(w, "warning: store ingest failed: %v\n", err)
			logger.Error("store ingest failed", "error", err)
		}
		summary.Stored = ingested.Inserted + ingested.Updated
	}

	fmt.Fprintf(w, "\nparsed: %d, rejected: %d, skipped: %d, written: %d\n",
		summary.Parsed, summary.Rejected, summary.Skipped, summary.Written)
	logger.Info("batch complete",
		"input", cfg.InputDir,
		"parsed", summary.Parsed,
		"rejected", summary.Rejected,
		"written", summary.Written)

	return summary, nil
}
