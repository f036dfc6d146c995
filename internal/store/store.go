// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists accepted recipes in a SQLite database and serves
// lookups, searches, and exports over them.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// DefaultPath is the database file used when none is configured.
const DefaultPath = "recipes.db"

// ErrNotFound is returned by Get for an unknown recipe ID.
var ErrNotFound = errors.New("recipe not found")

// Store manages the recipe SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS imports (
			id TEXT PRIMARY KEY,
			source TEXT,
			started_at TEXT NOT NULL,
			inserted INTEGER NOT NULL DEFAULT 0,
			updated INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT,
			created TEXT,
			lead TEXT,
			source TEXT,
			import_id TEXT REFERENCES imports(id)
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			amount REAL,
			unit TEXT,
			item TEXT NOT NULL,
			PRIMARY KEY (recipe_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS steps (
			recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (recipe_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_author ON recipes(author)`,
		`CREATE INDEX IF NOT EXISTS idx_ingredients_item ON ingredients(item)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest call.
type IngestSummary struct {
	ImportID string
	Inserted int
	Updated  int
	Failed   int
}

// Total returns the number of recipes processed.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Updated + s.Failed
}

// Ingest upserts recipes, one transaction per recipe, and records the run
// in the imports table. A recipe whose ID is already stored replaces the
// stored record and its ingredients and steps. A failed recipe is counted
// and skipped; only cancellation or a failure to record the import is
// returned as an error.
func (s *Store) Ingest(ctx context.Context, recipes []*types.Recipe, source string) (IngestSummary, error) {
	summary := IngestSummary{ImportID: uuid.NewString()}
	started := time.Now().UTC().Format(time.RFC3339Nano)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (id, source, started_at) VALUES (?, ?, ?)`,
		summary.ImportID, source, started,
	); err != nil {
		return summary, fmt.Errorf("recording import: %w", err)
	}

	for _, r := range recipes {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		updated, err := s.ingestRecipe(ctx, r, source, summary.ImportID)
		switch {
		case err != nil:
			summary.Failed++
		case updated:
			summary.Updated++
		default:
			summary.Inserted++
		}
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE imports SET inserted = ?, updated = ?, failed = ? WHERE id = ?`,
		summary.Inserted, summary.Updated, summary.Failed, summary.ImportID,
	); err != nil {
		return summary, fmt.Errorf("recording import: %w", err)
	}
	return summary, nil
}

func (s *Store) ingestRecipe(ctx context.Context, r *types.Recipe, source, importID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM recipes WHERE id = ?`, r.ID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recipe %d: %w", r.ID, err)
	}
	updated := exists > 0

	if updated {
		for _, stmt := range []string{
			`DELETE FROM ingredients WHERE recipe_id = ?`,
			`DELETE FROM steps WHERE recipe_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, r.ID); err != nil {
				return false, fmt.Errorf("clearing recipe %d: %w", r.ID, err)
			}
		}
	}

	var created sql.NullString
	if d, ok := r.Created.Get(); ok {
		created = sql.NullString{String: d.String(), Valid: true}
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, title, author, created, lead, source, import_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, author=excluded.author, created=excluded.created,
			lead=excluded.lead, source=excluded.source, import_id=excluded.import_id`,
		r.ID, r.Title, nullString(r.Author), created, nullString(r.Lead), source, importID,
	)
	if err != nil {
		return false, fmt.Errorf("upserting recipe %d: %w", r.ID, err)
	}

	ingStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ingredients (recipe_id, position, amount, unit, item) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return false, fmt.Errorf("preparing insert: %w", err)
	}
	defer ingStmt.Close()

	for i, ing := range r.Ingredients {
		var amount sql.NullFloat64
		if v, ok := ing.Amount.Get(); ok {
			amount = sql.NullFloat64{Float64: v, Valid: true}
		}
		var unit sql.NullString
		if u, ok := ing.Unit.Get(); ok {
			unit = sql.NullString{String: string(u), Valid: true}
		}
		if _, err := ingStmt.ExecContext(ctx, r.ID, i, amount, unit, ing.Item); err != nil {
			return false, fmt.Errorf("inserting ingredient %d of recipe %d: %w", i, r.ID, err)
		}
	}

	stepStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO steps (recipe_id, position, text) VALUES (?, ?, ?)`)
	if err != nil {
		return false, fmt.Errorf("preparing insert: %w", err)
	}
	defer stepStmt.Close()

	for i, step := range r.Steps {
		if _, err := stepStmt.ExecContext(ctx, r.ID, i, step); err != nil {
			return false, fmt.Errorf("inserting step %d of recipe %d: %w", i, r.ID, err)
		}
	}

	return updated, tx.Commit()
}

// Import describes one recorded ingest run.
type Import struct {
	ID        string    `json:"id" yaml:"id"`
	Source    string    `json:"source" yaml:"source"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Inserted  int       `json:"inserted" yaml:"inserted"`
	Updated   int       `json:"updated" yaml:"updated"`
	Failed    int       `json:"failed" yaml:"failed"`
}

// Imports lists recorded ingest runs, newest first.
func (s *Store) Imports(ctx context.Context) ([]Import, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, started_at, inserted, updated, failed
		 FROM imports ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var (
			imp     Import
			source  sql.NullString
			started string
		)
		if err := rows.Scan(&imp.ID, &source, &started, &imp.Inserted, &imp.Updated, &imp.Failed); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		imp.Source = source.String
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			imp.StartedAt = t
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

func nullString(o types.Optional[string]) sql.NullString {
	v, ok := o.Get()
	return sql.NullString{String: v, Valid: ok}
}
