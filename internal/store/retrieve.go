// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// Query holds search parameters. Every non-empty field narrows the result
// (AND semantics); matching is a case-insensitive substring match.
type Query struct {
	// Text matches the title or the lead.
	Text string

	// Author matches the author.
	Author string

	// Ingredient matches any ingredient item.
	Ingredient string

	// Limit caps the result count. Zero uses the store default.
	Limit int
}

// IsEmpty reports whether the query has no filters.
func (q Query) IsEmpty() bool {
	return q.Text == "" && q.Author == "" && q.Ingredient == ""
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Get returns the stored recipe with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int) (*types.Recipe, error) {
	return loadRecipe(ctx, s.db, id)
}

// Search returns the recipes matching q, ordered by ID.
func (s *Store) Search(ctx context.Context, q Query) ([]*types.Recipe, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT r.id FROM recipes r WHERE 1=1`)

	if q.Text != "" {
		qb.WriteString(` AND (r.title LIKE ? ESCAPE '\' OR r.lead LIKE ? ESCAPE '\')`)
		pattern := likePattern(q.Text)
		args = append(args, pattern, pattern)
	}
	if q.Author != "" {
		qb.WriteString(` AND r.author LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(q.Author))
	}
	if q.Ingredient != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM ingredients i WHERE i.recipe_id = r.id AND i.item LIKE ? ESCAPE '\')`)
		args = append(args, likePattern(q.Ingredient))
	}

	qb.WriteString(` ORDER BY r.id LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]*types.Recipe, 0, len(ids))
	for _, id := range ids {
		r, err := loadRecipe(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// likePattern wraps s for a substring LIKE match, escaping LIKE wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func loadRecipe(ctx context.Context, q querier, id int) (*types.Recipe, error) {
	var (
		r       = &types.Recipe{ID: id, Ingredients: []types.Ingredient{}, Steps: []string{}}
		author  sql.NullString
		created sql.NullString
		lead    sql.NullString
	)
	err := q.QueryRowContext(ctx,
		`SELECT title, author, created, lead FROM recipes WHERE id = ?`, id,
	).Scan(&r.Title, &author, &created, &lead)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("looking up recipe %d: %w", id, err)
	}

	r.Author = optionalString(author)
	r.Lead = optionalString(lead)
	if created.Valid {
		if d, err := types.ParseDate(created.String); err == nil {
			r.Created = types.Some(d)
		}
	}

	ingRows, err := q.QueryContext(ctx,
		`SELECT amount, unit, item FROM ingredients WHERE recipe_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("loading ingredients of recipe %d: %w", id, err)
	}
	defer ingRows.Close()
	for ingRows.Next() {
		var (
			ing    types.Ingredient
			amount sql.NullFloat64
			unit   sql.NullString
		)
		if err := ingRows.Scan(&amount, &unit, &ing.Item); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		if amount.Valid {
			ing.Amount = types.Some(amount.Float64)
		}
		if unit.Valid {
			ing.Unit = types.Some(types.Unit(unit.String))
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	if err := ingRows.Err(); err != nil {
		return nil, err
	}

	stepRows, err := q.QueryContext(ctx,
		`SELECT text FROM steps WHERE recipe_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("loading steps of recipe %d: %w", id, err)
	}
	defer stepRows.Close()
	for stepRows.Next() {
		var step string
		if err := stepRows.Scan(&step); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		r.Steps = append(r.Steps, step)
	}
	return r, stepRows.Err()
}

func optionalString(ns sql.NullString) types.Optional[string] {
	if !ns.Valid {
		return types.None[string]()
	}
	return types.Some(ns.String)
}
