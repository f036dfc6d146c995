// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns the lines of one plain-text recipe document into a
// Recipe. A document is a first line of metadata, optional lead text, an
// "Ingredients" marker line followed by ingredient lines, and a "Method"
// marker line followed by steps:
//
//	1. Lemon Cake by Sam Thompson [2018-12-03]
//	A sharp, buttery loaf.
//
//	Ingredients
//	225g unsalted butter
//
//	Method
//	1. Heat the oven to 180C.
//
// The document is either accepted whole or rejected; a bad date or amount
// only blanks that field.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/recipe-parser/internal/ingredient"
	"github.com/pdiddy/recipe-parser/internal/metadata"
	"github.com/pdiddy/recipe-parser/internal/method"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

const (
	bom             = "\uFEFF"
	ingredientsWord = "ingredient"
	methodWord      = "method"
)

var (
	// ErrMissingSectionMarker means the document ended before both the
	// ingredients and method markers were seen.
	ErrMissingSectionMarker = errors.New("missing section marker")

	// ErrFinished is returned by Feed after the classifier reached a
	// terminal state.
	ErrFinished = errors.New("classifier finished")
)

// State is a position in the document scan.
type State int

const (
	AwaitingFirstLine State = iota
	ReadingLead
	ReadingIngredients
	ReadingMethod
	Complete
	Rejected
)

var stateNames = map[State]string{
	AwaitingFirstLine:  "awaiting-first-line",
	ReadingLead:        "reading-lead",
	ReadingIngredients: "reading-ingredients",
	ReadingMethod:      "reading-method",
	Complete:           "complete",
	Rejected:           "rejected",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further lines are accepted.
func (s State) Terminal() bool {
	return s == Complete || s == Rejected
}

// Classifier scans one document line by line. Lines must be fed in source
// order. The zero value is not usable; call New.
type Classifier struct {
	state          State
	sawIngredients bool
	lead           []string
	recipe         types.Recipe
	err            error
	warnings       []error
}

// New returns a Classifier awaiting the first line.
func New() *Classifier {
	return &Classifier{
		state: AwaitingFirstLine,
		recipe: types.Recipe{
			Ingredients: []types.Ingredient{},
			Steps:       []string{},
		},
	}
}

// Warnings returns the non-fatal problems seen so far, such as an
// unreadable creation date.
func (c *Classifier) Warnings() []error {
	return c.warnings
}

// State returns the current scan state.
func (c *Classifier) State() State {
	return c.state
}

// Feed classifies one line. It returns an error, and moves to Rejected,
// only when the first line cannot be read.
func (c *Classifier) Feed(line string) error {
	if c.state.Terminal() {
		if c.err != nil {
			return c.err
		}
		return ErrFinished
	}

	s := strings.TrimSpace(strings.TrimPrefix(line, bom))
	if s == "" {
		return nil
	}

	if c.state == AwaitingFirstLine {
		md, err := metadata.Extract(s)
		if err != nil {
			return c.reject(fmt.Errorf("reading first line: %w", err))
		}
		c.recipe.ID = md.ID
		c.recipe.Title = md.Title
		c.recipe.Author = md.Author
		c.recipe.Created = md.Created
		if md.DateErr != nil {
			c.warnings = append(c.warnings, md.DateErr)
		}
		c.state = ReadingLead
		return nil
	}

	if c.state != ReadingMethod && containsFold(s, ingredientsWord) {
		c.enterIngredients()
		return nil
	}
	if containsFold(s, methodWord) {
		c.state = ReadingMethod
		return nil
	}

	switch c.state {
	case ReadingLead:
		c.lead = append(c.lead, s)
	case ReadingIngredients:
		c.recipe.Ingredients = append(c.recipe.Ingredients, ingredient.Parse(s))
	case ReadingMethod:
		c.recipe.Steps = append(c.recipe.Steps, method.StripNumbering(s))
	}
	return nil
}

// Finish ends the scan and returns the recipe, or an error wrapping
// metadata.ErrMissingIdentifier, metadata.ErrMissingTitle, or
// ErrMissingSectionMarker.
func (c *Classifier) Finish() (*types.Recipe, error) {
	switch c.state {
	case Rejected:
		return nil, c.err
	case Complete:
		r := c.recipe
		return &r, nil
	case AwaitingFirstLine:
		return nil, c.reject(fmt.Errorf("%w: document is empty", ErrMissingSectionMarker))
	}

	if !c.sawIngredients {
		return nil, c.reject(fmt.Errorf("%w: no %q line", ErrMissingSectionMarker, "Ingredients"))
	}
	if c.state != ReadingMethod {
		return nil, c.reject(fmt.Errorf("%w: no %q line", ErrMissingSectionMarker, "Method"))
	}

	c.state = Complete
	r := c.recipe
	return &r, nil
}

// enterIngredients seals the lead collected so far.
func (c *Classifier) enterIngredients() {
	c.state = ReadingIngredients
	c.sawIngredients = true
	if len(c.lead) > 0 {
		c.recipe.Lead = types.Some(strings.Join(c.lead, "\n"))
	}
}

func (c *Classifier) reject(err error) error {
	c.state = Rejected
	c.err = err
	return err
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// Classify runs a full document through a new Classifier.
func Classify(lines []string) (*types.Recipe, error) {
	r, _, err := ClassifyWithWarnings(lines)
	return r, err
}

// ClassifyWithWarnings is Classify that also returns the non-fatal
// problems found in an accepted document.
func ClassifyWithWarnings(lines []string) (*types.Recipe, []error, error) {
	c := New()
	for _, line := range lines {
		if err := c.Feed(line); err != nil {
			return nil, nil, err
		}
	}
	r, err := c.Finish()
	if err != nil {
		return nil, nil, err
	}
	return r, c.Warnings(), nil
}

// Kind names the document-level failure behind err, for reports.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, metadata.ErrMissingIdentifier):
		return "missing_identifier"
	case errors.Is(err, metadata.ErrMissingTitle):
		return "missing_title"
	case errors.Is(err, ErrMissingSectionMarker):
		return "missing_section_marker"
	default:
		return "unknown"
	}
}
