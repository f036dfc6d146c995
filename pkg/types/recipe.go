// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted creation date format.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses s as YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Unit is a canonical unit of measure. An ingredient with no Unit is
// unitless (e.g. "4 eggs").
type Unit string

const (
	UnitGrams       Unit = "grams"
	UnitKilograms   Unit = "kilograms"
	UnitDrops       Unit = "drops"
	UnitPinches     Unit = "pinches"
	UnitTeaspoons   Unit = "teaspoons"
	UnitTablespoons Unit = "tablespoons"
	UnitMillilitres Unit = "millilitres"
	UnitLitres      Unit = "litres"
	UnitPints       Unit = "pints"
	UnitCups        Unit = "cups"
)

// Units lists the closed set of canonical units.
var Units = []Unit{
	UnitGrams, UnitKilograms, UnitDrops, UnitPinches, UnitTeaspoons,
	UnitTablespoons, UnitMillilitres, UnitLitres, UnitPints, UnitCups,
}

// Ingredient is one line of a recipe's ingredient section.
type Ingredient struct {
	// Amount is the leading quantity. Ranges keep their lower bound.
	Amount Optional[float64] `json:"amount" yaml:"amount,omitempty"`

	// Unit is the canonical unit, absent for unitless ingredients.
	Unit Optional[Unit] `json:"unit" yaml:"unit,omitempty"`

	// Item is the remaining ingredient text, trimmed.
	Item string `json:"item" yaml:"item"`
}

// Recipe is a structured record recovered from one plain-text recipe
// document.
type Recipe struct {
	// ID is the number before the first "." on the first line.
	ID int `json:"id" yaml:"id"`

	// Title is always present but may be empty.
	Title string `json:"title" yaml:"title"`

	Author  Optional[string] `json:"author" yaml:"author,omitempty"`
	Created Optional[Date]   `json:"created" yaml:"created,omitempty"`

	// Lead is the free text between the first line and the ingredients
	// marker, one trimmed source line per line.
	Lead Optional[string] `json:"lead" yaml:"lead,omitempty"`

	// Ingredients and Steps keep source order.
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps       []string     `json:"steps" yaml:"steps"`
}
