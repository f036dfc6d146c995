// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingredient tokenizes recipe ingredient lines into amount, unit,
// and item text.
package ingredient

import (
	"strings"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// Parse splits one ingredient line into an Ingredient. It never fails: a
// line it cannot read an amount from becomes item text only.
//
// The first word is the amount, either alone ("4 eggs", "1/2 lemon") with
// an optional unit word after it ("2 tbsp sugar"), or fused with its unit
// ("225g butter").
func Parse(line string) types.Ingredient {
	words := strings.Fields(line)

	switch len(words) {
	case 0:
		return types.Ingredient{}
	case 1:
		return types.Ingredient{Item: words[0]}
	}

	first := ReplaceHalf(words[0])

	if amount := ParseAmount(first); amount.IsSet() {
		ing := types.Ingredient{Amount: amount}
		if unit := LookupUnit(words[1]); unit.IsSet() {
			ing.Unit = unit
			ing.Item = joinWords(words[2:])
		} else {
			ing.Item = joinWords(words[1:])
		}
		return ing
	}

	digits, letters := SplitAmountUnit(first)
	amount := ParseAmount(digits)
	if !amount.IsSet() {
		return types.Ingredient{Item: joinWords(words)}
	}
	return types.Ingredient{
		Amount: amount,
		Unit:   LookupUnit(letters),
		Item:   joinWords(words[1:]),
	}
}

func joinWords(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}
