// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredient

import (
	"strings"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// unitAliases maps lower-cased unit spellings to canonical units.
var unitAliases = map[string]types.Unit{
	"g":     types.UnitGrams,
	"grams": types.UnitGrams,

	"kg":        types.UnitKilograms,
	"kilograms": types.UnitKilograms,

	"dr":    types.UnitDrops,
	"drop":  types.UnitDrops,
	"drops": types.UnitDrops,

	"pn":      types.UnitPinches,
	"pinch":   types.UnitPinches,
	"pinches": types.UnitPinches,

	"tsp":       types.UnitTeaspoons,
	"teaspoon":  types.UnitTeaspoons,
	"teaspoons": types.UnitTeaspoons,

	"tbsp":        types.UnitTablespoons,
	"tablespoon":  types.UnitTablespoons,
	"tablespoons": types.UnitTablespoons,

	"ml":          types.UnitMillilitres,
	"millilitre":  types.UnitMillilitres,
	"millilitres": types.UnitMillilitres,

	"l":      types.UnitLitres,
	"litre":  types.UnitLitres,
	"litres": types.UnitLitres,

	"pt":    types.UnitPints,
	"pint":  types.UnitPints,
	"pints": types.UnitPints,

	"c":    types.UnitCups,
	"cup":  types.UnitCups,
	"cups": types.UnitCups,
}

// LookupUnit resolves token to a canonical unit, ignoring case. Anything
// outside the table (e.g. "each", "large") is unitless.
func LookupUnit(token string) types.Optional[types.Unit] {
	if u, ok := unitAliases[strings.ToLower(token)]; ok {
		return types.Some(u)
	}
	return types.None[types.Unit]()
}
