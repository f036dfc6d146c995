// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

func TestReplaceHalf(t *testing.T) {
	assert.Equal(t, ".5", ReplaceHalf("½"))
	assert.Equal(t, "Test", ReplaceHalf("Test"))
	assert.Equal(t, "1.5-2", ReplaceHalf("1½-2"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want types.Optional[float64]
	}{
		{"TEST", types.None[float64]()},
		{"1", types.Some(1.0)},
		{"1/4", types.Some(0.25)},
		{"1.5-2", types.Some(1.5)},
		{".5", types.Some(0.5)},
		{"1/2/3", types.Some(0.5)},
		{"3-4/5", types.Some(3.0)},
		{"1/0", types.None[float64]()},
		{"1/", types.None[float64]()},
		{"/2", types.None[float64]()},
		{"-2", types.None[float64]()},
		{"", types.None[float64]()},
		{"NaN", types.None[float64]()},
		{"Inf", types.None[float64]()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestSplitAmountUnit(t *testing.T) {
	tests := []struct {
		in, digits, letters string
	}{
		{"225g", "225", "g"},
		{"20ml", "20", "ml"},
		{"1.5kg", "15", "kg"},
		{"icing", "", "icing"},
		{"(2)tbsp,", "2", "tbsp"},
		{"", "", ""},
	}

	for _, tt := range tests {
		d, l := SplitAmountUnit(tt.in)
		assert.Equal(t, tt.digits, d, tt.in)
		assert.Equal(t, tt.letters, l, tt.in)
	}
}

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		in   string
		want types.Optional[types.Unit]
	}{
		{"g", types.Some(types.UnitGrams)},
		{"Grams", types.Some(types.UnitGrams)},
		{"KG", types.Some(types.UnitKilograms)},
		{"drop", types.Some(types.UnitDrops)},
		{"pn", types.Some(types.UnitPinches)},
		{"tsp", types.Some(types.UnitTeaspoons)},
		{"Tablespoons", types.Some(types.UnitTablespoons)},
		{"ml", types.Some(types.UnitMillilitres)},
		{"l", types.Some(types.UnitLitres)},
		{"pint", types.Some(types.UnitPints)},
		{"C", types.Some(types.UnitCups)},
		{"each", types.None[types.Unit]()},
		{"large", types.None[types.Unit]()},
		{"", types.None[types.Unit]()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupUnit(tt.in), tt.in)
	}
}

func TestLookupUnitCoversEveryCanonicalUnit(t *testing.T) {
	for _, u := range types.Units {
		assert.Equal(t, types.Some(u), LookupUnit(string(u)), u)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Ingredient
	}{
		{
			name: "fused amount and unit",
			line: "225g unsalted butter",
			want: types.Ingredient{Amount: types.Some(225.0), Unit: types.Some(types.UnitGrams), Item: "unsalted butter"},
		},
		{
			name: "fused millilitres",
			line: "20ml milk",
			want: types.Ingredient{Amount: types.Some(20.0), Unit: types.Some(types.UnitMillilitres), Item: "milk"},
		},
		{
			name: "amount without unit",
			line: "4 eggs",
			want: types.Ingredient{Amount: types.Some(4.0), Item: "eggs"},
		},
		{
			name: "item only",
			line: "icing sugar, to dust",
			want: types.Ingredient{Item: "icing sugar, to dust"},
		},
		{
			name: "fraction",
			line: "1/2 lemon zested",
			want: types.Ingredient{Amount: types.Some(0.5), Item: "lemon zested"},
		},
		{
			name: "separate unit word",
			line: "2 tbsp caster sugar",
			want: types.Ingredient{Amount: types.Some(2.0), Unit: types.Some(types.UnitTablespoons), Item: "caster sugar"},
		},
		{
			name: "half glyph range",
			line: "1½-2 tsp baking powder",
			want: types.Ingredient{Amount: types.Some(1.5), Unit: types.Some(types.UnitTeaspoons), Item: "baking powder"},
		},
		{
			name: "bare half glyph",
			line: "½ cup water",
			want: types.Ingredient{Amount: types.Some(0.5), Unit: types.Some(types.UnitCups), Item: "water"},
		},
		{
			name: "fused unknown unit",
			line: "3cloves garlic",
			want: types.Ingredient{Amount: types.Some(3.0), Item: "garlic"},
		},
		{
			name: "amount and unit only",
			line: "100 g",
			want: types.Ingredient{Amount: types.Some(100.0), Unit: types.Some(types.UnitGrams), Item: ""},
		},
		{
			name: "single word",
			line: "salt",
			want: types.Ingredient{Item: "salt"},
		},
		{
			name: "single number",
			line: "4",
			want: types.Ingredient{Item: "4"},
		},
		{
			name: "collapses whitespace runs",
			line: "  2\t large   eggs ",
			want: types.Ingredient{Amount: types.Some(2.0), Item: "large eggs"},
		},
		{
			name: "empty line",
			line: "   ",
			want: types.Ingredient{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}
