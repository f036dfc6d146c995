// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestOptionalAccessors(t *testing.T) {
	some := Some("Sam")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "Sam", v)
	assert.True(t, some.IsSet())
	require.NotNil(t, some.Ptr())
	assert.Equal(t, "Sam", *some.Ptr())

	none := None[string]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, "", none.OrZero())
	assert.Nil(t, none.Ptr())

	var zero Optional[float64]
	assert.False(t, zero.IsSet(), "zero value is absent")

	s := "x"
	assert.Equal(t, Some("x"), FromPtr(&s))
	assert.Equal(t, None[string](), FromPtr[string](nil))
}

func TestRecipeJSON(t *testing.T) {
	r := Recipe{
		ID:      1,
		Title:   "Lemon Cake",
		Author:  Some("Sam Thompson"),
		Created: Some(Date{Year: 2018, Month: time.December, Day: 3}),
		Ingredients: []Ingredient{
			{Amount: Some(225.0), Unit: Some(UnitGrams), Item: "unsalted butter"},
			{Item: "icing sugar, to dust"},
		},
		Steps: []string{"Bake for 45-50 minutes."},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"created":"2018-12-03"`)
	assert.Contains(t, string(data), `"lead":null`)
	assert.Contains(t, string(data), `{"amount":null,"unit":null,"item":"icing sugar, to dust"}`)

	var back Recipe
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestRecipeYAMLOmitsAbsentFields(t *testing.T) {
	r := Recipe{
		ID:          2,
		Title:       "Sponge Cake",
		Lead:        Some("Light.\nAiry."),
		Ingredients: []Ingredient{{Amount: Some(4.0), Item: "eggs"}},
		Steps:       []string{"Whisk."},
	}

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "author:")
	assert.NotContains(t, out, "created:")
	assert.NotContains(t, out, "unit:")
	assert.Contains(t, out, "amount: 4")

	var back Recipe
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2018-12-03")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2018, Month: time.December, Day: 3}, d)
	assert.Equal(t, "2018-12-03", d.String())

	for _, bad := range []string{"03/12/2018", "2018-13-01", "2018-12-3", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
