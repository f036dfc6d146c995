// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

var sampleDate = types.Some(types.Date{Year: 2018, Month: time.December, Day: 3})

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		want        Metadata
		wantDateErr bool
	}{
		{
			name: "sample line",
			line: "1. Lemon Cake by Sam Thompson [2018-12-03]",
			want: Metadata{ID: 1, Title: "Lemon Cake", Author: types.Some("Sam Thompson"), Created: sampleDate},
		},
		{
			name: "no date",
			line: "1. Lemon Cake by Sam Thompson",
			want: Metadata{ID: 1, Title: "Lemon Cake", Author: types.Some("Sam Thompson")},
		},
		{
			name: "no author",
			line: "1. Lemon Cake [2018-12-03]",
			want: Metadata{ID: 1, Title: "Lemon Cake", Created: sampleDate},
		},
		{
			name: "date before author",
			line: "1. Lemon Cake [2018-12-03] by Sam Thompson",
			want: Metadata{ID: 1, Title: "Lemon Cake", Author: types.Some("Sam Thompson"), Created: sampleDate},
		},
		{
			name: "title only",
			line: "21. Sponge Cake",
			want: Metadata{ID: 21, Title: "Sponge Cake"},
		},
		{
			name: "id only gives empty title",
			line: "1.",
			want: Metadata{ID: 1, Title: ""},
		},
		{
			name: "reversed brackets stay in title",
			line: "1. Lemon Cake ][ by Sam Thompson",
			want: Metadata{ID: 1, Title: "Lemon Cake ][", Author: types.Some("Sam Thompson")},
		},
		{
			name: "last author marker wins",
			line: "63. Stand by Me Cake by Sam Thompson",
			want: Metadata{ID: 63, Title: "Stand by Me Cake", Author: types.Some("Sam Thompson")},
		},
		{
			name: "leading zeros",
			line: "0005. Mince Pies",
			want: Metadata{ID: 5, Title: "Mince Pies"},
		},
		{
			name: "negative id",
			line: "-5. Mince Pies",
			want: Metadata{ID: -5, Title: "Mince Pies"},
		},
		{
			name: "periods in the title",
			line: "951. Raspberry Bakewell Cake v.2.",
			want: Metadata{ID: 951, Title: "Raspberry Bakewell Cake v.2."},
		},
		{
			name: "surrounding whitespace",
			line: "   62. Carrot Cake   ",
			want: Metadata{ID: 62, Title: "Carrot Cake"},
		},
		{
			name: "author with empty name before date",
			line: "7. Scones by [2020-01-02]",
			want: Metadata{ID: 7, Title: "Scones", Author: types.Some(""), Created: types.Some(types.Date{Year: 2020, Month: time.January, Day: 2})},
		},
		{
			name:        "author marker inside date brackets",
			line:        "8. Flapjack [made by hand]",
			want:        Metadata{ID: 8, Title: "Flapjack", Author: types.Some("hand]")},
			wantDateErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.line)
			require.NoError(t, err)
			if tt.wantDateErr {
				require.ErrorIs(t, got.DateErr, ErrUnparsableDate)
				got.DateErr = nil
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBadDate(t *testing.T) {
	got, err := Extract("1. Lemon Cake [03/12/2018] by Sam Thompson")
	require.NoError(t, err, "a bad date never rejects the line")
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Lemon Cake", got.Title)
	assert.Equal(t, types.Some("Sam Thompson"), got.Author)
	assert.False(t, got.Created.IsSet())
	assert.ErrorIs(t, got.DateErr, ErrUnparsableDate)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"NONSENSE DATA", ErrMissingIdentifier},
		{"NOTNUMERICID. TITLE", ErrMissingIdentifier},
		{"55abc. Cake", ErrMissingIdentifier},
		{". Cake", ErrMissingIdentifier},
		{"1 . Cake", ErrMissingIdentifier},
		{"99999999999. Cake", ErrMissingIdentifier},
		{"", ErrMissingIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Extract(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTitleRules(t *testing.T) {
	tests := []struct {
		name    string
		markers Markers
		want    string
	}{
		{"neither", Markers{Period: 1, By: -1, Open: -1, Close: -1}, "no author or date"},
		{"reversed brackets only", Markers{Period: 1, By: -1, Open: 9, Close: 5}, "no author or date"},
		{"date only", Markers{Period: 1, By: -1, Open: 5, Close: 9}, "date before author"},
		{"date then author", Markers{Period: 1, By: 12, Open: 5, Close: 9}, "date before author"},
		{"author only", Markers{Period: 1, By: 5, Open: -1, Close: -1}, "author before date"},
		{"author then date", Markers{Period: 1, By: 5, Open: 12, Close: 20}, "author before date"},
		{"author with reversed brackets", Markers{Period: 1, By: 5, Open: 12, Close: 10}, "author before date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := matchTitle(tt.markers)
			require.True(t, ok)
			assert.Equal(t, tt.want, rule.Name)
		})
	}
}

func TestTitleRulesNoMatch(t *testing.T) {
	// Author and date at the same offset cannot come from a real line, but it
	// is the one arrangement none of the rules cover.
	_, ok := matchTitle(Markers{Period: 1, By: 5, Open: 5, Close: 9})
	assert.False(t, ok)
}

func TestMarkers(t *testing.T) {
	m := Locate("1. Lemon Cake by Sam Thompson [2018-12-03]")
	assert.Equal(t, Markers{Period: 1, By: 13, Open: 30, Close: 41}, m)
	assert.True(t, m.HasAuthor())
	assert.True(t, m.HasDate())

	m = Locate("1. Lemon Cake ][")
	assert.False(t, m.HasAuthor())
	assert.False(t, m.HasDate())
}
