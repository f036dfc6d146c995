// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredient

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// HalfGlyph is the single-character one-half written in some recipes
// ("1½ cups").
const HalfGlyph = "½"

// ReplaceHalf substitutes ".5" for every HalfGlyph in s, so "1½-2" becomes
// "1.5-2".
func ReplaceHalf(s string) string {
	return strings.ReplaceAll(s, HalfGlyph, ".5")
}

// ParseAmount reads s as a quantity. Anything from the first "-" on is
// dropped, so a range keeps only its lower bound. A "/" makes s a fraction
// of its first two parts; further parts are ignored. Unparsable input,
// a zero denominator, and non-finite values yield an absent amount.
func ParseAmount(s string) types.Optional[float64] {
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		num, ok := parseFloat(parts[0])
		if !ok {
			return types.None[float64]()
		}
		den, ok := parseFloat(parts[1])
		if !ok || den == 0 {
			return types.None[float64]()
		}
		return types.Some(num / den)
	}

	v, ok := parseFloat(s)
	if !ok {
		return types.None[float64]()
	}
	return types.Some(v)
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// SplitAmountUnit separates a token such as "225g" into its digit run
// ("225") and its letter run ("g"). Characters that are neither digits nor
// letters are dropped from both, so "1.5kg" splits into "15" and "kg".
func SplitAmountUnit(token string) (digits, letters string) {
	var d, l strings.Builder
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			d.WriteRune(r)
		case unicode.IsLetter(r):
			l.WriteRune(r)
		}
	}
	return d.String(), l.String()
}
