// Package classifier recognizes numeric-looking cell text (general numbers,
// currency amounts, percentages) and converts it to canonical form.
package classifier

import (
	"regexp"
	"strings"

	"github.com/nconklindev/csvfix/internal/locale"
	"github.com/nconklindev/csvfix/internal/types"
)

// MissingValue marks a cell with no value; it is never converted.
const MissingValue = "--"

// groupedNumber is comma-grouped with an optional two digit fraction. The
// separators are fixed here; only parsing follows the active locale.
const groupedNumber = `[+-]?\s*\d{1,3}(,\d\d\d)*(\.\d\d)?`

// Result is the outcome of classifying one cell.
type Result struct {
	// Value is the converted text, or the untouched input for CategoryNone.
	Value    string
	Number   float64
	Category types.Category
}

// Truthy reports whether the result should replace the cell. A general value
// of zero does not.
func (r Result) Truthy() bool {
	switch r.Category {
	case types.CategoryNone:
		return false
	case types.CategoryGeneral:
		return r.Number != 0
	default:
		return r.Value != ""
	}
}

type shape struct {
	pattern  *regexp.Regexp
	category types.Category
	render   func(float64) string
}

// shapes are tried in order; the first full match wins.
var shapes = []shape{
	{
		pattern:  fullMatch(groupedNumber),
		category: types.CategoryGeneral,
		render:   FormatFloat,
	},
	{
		pattern:  fullMatch(`[+-]?\$` + groupedNumber),
		category: types.CategoryCurrency,
		render:   func(n float64) string { return "$" + FormatFloat(n) },
	},
	{
		pattern:  fullMatch(groupedNumber + `%`),
		category: types.CategoryPercent,
		render:   func(n float64) string { return FormatFloat(n) + "%" },
	},
}

func fullMatch(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}

var symbols = strings.NewReplacer("$", "", "%", "")

// signSpace is whitespace between a leading sign and the digits.
var signSpace = regexp.MustCompile(`^([+-]+)\s+`)

// Classify matches raw against the known shapes and converts it.
func Classify(raw string, loc locale.Locale) Result {
	unmatched := Result{Value: raw, Category: types.CategoryNone}
	if raw == "" || raw == MissingValue {
		return unmatched
	}

	val := strings.TrimSpace(raw)
	for _, s := range shapes {
		if !s.pattern.MatchString(val) {
			continue
		}

		digits := signSpace.ReplaceAllString(symbols.Replace(val), "$1")
		n, err := loc.Atof(digits)
		if err != nil {
			return unmatched
		}
		return Result{Value: s.render(n), Number: n, Category: s.category}
	}

	return unmatched
}
