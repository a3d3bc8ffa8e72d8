package converter

import (
	"github.com/nconklindev/csvfix/internal/classifier"
	"github.com/nconklindev/csvfix/internal/locale"
	"github.com/nconklindev/csvfix/internal/types"
)

// Transform classifies every present cell and overwrites it in place when the
// classification is truthy. Row and column order are untouched and absent
// columns stay absent.
func Transform(table *types.Table, loc locale.Locale) []types.Conversion {
	var conversions []types.Conversion
	cols := columns(table.Fieldnames)

	for i, row := range table.Rows {
		for _, column := range cols {
			old, ok := row[column]
			if !ok {
				continue
			}

			res := classifier.Classify(old, loc)
			if !res.Truthy() {
				continue
			}

			row[column] = res.Value
			conversions = append(conversions, types.Conversion{
				Row:      i,
				Column:   column,
				Category: res.Category,
				Old:      old,
				New:      res.Value,
				Number:   res.Number,
			})
		}
	}

	return conversions
}

// columns returns fieldnames without repeats; a duplicated header maps to a
// single row key.
func columns(fieldnames []string) []string {
	seen := make(map[string]bool, len(fieldnames))
	out := make([]string, 0, len(fieldnames))
	for _, name := range fieldnames {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
