// Package locale describes the numeric conventions of the active locale and
// parses locale-formatted numbers.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale holds the separators used when parsing numbers.
type Locale struct {
	Name      string
	Thousands string
	Decimal   string
}

// C returns the C/POSIX locale: no grouping, "." as decimal point.
func C() Locale {
	return Locale{Name: "C", Thousands: "", Decimal: "."}
}

// envKeys are consulted in order; the first non-empty one wins.
var envKeys = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// FromEnv resolves the numeric locale from the environment.
func FromEnv(getenv func(string) string) (Locale, error) {
	for _, key := range envKeys {
		if v := getenv(key); v != "" {
			return Parse(v)
		}
	}
	return C(), nil
}

// Parse builds a Locale from a POSIX locale name such as "de_DE.UTF-8" or a
// BCP 47 tag such as "de-DE".
func Parse(name string) (Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "C" || name == "POSIX" || strings.HasPrefix(name, "C.") {
		return C(), nil
	}

	tagName := name
	if i := strings.IndexAny(tagName, ".@"); i >= 0 {
		tagName = tagName[:i]
	}
	tagName = strings.ReplaceAll(tagName, "_", "-")

	tag, err := language.Parse(tagName)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", name, err)
	}

	thousands, decimal := separators(tag)
	return Locale{Name: name, Thousands: thousands, Decimal: decimal}, nil
}

// separators derives grouping and decimal separators by formatting known
// values with the tag's printer.
func separators(tag language.Tag) (thousands, decimal string) {
	p := message.NewPrinter(tag)

	grouped := []rune(p.Sprintf("%d", 1234567))
	for i, r := range grouped {
		if i > 0 && !unicode.IsDigit(r) {
			thousands = string(r)
			break
		}
	}

	half := []rune(p.Sprintf("%.1f", 0.5))
	for i := len(half) - 2; i >= 0; i-- {
		if !unicode.IsDigit(half[i]) {
			decimal = string(half[i])
			break
		}
	}
	if decimal == "" {
		decimal = "."
	}

	return thousands, decimal
}

// Atof parses s the way a locale-aware atof does: grouping separators are
// removed, the decimal separator becomes ".", then the result is parsed.
// Values too large for float64 yield ±Inf without an error.
func (l Locale) Atof(s string) (float64, error) {
	if l.Thousands != "" {
		s = strings.ReplaceAll(s, l.Thousands, "")
	}
	if l.Decimal != "" && l.Decimal != "." {
		s = strings.ReplaceAll(s, l.Decimal, ".")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

func (l Locale) String() string {
	return l.Name
}
