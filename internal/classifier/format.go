package classifier

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders n as its shortest round-trip text. Fixed notation is
// used for decimal exponents in [-4, 16) and always carries a fraction
// ("1000.0"); outside that range the exponent form is used ("1e+16").
func FormatFloat(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "nan"
	}

	sci := strconv.FormatFloat(n, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	fixed := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
