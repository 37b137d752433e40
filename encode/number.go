package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/kyaml/value"
)

// FormatNumber returns the canonical text of a number value.
func FormatNumber(v *value.Value) (string, error) {
	switch {
	case v.Int64 != nil:
		return strconv.FormatInt(*v.Int64, 10), nil
	case v.Uint64 != nil:
		return strconv.FormatUint(*v.Uint64, 10), nil
	case v.Float64 != nil:
		return FormatFloat(*v.Float64), nil
	}
	return "", fmt.Errorf("%w: number without int or float value", ErrEncoding)
}

// FormatFloat returns the shortest text that parses back to f as a float.
//
// Plain decimal notation is used for magnitudes in [1e-6, 1e21) and
// exponent notation outside of it.  The mantissa always carries a '.' so
// that integral floats stay floats, and the non-finite values use the
// YAML spellings .nan, .inf and -.inf.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		// strconv pads the exponent to two digits
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + exp[:1] + digits
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
