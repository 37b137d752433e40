package encode

import (
	"slices"
	"strings"
)

// reservedKeys collide with implicit YAML scalar typing when unquoted.
var reservedKeys = []string{"true", "false", "null", "yes", "no", "on", "off"}

// BareKey reports whether k may be written without quotes: it starts with
// an ASCII letter or '_', continues with ASCII letters, digits, '_', '.'
// or '-', and is not a reserved word in any letter case.
func BareKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '.' || c == '-'):
		default:
			return false
		}
	}
	return !slices.Contains(reservedKeys, strings.ToLower(k))
}

// FormatKey returns k as written before the ':' of a mapping member.
func FormatKey(k string) string {
	if BareKey(k) {
		return k
	}
	return Quote(k)
}
