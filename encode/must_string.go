package encode

import (
	"strings"

	"github.com/signadot/kyaml/value"
)

// MustString returns the rendered value of v without the document marker
// or the trailing newline.  It panics if v cannot be encoded.
func MustString(v *value.Value) string {
	s, err := String(v)
	if err != nil {
		panic(err)
	}
	s = strings.TrimPrefix(s, DocumentMarker+"\n")
	return strings.TrimSuffix(s, "\n")
}
