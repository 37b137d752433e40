package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/kyaml/encode"
	"github.com/signadot/kyaml/value"
)

type KYAML struct{ *value.Value }

func (k KYAML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(k.Value, buf); err != nil {
		return fmt.Sprintf("[raw *value.Value] %v", k.Value)
	}
	return buf.String()
}

// Logf writes a formatted trace line to stderr.  Pass values wrapped
// in KYAML to have them rendered.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
