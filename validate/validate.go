package validate

import (
	"bytes"
	"errors"
	"strings"

	"github.com/signadot/kyaml/debug"
	"github.com/signadot/kyaml/encode"
	"github.com/signadot/kyaml/ingest"
)

// NotCanonicalMessage is the error reported for input which ingests but
// does not render back to itself.
const NotCanonicalMessage = "Input is valid YAML but not canonical KYAML format"

// Result is the outcome of checking a document.
type Result struct {
	Valid bool
	// Error is empty when Valid is true.
	Error string
	// Canonical is the canonical rendering of the input, nil if the input
	// could not be ingested.
	Canonical []byte
}

type state struct {
	encOpts    []encode.EncodeOption
	ingestOpts []ingest.IngestOption
}

type Option func(*state)

// EncodeOptions sets the options used to render the canonical form.
func EncodeOptions(opts ...encode.EncodeOption) Option {
	return func(s *state) { s.encOpts = append(s.encOpts, opts...) }
}

// IngestOptions sets the options used to ingest the input.
func IngestOptions(opts ...ingest.IngestOption) Option {
	return func(s *state) { s.ingestOpts = append(s.ingestOpts, opts...) }
}

// IsCanonical reports whether d is already in canonical KYAML form.
//
// d is ingested and rendered, and the rendering is compared with d after
// Normalize has been applied to both.  Ingestion and rendering failures
// are reported through Result.Error.
func IsCanonical(d []byte, opts ...Option) Result {
	s := &state{}
	for _, opt := range opts {
		opt(s)
	}
	v, err := ingest.Ingest(d, s.ingestOpts...)
	if err != nil {
		return Result{Error: errorMessage(err)}
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, s.encOpts...); err != nil {
		return Result{Error: err.Error()}
	}
	canonical := buf.Bytes()
	res := Result{Canonical: canonical}
	if Normalize(string(d)) == Normalize(string(canonical)) {
		res.Valid = true
	} else {
		res.Error = NotCanonicalMessage
	}
	if debug.Validate() {
		debug.Logf("validate: valid=%t input=%q canonical=%q\n", res.Valid, Normalize(string(d)), Normalize(string(canonical)))
	}
	return res
}

// Normalize replaces every run of white space in s with a single space
// and trims white space from both ends.
//
// White space inside quoted strings is collapsed too, so two strings
// differing only in their runs of spaces compare equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func errorMessage(err error) string {
	var ie *ingest.Error
	if errors.As(err, &ie) {
		return ie.Msg
	}
	return err.Error()
}
