package kyaml

import (
	"bytes"

	"github.com/signadot/kyaml/debug"
	"github.com/signadot/kyaml/digest"
	"github.com/signadot/kyaml/encode"
	"github.com/signadot/kyaml/ingest"
	"github.com/signadot/kyaml/validate"
	"github.com/signadot/kyaml/value"

	"github.com/ipfs/go-cid"
)

// Tool bundles the settings shared by formatting, validation and digests.
type Tool struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// AllowDuplicateKeys lets the last of repeated mapping keys win
	// instead of failing ingestion.
	AllowDuplicateKeys bool
	// MaxDepth limits nesting on ingestion and encoding.  Zero means no
	// limit.
	MaxDepth int
	// SourceInErrors adds the offending source lines to ingestion errors.
	SourceInErrors bool
}

func DefaultTool() *Tool {
	return &Tool{
		Indent: encode.DefaultIndent,
	}
}

func (t *Tool) encodeOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.Indent(t.Indent),
		encode.MaxDepth(t.MaxDepth),
	}
}

func (t *Tool) ingestOpts() []ingest.IngestOption {
	return []ingest.IngestOption{
		ingest.AllowDuplicateKeys(t.AllowDuplicateKeys),
		ingest.MaxDepth(t.MaxDepth),
		ingest.SourceInErrors(t.SourceInErrors),
	}
}

// Parse ingests d.
func (t *Tool) Parse(d []byte) (*value.Value, error) {
	return ingest.Ingest(d, t.ingestOpts()...)
}

// Stringify renders a host Go value or *value.Value as canonical KYAML.
func (t *Tool) Stringify(x any) ([]byte, error) {
	v, err := value.FromAny(x)
	if err != nil {
		return nil, err
	}
	return t.encode(v)
}

// Format rewrites d in canonical KYAML form.
func (t *Tool) Format(d []byte) ([]byte, error) {
	v, err := t.Parse(d)
	if err != nil {
		return nil, err
	}
	return t.encode(v)
}

// Validate reports whether d is already canonical.
func (t *Tool) Validate(d []byte) validate.Result {
	return validate.IsCanonical(d,
		validate.IngestOptions(t.ingestOpts()...),
		validate.EncodeOptions(t.encodeOpts()...))
}

// Digest returns the content address of the canonical form of d.
func (t *Tool) Digest(d []byte) (cid.Cid, error) {
	v, err := t.Parse(d)
	if err != nil {
		return cid.Undef, err
	}
	return digest.Value(v, t.encodeOpts()...)
}

func (t *Tool) encode(v *value.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, t.encodeOpts()...); err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encoded %d bytes with indent %d:\n%s", buf.Len(), t.Indent, buf.String())
	}
	return buf.Bytes(), nil
}

// Format rewrites d in canonical KYAML form with the default settings.
func Format(d []byte) ([]byte, error) {
	return DefaultTool().Format(d)
}

// Stringify renders x as canonical KYAML with the default settings.
func Stringify(x any) ([]byte, error) {
	return DefaultTool().Stringify(x)
}

// Parse ingests d with the default settings.
func Parse(d []byte) (*value.Value, error) {
	return DefaultTool().Parse(d)
}

// Validate reports whether d is canonical under the default settings.
func Validate(d []byte) validate.Result {
	return DefaultTool().Validate(d)
}
