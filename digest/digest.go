// Package digest computes content addresses of canonical KYAML documents.
//
// Because structurally equal values always render to the same bytes, the
// digest of the canonical rendering identifies a value independently of
// the style it was written in.
package digest

import (
	"bytes"

	"github.com/signadot/kyaml/encode"
	"github.com/signadot/kyaml/ingest"
	"github.com/signadot/kyaml/value"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Bytes returns a CIDv1 using the "raw" multicodec and a sha2-256
// multihash of d.
func Bytes(d []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(d, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Value returns the CID of the canonical rendering of v.
func Value(v *value.Value, opts ...encode.EncodeOption) (cid.Cid, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return cid.Undef, err
	}
	return Bytes(buf.Bytes())
}

// Text ingests d and returns the CID of its canonical rendering.
func Text(d []byte, opts ...encode.EncodeOption) (cid.Cid, error) {
	v, err := ingest.Ingest(d)
	if err != nil {
		return cid.Undef, err
	}
	return Value(v, opts...)
}
