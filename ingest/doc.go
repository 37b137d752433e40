// Package ingest parses YAML text into values.
//
// Ingest accepts any single YAML document using the core schema, written in
// block style, flow style or a mix of both.  Mapping keys must be scalars
// and are converted to strings; duplicate keys are an error unless
// AllowDuplicateKeys is set.  Anchors and aliases are resolved by the
// parser.  Streams with more than one document are rejected.
//
// # Usage
//
//	v, err := ingest.Ingest([]byte("name: John\nage: 30\n"))
//	if err != nil {
//	    var ie *ingest.Error
//	    errors.As(err, &ie) // ie.Msg is the message to report
//	}
//
// Parsing is done by github.com/goccy/go-yaml.
package ingest
