// Package kyaml formats and validates KYAML, a strict canonical encoding of
// YAML data.
//
// # Overview
//
// KYAML text is ordinary YAML restricted to a single rendering per value:
//
//	---
//	{
//	  age: 30,
//	  name: "John",
//	  tags: [
//	    "dev",
//	    "ops"
//	  ]
//	}
//
// Structurally equal values always render to byte identical text, so
// KYAML is suitable for diffing, hashing and review.
//
// # Usage
//
//	out, err := kyaml.Format([]byte("name: John\nage: 30\n"))
//	res := kyaml.Validate(out) // res.Valid == true
//	out, err = kyaml.Stringify(map[string]any{"a": []int{1, 2}})
//
// A Tool carries non-default settings such as the indentation width.
//
// # Related Packages
//
//   - github.com/signadot/kyaml/value - the value model
//   - github.com/signadot/kyaml/ingest - parse YAML into values
//   - github.com/signadot/kyaml/encode - the canonical writer
//   - github.com/signadot/kyaml/validate - canonical form checking
//   - github.com/signadot/kyaml/digest - content addresses of documents
package kyaml
