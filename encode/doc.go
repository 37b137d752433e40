// Package encode renders values as canonical KYAML text.
//
// # Usage
//
//	v := value.FromMap(map[string]*value.Value{
//	    "name": value.FromString("John"),
//	    "age":  value.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout)
//
// writes
//
//	---
//	{
//	  age: 30,
//	  name: "John"
//	}
//
// # Canonical Form
//
// Every document begins with a "---" line and ends with a newline.
// Strings are always double quoted.  Empty sequences and mappings are
// written as [] and {}; non-empty ones open a bracket, put each element on
// its own line one indentation level deeper, separate elements with ","
// and close the bracket on its own line at the enclosing level.  Mapping
// members are ordered by code point comparison of their keys, and keys are
// written bare only when BareKey allows it.
//
// The only option affecting the text is Indent.  EncodeColors adds
// terminal escapes for display and produces non-canonical output.
//
// # Related Packages
//
//   - github.com/signadot/kyaml/value - the value model
//   - github.com/signadot/kyaml/ingest - parse text into values
//   - github.com/signadot/kyaml/validate - check text is already canonical
package encode
