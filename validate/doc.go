// Package validate decides whether text is already canonical KYAML.
//
// A document is canonical when ingesting and rendering it reproduces it,
// ignoring differences in white space:
//
//	res := validate.IsCanonical([]byte("name: John\n"))
//	// res.Valid == false
//	// res.Error == validate.NotCanonicalMessage
//
// The check has no grammar of its own; the encode package is the only
// definition of canonical form.  Diff shows where input and canonical text
// diverge for tools that want to explain a failure.
package validate
