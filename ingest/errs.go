package ingest

import "errors"

var (
	ErrIngest        = errors.New("ingestion error")
	ErrMultiDocument = errors.New("multiple documents are not supported")
	ErrDepth         = errors.New("nesting too deep")
)

// Error is returned when text cannot be ingested.  Msg is the human
// readable message reported to callers.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIngest}
	}
	return []error{ErrIngest, e.Err}
}

func newError(err error, msg string) *Error {
	return &Error{Msg: msg, Err: err}
}
