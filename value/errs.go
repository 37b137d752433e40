package value

import "errors"

var (
	ErrDuplicateKey    = errors.New("duplicate mapping key")
	ErrKeyType         = errors.New("mapping key is not a scalar")
	ErrUnsupportedType = errors.New("unsupported type")
)
