package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is matched by every *InvalidKeyError.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNilCompare is the panic value of NewFunc when given a nil comparison.
	ErrNilCompare = errors.New("nil compare function")
)

// InvalidKeyError reports a key that can't be placed in a Treap, which
// currently means a nil pointer, interface, map, slice, func or channel.
type InvalidKeyError struct {
	Op  string
	Key any
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s: %v: %T(%v)", e.Op, ErrInvalidKey, e.Key, e.Key)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
