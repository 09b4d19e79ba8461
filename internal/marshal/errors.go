package marshal

import "fmt"

// SerializationError is the single failure kind of this package: a field
// that cannot be serialised to JSON, or a timeout whose millisecond count
// overflows a uint64.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %q: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
