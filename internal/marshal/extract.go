package marshal

import (
	"encoding/json"
	"errors"

	"outbox/internal/domain"
)

// encodeJSON serialises a single payload field (or a whole content body) to
// its JSON text form.
func encodeJSON(name string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", &SerializationError{Field: name, Err: err}
	}
	return string(b), nil
}

// timeoutMillis converts an optional timeout into an optional millisecond
// count for the body. A nil timeout stays nil and serialises as null.
func timeoutMillis(t *domain.Timeout) (*uint64, error) {
	if t == nil {
		return nil, nil
	}
	ms, ok := t.Millis()
	if !ok {
		return nil, &SerializationError{
			Field: "timeout",
			Err:   errors.New("millisecond count overflows uint64"),
		}
	}
	return &ms, nil
}
