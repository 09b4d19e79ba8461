package marshal

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// field is one entry of a kind's body schema: the wire name and the payload
// value to serialise under it. Names within one kind are distinct by design.
type field struct {
	name  string
	value any
}

// encodeBody serialises the declared fields into a single JSON object,
// preserving declaration order.
func encodeBody(fields ...field) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(f.name))
		buf.WriteByte(':')
		v, err := json.Marshal(f.value)
		if err != nil {
			return "", &SerializationError{Field: f.name, Err: err}
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}
