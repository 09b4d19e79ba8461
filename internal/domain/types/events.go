package types

import "encoding/json"

// MessageContent is the content of a room event together with its type tag.
// The tag lives one level below the room-message request, so the marshalling
// layer derives the wire event_type from here.
type MessageContent interface {
	EventType() EventType
}

// EncryptedContent is the content of an m.room.encrypted event produced by
// the engine.
type EncryptedContent struct {
	Algorithm  string   `json:"algorithm"`
	Ciphertext string   `json:"ciphertext"`
	SenderKey  string   `json:"sender_key,omitempty"`
	DeviceID   DeviceID `json:"device_id,omitempty"`
	SessionID  string   `json:"session_id,omitempty"`
}

// EventType returns "m.room.encrypted".
func (EncryptedContent) EventType() EventType { return "m.room.encrypted" }

// RawContent wraps pre-serialised event content under an explicit type tag.
// It serialises to exactly the wrapped bytes.
type RawContent struct {
	Type    EventType
	Content json.RawMessage
}

// EventType returns the explicit type tag.
func (c RawContent) EventType() EventType { return c.Type }

// MarshalJSON emits the wrapped content verbatim.
func (c RawContent) MarshalJSON() ([]byte, error) {
	if len(c.Content) == 0 {
		return []byte("null"), nil
	}
	return c.Content, nil
}
