package types

import "github.com/google/uuid"

// RequestID uniquely identifies one outgoing request for the lifetime of a
// dispatch. The engine usually supplies it; NewRequestID covers callers that
// need a fresh one.
type RequestID string

// String returns the canonical string form of the request identifier.
func (id RequestID) String() string { return string(id) }

// NewRequestID returns a fresh random request identifier.
func NewRequestID() RequestID { return RequestID(uuid.NewString()) }

// UserID identifies a user on the homeserver (e.g. "@alice:example.org").
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// DeviceID identifies one of a user's devices.
type DeviceID string

// String returns the string form of the device identifier.
func (id DeviceID) String() string { return string(id) }

// KeyID names a single key, algorithm-qualified (e.g. "curve25519:JLAFKJWSCS").
type KeyID string

// String returns the string form of the key identifier.
func (id KeyID) String() string { return string(id) }

// RoomID identifies a room (e.g. "!abc:example.org").
type RoomID string

// String returns the string form of the room identifier.
func (id RoomID) String() string { return string(id) }

// TransactionID is a caller-chosen token the server uses to make replayed
// requests idempotent.
type TransactionID string

// String returns the string form of the transaction identifier.
func (id TransactionID) String() string { return string(id) }

// NewTransactionID returns a fresh random transaction identifier.
func NewTransactionID() TransactionID { return TransactionID(uuid.NewString()) }

// EventType is the type tag of an event (e.g. "m.room.encrypted").
type EventType string

// String returns the string form of the event type.
func (t EventType) String() string { return string(t) }
