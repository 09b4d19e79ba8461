package types

import "encoding/json"

// AnyRequest is the closed set of request payloads the engine emits. Exactly
// the seven request types below implement it; adding a kind means adding a
// payload here and a converter plus union arm in the marshalling layer.
type AnyRequest interface {
	isOutgoingRequest()
}

// OutgoingRequest is an action the engine decided to perform against the
// homeserver, independent of transport: an identifier unique to this
// dispatch plus the kind-specific payload.
type OutgoingRequest struct {
	ID      RequestID
	Request AnyRequest
}

// KeysUploadRequest publishes end-to-end encryption keys for the device.
type KeysUploadRequest struct {
	DeviceKeys   *DeviceKeys          `json:"device_keys"`
	OneTimeKeys  map[KeyID]OneTimeKey `json:"one_time_keys"`
	FallbackKeys map[KeyID]OneTimeKey `json:"fallback_keys"`
}

// KeysQueryRequest asks for the current devices and identity keys of the
// given users. Timeout is carried as data; nothing here enforces it.
type KeysQueryRequest struct {
	Timeout    *Timeout              `json:"timeout,omitempty"`
	DeviceKeys map[UserID][]DeviceID `json:"device_keys"`
}

// KeysClaimRequest claims one-time keys for establishing 1-to-1 sessions.
// Values of OneTimeKeys name the desired key algorithm per device.
type KeysClaimRequest struct {
	Timeout     *Timeout                       `json:"timeout,omitempty"`
	OneTimeKeys map[UserID]map[DeviceID]string `json:"one_time_keys"`
}

// ToDeviceRequest sends an event directly to a set of devices. Message
// content is opaque, engine-encrypted JSON.
type ToDeviceRequest struct {
	EventType EventType                               `json:"event_type"`
	TxnID     TransactionID                           `json:"txn_id"`
	Messages  map[UserID]map[DeviceID]json.RawMessage `json:"messages"`
}

// SignatureUploadRequest publishes cross-signing signatures over key
// material, keyed by user then by key or device identifier.
type SignatureUploadRequest struct {
	SignedKeys map[UserID]map[string]json.RawMessage `json:"signed_keys"`
}

// RoomMessageRequest sends one event into a room.
type RoomMessageRequest struct {
	RoomID  RoomID         `json:"room_id"`
	TxnID   TransactionID  `json:"txn_id"`
	Content MessageContent `json:"content"`
}

// KeysBackupRequest backs up a batch of room keys to the server. Version
// selects the backup on the URL path and is not part of the body.
type KeysBackupRequest struct {
	Version string                   `json:"version,omitempty"`
	Rooms   map[RoomID]RoomKeyBackup `json:"rooms"`
}

func (*KeysUploadRequest) isOutgoingRequest()      {}
func (*KeysQueryRequest) isOutgoingRequest()       {}
func (*KeysClaimRequest) isOutgoingRequest()       {}
func (*ToDeviceRequest) isOutgoingRequest()        {}
func (*SignatureUploadRequest) isOutgoingRequest() {}
func (*RoomMessageRequest) isOutgoingRequest()     {}
func (*KeysBackupRequest) isOutgoingRequest()      {}
