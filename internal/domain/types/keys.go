package types

import "encoding/json"

// DeviceKeys is the signed public identity of one device, as published to
// the key directory.
type DeviceKeys struct {
	UserID     UserID                      `json:"user_id"`
	DeviceID   DeviceID                    `json:"device_id"`
	Algorithms []string                    `json:"algorithms"`
	Keys       map[KeyID]string            `json:"keys"`
	Signatures map[UserID]map[KeyID]string `json:"signatures,omitempty"`
}

// OneTimeKey is a single-use (or, with Fallback set, last-resort) Curve25519
// key published for peers to claim when starting a session.
type OneTimeKey struct {
	Key        string                      `json:"key"`
	Fallback   bool                        `json:"fallback,omitempty"`
	Signatures map[UserID]map[KeyID]string `json:"signatures,omitempty"`
}

// RoomKeyBackup holds the encrypted backup payload for one room. Session
// data is opaque to this layer; the engine produced and encrypted it.
type RoomKeyBackup struct {
	Sessions map[string]json.RawMessage `json:"sessions"`
}
