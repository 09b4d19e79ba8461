package domain

import (
	types "outbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	RequestID     = types.RequestID
	UserID        = types.UserID
	DeviceID      = types.DeviceID
	KeyID         = types.KeyID
	RoomID        = types.RoomID
	TransactionID = types.TransactionID
	EventType     = types.EventType
	Timeout       = types.Timeout

	DeviceKeys    = types.DeviceKeys
	OneTimeKey    = types.OneTimeKey
	RoomKeyBackup = types.RoomKeyBackup

	MessageContent   = types.MessageContent
	EncryptedContent = types.EncryptedContent
	RawContent       = types.RawContent

	AnyRequest             = types.AnyRequest
	OutgoingRequest        = types.OutgoingRequest
	KeysUploadRequest      = types.KeysUploadRequest
	KeysQueryRequest       = types.KeysQueryRequest
	KeysClaimRequest       = types.KeysClaimRequest
	ToDeviceRequest        = types.ToDeviceRequest
	SignatureUploadRequest = types.SignatureUploadRequest
	RoomMessageRequest     = types.RoomMessageRequest
	KeysBackupRequest      = types.KeysBackupRequest
)

// Constructor aliases for generated identifiers.
var (
	NewRequestID     = types.NewRequestID
	NewTransactionID = types.NewTransactionID
	TimeoutFrom      = types.TimeoutFrom
)
