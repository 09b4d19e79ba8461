package marshal

import "outbox/internal/domain"

// One converter per kind, each a direct transcription of its schema:
//
//	KeysUpload       groups device_keys, one_time_keys, fallback_keys
//	KeysQuery        groups timeout{millis}, device_keys
//	KeysClaim        groups timeout{millis}, one_time_keys
//	ToDevice         extracts event_type, txn_id; groups messages
//	SignatureUpload  groups signed_keys
//	RoomMessage      extracts room_id, txn_id, event_type{from content};
//	                 body is the content itself
//	KeysBackup       groups rooms
//
// Converters know nothing about dispatch; classification happens once in
// Outgoing.

func keysUpload(id string, req *domain.KeysUploadRequest) (Request, error) {
	body, err := encodeBody(
		field{"device_keys", req.DeviceKeys},
		field{"one_time_keys", req.OneTimeKeys},
		field{"fallback_keys", req.FallbackKeys},
	)
	if err != nil {
		return nil, err
	}
	return KeysUploadRequest{ID: id, Body: body}, nil
}

func keysQuery(id string, req *domain.KeysQueryRequest) (Request, error) {
	ms, err := timeoutMillis(req.Timeout)
	if err != nil {
		return nil, err
	}
	body, err := encodeBody(
		field{"timeout", ms},
		field{"device_keys", req.DeviceKeys},
	)
	if err != nil {
		return nil, err
	}
	return KeysQueryRequest{ID: id, Body: body}, nil
}

func keysClaim(id string, req *domain.KeysClaimRequest) (Request, error) {
	ms, err := timeoutMillis(req.Timeout)
	if err != nil {
		return nil, err
	}
	body, err := encodeBody(
		field{"timeout", ms},
		field{"one_time_keys", req.OneTimeKeys},
	)
	if err != nil {
		return nil, err
	}
	return KeysClaimRequest{ID: id, Body: body}, nil
}

func toDevice(id string, req *domain.ToDeviceRequest) (Request, error) {
	body, err := encodeBody(
		field{"messages", req.Messages},
	)
	if err != nil {
		return nil, err
	}
	return ToDeviceRequest{
		ID:        id,
		EventType: req.EventType.String(),
		TxnID:     req.TxnID.String(),
		Body:      body,
	}, nil
}

func signatureUpload(id string, req *domain.SignatureUploadRequest) (Request, error) {
	body, err := encodeBody(
		field{"signed_keys", req.SignedKeys},
	)
	if err != nil {
		return nil, err
	}
	return SignatureUploadRequest{ID: id, Body: body}, nil
}

func roomMessage(id string, req *domain.RoomMessageRequest) (Request, error) {
	// The body is the content object itself, not a keyed wrapper.
	body, err := encodeJSON("content", req.Content)
	if err != nil {
		return nil, err
	}
	return RoomMessageRequest{
		ID:        id,
		RoomID:    req.RoomID.String(),
		TxnID:     req.TxnID.String(),
		EventType: req.Content.EventType().String(),
		Body:      body,
	}, nil
}

func keysBackup(id string, req *domain.KeysBackupRequest) (Request, error) {
	body, err := encodeBody(
		field{"rooms", req.Rooms},
	)
	if err != nil {
		return nil, err
	}
	return KeysBackupRequest{ID: id, Body: body}, nil
}
