package marshal

import "fmt"

// RequestType names one of the seven outgoing request kinds. It lets
// callers branch without inspecting record shape.
type RequestType int

const (
	// KeysUpload represents a KeysUploadRequest.
	KeysUpload RequestType = iota
	// KeysQuery represents a KeysQueryRequest.
	KeysQuery
	// KeysClaim represents a KeysClaimRequest.
	KeysClaim
	// ToDevice represents a ToDeviceRequest.
	ToDevice
	// SignatureUpload represents a SignatureUploadRequest.
	SignatureUpload
	// RoomMessage represents a RoomMessageRequest.
	RoomMessage
	// KeysBackup represents a KeysBackupRequest.
	KeysBackup
)

var requestTypeNames = [...]string{
	KeysUpload:      "keys_upload",
	KeysQuery:       "keys_query",
	KeysClaim:       "keys_claim",
	ToDevice:        "to_device",
	SignatureUpload: "signature_upload",
	RoomMessage:     "room_message",
	KeysBackup:      "keys_backup",
}

// String returns the stable name of the request type.
func (t RequestType) String() string {
	if t < 0 || int(t) >= len(requestTypeNames) {
		return fmt.Sprintf("RequestType(%d)", int(t))
	}
	return requestTypeNames[t]
}

// ParseRequestType maps a stable name back to its RequestType.
func ParseRequestType(s string) (RequestType, error) {
	for t, name := range requestTypeNames {
		if s == name {
			return RequestType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown request type %q", s)
}

// Request is the closed union of the seven record kinds produced by
// Outgoing. Records are plain immutable values: created inside one
// conversion, read by the transport caller, then discarded.
type Request interface {
	// Type reports which of the seven kinds this record is.
	Type() RequestType
	// RequestID returns the identifier the record was dispatched under.
	RequestID() string

	outgoingRecord()
}

// KeysUploadRequest carries the payload for the /keys/upload endpoint.
// Body aggregates device_keys, one_time_keys and fallback_keys.
type KeysUploadRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// KeysQueryRequest carries the payload for the /keys/query endpoint.
// Body aggregates timeout (in milliseconds) and device_keys.
type KeysQueryRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// KeysClaimRequest carries the payload for the /keys/claim endpoint.
// Body aggregates timeout (in milliseconds) and one_time_keys.
type KeysClaimRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// ToDeviceRequest carries the payload for the /sendToDevice endpoint. The
// event type and transaction id are extracted for the URL path; Body
// aggregates messages.
type ToDeviceRequest struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	TxnID     string `json:"txn_id"`
	Body      string `json:"body"`
}

// SignatureUploadRequest carries the payload for the
// /keys/signatures/upload endpoint. Body aggregates signed_keys.
type SignatureUploadRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// RoomMessageRequest carries the payload for the room /send endpoint. The
// room id, transaction id and event type are extracted for the URL path;
// Body is the JSON serialisation of the event content itself.
type RoomMessageRequest struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	TxnID     string `json:"txn_id"`
	EventType string `json:"event_type"`
	Body      string `json:"body"`
}

// KeysBackupRequest carries the payload for the /room_keys/keys endpoint.
// Body aggregates rooms.
type KeysBackupRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// Type returns KeysUpload.
func (KeysUploadRequest) Type() RequestType { return KeysUpload }

// Type returns KeysQuery.
func (KeysQueryRequest) Type() RequestType { return KeysQuery }

// Type returns KeysClaim.
func (KeysClaimRequest) Type() RequestType { return KeysClaim }

// Type returns ToDevice.
func (ToDeviceRequest) Type() RequestType { return ToDevice }

// Type returns SignatureUpload.
func (SignatureUploadRequest) Type() RequestType { return SignatureUpload }

// Type returns RoomMessage.
func (RoomMessageRequest) Type() RequestType { return RoomMessage }

// Type returns KeysBackup.
func (KeysBackupRequest) Type() RequestType { return KeysBackup }

// RequestID returns the identifier the record was dispatched under.
func (r KeysUploadRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r KeysQueryRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r KeysClaimRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r ToDeviceRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r SignatureUploadRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r RoomMessageRequest) RequestID() string { return r.ID }

// RequestID returns the identifier the record was dispatched under.
func (r KeysBackupRequest) RequestID() string { return r.ID }

func (KeysUploadRequest) outgoingRecord()      {}
func (KeysQueryRequest) outgoingRecord()       {}
func (KeysClaimRequest) outgoingRecord()       {}
func (ToDeviceRequest) outgoingRecord()        {}
func (SignatureUploadRequest) outgoingRecord() {}
func (RoomMessageRequest) outgoingRecord()     {}
func (KeysBackupRequest) outgoingRecord()      {}
