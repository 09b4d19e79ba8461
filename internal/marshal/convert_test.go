package marshal_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outbox/internal/domain"
	"outbox/internal/marshal"
)

// bodyKeys parses a record body and returns its top-level key set.
func bodyKeys(t *testing.T, body string) map[string]struct{} {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &obj))
	keys := make(map[string]struct{}, len(obj))
	for k := range obj {
		keys[k] = struct{}{}
	}
	return keys
}

func TestKeysUploadBody(t *testing.T) {
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.KeysUploadRequest{
			DeviceKeys:   nil,
			OneTimeKeys:  map[domain.KeyID]domain.OneTimeKey{},
			FallbackKeys: nil,
		},
	})
	require.NoError(t, err)

	upload, ok := record.(marshal.KeysUploadRequest)
	require.True(t, ok)
	assert.Equal(t, "ID", upload.ID)
	assert.JSONEq(t, `{"device_keys":null,"one_time_keys":{},"fallback_keys":null}`, upload.Body)
}

func TestToDeviceExtractsAndGroups(t *testing.T) {
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "1",
		Request: &domain.ToDeviceRequest{
			EventType: "m.room_key",
			TxnID:     "1",
			Messages:  map[domain.UserID]map[domain.DeviceID]json.RawMessage{},
		},
	})
	require.NoError(t, err)

	td, ok := record.(marshal.ToDeviceRequest)
	require.True(t, ok)
	assert.Equal(t, "m.room_key", td.EventType)
	assert.Equal(t, "1", td.TxnID)
	assert.JSONEq(t, `{"messages":{}}`, td.Body)
}

func TestKeysQueryTimeoutMillis(t *testing.T) {
	timeout := domain.TimeoutFrom(10 * time.Second)
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.KeysQueryRequest{
			Timeout: &timeout,
			DeviceKeys: map[domain.UserID][]domain.DeviceID{
				"@alice:example.org": {},
			},
		},
	})
	require.NoError(t, err)

	query, ok := record.(marshal.KeysQueryRequest)
	require.True(t, ok)
	assert.JSONEq(t, `{"timeout":10000,"device_keys":{"@alice:example.org":[]}}`, query.Body)
}

func TestKeysQueryNilTimeoutIsNull(t *testing.T) {
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID:      "ID",
		Request: &domain.KeysQueryRequest{DeviceKeys: map[domain.UserID][]domain.DeviceID{}},
	})
	require.NoError(t, err)

	query := record.(marshal.KeysQueryRequest)
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(query.Body), &obj))
	require.Contains(t, obj, "timeout")
	assert.Equal(t, "null", string(obj["timeout"]))
}

func TestRoomMessageBodyIsContent(t *testing.T) {
	content := `{"msgtype":"m.text","body":"hello"}`
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.RoomMessageRequest{
			RoomID: "!abc:example.org",
			TxnID:  "42",
			Content: domain.RawContent{
				Type:    "m.room.message",
				Content: json.RawMessage(content),
			},
		},
	})
	require.NoError(t, err)

	rm, ok := record.(marshal.RoomMessageRequest)
	require.True(t, ok)
	assert.Equal(t, "!abc:example.org", rm.RoomID)
	assert.Equal(t, "42", rm.TxnID)
	assert.Equal(t, "m.room.message", rm.EventType)
	assert.JSONEq(t, content, rm.Body)
}

func TestRoomMessageEncryptedContent(t *testing.T) {
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.RoomMessageRequest{
			RoomID: "!abc:example.org",
			TxnID:  "43",
			Content: domain.EncryptedContent{
				Algorithm:  "m.megolm.v1.aes-sha2",
				Ciphertext: "AwgAEnACgAkLmt6q",
				SessionID:  "ZFD6FYGIOqtpUDEG",
			},
		},
	})
	require.NoError(t, err)

	rm := record.(marshal.RoomMessageRequest)
	assert.Equal(t, "m.room.encrypted", rm.EventType)
	keys := bodyKeys(t, rm.Body)
	assert.Contains(t, keys, "algorithm")
	assert.Contains(t, keys, "ciphertext")
}

func TestKeysClaimTimeoutOverflow(t *testing.T) {
	// One millisecond past the largest representable count.
	timeout := domain.Timeout{Secs: 18446744073709551, Nanos: 616_000_000}
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.KeysClaimRequest{
			Timeout:     &timeout,
			OneTimeKeys: map[domain.UserID]map[domain.DeviceID]string{},
		},
	})
	require.Error(t, err)
	assert.Nil(t, record)

	var serr *marshal.SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "timeout", serr.Field)
}

func TestKeysClaimTimeoutAtBoundary(t *testing.T) {
	// Exactly the largest representable millisecond count.
	timeout := domain.Timeout{Secs: 18446744073709551, Nanos: 615_000_000}
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.KeysClaimRequest{
			Timeout:     &timeout,
			OneTimeKeys: map[domain.UserID]map[domain.DeviceID]string{},
		},
	})
	require.NoError(t, err)

	claim := record.(marshal.KeysClaimRequest)
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(claim.Body), &obj))
	assert.Equal(t, "18446744073709551615", string(obj["timeout"]))
}

func TestSerializationErrorOnBadField(t *testing.T) {
	record, err := marshal.Outgoing(domain.OutgoingRequest{
		ID: "ID",
		Request: &domain.ToDeviceRequest{
			EventType: "m.room_key",
			TxnID:     "1",
			Messages: map[domain.UserID]map[domain.DeviceID]json.RawMessage{
				"@bob:example.org": {"DEV": json.RawMessage(`{not json`)},
			},
		},
	})
	require.Error(t, err)
	assert.Nil(t, record)

	var serr *marshal.SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "messages", serr.Field)
}

func TestBodyKeySetsPerKind(t *testing.T) {
	timeout := domain.TimeoutFrom(time.Second)

	cases := []struct {
		name    string
		request domain.AnyRequest
		keys    []string
	}{
		{
			name: "keys_upload",
			request: &domain.KeysUploadRequest{
				OneTimeKeys: map[domain.KeyID]domain.OneTimeKey{"signed_curve25519:AAAA00": {Key: "k"}},
			},
			keys: []string{"device_keys", "one_time_keys", "fallback_keys"},
		},
		{
			name: "keys_query",
			request: &domain.KeysQueryRequest{
				Timeout:    &timeout,
				DeviceKeys: map[domain.UserID][]domain.DeviceID{"@alice:example.org": {"DEV"}},
			},
			keys: []string{"timeout", "device_keys"},
		},
		{
			name: "keys_claim",
			request: &domain.KeysClaimRequest{
				Timeout:     &timeout,
				OneTimeKeys: map[domain.UserID]map[domain.DeviceID]string{"@bob:example.org": {"DEV": "signed_curve25519"}},
			},
			keys: []string{"timeout", "one_time_keys"},
		},
		{
			name: "to_device",
			request: &domain.ToDeviceRequest{
				EventType: "m.room_key",
				TxnID:     "1",
				Messages:  map[domain.UserID]map[domain.DeviceID]json.RawMessage{},
			},
			keys: []string{"messages"},
		},
		{
			name: "signature_upload",
			request: &domain.SignatureUploadRequest{
				SignedKeys: map[domain.UserID]map[string]json.RawMessage{},
			},
			keys: []string{"signed_keys"},
		},
		{
			name: "keys_backup",
			request: &domain.KeysBackupRequest{
				Rooms: map[domain.RoomID]domain.RoomKeyBackup{},
			},
			keys: []string{"rooms"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := marshal.Outgoing(domain.OutgoingRequest{ID: "ID", Request: tc.request})
			require.NoError(t, err)

			body := recordBody(t, record)
			keys := bodyKeys(t, body)
			assert.Len(t, keys, len(tc.keys))
			for _, k := range tc.keys {
				assert.Contains(t, keys, k)
			}
		})
	}
}

// recordBody pulls the Body field out of any of the record kinds.
func recordBody(t *testing.T, record marshal.Request) string {
	t.Helper()
	switch r := record.(type) {
	case marshal.KeysUploadRequest:
		return r.Body
	case marshal.KeysQueryRequest:
		return r.Body
	case marshal.KeysClaimRequest:
		return r.Body
	case marshal.ToDeviceRequest:
		return r.Body
	case marshal.SignatureUploadRequest:
		return r.Body
	case marshal.RoomMessageRequest:
		return r.Body
	case marshal.KeysBackupRequest:
		return r.Body
	default:
		t.Fatalf("unexpected record type %T", record)
		return ""
	}
}
