package marshal

import (
	"fmt"

	"outbox/internal/domain"
)

// Outgoing converts one engine outgoing request into its transport record.
// The request identifier is stringified once and copied onto the record
// verbatim. The only failure mode is a SerializationError from the kind's
// converter; the source payload is never modified.
func Outgoing(req domain.OutgoingRequest) (Request, error) {
	id := req.ID.String()

	switch r := req.Request.(type) {
	case *domain.KeysUploadRequest:
		return keysUpload(id, r)
	case *domain.KeysQueryRequest:
		return keysQuery(id, r)
	case *domain.KeysClaimRequest:
		return keysClaim(id, r)
	case *domain.ToDeviceRequest:
		return toDevice(id, r)
	case *domain.SignatureUploadRequest:
		return signatureUpload(id, r)
	case *domain.RoomMessageRequest:
		return roomMessage(id, r)
	case *domain.KeysBackupRequest:
		return keysBackup(id, r)
	default:
		// AnyRequest is closed over the seven payloads above; reaching
		// here means a new kind was added without a converter.
		panic(fmt.Sprintf("marshal: unhandled outgoing request %T", r))
	}
}
