package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"outbox/internal/domain"
	"outbox/internal/keygen"
	"outbox/internal/marshal"
)

// sample <kind>: build a realistic request of the given kind with fresh key
// material and print the record it marshals to.
func sampleCmd() *cobra.Command {
	var (
		user   string
		device string
	)
	cmd := &cobra.Command{
		Use:   "sample <kind>",
		Short: "Marshal a generated sample request of the given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := marshal.ParseRequestType(args[0])
			if err != nil {
				return err
			}

			id, err := keygen.NewIdentity(domain.UserID(user), domain.DeviceID(device))
			if err != nil {
				return err
			}
			req, err := sampleRequest(t, id)
			if err != nil {
				return err
			}

			log.Debug().
				Stringer("kind", t).
				Str("id", req.ID.String()).
				Msg("converting sample request")

			record, err := marshal.Outgoing(req)
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
	cmd.Flags().StringVar(&user, "user", "@alice:example.org", "user id for generated key material")
	cmd.Flags().StringVar(&device, "device", "JLAFKJWSCS", "device id for generated key material")
	return cmd
}

// sampleRequest builds one plausible engine request per kind.
func sampleRequest(t marshal.RequestType, id *keygen.Identity) (domain.OutgoingRequest, error) {
	out := domain.OutgoingRequest{ID: domain.NewRequestID()}

	switch t {
	case marshal.KeysUpload:
		dk, err := id.DeviceKeys()
		if err != nil {
			return out, err
		}
		otks, err := id.OneTimeKeys(3)
		if err != nil {
			return out, err
		}
		fallback, err := id.OneTimeKeys(1)
		if err != nil {
			return out, err
		}
		for kid, k := range fallback {
			k.Fallback = true
			fallback[kid] = k
		}
		out.Request = &domain.KeysUploadRequest{
			DeviceKeys:   dk,
			OneTimeKeys:  otks,
			FallbackKeys: fallback,
		}

	case marshal.KeysQuery:
		timeout := domain.TimeoutFrom(10 * time.Second)
		out.Request = &domain.KeysQueryRequest{
			Timeout: &timeout,
			DeviceKeys: map[domain.UserID][]domain.DeviceID{
				"@bob:example.org": {},
			},
		}

	case marshal.KeysClaim:
		timeout := domain.TimeoutFrom(10 * time.Second)
		out.Request = &domain.KeysClaimRequest{
			Timeout: &timeout,
			OneTimeKeys: map[domain.UserID]map[domain.DeviceID]string{
				"@bob:example.org": {"NEBDDTKQIE": "signed_curve25519"},
			},
		}

	case marshal.ToDevice:
		out.Request = &domain.ToDeviceRequest{
			EventType: "m.room.encrypted",
			TxnID:     domain.NewTransactionID(),
			Messages: map[domain.UserID]map[domain.DeviceID]json.RawMessage{
				"@bob:example.org": {
					"NEBDDTKQIE": json.RawMessage(`{"algorithm":"m.olm.v1.curve25519-aes-sha2","ciphertext":{}}`),
				},
			},
		}

	case marshal.SignatureUpload:
		dk, err := id.DeviceKeys()
		if err != nil {
			return out, err
		}
		signed, err := json.Marshal(dk)
		if err != nil {
			return out, err
		}
		out.Request = &domain.SignatureUploadRequest{
			SignedKeys: map[domain.UserID]map[string]json.RawMessage{
				id.UserID: {id.DeviceID.String(): signed},
			},
		}

	case marshal.RoomMessage:
		out.Request = &domain.RoomMessageRequest{
			RoomID: "!room:example.org",
			TxnID:  domain.NewTransactionID(),
			Content: domain.EncryptedContent{
				Algorithm:  "m.megolm.v1.aes-sha2",
				Ciphertext: "AwgAEnACgAkLmt6qF84IK++J7UDH2Za1YVchHyprqTqsg",
				DeviceID:   id.DeviceID,
				SessionID:  "ZFD6FYGIOqtpUDEG",
			},
		}

	case marshal.KeysBackup:
		out.Request = &domain.KeysBackupRequest{
			Version: "1",
			Rooms: map[domain.RoomID]domain.RoomKeyBackup{
				"!room:example.org": {
					Sessions: map[string]json.RawMessage{
						"ZFD6FYGIOqtpUDEG": json.RawMessage(`{"first_message_index":0,"forwarded_count":0,"is_verified":true,"session_data":{}}`),
					},
				},
			},
		}

	default:
		return out, fmt.Errorf("unknown request type %q", t)
	}

	return out, nil
}
