package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"outbox/internal/domain"
	"outbox/internal/marshal"
)

// requestEnvelope is the JSON form convert accepts on input: the request id,
// the kind name (see `outbox kinds`), and the kind-specific payload.
type requestEnvelope struct {
	ID      domain.RequestID `json:"id"`
	Kind    string           `json:"kind"`
	Request json.RawMessage  `json:"request"`
}

// recordOutput is what convert and sample print: the kind tag plus the
// record's own fields.
type recordOutput struct {
	Type    string          `json:"type"`
	Request marshal.Request `json:"request"`
}

// convert <file>: marshal an engine request read from <file> ("-" = stdin).
func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Marshal an engine outgoing request into its transport record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0])
			if err != nil {
				return err
			}

			var env requestEnvelope
			if err := json.Unmarshal(in, &env); err != nil {
				return fmt.Errorf("decode envelope: %w", err)
			}
			req, err := decodePayload(env.Kind, env.Request)
			if err != nil {
				return err
			}

			log.Debug().
				Str("kind", env.Kind).
				Str("id", env.ID.String()).
				Msg("converting request")

			record, err := marshal.Outgoing(domain.OutgoingRequest{ID: env.ID, Request: req})
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodePayload decodes the kind-specific payload into its engine type.
func decodePayload(kind string, raw json.RawMessage) (domain.AnyRequest, error) {
	t, err := marshal.ParseRequestType(kind)
	if err != nil {
		return nil, err
	}

	switch t {
	case marshal.KeysUpload:
		var req domain.KeysUploadRequest
		return &req, json.Unmarshal(raw, &req)
	case marshal.KeysQuery:
		var req domain.KeysQueryRequest
		return &req, json.Unmarshal(raw, &req)
	case marshal.KeysClaim:
		var req domain.KeysClaimRequest
		return &req, json.Unmarshal(raw, &req)
	case marshal.ToDevice:
		var req domain.ToDeviceRequest
		return &req, json.Unmarshal(raw, &req)
	case marshal.SignatureUpload:
		var req domain.SignatureUploadRequest
		return &req, json.Unmarshal(raw, &req)
	case marshal.RoomMessage:
		// Content arrives as an explicit event_type plus raw content.
		var rm struct {
			RoomID    domain.RoomID        `json:"room_id"`
			TxnID     domain.TransactionID `json:"txn_id"`
			EventType domain.EventType     `json:"event_type"`
			Content   json.RawMessage      `json:"content"`
		}
		if err := json.Unmarshal(raw, &rm); err != nil {
			return nil, err
		}
		return &domain.RoomMessageRequest{
			RoomID: rm.RoomID,
			TxnID:  rm.TxnID,
			Content: domain.RawContent{
				Type:    rm.EventType,
				Content: rm.Content,
			},
		}, nil
	case marshal.KeysBackup:
		var req domain.KeysBackupRequest
		return &req, json.Unmarshal(raw, &req)
	default:
		return nil, fmt.Errorf("unknown request type %q", kind)
	}
}

func printRecord(record marshal.Request) error {
	out, err := json.MarshalIndent(recordOutput{
		Type:    record.Type().String(),
		Request: record,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
