package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"outbox/internal/marshal"
)

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the seven outgoing request kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range []marshal.RequestType{
				marshal.KeysUpload,
				marshal.KeysQuery,
				marshal.KeysClaim,
				marshal.ToDevice,
				marshal.SignatureUpload,
				marshal.RoomMessage,
				marshal.KeysBackup,
			} {
				fmt.Println(t)
			}
			return nil
		},
	}
}
