package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVerifyCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Verify the checksum of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			ok, err := st.Verify(args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(stdout, "OK")
			} else {
				fmt.Fprintln(stdout, "CORRUPT")
			}
			return nil
		},
	}
}
