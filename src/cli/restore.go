package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRestoreCmd(stdout, stderr io.Writer) *cobra.Command {
	var dest string
	var force bool
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a backup to its original path (or a custom destination)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			resolved, err := st.Restore(args[0], dest, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Restored backup %s -> %s\n", args[0], resolved)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Destination path (default: original path saved in metadata)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite without taking a pre-restore backup")
	return cmd
}
