package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newSaveCmd(stdout, stderr io.Writer) *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "save <src>",
		Short: "Save a backup of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			entry, err := st.Save(args[0], note)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Backup saved:")
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note for this backup")
	return cmd
}
