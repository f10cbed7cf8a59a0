package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"conf-rollback/src/index"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var limit int
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			entries, err := st.List(limit)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "table", "":
				if len(entries) == 0 {
					fmt.Fprintln(stdout, "No backups found.")
					return nil
				}
				return renderEntryTable(stdout, entries)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Limit how many recent backups to list")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderEntryTable(w io.Writer, entries []index.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIMESTAMP\tFILE\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Timestamp, filepath.Base(e.OriginalPath), e.Note)
	}
	return tw.Flush()
}
