package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"conf-rollback/src/index"
	"conf-rollback/src/safety"
)

func newPruneCmd(stdout, stderr io.Writer) *cobra.Command {
	var keep, olderThan int
	var dryRun, yes bool
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune old backups by count or by age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byCount := cmd.Flags().Changed("keep")
			byAge := cmd.Flags().Changed("older-than")
			if byCount == byAge {
				return errors.New("exactly one of --keep or --older-than is required")
			}
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			var plan []index.Entry
			if byCount {
				plan, err = st.PlanKeepN(keep)
			} else {
				plan, err = st.PlanOlderThan(olderThan)
			}
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				fmt.Fprintln(stdout, "Nothing to prune.")
				return nil
			}

			renderPrunePreview(stdout, plan)

			opts := safety.Options{DryRun: dryRun, Yes: yes}
			if opts.DryRun {
				return nil
			}
			ok, err := safety.Confirm(opts, cmd.InOrStdin(), stdout, fmt.Sprintf("Remove %d backups?", len(plan)))
			if err != nil || !ok {
				return err
			}

			var removed []string
			if byCount {
				removed, err = st.PruneKeepN(keep)
			} else {
				removed, err = st.PruneOlderThan(olderThan)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Removed %d backups\n", len(removed))
			for _, id := range removed {
				fmt.Fprintf(stdout, "  - %s\n", id)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 0, "Keep the latest N backups and remove the rest")
	cmd.Flags().IntVar(&olderThan, "older-than", 0, "Remove backups older than N days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without removing anything")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Assume 'yes' to the confirmation prompt")
	return cmd
}

func renderPrunePreview(w io.Writer, plan []index.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIMESTAMP\tFILE\tACTION")
	for _, e := range plan {
		fmt.Fprintf(tw, "%s\t%s\t%s\tdelete\n", e.ID, e.Timestamp, filepath.Base(e.OriginalPath))
	}
	_ = tw.Flush()
}
