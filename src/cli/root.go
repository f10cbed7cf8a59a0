package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"conf-rollback/src/logging"
)

// NewRootCmd returns the root cobra command for the conf-rollback CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "conf-rollback",
		Short:         "Back up, verify, restore, and prune JSON configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newSaveCmd(stdout, stderr))
	cmd.AddCommand(newListCmd(stdout, stderr))
	cmd.AddCommand(newShowCmd(stdout, stderr))
	cmd.AddCommand(newVerifyCmd(stdout, stderr))
	cmd.AddCommand(newRestoreCmd(stdout, stderr))
	cmd.AddCommand(newPruneCmd(stdout, stderr))

	return cmd
}

// Execute runs the CLI with the process stdio and returns the exit
// code.
func Execute() int {
	logging.Init()
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
