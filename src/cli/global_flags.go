package cli

import (
	"github.com/spf13/cobra"

	"conf-rollback/src/store"
)

// addGlobalFlags adds the persistent storage-root flag to the root
// command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("storage", "s", "", "Backup storage directory (default: ~/.conf_backups)")
}

// openStore resolves the storage root from the global flag and returns
// a store bound to it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	root, _ := cmd.Root().PersistentFlags().GetString("storage")
	if root == "" {
		def, err := store.DefaultRoot()
		if err != nil {
			return nil, err
		}
		root = def
	}
	return store.New(root), nil
}
