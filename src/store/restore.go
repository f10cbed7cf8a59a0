package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"conf-rollback/src/atomic"
)

// Restore copies the stored bytes of id over dest, or over the entry's
// original path when dest is empty, and returns the resolved path.
//
// When the destination already exists and force is false, the current
// destination content is saved first as an automatic pre-restore
// backup. Restore is the one operation that can destroy live data;
// skipping the recovery point requires the explicit force opt-out.
func (s *Store) Restore(id, dest string, force bool) (string, error) {
	entry, backupPath, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	resolved := dest
	if resolved == "" {
		resolved = entry.OriginalPath
	}

	if _, err := os.Stat(resolved); err == nil {
		if !force {
			note := fmt.Sprintf("pre-restore of %s from restore-id %s", resolved, id)
			pre, err := s.Save(resolved, note)
			if err != nil {
				return "", fmt.Errorf("pre-restore backup of %s: %w", resolved, err)
			}
			log.Info().Str("id", pre.ID).Str("path", resolved).Msg("existing destination backed up before restore")
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat destination: %w", err)
	}

	raw, err := os.ReadFile(backupPath)
	if err != nil {
		return "", fmt.Errorf("read backup file: %w", err)
	}
	if dir := filepath.Dir(resolved); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create destination directory: %w", err)
		}
	}
	if err := atomic.WriteFile(resolved, raw, 0o644); err != nil {
		return "", fmt.Errorf("write destination: %w", err)
	}
	return resolved, nil
}
