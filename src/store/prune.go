package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"conf-rollback/src/index"
)

// PruneKeepN keeps the n newest backups and removes every other entry
// together with its content file. File deletions are best effort: a
// failed unlink is logged as a warning and the batch carries on, index
// update included. Returns the removed ids.
func (s *Store) PruneKeepN(n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: keep must be > 0", ErrBadArgument)
	}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return nil, err
	}
	keep, drop := splitKeepN(doc.Sorted(), n)
	return s.prune(doc, keep, drop)
}

// PruneOlderThan removes every entry whose timestamp is older than
// now minus the given number of days. Entries whose timestamp fails to
// parse count as infinitely old and are removed too. Returns the
// removed ids.
func (s *Store) PruneOlderThan(days int) ([]string, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be > 0", ErrBadArgument)
	}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	keep, drop := splitOlderThan(doc.Backups, cutoff)
	return s.prune(doc, keep, drop)
}

// PlanKeepN returns the entries PruneKeepN(n) would remove, without
// removing anything.
func (s *Store) PlanKeepN(n int) ([]index.Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: keep must be > 0", ErrBadArgument)
	}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return nil, err
	}
	_, drop := splitKeepN(doc.Sorted(), n)
	return drop, nil
}

// PlanOlderThan returns the entries PruneOlderThan(days) would remove,
// without removing anything.
func (s *Store) PlanOlderThan(days int) ([]index.Entry, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be > 0", ErrBadArgument)
	}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	_, drop := splitOlderThan(doc.Backups, cutoff)
	return drop, nil
}

func splitKeepN(entries []index.Entry, n int) (keep, drop []index.Entry) {
	if len(entries) <= n {
		return entries, nil
	}
	return entries[:n], entries[n:]
}

func splitOlderThan(entries []index.Entry, cutoff time.Time) (keep, drop []index.Entry) {
	for _, e := range entries {
		t, err := time.Parse(index.TimestampLayout, e.Timestamp)
		if err == nil && !t.Before(cutoff) {
			keep = append(keep, e)
			continue
		}
		drop = append(drop, e)
	}
	return keep, drop
}

// prune deletes the dropped entries' content files, rewrites the index
// with only the kept entries, and returns the removed ids. The index
// stays authoritative: content files it no longer references are
// orphaned, never swept.
func (s *Store) prune(doc *index.Document, keep, drop []index.Entry) ([]string, error) {
	removed := make([]string, 0, len(drop))
	for _, e := range drop {
		path := filepath.Join(s.Root, e.BackupFilename)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Str("path", path).Err(err).Msg("failed to remove backup file")
		}
		removed = append(removed, e.ID)
	}
	doc.Backups = keep
	if err := index.Persist(s.Root, doc); err != nil {
		return nil, err
	}
	return removed, nil
}
