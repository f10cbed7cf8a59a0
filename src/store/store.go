package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"conf-rollback/src/index"
)

// Store runs every backup operation against one explicit storage root:
// the directory holding the index document and all content files. The
// root is chosen at construction, no hidden process-wide default.
//
// Operations are synchronous read-modify-write passes over the whole
// index document. Nothing guards the root against concurrent
// processes: two invocations can load the same index snapshot and the
// last persist wins, leaving the loser's content file unreferenced.
type Store struct {
	Root string

	now func() time.Time
}

// New returns a Store bound to root.
func New(root string) *Store {
	return &Store{Root: root, now: time.Now}
}

// DefaultRoot returns the per-user storage location, ~/.conf_backups.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".conf_backups"), nil
}

// ensure creates the storage root and an empty index document when
// either is missing. Idempotent; called before every operation.
func (s *Store) ensure() error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("create storage root: %w", err)
	}
	path := filepath.Join(s.Root, index.Filename)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat index: %w", err)
	}
	return index.Persist(s.Root, &index.Document{Backups: []index.Entry{}})
}

// List returns entries newest first. A limit <= 0 returns all of them.
func (s *Store) List(limit int) ([]index.Entry, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return nil, err
	}
	entries := doc.Sorted()
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// Backup pairs an entry with the parsed content of its file.
type Backup struct {
	Metadata index.Entry `json:"metadata"`
	Content  any         `json:"content"`
}

// Show returns the entry for id together with the parsed JSON content
// of its file.
func (s *Store) Show(id string) (*Backup, error) {
	entry, path, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	var content any
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("parse backup file %s: %w", path, err)
	}
	return &Backup{Metadata: entry, Content: content}, nil
}

// lookup resolves id to its entry and content-file path, failing with
// ErrNotFound when either the entry or the file is missing. A missing
// file is surfaced, never silently repaired.
func (s *Store) lookup(id string) (index.Entry, string, error) {
	if err := s.ensure(); err != nil {
		return index.Entry{}, "", err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return index.Entry{}, "", err
	}
	entry, ok := doc.Find(id)
	if !ok {
		return index.Entry{}, "", fmt.Errorf("%w: no backup with id %s", ErrNotFound, id)
	}
	path := filepath.Join(s.Root, entry.BackupFilename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return index.Entry{}, "", fmt.Errorf("%w: backup file missing: %s", ErrNotFound, path)
		}
		return index.Entry{}, "", fmt.Errorf("stat backup file: %w", err)
	}
	return entry, path, nil
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
