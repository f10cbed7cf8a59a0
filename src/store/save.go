package store

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"conf-rollback/src/atomic"
	"conf-rollback/src/index"
)

// defaultExt is used when the source file has no extension.
const defaultExt = ".json"

// Save records a copy of the JSON file at sourcePath and appends its
// entry to the index. The stored bytes are a canonical two-space
// indented re-encoding of the parsed document, not a byte copy of the
// source; the checksum is computed over the bytes actually written.
// Failures before the content write leave the storage root untouched.
//
// Writing the content file and persisting the index are two separate
// atomic replaces. A crash between them leaves an orphaned content
// file behind, which is accepted and never reconciled.
func (s *Store) Save(sourcePath, note string) (index.Entry, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return index.Entry{}, fmt.Errorf("%w: source file does not exist: %s", ErrNotFound, sourcePath)
		}
		return index.Entry{}, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return index.Entry{}, fmt.Errorf("%w: source is a directory: %s", ErrInvalidJSON, sourcePath)
	}
	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return index.Entry{}, fmt.Errorf("read source: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return index.Entry{}, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, sourcePath, err)
	}

	if err := s.ensure(); err != nil {
		return index.Entry{}, err
	}
	doc, err := index.Load(s.Root)
	if err != nil {
		return index.Entry{}, err
	}

	u := uuid.New()
	id := hex.EncodeToString(u[:])
	ext := filepath.Ext(sourcePath)
	if ext == "" {
		ext = defaultExt
	}
	filename := id + ext
	backupPath := filepath.Join(s.Root, filename)

	normalized, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return index.Entry{}, fmt.Errorf("encode backup content: %w", err)
	}
	normalized = append(normalized, '\n')
	if err := atomic.WriteFile(backupPath, normalized, 0o644); err != nil {
		return index.Entry{}, fmt.Errorf("write backup file: %w", err)
	}

	checksum, err := sha256File(backupPath)
	if err != nil {
		return index.Entry{}, fmt.Errorf("checksum backup file: %w", err)
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return index.Entry{}, fmt.Errorf("resolve source path: %w", err)
	}

	entry := index.Entry{
		ID:             id,
		Timestamp:      s.now().UTC().Format(index.TimestampLayout),
		OriginalPath:   absSource,
		BackupFilename: filename,
		Checksum:       checksum,
		Note:           note,
	}
	doc.Backups = append(doc.Backups, entry)
	if err := index.Persist(s.Root, doc); err != nil {
		return index.Entry{}, err
	}
	return entry, nil
}
