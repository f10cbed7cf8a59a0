package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"conf-rollback/src/atomic"
)

// Filename is the index document's name inside a storage root.
const Filename = "backups_index.json"

// TimestampLayout is the fixed-width UTC encoding for entry
// timestamps. Fixed width keeps lexicographic order chronological, so
// sorting entries by the raw string sorts them by time.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry describes one stored backup. Entries are immutable once
// written: save appends them, prune drops them, nothing edits them in
// place.
type Entry struct {
	ID             string `json:"id"`
	Timestamp      string `json:"timestamp"`
	OriginalPath   string `json:"original_path"`
	BackupFilename string `json:"backup_filename"`
	Checksum       string `json:"checksum"`
	Note           string `json:"note"`
}

// Document is the on-disk index shape, {"backups": [...]}, one per
// storage root.
type Document struct {
	Backups []Entry `json:"backups"`
}

// Load reads and parses the index document under root. A document that
// fails to parse is replaced with a fresh empty one, persisted
// immediately, and a warning is logged; content files the discarded
// document referenced become orphans. No reconciliation from a
// directory scan is attempted.
func Load(root string) (*Document, error) {
	path := filepath.Join(root, Filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("index document is corrupted, recreating it empty")
		doc = &Document{Backups: []Entry{}}
		if err := Persist(root, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return doc, nil
}

// Persist serializes the whole document and atomically replaces the
// canonical index file, so the index is never observed half-written.
func Persist(root string, doc *Document) error {
	if doc.Backups == nil {
		doc.Backups = []Entry{}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	raw = append(raw, '\n')
	if err := atomic.WriteFile(filepath.Join(root, Filename), raw, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Sorted returns the entries ordered newest first. The order is
// recomputed on every call; insertion order is never relied on. The
// sort is stable so entries sharing a timestamp keep their document
// order.
func (d *Document) Sorted() []Entry {
	out := make([]Entry, len(d.Backups))
	copy(out, d.Backups)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

// Find returns the entry with the given id.
func (d *Document) Find(id string) (Entry, bool) {
	for _, e := range d.Backups {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
