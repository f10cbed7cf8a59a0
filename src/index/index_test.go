package index_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"conf-rollback/src/index"
)

func TestPersistLoad_RoundTrip(t *testing.T) {
	root := t.TempDir()
	doc := &index.Document{Backups: []index.Entry{
		{
			ID:             "aaaabbbbccccddddeeeeffff00001111",
			Timestamp:      "2025-01-01T10:00:00.000000Z",
			OriginalPath:   "/etc/myapp/config.json",
			BackupFilename: "aaaabbbbccccddddeeeeffff00001111.json",
			Checksum:       "deadbeef",
			Note:           "baseline",
		},
	}}
	if err := index.Persist(root, doc); err != nil {
		t.Fatalf("persist: %v", err)
	}
	got, err := index.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Backups) != 1 {
		t.Fatalf("got %d entries, want 1", len(got.Backups))
	}
	if got.Backups[0] != doc.Backups[0] {
		t.Fatalf("entry = %+v, want %+v", got.Backups[0], doc.Backups[0])
	}
}

func TestLoad_MissingIndexFails(t *testing.T) {
	if _, err := index.Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing index document")
	}
}

func TestLoad_CorruptedIndexRecoversEmpty(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, index.Filename)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	doc, err := index.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Backups) != 0 {
		t.Fatalf("got %d entries, want 0 after recovery", len(doc.Backups))
	}
	// The corrupted document must have been replaced with a valid one.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rewritten index: %v", err)
	}
	var again index.Document
	if err := json.Unmarshal(raw, &again); err != nil {
		t.Fatalf("rewritten index is not valid JSON: %v", err)
	}
}

func TestSorted_NewestFirst(t *testing.T) {
	doc := &index.Document{Backups: []index.Entry{
		{ID: "b", Timestamp: "2025-01-02T00:00:00.000000Z"},
		{ID: "c", Timestamp: "2025-01-03T00:00:00.000000Z"},
		{ID: "a", Timestamp: "2025-01-01T00:00:00.000000Z"},
	}}
	got := doc.Sorted()
	want := []string{"c", "b", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("sorted[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
	// Sorted must not reorder the document itself.
	if doc.Backups[0].ID != "b" {
		t.Fatalf("document order changed: first id = %s, want b", doc.Backups[0].ID)
	}
}

func TestSorted_EqualTimestampsKeepDocumentOrder(t *testing.T) {
	doc := &index.Document{Backups: []index.Entry{
		{ID: "first", Timestamp: "2025-01-01T00:00:00.000000Z"},
		{ID: "second", Timestamp: "2025-01-01T00:00:00.000000Z"},
		{ID: "third", Timestamp: "2025-01-01T00:00:00.000000Z"},
		{ID: "newer", Timestamp: "2025-01-02T00:00:00.000000Z"},
	}}
	got := doc.Sorted()
	want := []string{"newer", "first", "second", "third"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("sorted[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFind(t *testing.T) {
	doc := &index.Document{Backups: []index.Entry{{ID: "a"}, {ID: "b"}}}
	if e, ok := doc.Find("b"); !ok || e.ID != "b" {
		t.Fatalf("Find(b) = %+v, %v", e, ok)
	}
	if _, ok := doc.Find("missing"); ok {
		t.Fatalf("Find(missing) = true, want false")
	}
}
