package store

import "fmt"

// Verify recomputes the checksum of id's content file and reports
// whether it still matches the one recorded at save time. This is the
// only mechanism that detects post-save corruption; nothing runs it
// automatically.
func (s *Store) Verify(id string) (bool, error) {
	entry, path, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	sum, err := sha256File(path)
	if err != nil {
		return false, fmt.Errorf("checksum backup file: %w", err)
	}
	return sum == entry.Checksum, nil
}
