// Package fs provides a file-based implementation of homeseek.HistoryStore.
// The full recent-search list is kept as a single JSON array and rewritten
// wholesale on every insert.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mwidmann/homeseek"
)

// Ensure HistoryStore implements homeseek.HistoryStore at compile time.
var _ homeseek.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists recent searches to a JSON file with atomic update
// semantics: the new list is written to a temporary file and moved into
// place, so a crash mid-write never corrupts the history.
type HistoryStore struct {
	mu   sync.Mutex
	path string
}

// NewHistoryStore creates a HistoryStore backed by the file at path.
// The file and its parent directories are created on first Record.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Recent returns the persisted entries, most recent first. A missing or
// unparsable file reads as an empty history, never as an error.
func (s *HistoryStore) Recent(ctx context.Context) ([]*homeseek.RecentSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Record inserts entry per the de-duplicating insert rule, rewrites the
// file, and returns the updated list. Load, modify, and persist happen
// under one lock so the in-memory view never drifts from disk.
func (s *HistoryStore) Record(ctx context.Context, entry *homeseek.RecentSearch) ([]*homeseek.RecentSearch, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := homeseek.PushRecent(s.load(), entry)
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *HistoryStore) load() []*homeseek.RecentSearch {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var entries []*homeseek.RecentSearch
	if err := json.Unmarshal(data, &entries); err != nil {
		// Unparsable history is treated as empty rather than an error;
		// the next Record overwrites it with a clean list.
		return nil
	}
	return entries
}

func (s *HistoryStore) save(entries []*homeseek.RecentSearch) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
