// Package store is a flat-file JSON document store. Each named collection
// or document is one file under the data directory. There is no locking
// and no transaction discipline: the load-mutate-save cycle assumes a
// single writer, matching the original deployment where one agent session
// owns the store at a time.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store loads and saves JSON-shaped records at stable keys. A collection
// is an ordered sequence; a document is a single object.
type Store interface {
	// LoadCollection decodes the named collection into out (a pointer to a
	// slice). A missing or unreadable file loads as the empty collection.
	LoadCollection(name string, out any) error
	// SaveCollection overwrites the named collection in full.
	SaveCollection(name string, in any) error
	// SaveDocument overwrites the named document.
	SaveDocument(name string, in any) error
}

// FileStore is the disk-backed Store.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) FileStoreOption {
	return func(s *FileStore) { s.logger = l }
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string, opts ...FileStoreOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	s := &FileStore{
		dir:    dir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the data directory the store is rooted at.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Exists reports whether the named collection or document has been written.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// LoadCollection reads the named collection. Read and decode failures
// degrade to the empty collection with a warning; the dialogue must keep
// going even if the store is damaged.
func (s *FileStore) LoadCollection(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("collection unreadable, treating as empty", "collection", name, "error", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("collection corrupt, treating as empty", "collection", name, "error", err)
		return nil
	}
	return nil
}

// SaveCollection overwrites the named collection in full.
func (s *FileStore) SaveCollection(name string, in any) error {
	return s.write(name, in)
}

// SaveDocument overwrites the named document.
func (s *FileStore) SaveDocument(name string, in any) error {
	return s.write(name, in)
}

func (s *FileStore) write(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		s.logger.Error("encode failed", "name", name, "error", err)
		return fmt.Errorf("encode %q: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		s.logger.Error("write failed", "name", name, "error", err)
		return fmt.Errorf("write %q: %w", name, err)
	}
	return nil
}
