package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"
)

// Storage is the key-value persistence contract the activity store
// writes through. Load reports ok=false when the key has never been
// stored (first run), which is not an error.
type Storage interface {
	Load(key string) (value string, ok bool, err error)
	Store(key, value string) error
}

// SQLiteStorage implements Storage over the kv table.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a Storage backed by the given database.
func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Load(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStorage) Store(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("storing key %q: %w", key, err)
	}
	return nil
}

// FileStorage implements Storage as one JSON file per key under a
// directory. Used by tests and by plain-file setups without SQLite.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a Storage writing files under dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	return s.dir + string(os.PathSeparator) + key + ".json"
}

func (s *FileStorage) Load(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", s.path(key), err)
	}
	return string(data), true, nil
}

func (s *FileStorage) Store(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path(key), err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests.
type MemStorage struct {
	values map[string]string
}

// NewMemStorage creates an empty in-memory Storage.
func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

func (s *MemStorage) Load(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemStorage) Store(key, value string) error {
	s.values[key] = value
	return nil
}

// Seed pre-populates a key, bypassing Store. Test helper.
func (s *MemStorage) Seed(key, value string) {
	s.values[key] = value
}
