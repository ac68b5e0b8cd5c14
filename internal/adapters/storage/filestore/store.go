// Package filestore implements the legacy persistent cache tier as one JSON file per key.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

const entryExt = ".json"

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store implements ports.Storage using a file-per-key strategy.
// The key is kept inside the file so that prefix scans survive the hashed file names.
type Store struct {
	dir string
}

// Open prepares the directory at dir.
func Open(dir string) (*Store, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStorageOpenFailed.Error()), "path", dir)
	}
	return &Store{dir: dir}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool) {
	e, ok := s.read(s.filename(key))
	if !ok || e.Key != key {
		return "", false
	}
	return e.Value, true
}

// Set writes value under key, replacing the file atomically.
func (s *Store) Set(_ context.Context, key, value string) bool {
	data, err := json.Marshal(entry{Key: key, Value: value})
	if err != nil {
		return false
	}

	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return false
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false
	}
	if err := tmp.Close(); err != nil {
		return false
	}
	return os.Rename(tmp.Name(), s.filename(key)) == nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) {
	_ = os.Remove(s.filename(key))
}

// Keys lists the stored keys starting with prefix in lexical order.
func (s *Store) Keys(_ context.Context, prefix string) []string {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var keys []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), entryExt) {
			continue
		}
		e, ok := s.read(filepath.Join(s.dir, f.Name()))
		if ok && strings.HasPrefix(e.Key, prefix) {
			keys = append(keys, e.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) read(name string) (entry, bool) {
	//nolint:gosec // Path is constructed from the store directory and a hashed file name
	data, err := os.ReadFile(name)
	if err != nil {
		return entry{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return entry{}, false
	}
	return e, true
}

func (s *Store) filename(key string) string {
	return filepath.Join(s.dir, strconv.FormatUint(xxhash.Sum64String(key), 16)+entryExt)
}
