// Package dictstore holds the service's one loaded dictionary behind a
// mutex so an admin reload can swap it out while requests are in
// flight, without either side seeing a half-updated trie.
package dictstore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/crossplay/waffle/pkg/dictionary"
)

// Store holds a dictionary loaded from a packed file on disk.
type Store struct {
	path string

	mu       sync.RWMutex
	dict     *dictionary.Dictionary
	checksum string
}

// Load reads and parses the packed dictionary at path.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the currently loaded dictionary, or nil if none has
// loaded successfully yet.
func (s *Store) Current() *dictionary.Dictionary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict
}

// Checksum returns the sha256 of the currently loaded dictionary's raw
// bytes, used as the cache key for memoised pattern searches.
func (s *Store) Checksum() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checksum
}

// Reload re-reads the dictionary file from disk, replacing the
// currently loaded dictionary only if the read and parse succeed.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read dictionary %s: %w", s.path, err)
	}

	sum := sha256.Sum256(data)
	dict := dictionary.New(data)

	s.mu.Lock()
	s.dict = dict
	s.checksum = hex.EncodeToString(sum[:])
	s.mu.Unlock()
	return nil
}
