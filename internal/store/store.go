// Package store provides the key-value persistence used by fisheye menus to
// remember their active item across runs.
//
// Three backends share the Store interface:
//
//   - Memory: process local, used for tests and render --memory.
//   - File: a YAML document written atomically on every change.
//   - SQLite: a single kv table, for users who keep state on shared volumes.
//
// A ttl of zero means the entry never expires. Expired entries are treated as
// absent and removed lazily.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store is a string key-value store with optional expiry.
type Store interface {
	// Get returns the value of key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key. A ttl of zero means no expiry.
	Set(key, value string, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns the live keys starting with prefix, sorted.
	Keys(prefix string) ([]string, error)
	// Close releases the backend.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Open opens the backend with the given name at path. path is ignored for
// the memory backend.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case "", BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// entry is one stored value. A zero ExpiresAt never expires.
type entry struct {
	Value     string    `yaml:"value"`
	ExpiresAt time.Time `yaml:"expiresAt,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// For mocking in tests
var timeNow = time.Now
