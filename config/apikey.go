package config

import (
	"os"
	"strings"
	"sync"
)

// KeyStore holds the vision API key: loaded at startup, persisted on
// every write. Keeping it behind an interface makes the storage medium
// swappable (tests use an in-memory value).
type KeyStore interface {
	Get() string
	Set(key string) error
}

// FileKeyStore persists key overrides to a local file. The initial
// value comes from the file if present, otherwise from the
// VISION_API_KEY environment variable.
type FileKeyStore struct {
	mu   sync.RWMutex
	path string
	key  string
}

func NewFileKeyStore() *FileKeyStore {
	path := os.Getenv("VISION_API_KEY_FILE")
	if path == "" {
		path = ".vision_api_key"
	}
	ks := &FileKeyStore{path: path, key: os.Getenv("VISION_API_KEY")}
	if data, err := os.ReadFile(path); err == nil {
		if k := strings.TrimSpace(string(data)); k != "" {
			ks.key = k
		}
	}
	return ks
}

func (ks *FileKeyStore) Get() string {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return ks.key
}

func (ks *FileKeyStore) Set(key string) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if err := os.WriteFile(ks.path, []byte(key), 0o600); err != nil {
		return err
	}
	ks.key = key
	return nil
}

// StaticKeyStore is a fixed in-memory key, used in tests.
type StaticKeyStore string

func (s StaticKeyStore) Get() string          { return string(s) }
func (s StaticKeyStore) Set(key string) error { return nil }
