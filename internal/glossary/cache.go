package glossary

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Cache keeps parsed glossaries on disk, keyed by the content hash of the
// source file, so large glossary files are not re-parsed on every run.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Nouns  map[int]string
}

// OpenCache initializes and returns a disk cache at the standard location
// (XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [sha256.Size]byte) string {
	return filepath.Join(c.dir, "glossaries", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a glossary into the cache.
func (c *Cache) Put(key [sha256.Size]byte, m Map) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(cachePayload{Schema: cacheSchemaVersion, Nouns: m}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get loads a glossary from the cache. The second result is false on a miss
// or when the payload was written by an incompatible schema.
func (c *Cache) Get(key [sha256.Size]byte) (Map, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		// A corrupt entry is a miss, not a failure.
		return nil, false, nil
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Nouns, true, nil
}

// LoadCached parses a TOML glossary file, consulting the cache first.
// A nil cache degrades to a plain Load.
func LoadCached(c *Cache, path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := sha256.Sum256(data)
	if m, ok, err := c.Get(key); err == nil && ok {
		return m, nil
	}
	m, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Put(key, m); err != nil {
		return nil, err
	}
	return m, nil
}
