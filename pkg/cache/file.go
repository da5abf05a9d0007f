package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps stamps as JSON files in a directory, one file per
// key. The volume is tiny (one stamp per distinct input/output
// combination), so no sharding is needed.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// envelope wraps a stored stamp with its expiration.
type envelope struct {
	Stamp     Stamp     `json:"stamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a stamp from the cache.
func (c *FileCache) Get(ctx context.Context, key string) (*Stamp, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Corrupt entry - treat as miss
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !env.ExpiresAt.IsZero() && time.Now().After(env.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return &env.Stamp, true, nil
}

// Set stores a stamp in the cache.
func (c *FileCache) Set(ctx context.Context, key string, s Stamp, ttl time.Duration) error {
	env := envelope{Stamp: s}
	if ttl > 0 {
		env.ExpiresAt = time.Now().Add(ttl)
	}

	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path(key), data, 0644)
}

// Delete removes a stamp from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path inside the cache dir.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, Hash([]byte(key))+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
