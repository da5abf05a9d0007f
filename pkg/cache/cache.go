// Package cache stamps completed conversions so that re-running the
// tool on an unchanged input can skip the transform entirely.
//
// A [Stamp] records the content hash of the input together with the
// artifact paths a successful run produced. The [FileCache] keeps
// stamps as JSON files under a directory (typically
// ~/.cache/procview); [NullCache] disables stamping and backs
// --no-cache runs and tests.
package cache

import (
	"context"
	"time"
)

// Stamp records one successful conversion.
type Stamp struct {
	// InputHash is the SHA-256 of the input file contents.
	InputHash string `json:"input_hash"`

	// Outputs lists the artifact paths the run wrote.
	Outputs []string `json:"outputs"`

	// RunID identifies the run that produced the stamp.
	RunID string `json:"run_id"`

	// CreatedAt is when the stamp was written.
	CreatedAt time.Time `json:"created_at"`
}

// Cache stores conversion stamps by key.
type Cache interface {
	// Get retrieves a stamp. The bool reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) (*Stamp, bool, error)

	// Set stores a stamp. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, s Stamp, ttl time.Duration) error

	// Delete removes a stamp. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
