package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile computes the SHA-256 hash of a file's contents.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

// Key builds a cache key from its parts. Parts that identify a run
// (input path, sheet, output paths, column mapping) are joined so
// distinct configurations stamp independently.
func Key(parts ...string) string {
	return "convert:" + Hash([]byte(strings.Join(parts, "\x00")))
}
