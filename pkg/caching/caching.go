// Package caching is a file-based cache for scraped page content so
// repeated runs against the same query do not re-bill the scraping
// provider.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores page content keyed by URL, one file per page, with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates the cache directory if needed. A non-positive ttl
// means entries never expire.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// key generates a SHA256 hash of the URL to use as a filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash)
}

// Get returns the cached content for url and true on a fresh hit.
func (c *Cache) Get(url string) (string, bool) {
	filePath := filepath.Join(c.path, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return "", false
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return "", false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores content for url.
func (c *Cache) Set(url, content string) error {
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, []byte(content), 0640); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
