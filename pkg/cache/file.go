package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache keeps grid documents on disk, one file per build. Entries are
// JSON themselves, with the grid document embedded verbatim, so a cached
// board can be inspected with any JSON tool:
//
//	{"expires_at":"2026-08-25T10:00:00Z","doc":{"shape":"HEXAGONAL",...}}
//
// Files are sharded into two-character subdirectories of the key digest to
// keep directory listings small when many boards are cached.
type FileCache struct {
	dir string
}

// entry is the on-disk shape of one cached build. Doc is the serialized
// grid document, stored raw rather than re-encoded.
type entry struct {
	ExpiresAt time.Time       `json:"expires_at,omitzero"`
	Doc       json.RawMessage `json:"doc"`
}

func (e entry) expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// NewFileCache creates a grid cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get reads the grid document stored under key. Expired and unreadable
// entries are removed and reported as [ErrCacheMiss].
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired() {
		_ = os.Remove(path)
		return nil, ErrCacheMiss
	}
	return e.Doc, nil
}

// Set stores doc under key. A ttl of zero stores the board without expiry.
func (c *FileCache) Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error {
	e := entry{Doc: doc}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes the entry for key, if any.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; the file cache holds no open handles.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to its file. Keys carry a "kind:digest" shape from
// the key helpers; the kind becomes part of the filename so a cache
// directory remains self-describing.
func (c *FileCache) entryPath(key string) string {
	kind, sum, ok := strings.Cut(key, ":")
	if !ok || len(sum) < 8 {
		kind, sum = "raw", digest(key)
	}
	return filepath.Join(c.dir, sum[:2], kind+"-"+sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
