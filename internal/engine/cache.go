package engine

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// LoadFunc turns a dataset path into a Store.
type LoadFunc func(path string) (*Store, error)

// Cache is the process-scoped home of the loaded dataset. The first
// GetOrLoad parses the file; later calls return the same Store until
// the file's content hash changes, which triggers a reload. Callers
// receive the Store itself, so everything downstream must treat it
// as read-only.
type Cache struct {
	mu   sync.Mutex
	path string
	load LoadFunc

	sum   [sha256.Size]byte
	store *Store
}

// NewCache builds a cache over path. load defaults to Load.
func NewCache(path string, load LoadFunc) *Cache {
	if load == nil {
		load = Load
	}
	return &Cache{path: path, load: load}
}

// GetOrLoad returns the cached Store, loading or reloading when the
// source file is new or has changed since the last load.
func (c *Cache) GetOrLoad() (*Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sum, err := fileSum(c.path)
	if err != nil {
		return nil, fmt.Errorf("hash dataset: %w", err)
	}
	if c.store != nil && sum == c.sum {
		return c.store, nil
	}
	if c.store != nil {
		log.Printf("cache: %s changed, reloading", c.path)
	}

	store, err := c.load(c.path)
	if err != nil {
		return nil, err
	}
	c.store = store
	c.sum = sum
	return store, nil
}

func fileSum(path string) ([sha256.Size]byte, error) {
	var sum [sha256.Size]byte
	f, err := os.Open(path)
	if err != nil {
		return sum, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return sum, err
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
