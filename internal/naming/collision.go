package naming

import (
	"path/filepath"
	"sync"
)

// Claims tracks which source owns each destination path within one batch.
// All methods are goroutine-safe.
type Claims struct {
	mu     sync.Mutex
	owners map[string]string // cleaned destination → source that claimed it
}

// NewClaims creates an empty claim set.
func NewClaims() *Claims {
	return &Claims{owners: make(map[string]string)}
}

// Claim registers dest for source. If another source already claimed dest,
// that source is returned with ok=false and the claim is left unchanged.
// Claiming the same pair twice is not a conflict.
func (c *Claims) Claim(source, dest string) (owner string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := filepath.Clean(dest)
	if prev, exists := c.owners[key]; exists && prev != source {
		return prev, false
	}
	c.owners[key] = source
	return source, true
}

// Len returns the number of distinct claimed destinations.
func (c *Claims) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.owners)
}
