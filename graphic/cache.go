package graphic

import (
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"
)

// Cache deduplicates decoded pictures by content.
type Cache struct {
	dec Decoder

	mu     sync.Mutex
	byHash map[[32]byte]*Graphic
	hits   int
}

// NewCache returns a cache in front of dec. A nil dec uses StdDecoder and a
// dec that is already a *Cache is returned as is.
func NewCache(dec Decoder) *Cache {
	if c, ok := dec.(*Cache); ok && c != nil {
		return c
	}
	if dec == nil {
		dec = StdDecoder{}
	}
	return &Cache{dec: dec, byHash: make(map[[32]byte]*Graphic)}
}

// Decode implements Decoder. Identical data yields the same *Graphic.
func (c *Cache) Decode(data []byte, hint Format) (*Graphic, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	sum := blake3.Sum256(data)

	c.mu.Lock()
	if g, ok := c.byHash[sum]; ok {
		c.hits++
		c.mu.Unlock()
		return g, nil
	}
	c.mu.Unlock()

	g, err := c.dec.Decode(data, hint)
	if err != nil {
		return nil, err
	}
	g.Hash = hex.EncodeToString(sum[:])

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.byHash[sum]; ok {
		return prev, nil
	}
	c.byHash[sum] = g
	return g, nil
}

// Len returns the number of distinct pictures seen.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byHash)
}

// Hits returns how many decodes were answered from the cache.
func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}
