package enricher

import (
	"context"
	"sync"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

// TokenNameCache remembers token names that were successfully resolved. Failed
// lookups are never cached so a skip is always the result of a fresh query.
type TokenNameCache interface {
	Get(ctx context.Context, address gethCommon.Address) (string, bool)
	Set(ctx context.Context, address gethCommon.Address, name string)
}

type MemoryTokenNameCache struct {
	mu    sync.RWMutex
	names map[gethCommon.Address]string
}

func NewMemoryTokenNameCache() *MemoryTokenNameCache {
	return &MemoryTokenNameCache{names: make(map[gethCommon.Address]string)}
}

func (c *MemoryTokenNameCache) Get(_ context.Context, address gethCommon.Address) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[address]
	return name, ok
}

func (c *MemoryTokenNameCache) Set(_ context.Context, address gethCommon.Address, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[address] = name
}
