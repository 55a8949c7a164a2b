package cache

import (
	"hash/fnv"
	"sync"
)

type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
	Snapshot() map[string]any
	Len() int
	Reset()
}

type shard struct {
	mu   sync.RWMutex
	data map[string]any
}

type ShardedCache struct {
	shards []shard
}

type ShardedOption func(*ShardedCache)

// WithShards rounds n up to a power of two so shardFor can mask instead of mod.
func WithShards(n int) ShardedOption {
	return func(c *ShardedCache) {
		if n <= 0 {
			n = 16
		}
		size := 1
		for size < n {
			size <<= 1
		}
		c.shards = make([]shard, size)
		for i := range c.shards {
			c.shards[i] = shard{data: make(map[string]any)}
		}
	}
}

func NewShardedCache(opts ...ShardedOption) *ShardedCache {
	c := &ShardedCache{}
	WithShards(16)(c)
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *ShardedCache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	idx := int(h.Sum32()) & (len(c.shards) - 1)
	return &c.shards[idx]
}

func (c *ShardedCache) Put(key string, v any) {
	s := c.shardFor(key)
	s.mu.Lock()
	s.data[key] = v
	s.mu.Unlock()
}

func (c *ShardedCache) Get(key string) (any, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()
	return v, ok
}

func (c *ShardedCache) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *ShardedCache) Snapshot() map[string]any {
	out := make(map[string]any)
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		for k, v := range s.data {
			out[k] = v
		}
		s.mu.RUnlock()
	}
	return out
}

func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.data)
		s.mu.RUnlock()
	}
	return n
}

// Reset drops every entry, keeping the shard layout.
func (c *ShardedCache) Reset() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.data = make(map[string]any)
		s.mu.Unlock()
	}
}
