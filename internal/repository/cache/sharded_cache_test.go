package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShardedCache_Default_PutGetDeleteSnapshot(t *testing.T) {
	c := NewShardedCache()

	require.Equal(t, 16, len(c.shards))

	c.Put("a", 1)
	c.Put("b", "two")

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, "two", snap["b"])
	require.Equal(t, 2, c.Len())

	c.Delete("a")
	_, ok = c.Get("a")
	require.False(t, ok)

	c2 := NewShardedCache(WithShards(0))
	require.Equal(t, 16, len(c2.shards))
}

func TestShardedCache_ShardCountRoundsToPowerOfTwo(t *testing.T) {
	c := NewShardedCache(WithShards(5))
	require.Equal(t, 8, len(c.shards))
}

func TestShardedCache_CustomShardCount_Distribution(t *testing.T) {
	c := NewShardedCache(WithShards(8))

	for i := 0; i < 100; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	total := 0
	used := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.data)
		if len(s.data) > 0 {
			used++
		}
		s.mu.RUnlock()
	}
	require.Equal(t, 100, total)
	require.GreaterOrEqual(t, used, 2)
}

func TestShardedCache_Reset(t *testing.T) {
	c := NewShardedCache(WithShards(4))
	c.Put("x", 1)
	c.Put("y", 2)

	c.Reset()

	require.Equal(t, 0, c.Len())
	require.Equal(t, 4, len(c.shards))
	_, ok := c.Get("x")
	require.False(t, ok)
}

func TestFileIndex_KeepsNewestRef(t *testing.T) {
	idx := NewFileIndex(NewShardedCache())

	idx.Put("MK-1", FileRef{Name: "order_MK-1_200.json", WrittenAt: 200})
	idx.Put("MK-1", FileRef{Name: "order_MK-1_100.json", WrittenAt: 100})

	ref, ok := idx.Get("MK-1")
	require.True(t, ok)
	require.Equal(t, "order_MK-1_200.json", ref.Name)

	idx.Put("MK-1", FileRef{Name: "order_MK-1_300.json", WrittenAt: 300})
	ref, _ = idx.Get("MK-1")
	require.Equal(t, "order_MK-1_300.json", ref.Name)
}

func TestFileIndex_ExactKeysOnly(t *testing.T) {
	idx := NewFileIndex(NewShardedCache())
	idx.Put("MK-ABC-12345", FileRef{Name: "f.json", WrittenAt: 1})

	_, ok := idx.Get("MK-ABC")
	require.False(t, ok)

	require.Equal(t, []string{"MK-ABC-12345"}, idx.IDs())

	idx.Delete("MK-ABC-12345")
	require.Equal(t, 0, idx.Len())
}
