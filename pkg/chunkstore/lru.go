package chunkstore

import (
	"container/list"

	"github.com/sorauchi/squarefield/pkg/blockstore"
)

// residentLRU is a bounded LRU cache of resident chunks, the Go
// realization of the "ordered map of chunk_index ->
// KeyframeChunk with capacity C". It mirrors the structure of the
// corpus's scene.LayerCache (container/list + map), adapted: keyed by
// chunk index rather than a content hash, evicting whole chunks
// rather than pixmaps, and with no memory-size accounting since
// capacity here is a chunk count, not a byte budget.
//
// residentLRU is not safe for concurrent use; callers serialize
// access (KeyframeStore does so with a mutex held only across cache
// operations, never across a block-store call).
type residentLRU struct {
	capacity int
	order    *list.List // front = most recently used
	elements map[uint32]*list.Element
}

type lruEntry struct {
	chunkIndex uint32
	chunk      blockstore.Chunk
}

func newResidentLRU(capacity int) *residentLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &residentLRU{
		capacity: capacity,
		order:    list.New(),
		elements: make(map[uint32]*list.Element),
	}
}

// touch promotes chunkIndex to most-recently-used if resident, and
// reports whether it was resident.
func (c *residentLRU) touch(chunkIndex uint32) (blockstore.Chunk, bool) {
	el, ok := c.elements[chunkIndex]
	if !ok {
		return blockstore.Chunk{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).chunk, true
}

// insert adds or replaces chunkIndex as most-recently-used, evicting
// the least-recently-used entry if capacity is exceeded. It returns
// the evicted chunk index, if any.
func (c *residentLRU) insert(chunkIndex uint32, chunk blockstore.Chunk) (evicted uint32, didEvict bool) {
	if el, ok := c.elements[chunkIndex]; ok {
		el.Value.(*lruEntry).chunk = chunk
		c.order.MoveToFront(el)
		return 0, false
	}

	el := c.order.PushFront(&lruEntry{chunkIndex: chunkIndex, chunk: chunk})
	c.elements[chunkIndex] = el

	if c.order.Len() <= c.capacity {
		return 0, false
	}

	back := c.order.Back()
	c.order.Remove(back)
	victim := back.Value.(*lruEntry).chunkIndex
	delete(c.elements, victim)
	return victim, true
}

func (c *residentLRU) len() int {
	return c.order.Len()
}

func (c *residentLRU) residentIndexes() []uint32 {
	out := make([]uint32, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*lruEntry).chunkIndex)
	}
	return out
}
