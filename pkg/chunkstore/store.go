// Package chunkstore implements the per-object chunked keyframe
// store: bounded-memory, LRU-cached, prefetched-ahead-of-the-playhead
// access to a conceptually very long motion track that is actually
// persisted a chunk at a time in an external block store.
package chunkstore

import (
	"log"
	"math"
	"sync"

	"github.com/sorauchi/squarefield/pkg/blockstore"
)

// DefaultCacheCapacity is the default number of chunks (C) that
// a KeyframeStore keeps resident at once.
const DefaultCacheCapacity = 4

// KeyframeStore presents one object's chunked motion track: bounded
// by TotalDurationMs, backed by a block store, with at most
// cacheCapacity decoded chunks resident at a time.
type KeyframeStore struct {
	objectID        uint32
	chunkDurationMs float32
	totalDurationMs float64
	pattern         PatternFunc
	adapter         *blockstore.Adapter
	verbose         bool

	// mu guards cache. It is held only across in-memory cache
	// operations, never across a block-store call: a stalled Get
	// must not block interpolation reads from another goroutine.
	mu    sync.Mutex
	cache *residentLRU
}

// New constructs a store with no resident chunks and no persisted
// chunks. Call GenerateAndPersistAll before the first Prefetch.
func New(objectID uint32, chunkDurationMs float32, totalDurationMs float64, pattern PatternFunc, adapter *blockstore.Adapter, cacheCapacity int) *KeyframeStore {
	return &KeyframeStore{
		objectID:        objectID,
		chunkDurationMs: chunkDurationMs,
		totalDurationMs: totalDurationMs,
		pattern:         pattern,
		adapter:         adapter,
		cache:           newResidentLRU(cacheCapacity),
	}
}

// SetVerbose toggles diagnostic logging for this store.
func (s *KeyframeStore) SetVerbose(v bool) { s.verbose = v }

// ChunkCount returns N, the number of chunks tiling [0, totalDurationMs).
func (s *KeyframeStore) ChunkCount() uint32 {
	return uint32(math.Ceil(s.totalDurationMs / float64(s.chunkDurationMs)))
}

func (s *KeyframeStore) chunkBounds(index uint32) (start, end float32) {
	start = float32(index) * s.chunkDurationMs
	end = start + s.chunkDurationMs
	if float64(end) > s.totalDurationMs {
		end = float32(s.totalDurationMs)
	}
	return start, end
}

func chunkIndexForTime(t float64, chunkDurationMs float32, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	idx := int64(math.Floor(t / float64(chunkDurationMs)))
	m := int64(n)
	idx %= m
	if idx < 0 {
		idx += m
	}
	return uint32(idx)
}

// ResidentChunkIndexes reports which chunk indexes are currently
// cached, most-recently-used first. Test/diagnostic helper; takes mu
// since it can run concurrently with an in-flight Prefetch.
func (s *KeyframeStore) ResidentChunkIndexes() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.residentIndexes()
}

// ObjectID returns the object this store belongs to.
func (s *KeyframeStore) ObjectID() uint32 { return s.objectID }

// TotalDurationMs returns the length of the full track this store
// tiles into chunks.
func (s *KeyframeStore) TotalDurationMs() float64 { return s.totalDurationMs }

func (s *KeyframeStore) logf(format string, args ...any) {
	if s.verbose {
		log.Printf(format, args...)
	}
}
