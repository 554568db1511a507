package chunkstore

import (
	"context"
	"errors"
)

// Prefetch ensures the chunk containing playheadMs and its immediate
// successor (wrapping) are resident, following the two-chunk
// prefetch window. A missing chunk in the block store is not an
// error: it is treated as "no data yet" and left absent.
func (s *KeyframeStore) Prefetch(ctx context.Context, playheadMs float64) error {
	n := s.ChunkCount()
	if n == 0 {
		return nil
	}

	i0 := chunkIndexForTime(playheadMs, s.chunkDurationMs, n)
	i1 := (i0 + 1) % n

	for _, idx := range []uint32{i0, i1} {
		if err := s.ensureResident(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// ensureResident touches idx if already cached, otherwise loads it
// from the block store (outside the cache lock, so a slow or stalled
// load never blocks concurrent reads) and inserts the result.
func (s *KeyframeStore) ensureResident(ctx context.Context, idx uint32) error {
	s.mu.Lock()
	_, resident := s.cache.touch(idx)
	s.mu.Unlock()
	if resident {
		return nil
	}

	chunk, ok, err := s.adapter.GetChunk(ctx, s.objectID, idx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		// Non-fatal: prefetch misses are logged and
		// absorbed, the object simply renders at a stale position.
		s.logf("[ChunkStore] object %d chunk %d: prefetch load failed: %v", s.objectID, idx, err)
		return nil
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	if evicted, didEvict := s.cache.insert(idx, chunk); didEvict {
		s.logf("[ChunkStore] object %d: evicted chunk %d for chunk %d", s.objectID, evicted, idx)
	}
	s.mu.Unlock()
	return nil
}
