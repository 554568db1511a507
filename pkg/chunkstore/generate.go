package chunkstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/keyframe"
)

// maxConcurrentPersists bounds how many chunk puts run at once during
// GenerateAndPersistAll, the same hand-rolled channel-semaphore idiom
// the corpus's genetic.Engine uses to cap worker parallelism.
const maxConcurrentPersists = 8

// GenerateAndPersistAll materializes every chunk index in
// [0, ChunkCount()) by calling the pattern function once per chunk,
// injecting bracket frames at chunk boundaries for continuity, and
// writing the results to the block store. Generated chunks are not
// cached. Chunks are independent once bracketed, so puts run with
// bounded concurrency; a failure from any put is reported once
// generation finishes draining in-flight work.
func (s *KeyframeStore) GenerateAndPersistAll(ctx context.Context) error {
	n := s.ChunkCount()
	semaphore := make(chan struct{}, maxConcurrentPersists)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	var prevLast *keyframe.Keyframe
	for i := uint32(0); i < n; i++ {
		start, end := s.chunkBounds(i)
		raw := s.pattern(start, end)
		bracketed := applyBracket(start, raw, prevLast)
		if last := lastOf(bracketed); last != nil {
			prevLast = last
		}

		chunk := blockstore.Chunk{
			ObjectID:   s.objectID,
			ChunkIndex: i,
			StartTime:  start,
			EndTime:    end,
			Keyframes:  bracketed,
		}

		semaphore <- struct{}{}
		wg.Add(1)
		go func(c blockstore.Chunk) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := s.adapter.PutChunk(ctx, c); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("generate chunk %d: %w", c.ChunkIndex, err)
				}
				mu.Unlock()
			}
		}(chunk)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	s.logf("[ChunkStore] object %d: persisted %d chunks", s.objectID, n)
	return nil
}
