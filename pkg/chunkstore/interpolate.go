package chunkstore

import "github.com/sorauchi/squarefield/pkg/keyframe"

// InterpolatedAt returns the interpolated position at the local
// playhead if the chunk containing it is resident and non-empty.
// It never touches the block store: it reports absence rather than
// blocking, so update/render never suspends.
func (s *KeyframeStore) InterpolatedAt(playheadMs float64) (x, y float64, ok bool) {
	n := s.ChunkCount()
	if n == 0 {
		return 0, 0, false
	}
	idx := chunkIndexForTime(playheadMs, s.chunkDurationMs, n)

	s.mu.Lock()
	chunk, resident := s.cache.touch(idx)
	s.mu.Unlock()

	if !resident || len(chunk.Keyframes) == 0 {
		return 0, 0, false
	}

	x, y = keyframe.Interpolate(chunk.Keyframes, float32(playheadMs))
	return x, y, true
}
