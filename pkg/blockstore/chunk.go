package blockstore

import "github.com/sorauchi/squarefield/pkg/keyframe"

// Chunk is the persisted representation of one KeyframeChunk: a
// contiguous, half-open time slice of one object's motion track.
type Chunk struct {
	ObjectID   uint32
	ChunkIndex uint32
	StartTime  float32
	EndTime    float32
	Keyframes  []keyframe.Keyframe
}

// chunkRecord is the wire shape written to the block store, matching
// the persisted chunk format: an object_chunk_id composite key plus
// the time bounds and packed keyframe array.
type chunkRecord struct {
	ObjectChunkID string           `json:"object_chunk_id"`
	StartTime     float32          `json:"start_time"`
	EndTime       float32          `json:"end_time"`
	Keyframes     []keyframeRecord `json:"keyframes"`
}

type keyframeRecord struct {
	Time float32 `json:"time"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
}

func kfFromRecord(r keyframeRecord) keyframe.Keyframe {
	return keyframe.Keyframe{Time: r.Time, X: r.X, Y: r.Y}
}
