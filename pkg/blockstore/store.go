// Package blockstore wraps an external block key/value store with the
// typed put_chunk/get_chunk/reset contract the keyframe store needs,
// plus the two concrete bindings the engine ships with: an in-memory
// store for tests and headless runs, and a gdata-backed store for
// persistent sessions.
package blockstore

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// Namespace is the database namespace chunks are stored under,
	// so callers can branch on it directly.
	Namespace = "keyframe_chunks"
)

// Store is the raw byte-oriented key/value contract the external
// block store exposes. Every call may suspend; implementations are
// expected to be safe to call from any goroutine.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	DeleteAll(ctx context.Context, namespace string) error
}

// StoreError wraps a failure from the underlying block store. Callers
// distinguish fatal (generation) from non-fatal (prefetch) handling
// at the call site, not by inspecting the error itself.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("blockstore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("blockstore: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Adapter presents the object_id/chunk_index-keyed chunk contract
// over a raw Store. It never retains decoded chunks itself; caching
// is the KeyframeStore's job.
type Adapter struct {
	store Store
}

// NewAdapter wraps store with the chunk-shaped put/get/reset contract.
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store}
}

func chunkKey(objectID, chunkIndex uint32) string {
	return fmt.Sprintf("%d_%d", objectID, chunkIndex)
}

// PutChunk serializes chunk and writes it under its composite key.
func (a *Adapter) PutChunk(ctx context.Context, chunk Chunk) error {
	key := chunkKey(chunk.ObjectID, chunk.ChunkIndex)

	rec := chunkRecord{
		ObjectChunkID: key,
		StartTime:     chunk.StartTime,
		EndTime:       chunk.EndTime,
		Keyframes:     make([]keyframeRecord, len(chunk.Keyframes)),
	}
	for i, kf := range chunk.Keyframes {
		rec.Keyframes[i] = keyframeRecord{Time: kf.Time, X: kf.X, Y: kf.Y}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return &StoreError{Op: "put_chunk", Key: key, Err: err}
	}

	if err := a.store.Put(ctx, key, data); err != nil {
		return &StoreError{Op: "put_chunk", Key: key, Err: err}
	}
	return nil
}

// GetChunk reads and deserializes the chunk at (objectID, chunkIndex),
// returning ok=false if it is not present.
func (a *Adapter) GetChunk(ctx context.Context, objectID, chunkIndex uint32) (chunk Chunk, ok bool, err error) {
	key := chunkKey(objectID, chunkIndex)

	data, found, err := a.store.Get(ctx, key)
	if err != nil {
		return Chunk{}, false, &StoreError{Op: "get_chunk", Key: key, Err: err}
	}
	if !found {
		return Chunk{}, false, nil
	}

	var rec chunkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Chunk{}, false, &StoreError{Op: "get_chunk", Key: key, Err: err}
	}

	out := Chunk{
		ObjectID:   objectID,
		ChunkIndex: chunkIndex,
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
	}
	for _, kf := range rec.Keyframes {
		out.Keyframes = append(out.Keyframes, kfFromRecord(kf))
	}
	return out, true, nil
}

// Reset clears the backing store. Invoked once at engine construction.
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.store.DeleteAll(ctx, Namespace); err != nil {
		return &StoreError{Op: "reset", Err: err}
	}
	return nil
}
