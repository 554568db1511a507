package blockstore

import (
	"context"
	"testing"

	"github.com/sorauchi/squarefield/pkg/keyframe"
)

func TestPutChunkGetChunkRoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemoryStore())
	ctx := context.Background()

	want := Chunk{
		ObjectID:   3,
		ChunkIndex: 7,
		StartTime:  7000,
		EndTime:    8000,
		Keyframes: []keyframe.Keyframe{
			{Time: 7000, X: 1, Y: 2},
			{Time: 7500, X: 3, Y: 4},
		},
	}

	if err := adapter.PutChunk(ctx, want); err != nil {
		t.Fatalf("PutChunk: %v", err)
	}

	got, ok, err := adapter.GetChunk(ctx, 3, 7)
	if err != nil {
		t.Fatalf("GetChunk: %v", err)
	}
	if !ok {
		t.Fatal("GetChunk: expected ok=true")
	}

	if got.ObjectID != want.ObjectID || got.ChunkIndex != want.ChunkIndex ||
		got.StartTime != want.StartTime || got.EndTime != want.EndTime {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Keyframes) != len(want.Keyframes) {
		t.Fatalf("keyframe count mismatch: got %d, want %d", len(got.Keyframes), len(want.Keyframes))
	}
	for i := range want.Keyframes {
		if got.Keyframes[i] != want.Keyframes[i] {
			t.Errorf("keyframe %d mismatch: got %+v, want %+v", i, got.Keyframes[i], want.Keyframes[i])
		}
	}
}

func TestGetChunkMissingReturnsNotOk(t *testing.T) {
	adapter := NewAdapter(NewMemoryStore())
	_, ok, err := adapter.GetChunk(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("GetChunk on missing key returned error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing chunk")
	}
}

func TestResetClearsStore(t *testing.T) {
	store := NewMemoryStore()
	adapter := NewAdapter(store)
	ctx := context.Background()

	_ = adapter.PutChunk(ctx, Chunk{ObjectID: 1, ChunkIndex: 0, EndTime: 1000})
	if store.Len() == 0 {
		t.Fatal("expected chunk to be persisted before reset")
	}

	if err := adapter.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected store empty after reset, has %d keys", store.Len())
	}

	_, ok, _ := adapter.GetChunk(ctx, 1, 0)
	if ok {
		t.Fatal("expected chunk to be gone after reset")
	}
}
