package square

import (
	"context"
	"testing"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/keyframe"
)

func linearPattern(kfs ...keyframe.Keyframe) chunkstore.PatternFunc {
	return func(start, end float32) []keyframe.Keyframe {
		var out []keyframe.Keyframe
		for _, kf := range kfs {
			if kf.Time >= start && kf.Time <= end {
				out = append(out, kf)
			}
		}
		return out
	}
}

func newTestStore(t *testing.T) *chunkstore.KeyframeStore {
	t.Helper()
	adapter := blockstore.NewAdapter(blockstore.NewMemoryStore())
	pattern := linearPattern(
		keyframe.Keyframe{Time: 0, X: 0, Y: 0},
		keyframe.Keyframe{Time: 1000, X: 100, Y: 0},
	)
	store := chunkstore.New(1, 1000, 1000, pattern, adapter, 2)
	if err := store.GenerateAndPersistAll(context.Background()); err != nil {
		t.Fatalf("GenerateAndPersistAll: %v", err)
	}
	if err := store.Prefetch(context.Background(), 0); err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	return store
}

func TestSquareObjectUpdateAdvancesAndInterpolates(t *testing.T) {
	store := newTestStore(t)
	obj := New(1, 10, Color{R: 255, A: 255}, store, 0)

	obj.Update(500)

	if obj.CurrentX() < 40 || obj.CurrentX() > 60 {
		t.Errorf("CurrentX() = %v, want near 50 (midpoint)", obj.CurrentX())
	}
}

func TestSquareObjectUpdateWrapsModuloTotalDuration(t *testing.T) {
	store := newTestStore(t)
	obj := New(1, 10, Color{}, store, 0)

	obj.Update(1500)

	if obj.CurrentX() < 0 || obj.CurrentX() > 100 {
		t.Errorf("CurrentX() = %v after wraparound, want within track bounds", obj.CurrentX())
	}
}

func TestSquareObjectRetainsLastPositionWhenChunkAbsent(t *testing.T) {
	adapter := blockstore.NewAdapter(blockstore.NewMemoryStore())
	pattern := linearPattern(keyframe.Keyframe{Time: 0, X: 5, Y: 5})
	store := chunkstore.New(2, 1000, 1000, pattern, adapter, 1)
	// No GenerateAndPersistAll / Prefetch: nothing is resident.

	obj := New(2, 10, Color{}, store, 0)
	before := obj.CurrentX()
	obj.Update(10)

	if obj.CurrentX() != before {
		t.Errorf("CurrentX() changed from %v to %v with no resident chunk", before, obj.CurrentX())
	}
}

func TestSquareObjectAABBMatchesPositionAndSize(t *testing.T) {
	store := newTestStore(t)
	obj := New(1, 10, Color{}, store, 0)
	obj.Update(0)

	box := obj.AABB()
	if box.MaxX-box.MinX != 10 || box.MaxY-box.MinY != 10 {
		t.Errorf("AABB size = (%v,%v), want (10,10)", box.MaxX-box.MinX, box.MaxY-box.MinY)
	}
}
