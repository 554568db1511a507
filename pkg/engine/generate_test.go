package engine

import (
	"context"
	"testing"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/pattern"
)

func TestGenerateObjectsPopulatesVector(t *testing.T) {
	surface := newFakeSurface(320, 240)
	pointer := &fakePointerSource{}
	adapter := blockstore.NewAdapter(blockstore.NewMemoryStore())
	e := newTestEngine(t, surface, pointer, nil, adapter)

	err := e.GenerateObjects(context.Background(), 5, 2000, 20, 320, 240, pattern.RandomWalk)
	if err != nil {
		t.Fatalf("GenerateObjects: %v", err)
	}

	if e.ObjectCount() != 5 {
		t.Fatalf("ObjectCount() = %d, want 5", e.ObjectCount())
	}
}
