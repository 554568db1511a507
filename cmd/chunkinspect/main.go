// Command chunkinspect dumps chunk residency and keyframe counts for
// one object's KeyframeStore, a small developer diagnostic tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/keyframe"
	"github.com/sorauchi/squarefield/pkg/pattern"
)

func main() {
	objectID := flag.Uint("object-id", 0, "object_id to inspect")
	chunkDurationMs := flag.Float64("chunk-duration-ms", 1000, "chunk_duration in milliseconds")
	totalDurationMs := flag.Float64("total-duration-ms", 10000, "total_duration in milliseconds")
	seed := flag.Int64("seed", 1, "seed for the default random-walk pattern")
	areaWidth := flag.Float64("area-width", 640, "random-walk play area width")
	areaHeight := flag.Float64("area-height", 480, "random-walk play area height")
	playheadMs := flag.Float64("playhead-ms", 0, "playhead to prefetch and interpolate at")
	flag.Parse()

	fmt.Println("==========================================================")
	fmt.Println("squarefield chunk inspector")
	fmt.Println("==========================================================")

	adapter := blockstore.NewAdapter(blockstore.NewMemoryStore())
	store := chunkstore.New(uint32(*objectID), float32(*chunkDurationMs), *totalDurationMs,
		pattern.RandomWalk(*seed, *areaWidth, *areaHeight), adapter, chunkstore.DefaultCacheCapacity)
	store.SetVerbose(true)

	ctx := context.Background()
	if err := store.GenerateAndPersistAll(ctx); err != nil {
		log.Fatalf("chunkinspect: generate: %v", err)
	}
	fmt.Printf("object_id=%d chunk_count=%d chunk_duration_ms=%v total_duration_ms=%v\n",
		*objectID, store.ChunkCount(), *chunkDurationMs, *totalDurationMs)

	if err := store.Prefetch(ctx, *playheadMs); err != nil {
		log.Fatalf("chunkinspect: prefetch(%v): %v", *playheadMs, err)
	}

	fmt.Printf("resident chunks after prefetch(%v): %v\n", *playheadMs, store.ResidentChunkIndexes())

	if x, y, ok := store.InterpolatedAt(*playheadMs); ok {
		fmt.Printf("interpolated_at(%v) = (%.3f, %.3f)\n", *playheadMs, x, y)
	} else {
		fmt.Printf("interpolated_at(%v) = <absent>\n", *playheadMs)
	}

	dumpResidentChunks(store, adapter, uint32(*objectID), ctx)
}

func dumpResidentChunks(store *chunkstore.KeyframeStore, adapter *blockstore.Adapter, objectID uint32, ctx context.Context) {
	for _, idx := range store.ResidentChunkIndexes() {
		chunk, ok, err := adapter.GetChunk(ctx, objectID, idx)
		if err != nil {
			fmt.Printf("chunk %d: error: %v\n", idx, err)
			continue
		}
		if !ok {
			fmt.Printf("chunk %d: <not persisted>\n", idx)
			continue
		}
		fmt.Printf("chunk %d: [%v, %v) keyframes=%d %s\n", idx, chunk.StartTime, chunk.EndTime,
			len(chunk.Keyframes), summarizeKeyframes(chunk.Keyframes))
	}
}

func summarizeKeyframes(kfs []keyframe.Keyframe) string {
	if len(kfs) == 0 {
		return "(empty)"
	}
	first, last := kfs[0], kfs[len(kfs)-1]
	return fmt.Sprintf("first=(%v,%.2f,%.2f) last=(%v,%.2f,%.2f)", first.Time, first.X, first.Y, last.Time, last.X, last.Y)
}
