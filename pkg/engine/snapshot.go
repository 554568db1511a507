package engine

// ObjectSnapshot is one object's diagnostic state — not part of the
// render path.
type ObjectSnapshot struct {
	ObjectID       uint32
	CurrentX       float64
	CurrentY       float64
	ResidentChunks int
	LastHitIndexed bool
}

// Snapshot reports the engine's current object count, per-object
// cache residency, and the last hit index, mirroring the corpus's
// verify/introspection tool family without adding gameplay scope.
type Snapshot struct {
	ObjectCount int
	Paused      bool
	HitIndices  []uint32
	Objects     []ObjectSnapshot
}

// Snapshot captures the engine's current diagnostic state.
func (e *Engine) Snapshot() Snapshot {
	objects := make([]ObjectSnapshot, 0, len(e.objects))
	hitSet := make(map[uint32]bool, len(e.hitIndices))
	for _, id := range e.hitIndices {
		hitSet[id] = true
	}

	for _, obj := range e.objects {
		objects = append(objects, ObjectSnapshot{
			ObjectID:       obj.ObjectID(),
			CurrentX:       obj.CurrentX(),
			CurrentY:       obj.CurrentY(),
			ResidentChunks: obj.ResidentChunkCount(),
			LastHitIndexed: hitSet[obj.ObjectID()],
		})
	}

	return Snapshot{
		ObjectCount: len(e.objects),
		Paused:      e.paused,
		HitIndices:  append([]uint32(nil), e.hitIndices...),
		Objects:     objects,
	}
}
