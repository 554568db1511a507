package engine

import "runtime"

// yieldToHost hands the scheduler a chance to run other goroutines —
// the same cooperative-yield idiom the corpus's batch loaders use
// between heavy iterations, so GenerateObjects does not starve the
// host's own goroutine during a large batch.
func yieldToHost() {
	runtime.Gosched()
}
