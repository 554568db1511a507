// Package pattern implements the "pattern function" abstraction
// §4.4/§9: deterministic or random producers of keyframes over a
// requested chunk window.
package pattern

import (
	"math/rand"

	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/keyframe"
)

// sampleIntervalMs is the spacing between samples emitted by
// RandomWalk; small enough relative to a typical chunk_duration
// (hundreds to thousands of ms) to give visibly smooth motion.
const sampleIntervalMs float32 = 250

// stepSize is the maximum per-sample displacement in pixels, in
// either axis, before edge reflection.
const stepSize = 24.0

// RandomWalk returns the engine's default pattern function: a bounded
// random walk confined to [0, areaWidth] x [0, areaHeight], seeded
// deterministically so a given seed always produces the same
// track regardless of chunk generation order. Because pattern
// functions are pure functions of (start, end) with no carried
// state, the walk's position at sample index i is recomputed by
// replaying every step from the origin — cheap in practice since a
// track has at most a few thousand samples.
func RandomWalk(seed int64, areaWidth, areaHeight float64) chunkstore.PatternFunc {
	positionAt := func(sampleIndex int) (x, y float64) {
		x, y = areaWidth/2, areaHeight/2
		for i := 0; i <= sampleIndex; i++ {
			rng := rand.New(rand.NewSource(seed ^ int64(i)*0x9e3779b1))
			dx := (rng.Float64()*2 - 1) * stepSize
			dy := (rng.Float64()*2 - 1) * stepSize
			x = reflect(x+dx, areaWidth)
			y = reflect(y+dy, areaHeight)
		}
		return x, y
	}

	return func(start, end float32) []keyframe.Keyframe {
		if end <= start {
			return nil
		}

		firstIndex := int(start / sampleIntervalMs)
		if float32(firstIndex)*sampleIntervalMs < start {
			firstIndex++
		}

		var out []keyframe.Keyframe
		for i := firstIndex; float32(i)*sampleIntervalMs < end; i++ {
			t := float32(i) * sampleIntervalMs
			x, y := positionAt(i)
			out = append(out, keyframe.Keyframe{Time: t, X: float32(x), Y: float32(y)})
		}
		return out
	}
}

// reflect bounces v back into [0, bound] as if it had hit a wall,
// keeping the walk visually confined without discontinuous clamping.
func reflect(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	period := 2 * bound
	v = mod(v, period)
	if v < 0 {
		v += period
	}
	if v > bound {
		v = period - v
	}
	return v
}

func mod(a, b float64) float64 {
	m := a - b*float64(int(a/b))
	return m
}
