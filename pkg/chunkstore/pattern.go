package chunkstore

import "github.com/sorauchi/squarefield/pkg/keyframe"

// PatternFunc generates the keyframes for one chunk's half-open time
// window [startTime, endTime). Implementations must return keyframes
// with strictly non-decreasing Time, all within the window. A pattern
// function may legally return no keyframes for a given window.
type PatternFunc func(startTime, endTime float32) []keyframe.Keyframe
