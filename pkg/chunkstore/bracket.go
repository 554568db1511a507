package chunkstore

import "github.com/sorauchi/squarefield/pkg/keyframe"

// applyBracket ensures chunk boundaries are smooth:
// if the pattern's own first frame for this chunk does not already
// sit exactly at startTime, a synthetic bracket frame replaying the
// last known position is inserted there. prevLast is nil for the
// first chunk, or whenever no prior chunk produced any keyframes yet.
func applyBracket(startTime float32, frames []keyframe.Keyframe, prevLast *keyframe.Keyframe) []keyframe.Keyframe {
	if prevLast == nil {
		return frames
	}
	if len(frames) > 0 && frames[0].Time == startTime {
		return frames
	}

	bracket := keyframe.Keyframe{Time: startTime, X: prevLast.X, Y: prevLast.Y}
	out := make([]keyframe.Keyframe, 0, len(frames)+1)
	out = append(out, bracket)
	out = append(out, frames...)
	return out
}

// lastOf returns a pointer to the final keyframe in frames, or nil if
// frames is empty.
func lastOf(frames []keyframe.Keyframe) *keyframe.Keyframe {
	if len(frames) == 0 {
		return nil
	}
	kf := frames[len(frames)-1]
	return &kf
}
