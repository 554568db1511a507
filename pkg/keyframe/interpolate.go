package keyframe

import "sort"

// Interpolate returns the linearly blended position at query time q
// over an ordered (non-decreasing Time) keyframe sequence.
//
//   - an empty sequence returns (0, 0)
//   - q at or before the first sample clamps to the first sample
//   - q at or after the last sample clamps to the last sample
//   - otherwise q falls between two adjacent samples and is blended
//     with r = (q - prev.Time) / (next.Time - prev.Time), or r = 0 if
//     the two samples share a time
//
// seq must be sorted by Time; lookup uses binary search.
func Interpolate(seq []Keyframe, q float32) (x, y float64) {
	if len(seq) == 0 {
		return 0, 0
	}

	first, last := seq[0], seq[len(seq)-1]
	if q <= first.Time {
		return float64(first.X), float64(first.Y)
	}
	if q >= last.Time {
		return float64(last.X), float64(last.Y)
	}

	// sort.Search finds the first index whose Time is > q; the
	// previous index is therefore the bracketing "prev" sample.
	next := sort.Search(len(seq), func(i int) bool {
		return seq[i].Time > q
	})
	prev := next - 1

	p, n := seq[prev], seq[next]
	denom := n.Time - p.Time
	var r float64
	if denom > 0 {
		r = float64(q-p.Time) / float64(denom)
	}

	x = float64(p.X) + r*float64(n.X-p.X)
	y = float64(p.Y) + r*float64(n.Y-p.Y)
	return x, y
}
