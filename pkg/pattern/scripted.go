package pattern

import (
	"embed"
	"encoding/xml"
	"fmt"

	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/keyframe"
)

//go:embed data/*.xml
var scriptedTracks embed.FS

// ParseTrackXML parses a scripted track document. Unlike the reanim
// files it is adapted from, this format is authored fresh and needs
// no synthetic root-element wrapping.
func ParseTrackXML(data []byte) ([]resolvedWaypoint, error) {
	var doc scriptedTrackXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pattern: parse track: %w", err)
	}
	return resolve(doc.Waypoints)
}

// LoadEmbeddedTrack loads one of the sample scripted tracks shipped
// with the module (see pkg/pattern/data).
func LoadEmbeddedTrack(name string) ([]resolvedWaypoint, error) {
	data, err := scriptedTracks.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("pattern: load embedded track %q: %w", name, err)
	}
	return ParseTrackXML(data)
}

// Scripted returns a pattern function that replays a fixed, looping
// waypoint sequence: each chunk slices the sequence to [start, end)
// via linear interpolation between authored waypoints, so a track
// with sparse authored points still yields a keyframe density
// suitable for direct playback.
//
// loopDurationMs is the length of one pass through waypoints before
// it repeats; it need not equal any chunk_duration.
func Scripted(waypoints []resolvedWaypoint, loopDurationMs float32, sampleIntervalMs float32) chunkstore.PatternFunc {
	return func(start, end float32) []keyframe.Keyframe {
		if end <= start || len(waypoints) == 0 {
			return nil
		}

		firstIndex := int(start / sampleIntervalMs)
		if float32(firstIndex)*sampleIntervalMs < start {
			firstIndex++
		}

		var out []keyframe.Keyframe
		for i := firstIndex; float32(i)*sampleIntervalMs < end; i++ {
			t := float32(i) * sampleIntervalMs
			loopT := modf32(t, loopDurationMs)
			x, y := sampleWaypoints(waypoints, loopT)
			out = append(out, keyframe.Keyframe{Time: t, X: x, Y: y})
		}
		return out
	}
}

func modf32(a, b float32) float32 {
	if b <= 0 {
		return 0
	}
	m := a - b*float32(int(a/b))
	if m < 0 {
		m += b
	}
	return m
}

// sampleWaypoints linearly blends the waypoint sequence at loopT,
// wrapping past the last waypoint back to the first (a scripted track
// loops continuously).
func sampleWaypoints(waypoints []resolvedWaypoint, loopT float32) (x, y float32) {
	if loopT <= waypoints[0].Time {
		return waypoints[0].X, waypoints[0].Y
	}
	last := waypoints[len(waypoints)-1]
	if loopT >= last.Time {
		return last.X, last.Y
	}

	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Time <= loopT {
			continue
		}
		prev, next := waypoints[i-1], waypoints[i]
		denom := next.Time - prev.Time
		var r float32
		if denom > 0 {
			r = (loopT - prev.Time) / denom
		}
		return prev.X + r*(next.X-prev.X), prev.Y + r*(next.Y-prev.Y)
	}
	return last.X, last.Y
}
