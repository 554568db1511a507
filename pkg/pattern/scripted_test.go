package pattern

import "testing"

func TestParseTrackXMLResolvesInheritance(t *testing.T) {
	doc := []byte(`<track>
		<kf t="0" x="0" y="0"/>
		<kf t="100" x="10"/>
		<kf t="200" y="20"/>
	</track>`)

	waypoints, err := ParseTrackXML(doc)
	if err != nil {
		t.Fatalf("ParseTrackXML: %v", err)
	}
	if len(waypoints) != 3 {
		t.Fatalf("got %d waypoints, want 3", len(waypoints))
	}

	// second waypoint inherits y=0 from the first
	if waypoints[1].X != 10 || waypoints[1].Y != 0 {
		t.Errorf("waypoint 1 = %+v, want x=10 y=0 (inherited)", waypoints[1])
	}
	// third waypoint inherits x=10 from the second
	if waypoints[2].X != 10 || waypoints[2].Y != 20 {
		t.Errorf("waypoint 2 = %+v, want x=10 (inherited) y=20", waypoints[2])
	}
}

func TestParseTrackXMLRequiresInitialFields(t *testing.T) {
	doc := []byte(`<track><kf t="0" y="0"/></track>`)
	if _, err := ParseTrackXML(doc); err == nil {
		t.Fatal("expected error for missing initial x")
	}
}

func TestLoadEmbeddedTrackOrbit(t *testing.T) {
	waypoints, err := LoadEmbeddedTrack("orbit.xml")
	if err != nil {
		t.Fatalf("LoadEmbeddedTrack: %v", err)
	}
	if len(waypoints) != 5 {
		t.Fatalf("got %d waypoints, want 5", len(waypoints))
	}
	if waypoints[0].X != 0 || waypoints[0].Y != 0 {
		t.Errorf("first waypoint = %+v, want (0,0)", waypoints[0])
	}
}

func TestScriptedPatternProducesNonDecreasingTime(t *testing.T) {
	waypoints, err := LoadEmbeddedTrack("orbit.xml")
	if err != nil {
		t.Fatalf("LoadEmbeddedTrack: %v", err)
	}
	fn := Scripted(waypoints, 4000, 100)

	frames := fn(0, 1000)
	if len(frames) == 0 {
		t.Fatal("expected some frames in [0,1000)")
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Time < frames[i-1].Time {
			t.Fatalf("non-monotonic time at %d: %v then %v", i, frames[i-1].Time, frames[i].Time)
		}
	}
}

func TestScriptedPatternLoopsAtBoundary(t *testing.T) {
	waypoints, err := LoadEmbeddedTrack("orbit.xml")
	if err != nil {
		t.Fatalf("LoadEmbeddedTrack: %v", err)
	}
	fn := Scripted(waypoints, 4000, 100)

	// Just after one loop duration, the sampled position should be
	// close to the track's start again.
	frames := fn(3900, 4100)
	if len(frames) < 2 {
		t.Fatalf("expected frames spanning the loop boundary, got %d", len(frames))
	}
	last := frames[len(frames)-1]
	if last.X > 15 || last.Y > 15 {
		t.Errorf("post-loop position = (%v,%v), want near (0,0)", last.X, last.Y)
	}
}

func TestRandomWalkDeterministicForSameSeed(t *testing.T) {
	a := RandomWalk(42, 200, 200)
	b := RandomWalk(42, 200, 200)

	fa := a(0, 1000)
	fb := b(0, 1000)
	if len(fa) != len(fb) {
		t.Fatalf("frame counts differ: %d vs %d", len(fa), len(fb))
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Errorf("frame %d differs between identical seeds: %+v vs %+v", i, fa[i], fb[i])
		}
	}
}

func TestRandomWalkStaysWithinBounds(t *testing.T) {
	fn := RandomWalk(7, 300, 150)
	frames := fn(0, 5000)
	for _, kf := range frames {
		if kf.X < 0 || kf.X > 300 || kf.Y < 0 || kf.Y > 150 {
			t.Fatalf("frame out of bounds: %+v", kf)
		}
	}
}

func TestRandomWalkNonDecreasingTime(t *testing.T) {
	fn := RandomWalk(7, 300, 150)
	frames := fn(0, 5000)
	for i := 1; i < len(frames); i++ {
		if frames[i].Time < frames[i-1].Time {
			t.Fatalf("non-monotonic time at %d", i)
		}
	}
}
