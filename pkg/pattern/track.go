package pattern

// scriptedTrackXML is the root of a scripted motion track document:
// an ordered list of waypoints, using the same optional-field,
// cumulative-inheritance idiom as skeletal-animation formats that
// track sprite-part transforms frame over frame, repurposed here for
// raw (time, x, y) samples.
type scriptedTrackXML struct {
	Waypoints []waypointXML `xml:"kf"`
}

// waypointXML is one authored sample. Fields are optional and use
// pointer types: a nil field inherits the previous waypoint's
// resolved value, exactly like reanim.Frame's cumulative inheritance.
type waypointXML struct {
	// Time is milliseconds since the track origin. Unlike X/Y it is
	// never inherited: a waypoint without a t attribute gets time 0,
	// and resolve does not reject it.
	Time float32 `xml:"t,attr"`

	X *float32 `xml:"x,attr"`
	Y *float32 `xml:"y,attr"`
}

// resolvedWaypoint is a waypointXML with inheritance already applied.
type resolvedWaypoint struct {
	Time float32
	X    float32
	Y    float32
}

// resolve walks waypoints in document order, filling any absent X/Y
// with the previous waypoint's resolved value. The first waypoint
// must supply both explicitly.
func resolve(waypoints []waypointXML) ([]resolvedWaypoint, error) {
	out := make([]resolvedWaypoint, 0, len(waypoints))
	var prev resolvedWaypoint
	for i, wp := range waypoints {
		cur := prev
		cur.Time = wp.Time
		if wp.X != nil {
			cur.X = *wp.X
		} else if i == 0 {
			return nil, errMissingInitialField("x")
		}
		if wp.Y != nil {
			cur.Y = *wp.Y
		} else if i == 0 {
			return nil, errMissingInitialField("y")
		}
		out = append(out, cur)
		prev = cur
	}
	return out, nil
}

type trackFieldError string

func (e trackFieldError) Error() string {
	return "pattern: scripted track's first waypoint is missing required field " + string(e)
}

func errMissingInitialField(field string) error {
	return trackFieldError(field)
}
